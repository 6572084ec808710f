package seed

import (
	DB "Backend-IDCard/src/database"
	"Backend-IDCard/src/models"
	"Backend-IDCard/src/services/attendance"
	"Backend-IDCard/src/services/clock"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

var demoDepartments = []string{"CS", "IT", "EE", "ME"}

// SeedStudents สร้างนักศึกษาตัวอย่างไว้ทดสอบหน้ารายงาน (ใช้เฉพาะ dev)
// รหัสนักศึกษา gen จาก uuid กันชนกับข้อมูลจริง คืนรายการรหัสที่สร้าง
func SeedStudents(count int) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	today := clock.Today()
	codes := make([]string, 0, count)

	docs := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		code := "DEMO-" + uuid.NewString()[:8]
		codes = append(codes, code)

		student := models.Student{
			Code:         code,
			Name:         fmt.Sprintf("นักศึกษาทดสอบ %d", i+1),
			FatherName:   "ผู้ปกครองทดสอบ",
			DateOfBirth:  "2004-01-01",
			Address:      "-",
			Contact:      fmt.Sprintf("08%08d", i),
			Course:       "B.Tech",
			Branch:       demoDepartments[i%len(demoDepartments)],
			AcademicYear: "2024",
			Photos:       []models.Photo{},
			// ใส่ entry ของวันนี้ไปเลย จะได้โผล่ในรายงานทันที
			Attendance: []models.AttendanceEntry{attendance.NewAbsentEntry(today)},
		}
		docs = append(docs, student)
	}

	if len(docs) == 0 {
		return codes, nil
	}

	res, err := DB.StudentCollection.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Seeded %d demo students", len(res.InsertedIDs))
	return codes, nil
}

// DeleteSeededStudents ลบข้อมูล demo ทั้งหมด (รหัสขึ้นต้น DEMO-)
func DeleteSeededStudents() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := DB.StudentCollection.DeleteMany(ctx, bson.M{
		"student": bson.M{"$regex": "^DEMO-"},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
