package attendance

import (
	DB "Backend-IDCard/src/database"
	"Backend-IDCard/src/models"
	"Backend-IDCard/src/services/clock"
	"Backend-IDCard/src/services/students"
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoEntryToday - ยังไม่มี entry ของวันนี้ (ต้องรอ job สร้างก่อนถึงจะ mark ได้)
var ErrNoEntryToday = errors.New("attendance entry for today does not exist")

// NewAbsentEntry สร้าง entry ค่าเริ่มต้นของวันที่กำหนด (สถานะ absent, ยังไม่มีเวลาเข้า-ออก)
func NewAbsentEntry(date string) models.AttendanceEntry {
	return models.AttendanceEntry{
		Date:   date,
		Status: models.StatusAbsent,
	}
}

// EnsureTodayEntries สร้าง entry ของวันนี้ให้นักศึกษาทุกคนที่ยังไม่มี
// ใช้ UpdateOne ที่ filter "attendance.date != today" แล้วค่อย $push
// ทำให้ find-or-create เป็น atomic ต่อ document → รันซ้ำกี่รอบก็ไม่มี entry ซ้ำ
// คืนจำนวน entry ที่สร้างใหม่
func EnsureTodayEntries() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	today := clock.Today()

	// ดึงเฉพาะ _id ของคนที่ยังไม่มี entry วันนี้
	cursor, err := DB.StudentCollection.Find(ctx,
		bson.M{"attendance.date": bson.M{"$ne": today}},
		options.Find().SetProjection(bson.M{"_id": 1, "student": 1}),
	)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	created := 0
	for cursor.Next(ctx) {
		var doc struct {
			ID   primitive.ObjectID `bson:"_id"`
			Code string             `bson:"student"`
		}
		if err := cursor.Decode(&doc); err != nil {
			log.Println("⚠️ decode student failed:", err)
			continue
		}

		// filter ซ้ำเงื่อนไขวันที่อีกรอบ กัน race กับ trigger อื่นที่รันพร้อมกัน
		res, err := DB.StudentCollection.UpdateOne(ctx,
			bson.M{"_id": doc.ID, "attendance.date": bson.M{"$ne": today}},
			bson.M{"$push": bson.M{"attendance": NewAbsentEntry(today)}},
		)
		if err != nil {
			// ข้ามคนที่พลาด แล้วทำคนถัดไปต่อ
			log.Printf("⚠️ create attendance entry failed for %s: %v", doc.Code, err)
			continue
		}
		if res.ModifiedCount == 1 {
			created++
		}
	}
	if err := cursor.Err(); err != nil {
		return created, err
	}

	log.Printf("✅ Attendance entries created for today: %s (%d created)", today, created)
	return created, nil
}

// MarkPresent เปลี่ยนสถานะ entry ของวันนี้เป็น present แล้วคืนข้อมูลนักศึกษาไว้แสดงผล
func MarkPresent(code string) (*models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	today := clock.Today()

	// positional $ อัปเดต entry ตัวที่ match วันที่วันนี้เท่านั้น
	res, err := DB.StudentCollection.UpdateOne(ctx,
		bson.M{"student": code, "attendance.date": today},
		bson.M{"$set": bson.M{"attendance.$.status": models.StatusPresent}},
	)
	if err != nil {
		return nil, err
	}

	if res.MatchedCount == 0 {
		// แยกให้ออกว่าไม่มีนักศึกษา หรือมีแต่ยังไม่มี entry วันนี้
		count, err := DB.StudentCollection.CountDocuments(ctx, bson.M{"student": code})
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, students.ErrStudentNotFound
		}
		return nil, ErrNoEntryToday
	}

	return students.GetStudentByCode(code)
}
