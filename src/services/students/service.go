package students

import (
	DB "Backend-IDCard/src/database"
	"Backend-IDCard/src/models"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrNoStudentsFound = errors.New("no students found for the department")
	ErrPhotoNotFound   = errors.New("photo not found")
)

// GetStudentByCode - ดึงข้อมูลนักศึกษาด้วยรหัสนักศึกษา (field student)
func GetStudentByCode(code string) (*models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var student models.Student
	err := DB.StudentCollection.FindOne(ctx, bson.M{"student": code}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

// GetStudentsByDepartment - ดึงนักศึกษาทั้งหมดของภาควิชา (ลำดับตามที่ store คืนมา)
func GetStudentsByDepartment(department string) ([]models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cursor, err := DB.StudentCollection.Find(ctx, bson.M{"BRANCH": department})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}

	if len(students) == 0 {
		return nil, ErrNoStudentsFound
	}
	return students, nil
}

// GetStudentsWithFilter - ดึงนักศึกษาตาม filter ปีการศึกษา/ภาควิชา
// ค่า "all" (หรือว่าง) หมายถึงไม่ filter field นั้น
func GetStudentsWithFilter(academicYear, department string) ([]models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	filter := bson.M{}
	if academicYear != "" && academicYear != "all" {
		filter["Academic_Year"] = academicYear
	}
	if department != "" && department != "all" {
		filter["BRANCH"] = department
	}

	cursor, err := DB.StudentCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetFirstPhoto - รูปแรกของนักศึกษา (ระบบปัจจุบันใช้เฉพาะรูปแรก รูปที่เหลือเป็นประวัติ)
func GetFirstPhoto(code string) (*models.Photo, error) {
	student, err := GetStudentByCode(code)
	if err != nil {
		return nil, err
	}
	if len(student.Photos) == 0 {
		return nil, ErrPhotoNotFound
	}
	return &student.Photos[0], nil
}
