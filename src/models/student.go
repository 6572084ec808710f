package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// สถานะการมาเรียนของแต่ละวัน
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// Photo รูปถ่ายนักศึกษา (เก็บ binary ใน document เลย ตาม schema เดิม)
type Photo struct {
	Data        []byte `bson:"data" json:"data"`
	ContentType string `bson:"contentType" json:"contentType"`
}

// AttendanceEntry บันทึกการมาเรียน 1 วัน (date รูปแบบ YYYY-MM-DD)
type AttendanceEntry struct {
	Date    string `bson:"date" json:"date"`
	InTime  string `bson:"inTime,omitempty" json:"inTime,omitempty"`
	OutTime string `bson:"outTime,omitempty" json:"outTime,omitempty"`
	Status  string `bson:"status" json:"status"` // present หรือ absent
}

// Student นักศึกษา 1 คน (ชื่อ field ตรงกับ collection idcard เดิม)
type Student struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code         string             `bson:"student" json:"student"` // รหัสนักศึกษา ใช้เป็น identifier ภายนอก
	Name         string             `bson:"name" json:"name"`
	FatherName   string             `bson:"father_name" json:"father_name"`
	DateOfBirth  string             `bson:"date_of_birth" json:"date_of_birth"`
	Address      string             `bson:"address" json:"address"`
	Contact      string             `bson:"contact" json:"contact"`
	Course       string             `bson:"COURSE" json:"COURSE"`
	Branch       string             `bson:"BRANCH" json:"BRANCH"` // ภาควิชา ใช้เป็นแกนหลักของรายงาน
	AcademicYear string             `bson:"Academic_Year" json:"Academic_Year"`
	Photos       []Photo            `bson:"photos" json:"photos"`
	Attendance   []AttendanceEntry  `bson:"attendance" json:"attendance"`
}

// AttendanceOn หา entry ของวันที่กำหนด ถ้ามีหลายอัน (ข้อมูลเก่าที่ซ้ำ) ใช้อันแรก
func (s *Student) AttendanceOn(date string) *AttendanceEntry {
	for i := range s.Attendance {
		if s.Attendance[i].Date == date {
			return &s.Attendance[i]
		}
	}
	return nil
}

// HasAttendanceOn เช็คว่ามี entry ของวันที่กำหนดแล้วหรือยัง
func (s *Student) HasAttendanceOn(date string) bool {
	return s.AttendanceOn(date) != nil
}
