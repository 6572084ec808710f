package reports

import (
	"Backend-IDCard/src/models"
	"Backend-IDCard/src/services/clock"
	"Backend-IDCard/src/services/students"
	"Backend-IDCard/src/utils"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
)

// DailyStat จำนวนมา/ขาดของภาควิชา 1 วัน
type DailyStat struct {
	Presents int `json:"presents"`
	Absents  int `json:"absents"`
}

// StudentDailyRow แถวรายงานรายคน (ชื่อ field ตาม response เดิมของหน้า departmentDetails)
type StudentDailyRow struct {
	Code       string  `json:"student"`
	Name       string  `json:"name"`
	Branch     string  `json:"BRANCH"`
	FatherName string  `json:"father_name"`
	Contact    string  `json:"contact"`
	Attendance string  `json:"Attendence"` // สะกดตาม contract เดิม
	Percentage float64 `json:"Percentage"`
}

// AttendancePercentage เปอร์เซ็นต์การมาเรียนจากประวัติทั้งหมด
// ไม่มีประวัติเลย = 0 (กันหารศูนย์) คืนค่าความละเอียดเต็ม ไปปัดตอนแสดงผล
func AttendancePercentage(entries []models.AttendanceEntry) float64 {
	totalDays := len(entries)
	if totalDays == 0 {
		return 0
	}
	presentDays := 0
	for _, entry := range entries {
		if entry.Status == models.StatusPresent {
			presentDays++
		}
	}
	return float64(presentDays) / float64(totalDays) * 100
}

// RoundPercentage ปัดทศนิยม 2 ตำแหน่ง ใช้ตอน serialize เท่านั้น
func RoundPercentage(p float64) float64 {
	return math.Round(p*100) / 100
}

// AggregateDaily นับมา/ขาดของวันที่กำหนด group ตามภาควิชา
// คนที่ไม่มี entry ของวันนั้นไม่ถูกนับทั้งสองฝั่ง
func AggregateDaily(studentList []models.Student, date string) map[string]DailyStat {
	result := map[string]DailyStat{}
	for i := range studentList {
		entry := studentList[i].AttendanceOn(date)
		if entry == nil {
			continue
		}
		stat := result[studentList[i].Branch]
		if entry.Status == models.StatusPresent {
			stat.Presents++
		} else {
			stat.Absents++
		}
		result[studentList[i].Branch] = stat
	}
	return result
}

// BuildDailyRows สร้างแถวรายงานรายคนของวันที่กำหนด
// คนที่ไม่มี entry วันนั้นแสดงเป็น "Absent" (default ฝั่งแสดงผล ไม่ใช่ค่าที่เก็บ)
// เรียงให้คนขาดขึ้นก่อน โดยไม่สลับลำดับเดิมภายในแต่ละกลุ่ม
func BuildDailyRows(studentList []models.Student, date string) []StudentDailyRow {
	rows := make([]StudentDailyRow, 0, len(studentList))
	for i := range studentList {
		s := &studentList[i]

		status := "Absent"
		if entry := s.AttendanceOn(date); entry != nil {
			status = entry.Status
		}

		rows = append(rows, StudentDailyRow{
			Code:       s.Code,
			Name:       s.Name,
			Branch:     s.Branch,
			FatherName: s.FatherName,
			Contact:    s.Contact,
			Attendance: status,
			Percentage: AttendancePercentage(s.Attendance),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return isAbsent(rows[i].Attendance) && !isAbsent(rows[j].Attendance)
	})
	return rows
}

func isAbsent(status string) bool {
	return strings.EqualFold(status, models.StatusAbsent)
}

// GetAttendancePercentage เปอร์เซ็นต์การมาเรียนของนักศึกษา 1 คน
func GetAttendancePercentage(code string) (float64, error) {
	student, err := students.GetStudentByCode(code)
	if err != nil {
		return 0, err
	}
	return AttendancePercentage(student.Attendance), nil
}

// DepartmentDailyStats สถิติมา/ขาดรายภาควิชาของวันที่กำหนด
// มี cache ใน Redis อายุสั้น ๆ (ถ้าไม่มี Redis ก็ query ตรงทุกครั้ง)
func DepartmentDailyStats(academicYear, department, date string) (map[string]DailyStat, error) {
	cacheKey := fmt.Sprintf("daily_stats:%s:%s:%s", date, academicYear, department)
	if payload, ok := utils.GetDailyStatsCache(cacheKey); ok {
		var cached map[string]DailyStat
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
		log.Println("⚠️ daily stats cache decode failed, falling back to query")
	}

	studentList, err := students.GetStudentsWithFilter(academicYear, department)
	if err != nil {
		return nil, err
	}

	stats := AggregateDaily(studentList, date)

	if payload, err := json.Marshal(stats); err == nil {
		utils.SetDailyStatsCache(cacheKey, payload)
	}
	return stats, nil
}

// ListStudentsWithTodayAttendance รายชื่อนักศึกษาของภาควิชา พร้อมสถานะวันนี้และเปอร์เซ็นต์
func ListStudentsWithTodayAttendance(department string) ([]StudentDailyRow, error) {
	studentList, err := students.GetStudentsByDepartment(department)
	if err != nil {
		return nil, err
	}
	return BuildDailyRows(studentList, clock.Today()), nil
}
