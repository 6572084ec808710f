package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceOn(t *testing.T) {
	student := Student{
		Code: "2105CS001",
		Name: "สมชาย ใจดี",
		Attendance: []AttendanceEntry{
			{Date: "2024-01-01", Status: StatusPresent},
			{Date: "2024-01-02", Status: StatusAbsent},
		},
	}

	t.Run("FindsEntryByDate", func(t *testing.T) {
		entry := student.AttendanceOn("2024-01-02")
		assert.NotNil(t, entry)
		assert.Equal(t, StatusAbsent, entry.Status)
	})

	t.Run("NilWhenMissing", func(t *testing.T) {
		assert.Nil(t, student.AttendanceOn("2024-01-03"))
		assert.False(t, student.HasAttendanceOn("2024-01-03"))
	})

	t.Run("DuplicateDatesCollapseToFirst", func(t *testing.T) {
		// ข้อมูลเก่าอาจมีวันซ้ำ (race ของระบบเดิม) ต้องใช้อันแรกเสมอ
		dup := Student{
			Attendance: []AttendanceEntry{
				{Date: "2024-01-01", Status: StatusPresent},
				{Date: "2024-01-01", Status: StatusAbsent},
			},
		}
		entry := dup.AttendanceOn("2024-01-01")
		assert.Equal(t, StatusPresent, entry.Status)
	})

	t.Run("ReturnsMutableReference", func(t *testing.T) {
		// MarkPresent แก้สถานะผ่าน pointer ที่ได้จาก AttendanceOn ได้
		s := Student{
			Attendance: []AttendanceEntry{{Date: "2024-01-01", Status: StatusAbsent}},
		}
		s.AttendanceOn("2024-01-01").Status = StatusPresent
		assert.Equal(t, StatusPresent, s.Attendance[0].Status)
	})
}
