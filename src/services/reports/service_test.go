package reports

import (
	"testing"

	"Backend-IDCard/src/models"

	"github.com/stretchr/testify/assert"
)

func entry(date, status string) models.AttendanceEntry {
	return models.AttendanceEntry{Date: date, Status: status}
}

func TestAttendancePercentage(t *testing.T) {
	t.Run("NoHistoryIsZero", func(t *testing.T) {
		// ยังไม่มีประวัติเลย ต้องได้ 0 ไม่ใช่ NaN
		assert.Equal(t, 0.0, AttendancePercentage(nil))
		assert.Equal(t, 0.0, AttendancePercentage([]models.AttendanceEntry{}))
	})

	t.Run("HalfPresent", func(t *testing.T) {
		entries := []models.AttendanceEntry{
			entry("2024-01-01", models.StatusPresent),
			entry("2024-01-02", models.StatusAbsent),
		}
		assert.Equal(t, 50.0, RoundPercentage(AttendancePercentage(entries)))
	})

	t.Run("AllPresent", func(t *testing.T) {
		entries := []models.AttendanceEntry{
			entry("2024-01-01", models.StatusPresent),
			entry("2024-01-02", models.StatusPresent),
			entry("2024-01-03", models.StatusPresent),
		}
		assert.Equal(t, 100.0, AttendancePercentage(entries))
	})

	t.Run("MorePresentsNeverLower", func(t *testing.T) {
		// เพิ่มวัน present เข้าไป เปอร์เซ็นต์ต้องไม่ลด
		entries := []models.AttendanceEntry{
			entry("2024-01-01", models.StatusAbsent),
		}
		prev := AttendancePercentage(entries)
		for day := 2; day <= 10; day++ {
			entries = append(entries, entry("2024-01-02", models.StatusPresent))
			cur := AttendancePercentage(entries)
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	})

	t.Run("MoreAbsentsNeverHigher", func(t *testing.T) {
		entries := []models.AttendanceEntry{
			entry("2024-01-01", models.StatusPresent),
		}
		prev := AttendancePercentage(entries)
		for day := 2; day <= 10; day++ {
			entries = append(entries, entry("2024-01-02", models.StatusAbsent))
			cur := AttendancePercentage(entries)
			assert.LessOrEqual(t, cur, prev)
			prev = cur
		}
	})

	t.Run("RoundAtPresentationOnly", func(t *testing.T) {
		// 1 ใน 3 = 33.333... ค่าจาก service ต้องละเอียดเต็ม แล้วค่อยปัดตอนแสดงผล
		entries := []models.AttendanceEntry{
			entry("2024-01-01", models.StatusPresent),
			entry("2024-01-02", models.StatusAbsent),
			entry("2024-01-03", models.StatusAbsent),
		}
		p := AttendancePercentage(entries)
		assert.InDelta(t, 33.333333, p, 0.0001)
		assert.Equal(t, 33.33, RoundPercentage(p))
	})
}

func TestAggregateDaily(t *testing.T) {
	today := "2024-06-01"

	t.Run("StudentsWithoutEntryAreExcluded", func(t *testing.T) {
		// CS สองคน คนแรก present วันนี้ คนที่สองไม่มี entry เลย
		studentList := []models.Student{
			{Code: "CS001", Name: "สมชาย ใจดี", Branch: "CS",
				Attendance: []models.AttendanceEntry{entry(today, models.StatusPresent)}},
			{Code: "CS002", Name: "สมหญิง ขยัน", Branch: "CS"},
		}

		stats := AggregateDaily(studentList, today)
		assert.Equal(t, DailyStat{Presents: 1, Absents: 0}, stats["CS"])
	})

	t.Run("CountsSumToStudentsWithEntry", func(t *testing.T) {
		studentList := []models.Student{
			{Code: "IT001", Branch: "IT", Attendance: []models.AttendanceEntry{entry(today, models.StatusPresent)}},
			{Code: "IT002", Branch: "IT", Attendance: []models.AttendanceEntry{entry(today, models.StatusAbsent)}},
			{Code: "IT003", Branch: "IT", Attendance: []models.AttendanceEntry{entry("2024-05-31", models.StatusPresent)}},
			{Code: "IT004", Branch: "IT"},
		}

		stats := AggregateDaily(studentList, today)
		// 2 คนมี entry ของวันนี้ → presents+absents ต้องเท่ากับ 2
		assert.Equal(t, 2, stats["IT"].Presents+stats["IT"].Absents)
		assert.Equal(t, DailyStat{Presents: 1, Absents: 1}, stats["IT"])
	})

	t.Run("GroupsByDepartment", func(t *testing.T) {
		studentList := []models.Student{
			{Code: "CS001", Branch: "CS", Attendance: []models.AttendanceEntry{entry(today, models.StatusPresent)}},
			{Code: "EE001", Branch: "EE", Attendance: []models.AttendanceEntry{entry(today, models.StatusAbsent)}},
			{Code: "EE002", Branch: "EE", Attendance: []models.AttendanceEntry{entry(today, models.StatusAbsent)}},
		}

		stats := AggregateDaily(studentList, today)
		assert.Len(t, stats, 2)
		assert.Equal(t, DailyStat{Presents: 1, Absents: 0}, stats["CS"])
		assert.Equal(t, DailyStat{Presents: 0, Absents: 2}, stats["EE"])
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Empty(t, AggregateDaily(nil, today))
	})
}

func TestBuildDailyRows(t *testing.T) {
	today := "2024-06-01"

	t.Run("MissingEntryShownAsAbsent", func(t *testing.T) {
		// ไม่มี entry วันนี้ → แสดง "Absent" (default ฝั่งแสดงผล)
		studentList := []models.Student{
			{Code: "CS002", Name: "สมหญิง ขยัน", Branch: "CS"},
		}

		rows := BuildDailyRows(studentList, today)
		assert.Len(t, rows, 1)
		assert.Equal(t, "Absent", rows[0].Attendance)
		assert.Equal(t, 0.0, rows[0].Percentage)
	})

	t.Run("AbsentRowsComeFirst", func(t *testing.T) {
		studentList := []models.Student{
			{Code: "CS001", Branch: "CS", Attendance: []models.AttendanceEntry{entry(today, models.StatusPresent)}},
			{Code: "CS002", Branch: "CS"}, // ไม่มี entry → Absent
			{Code: "CS003", Branch: "CS", Attendance: []models.AttendanceEntry{entry(today, models.StatusPresent)}},
			{Code: "CS004", Branch: "CS", Attendance: []models.AttendanceEntry{entry(today, models.StatusAbsent)}},
		}

		rows := BuildDailyRows(studentList, today)

		// ห้ามมีคนไม่ขาดอยู่ก่อนคนขาด
		seenNotAbsent := false
		for _, row := range rows {
			if isAbsent(row.Attendance) {
				assert.False(t, seenNotAbsent, "absent row after a present row: %+v", rows)
			} else {
				seenNotAbsent = true
			}
		}

		// ลำดับภายในแต่ละกลุ่มต้องคงเดิม (stable)
		assert.Equal(t, "CS002", rows[0].Code)
		assert.Equal(t, "CS004", rows[1].Code)
		assert.Equal(t, "CS001", rows[2].Code)
		assert.Equal(t, "CS003", rows[3].Code)
	})

	t.Run("RowCarriesDisplayFields", func(t *testing.T) {
		studentList := []models.Student{
			{
				Code:       "2105CS001",
				Name:       "สมชาย ใจดี",
				FatherName: "สมศักดิ์ ใจดี",
				Contact:    "0812345678",
				Branch:     "CS",
				Attendance: []models.AttendanceEntry{
					entry("2024-01-01", models.StatusPresent),
					entry("2024-01-02", models.StatusAbsent),
				},
			},
		}

		rows := BuildDailyRows(studentList, today)
		assert.Equal(t, "2105CS001", rows[0].Code)
		assert.Equal(t, "สมชาย ใจดี", rows[0].Name)
		assert.Equal(t, "สมศักดิ์ ใจดี", rows[0].FatherName)
		assert.Equal(t, "0812345678", rows[0].Contact)
		assert.Equal(t, "CS", rows[0].Branch)
		assert.Equal(t, "Absent", rows[0].Attendance) // ไม่มี entry ของวันนี้
		assert.Equal(t, 50.0, RoundPercentage(rows[0].Percentage))
	})

	t.Run("StoredStatusPassedThrough", func(t *testing.T) {
		studentList := []models.Student{
			{Code: "CS001", Branch: "CS", Attendance: []models.AttendanceEntry{entry(today, models.StatusPresent)}},
		}
		rows := BuildDailyRows(studentList, today)
		assert.Equal(t, models.StatusPresent, rows[0].Attendance)
	})
}
