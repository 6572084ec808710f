package controllers

import (
	"Backend-IDCard/src/services/clock"
	"Backend-IDCard/src/services/reports"
	"Backend-IDCard/src/services/students"
	"Backend-IDCard/src/utils"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetDepartmentStats godoc
// @Summary Department attendance stats
// @Description Presents/absents per department for a given date (default today). "all" = no filter.
// @Tags reports
// @Produce json
// @Param academicYear query string false "Academic year or all"
// @Param department query string false "Department or all"
// @Param date query string false "Date (YYYY-MM-DD), default today"
// @Success 200 {object} map[string]reports.DailyStat
// @Failure 500 {object} models.ErrorResponse
// @Router /students [get]
func GetDepartmentStats(c *fiber.Ctx) error {
	academicYear := c.Query("academicYear", "all")
	department := c.Query("department", "all")
	date := c.Query("date", clock.Today())

	stats, err := reports.DepartmentDailyStats(academicYear, department, date)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(stats)
}

// GetStudentsWithTodayAttendance godoc
// @Summary Students of a department with today's status
// @Description Rows with today's status and history percentage, absent students first
// @Tags reports
// @Produce json
// @Param department query string true "Department (BRANCH)"
// @Success 200 {array} reports.StudentDailyRow
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/studentsByDepartmentWithAttendance [get]
func GetStudentsWithTodayAttendance(c *fiber.Ctx) error {
	department := c.Query("department")
	if department == "" {
		return utils.HandleError(c, http.StatusBadRequest, "Department parameter is missing")
	}

	rows, err := reports.ListStudentsWithTodayAttendance(department)
	if err != nil {
		if err == students.ErrNoStudentsFound {
			return utils.HandleError(c, http.StatusNotFound, "No students found for the department")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Internal Server Error")
	}

	// ปัดเปอร์เซ็นต์ตอนส่งออก service เก็บความละเอียดเต็มไว้
	for i := range rows {
		rows[i].Percentage = reports.RoundPercentage(rows[i].Percentage)
	}
	return c.JSON(rows)
}
