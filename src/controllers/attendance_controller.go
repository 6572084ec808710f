package controllers

import (
	"Backend-IDCard/src/services/attendance"
	"Backend-IDCard/src/services/clock"
	"Backend-IDCard/src/services/reports"
	"Backend-IDCard/src/services/students"
	"Backend-IDCard/src/utils"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// MarkAttendanceRequest - body ของ mark-attendance
type MarkAttendanceRequest struct {
	StudentID string `json:"studentId" validate:"required" example:"2105CS001"` // รหัสนักศึกษา
}

// GetAttendancePercentage godoc
// @Summary Get attendance percentage
// @Description Attendance percentage over the student's full history
// @Tags attendance
// @Produce json
// @Param id path string true "Student code"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /student/attendance/{id} [get]
func GetAttendancePercentage(c *fiber.Ctx) error {
	code := c.Params("id")

	percentage, err := reports.GetAttendancePercentage(code)
	if err != nil {
		if err == students.ErrStudentNotFound {
			return utils.HandleError(c, http.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Internal Server Error")
	}

	// ปัดทศนิยม 2 ตำแหน่งตอนส่งออกเท่านั้น
	return c.JSON(fiber.Map{"attendancePercentage": reports.RoundPercentage(percentage)})
}

// MarkAttendance godoc
// @Summary Mark a student present today
// @Description Set today's attendance entry to present. Entry must already exist (created by the daily job).
// @Tags attendance
// @Accept json
// @Produce json
// @Param body body MarkAttendanceRequest true "Student code"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /mark-attendance [post]
func MarkAttendance(c *fiber.Ctx) error {
	var req MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "studentId is required")
	}

	student, err := attendance.MarkPresent(req.StudentID)
	if err != nil {
		switch err {
		case students.ErrStudentNotFound:
			return utils.HandleError(c, http.StatusNotFound, "Student not found")
		case attendance.ErrNoEntryToday:
			return utils.HandleError(c, http.StatusBadRequest, "Attendance entry for today does not exist")
		default:
			return utils.HandleError(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}

	// สถิติของวันนี้เปลี่ยนแล้ว ล้าง cache ทิ้ง
	utils.InvalidateDailyStatsCache(clock.Today())

	return c.JSON(fiber.Map{
		"message": "Attendance marked successfully",
		"student": fiber.Map{
			"name":      student.Name,
			"studentId": student.Code,
			"photos":    student.Photos,
			"course":    student.Course,
			"branch":    student.Branch,
		},
	})
}
