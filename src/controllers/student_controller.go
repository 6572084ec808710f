package controllers

import (
	"Backend-IDCard/src/services/students"
	"Backend-IDCard/src/utils"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetStudentByCode godoc
// @Summary Get student by code
// @Description Full student record including photos and attendance history
// @Tags students
// @Produce json
// @Param id path string true "Student code"
// @Success 200 {object} models.Student
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/student/{id} [get]
func GetStudentByCode(c *fiber.Ctx) error {
	code := c.Params("id")

	student, err := students.GetStudentByCode(code)
	if err != nil {
		if err == students.ErrStudentNotFound {
			return utils.HandleError(c, http.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(student)
}

// GetStudentsByDepartment godoc
// @Summary Get students by department
// @Description Full student records of one department
// @Tags students
// @Produce json
// @Param department query string true "Department (BRANCH)"
// @Success 200 {array} models.Student
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/studentsByDepartment [get]
func GetStudentsByDepartment(c *fiber.Ctx) error {
	department := c.Query("department")
	if department == "" {
		return utils.HandleError(c, http.StatusBadRequest, "Department parameter is missing")
	}

	studentList, err := students.GetStudentsByDepartment(department)
	if err != nil {
		if err == students.ErrNoStudentsFound {
			return utils.HandleError(c, http.StatusNotFound, "No students found for the department")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(studentList)
}

// GetStudentPhoto godoc
// @Summary Get student photo
// @Description First photo of the student, served with its stored content type
// @Tags students
// @Produce octet-stream
// @Param id path string true "Student code"
// @Success 200 {file} binary
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /student/photo/{id} [get]
func GetStudentPhoto(c *fiber.Ctx) error {
	code := c.Params("id")

	photo, err := students.GetFirstPhoto(code)
	if err != nil {
		// route นี้หน้าเว็บใช้ใน <img> ตรง ๆ ตอบ plain text พอ
		if err == students.ErrStudentNotFound || err == students.ErrPhotoNotFound {
			return c.Status(http.StatusNotFound).SendString("Photo not found")
		}
		return c.Status(http.StatusInternalServerError).SendString("Internal Server Error")
	}

	c.Set(fiber.HeaderContentType, photo.ContentType)
	return c.Send(photo.Data)
}
