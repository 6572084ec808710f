package controllers

import (
	"Backend-IDCard/src/services/seed"
	"Backend-IDCard/src/utils"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// SeedTestStudents สร้างนักศึกษา demo สำหรับทดสอบหน้ารายงาน
// @Summary สร้างข้อมูลทดสอบนักศึกษา
// @Description สร้างนักศึกษา demo (รหัสขึ้นต้น DEMO-) พร้อม entry ของวันนี้
// @Tags Test Data
// @Produce json
// @Param count query int false "จำนวนนักศึกษา" default(10)
// @Success 201 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /test-data/students [post]
func SeedTestStudents(c *fiber.Ctx) error {
	count := 10
	if q := c.Query("count"); q != "" {
		if v, err := strconv.Atoi(q); err == nil && v > 0 && v <= 500 {
			count = v
		}
	}

	codes, err := seed.SeedStudents(count)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to seed students")
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":  "Test students created successfully",
		"students": codes,
	})
}

// DeleteTestStudents ลบข้อมูล demo ทั้งหมด
// @Summary ลบข้อมูลทดสอบนักศึกษา
// @Description ลบนักศึกษา demo ทั้งหมด (รหัสขึ้นต้น DEMO-)
// @Tags Test Data
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /test-data/students [delete]
func DeleteTestStudents(c *fiber.Ctx) error {
	deleted, err := seed.DeleteSeededStudents()
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to delete test students")
	}

	return c.JSON(fiber.Map{
		"message": "Test students deleted",
		"deleted": deleted,
	})
}
