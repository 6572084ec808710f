package routes

import (
	"Backend-IDCard/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// reportRoutes เส้นทางรายงาน (หน้า departmentDetails ใช้สองเส้นนี้)
func reportRoutes(app *fiber.App) {
	app.Get("/students", controllers.GetDepartmentStats)                                           // สถิติมา/ขาดรายภาควิชา
	app.Get("/api/studentsByDepartmentWithAttendance", controllers.GetStudentsWithTodayAttendance) // รายคนพร้อมสถานะวันนี้
}
