package routes

import (
	"Backend-IDCard/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// attendanceRoutes เส้นทางการเช็คชื่อ
func attendanceRoutes(app *fiber.App) {
	app.Get("/student/attendance/:id", controllers.GetAttendancePercentage) // เปอร์เซ็นต์การมาเรียน
	app.Post("/mark-attendance", controllers.MarkAttendance)                // เช็คชื่อวันนี้
}
