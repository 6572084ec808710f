package routes

import (
	"Backend-IDCard/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// adminRoutes งานหลังบ้าน (สั่งรัน job + ข้อมูลทดสอบ)
func adminRoutes(app *fiber.App) {
	app.Post("/admin/jobs/ensure-attendance", controllers.TriggerEnsureAttendance)

	testData := app.Group("/test-data")
	testData.Post("/students", controllers.SeedTestStudents)
	testData.Delete("/students", controllers.DeleteTestStudents)
}
