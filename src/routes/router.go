package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	// รวม routes จากแต่ละ module
	studentRoutes(app)
	attendanceRoutes(app)
	reportRoutes(app)
	adminRoutes(app)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
