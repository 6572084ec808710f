package routes

import (
	"Backend-IDCard/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// studentRoutes เส้นทางข้อมูลนักศึกษา (path ตาม contract เดิมของหน้าเว็บ)
func studentRoutes(app *fiber.App) {
	app.Get("/api/student/:id", controllers.GetStudentByCode)                 // ข้อมูลเต็มรายคน
	app.Get("/api/studentsByDepartment", controllers.GetStudentsByDepartment) // ข้อมูลเต็มทั้งภาควิชา
	app.Get("/student/photo/:id", controllers.GetStudentPhoto)                // รูปแรก
	app.Get("/photos/:id", controllers.GetStudentPhoto)                       // path เก่า ใช้ handler เดียวกัน
}
