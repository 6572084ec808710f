package main

import (
	"Backend-IDCard/src/database"
	"Backend-IDCard/src/jobs"
	"Backend-IDCard/src/routes"
	"Backend-IDCard/src/services/attendance"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

func main() {

	// เชื่อมต่อกับ MongoDB
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis + Asynq (optional ถ้าไม่มี ระบบใช้ fallback)
	database.InitRedis()
	database.InitAsynq()

	// สร้าง entry ของวันนี้ทันทีตอน start เหมือนระบบเดิม
	// (job เป็น idempotent รันชนกับ scheduler ตอนเที่ยงคืนได้)
	if _, err := attendance.EnsureTodayEntries(); err != nil {
		log.Println("❌ Error creating attendance entries:", err)
	}

	// worker + cron เที่ยงคืน
	jobs.StartWorker()
	jobs.StartScheduler()

	// สร้าง app instance
	app := fiber.New()

	// ✅ เปิดใช้งาน CORS Middleware
	origins := os.Getenv("ALLOWED_ORIGINS")
	fmt.Println(origins)

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// หน้าเว็บ departmentDetails + ไฟล์ static อื่น ๆ
	app.Static("/", "./public")

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app)

	// get url from .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "3000" // port เดิมของระบบ
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
