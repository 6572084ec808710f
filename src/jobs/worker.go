package jobs

import (
	DB "Backend-IDCard/src/database"
	"Backend-IDCard/src/services/attendance"
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

// HandleEnsureAttendanceTask สร้าง entry ของวันนี้ให้นักศึกษาทุกคน
// payload.Date เป็นวันที่ตอน enqueue ไว้ดู log เท่านั้น — ตัว job ใช้วันปัจจุบันเสมอ
// เพราะ task อาจค้างคิวข้ามเที่ยงคืน
func HandleEnsureAttendanceTask(ctx context.Context, t *asynq.Task) error {
	var payload EnsureAttendancePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	log.Println("🎯 Start ensure-attendance task (enqueued for:", payload.Date, ")")

	created, err := attendance.EnsureTodayEntries()
	if err != nil {
		log.Println("❌ ensure-attendance failed:", err)
		return err
	}

	log.Printf("✅ ensure-attendance done (%d entries created)", created)
	return nil
}

// StartWorker รัน asynq server สำหรับประมวลผล task จากคิว
// ถ้าไม่มี Redis จะไม่ start (main จะใช้ fallback แทน)
func StartWorker() {
	if DB.RedisClient == nil || DB.RedisURI == "" {
		log.Println("⚠️ Redis not available. Asynq worker will not be started.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		asynq.Config{Concurrency: 1}, // job รายวันตัวเดียว ไม่ต้อง concurrent
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeEnsureAttendance, HandleEnsureAttendanceTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()
	log.Println("✅ Asynq worker started")
}
