package jobs

import (
	DB "Backend-IDCard/src/database"
	"Backend-IDCard/src/services/attendance"
	"Backend-IDCard/src/services/clock"
	"log"
	"time"

	"github.com/hibiken/asynq"
)

// StartScheduler ลงทะเบียน cron "0 0 * * *" (เที่ยงคืนตามเวลาเครื่อง)
// ให้ enqueue task ensure-attendance ทุกวัน — ตารางเดียวกับระบบเดิม
// ถ้าไม่มี Redis จะถอยไปใช้ timer ในโปรเซสแทน เพื่อให้ entry รายวันยังถูกสร้างเสมอ
func StartScheduler() {
	if DB.RedisClient == nil || DB.RedisURI == "" {
		log.Println("⚠️ Redis not available → fallback to in-process midnight timer")
		go runMidnightLoop()
		return
	}

	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		&asynq.SchedulerOpts{Location: time.Local},
	)

	task, err := NewEnsureAttendanceTask("scheduled")
	if err != nil {
		log.Println("❌ create ensure-attendance task failed:", err)
		return
	}

	entryID, err := scheduler.Register("0 0 * * *", task)
	if err != nil {
		log.Println("❌ register ensure-attendance schedule failed:", err)
		return
	}
	log.Println("✅ ensure-attendance scheduled daily at midnight, entry:", entryID)

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Println("❌ Asynq scheduler stopped:", err)
		}
	}()
}

// runMidnightLoop เรียก EnsureTodayEntries ตรง ๆ ทุกเที่ยงคืน (โหมดไม่มี Redis)
// EnsureTodayEntries เป็น idempotent อยู่แล้ว รันชนกับ startup trigger ได้
func runMidnightLoop() {
	for {
		now := clock.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local).AddDate(0, 0, 1)
		time.Sleep(next.Sub(now))

		if _, err := attendance.EnsureTodayEntries(); err != nil {
			log.Println("❌ midnight ensure-attendance failed:", err)
		}
	}
}
