package controllers

import (
	DB "Backend-IDCard/src/database"
	"Backend-IDCard/src/jobs"
	"Backend-IDCard/src/services/attendance"
	"Backend-IDCard/src/services/clock"
	"Backend-IDCard/src/utils"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

// TriggerEnsureAttendance - enqueue an ensure-attendance task to run after delaySec seconds (default 0)
// TriggerEnsureAttendance godoc
// @Summary      Trigger the daily ensure-attendance job
// @Description  Enqueue the ensure-attendance task (or run it inline when Redis is not configured). Idempotent, safe to call repeatedly.
// @Tags         admin
// @Produce      json
// @Param        delaySec  query  int  false  "Delay in seconds"  default(0)
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  models.ErrorResponse
// @Router       /admin/jobs/ensure-attendance [post]
func TriggerEnsureAttendance(c *fiber.Ctx) error {
	today := clock.Today()

	// ไม่มี Redis ก็รันตรง ๆ เลย (job เป็น idempotent)
	if DB.AsynqClient == nil {
		created, err := attendance.EnsureTodayEntries()
		if err != nil {
			return utils.HandleError(c, http.StatusInternalServerError, "ensure-attendance failed")
		}
		return c.JSON(fiber.Map{
			"message": "ensure-attendance executed inline (no Redis)",
			"date":    today,
			"created": created,
		})
	}

	delaySec := 0
	if q := c.Query("delaySec"); q != "" {
		if v, err := strconv.Atoi(q); err == nil && v >= 0 {
			delaySec = v
		}
	}

	task, err := jobs.NewEnsureAttendanceTask(today)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "failed to create task")
	}

	// TaskID ผูกกับวันที่ → enqueue ซ้ำในวันเดียวกันถูก dedup ที่คิว
	info, err := DB.AsynqClient.Enqueue(
		task,
		asynq.ProcessIn(time.Duration(delaySec)*time.Second),
		asynq.TaskID("ensure-attendance-"+today),
	)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return c.JSON(fiber.Map{
				"message": "ensure-attendance already enqueued for today",
				"date":    today,
			})
		}
		return utils.HandleError(c, http.StatusInternalServerError, "failed to enqueue task")
	}

	return c.JSON(fiber.Map{
		"message": "ensure-attendance enqueued",
		"date":    today,
		"taskId":  info.ID,
		"queue":   info.Queue,
	})
}
