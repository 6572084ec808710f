package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeEnsureAttendance = "attendance:ensure-today"

type EnsureAttendancePayload struct {
	Date string `json:"date"`
}

func NewEnsureAttendanceTask(date string) (*asynq.Task, error) {
	payload, err := json.Marshal(EnsureAttendancePayload{Date: date})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeEnsureAttendance, payload), nil
}
