package attendance

import (
	"testing"
	"time"

	"Backend-IDCard/src/models"
	"Backend-IDCard/src/services/clock"

	"github.com/stretchr/testify/assert"
)

func TestNewAbsentEntry(t *testing.T) {
	entry := NewAbsentEntry("2024-06-01")

	// ค่าเริ่มต้นต้องเป็น absent เสมอ และยังไม่มีเวลาเข้า-ออก
	assert.Equal(t, "2024-06-01", entry.Date)
	assert.Equal(t, models.StatusAbsent, entry.Status)
	assert.Empty(t, entry.InTime)
	assert.Empty(t, entry.OutTime)
}

func TestEntryDateFollowsClock(t *testing.T) {
	orig := clock.Default
	defer func() { clock.Default = orig }()

	clock.Default = clock.Fixed{T: time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)}
	entry := NewAbsentEntry(clock.Today())
	assert.Equal(t, "2024-06-01", entry.Date)

	// ข้ามเที่ยงคืน UTC → entry ใหม่ต้องเป็นวันใหม่ ไม่ชนกับของเดิม
	clock.Default = clock.Fixed{T: time.Date(2024, 6, 2, 0, 0, 1, 0, time.UTC)}
	next := NewAbsentEntry(clock.Today())
	assert.Equal(t, "2024-06-02", next.Date)
	assert.NotEqual(t, entry.Date, next.Date)
}
