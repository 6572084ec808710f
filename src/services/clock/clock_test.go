package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	orig := Default
	defer func() { Default = orig }()

	t.Run("FormatsAsCalendarDay", func(t *testing.T) {
		Default = Fixed{T: time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)}
		assert.Equal(t, "2024-06-01", Today())
	})

	t.Run("TruncatesToUTC", func(t *testing.T) {
		// 02:30 เวลาไทย = 19:30 UTC ของวันก่อนหน้า → วันที่ต้องเป็นวันก่อนหน้า
		bangkok := time.FixedZone("ICT", 7*60*60)
		Default = Fixed{T: time.Date(2024, 6, 2, 2, 30, 0, 0, bangkok)}
		assert.Equal(t, "2024-06-01", Today())
	})

	t.Run("RealClockTracksNow", func(t *testing.T) {
		Default = realClock{}
		assert.WithinDuration(t, time.Now(), Now(), time.Second)
	})
}
