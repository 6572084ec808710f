package clock

import "time"

// Clock ใช้แทน time.Now ตรง ๆ เพื่อให้ test กำหนดวันที่เองได้
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Fixed นาฬิกาค่าคงที่ สำหรับ test
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

// Default คือนาฬิกาที่ service ทุกตัวใช้ (test สลับเป็น Fixed ได้)
var Default Clock = realClock{}

func Now() time.Time { return Default.Now() }

// Today วันที่ปัจจุบันแบบ YYYY-MM-DD (truncate เป็น UTC เหมือน toISOString เดิม)
func Today() string {
	return Now().UTC().Format("2006-01-02")
}
