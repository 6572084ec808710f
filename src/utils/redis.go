package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-IDCard/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// อายุ cache ของสถิติรายวัน สั้นพอที่ mark-attendance จะสะท้อนผลเร็ว
const dailyStatsTTL = 30 * time.Second

// ensureClient returns the shared Redis client managed by the database package.
// If the database package didn't initialize Redis, this will return nil and
// callers should handle that case (they already do).
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// SetDailyStatsCache เก็บผลสถิติรายวัน (JSON) ลง Redis
// ถ้าไม่มี Redis (dev mode) - ข้าม
func SetDailyStatsCache(key string, payload []byte) {
	client := ensureClient()
	if client == nil {
		return
	}
	if err := client.Set(Ctx, key, payload, dailyStatsTTL).Err(); err != nil {
		fmt.Println("failed to cache daily stats:", err)
	}
}

// GetDailyStatsCache อ่านผลสถิติรายวันจาก Redis
// คืน false ทั้งตอน cache miss และตอนไม่มี Redis
func GetDailyStatsCache(key string) ([]byte, bool) {
	client := ensureClient()
	if client == nil {
		return nil, false
	}
	payload, err := client.Get(Ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			fmt.Println("failed to read daily stats cache:", err)
		}
		return nil, false
	}
	return payload, true
}

// InvalidateDailyStatsCache ลบ cache ของวันที่กำหนดทุก filter (ใช้หลัง mark-attendance)
func InvalidateDailyStatsCache(date string) {
	client := ensureClient()
	if client == nil {
		return
	}
	iter := client.Scan(Ctx, 0, fmt.Sprintf("daily_stats:%s:*", date), 0).Iterator()
	for iter.Next(Ctx) {
		if err := client.Del(Ctx, iter.Val()).Err(); err != nil {
			fmt.Println("failed to invalidate daily stats cache:", err)
		}
	}
}
