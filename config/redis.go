// NewHorizonBuild/config/redis.go
package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client
var Ctx = context.Background()

// ConnectRedis поднимает клиент Redis для кэша пользовательских данных.
// Redis необязателен: без REDIS_ADDR приложение работает, просто без кэша.
func ConnectRedis() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		slog.Warn("REDIS_ADDR не задан — работаем без кэша пользователей")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		slog.Error("Redis недоступен, кэш отключён", "addr", redisAddr, "error", err)
		RDB = nil
		return
	}

	slog.Info("Redis подключен", "addr", redisAddr)
}
