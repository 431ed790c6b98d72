// NewHorizonBuild/config/jwt.go
package config

import (
	"log/slog"
	"os"
)

// JwtKey — секрет для подписи HS256-токенов.
// В проде обязателен JWT_SECRET; dev-secret оставлен для локальной разработки.
var JwtKey = []byte("dev-secret")

func LoadJWTSecret() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Warn("Переменная окружения JWT_SECRET не установлена, используется dev-secret.")
		return
	}
	JwtKey = []byte(secret)
}
