// NewHorizonBuild/config/database.go

package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB открывает соединение с Postgres по строке из DB_URL.
// База обязательна, поэтому любая ошибка здесь фатальна.
func ConnectDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		slog.Error("DB_URL не задан — без базы запускаться нечем")
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("Не удалось открыть соединение с Postgres", "error", err)
		os.Exit(1)
	}

	DB = db
	slog.Info("База данных подключена")
}
