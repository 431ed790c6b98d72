package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/anosenkoalex/NewHorizonBuild/config"
	"github.com/anosenkoalex/NewHorizonBuild/internal/routes"
	"github.com/anosenkoalex/NewHorizonBuild/internal/seed"
	"github.com/anosenkoalex/NewHorizonBuild/models"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use:   "newhorizon",
		Short: "NewHorizonBuild CRM backend",
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func autoMigrate() error {
	return config.DB.AutoMigrate(
		&models.Project{},
		&models.Building{},
		&models.Floor{},
		&models.Unit{},
		&models.Client{},
		&models.User{},
		&models.Deal{},
		&models.Document{},
		&models.DocumentTemplate{},
	)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP-сервер",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadJWTSecret()
		config.ConnectDB()
		config.ConnectRedis()

		if err := autoMigrate(); err != nil {
			return fmt.Errorf("миграция схемы не удалась: %w", err)
		}

		r := gin.Default()
		routes.SetupRoutes(r)

		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		slog.Info("Сервер запускается", "port", port)
		return r.Run(":" + port)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применить схему БД (AutoMigrate)",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.ConnectDB()
		if err := autoMigrate(); err != nil {
			return err
		}
		slog.Info("Схема БД актуальна.")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Заполнить базу демоданными",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.ConnectDB()
		if err := autoMigrate(); err != nil {
			return err
		}
		return seed.Run(config.DB)
	},
}
