package routes

import (
	"github.com/anosenkoalex/NewHorizonBuild/internal/handlers"
	"github.com/anosenkoalex/NewHorizonBuild/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes инициализирует все маршруты приложения.
func SetupRoutes(r *gin.Engine) {
	// --- Публичные маршруты ---
	// Логин и отчёты не требуют токена: отчёты сознательно открыты,
	// чтобы Dashboard и вкладка «Отчёты» работали без авторизации.
	r.POST("/auth/login", handlers.LoginHandler)

	reports := r.Group("/reports")
	{
		reports.GET("/sales", handlers.SalesReportHandler)
		reports.GET("/sales/export", handlers.ExportSalesReportHandler)
		reports.GET("/dashboard", handlers.DashboardHandler)
	}

	// --- Защищённая группа маршрутов ---
	// Всё остальное доступно только с валидным JWT.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}
