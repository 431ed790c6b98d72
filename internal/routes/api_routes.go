// internal/routes/api_routes.go
package routes

import (
	"github.com/anosenkoalex/NewHorizonBuild/internal/handlers"
	"github.com/anosenkoalex/NewHorizonBuild/internal/middleware"
	"github.com/anosenkoalex/NewHorizonBuild/models"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все маршруты API, требующие аутентификации.
// Ручки без RequireRoles открыты любому пользователю с валидным токеном.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	// --- ЮНИТЫ ---
	units := api.Group("/units")
	{
		units.GET("", handlers.ListUnitsHandler)
		units.PATCH("/:id/model-element-key",
			middleware.RequireRoles(models.RoleAdmin, models.RoleManager, models.RoleSalesHead),
			handlers.UpdateModelElementKeyHandler)
		units.PATCH("/:id/plan-image-url",
			middleware.RequireRoles(models.RoleAdmin, models.RoleManager, models.RoleSalesHead),
			handlers.UpdatePlanImageURLHandler)
	}

	// --- СДЕЛКИ ---
	deals := api.Group("/deals")
	{
		deals.GET("", handlers.ListDealsHandler)
		deals.POST("", handlers.CreateDealHandler)
	}

	// --- КЛИЕНТЫ ---
	clients := api.Group("/clients")
	{
		clients.GET("", handlers.ListClientsHandler)
		clients.GET("/:id", handlers.GetClientHandler)
		clients.POST("", handlers.CreateClientHandler)
	}

	// --- ДОКУМЕНТЫ ---
	documents := api.Group("/documents")
	{
		documents.GET("",
			middleware.RequireRoles(models.RoleAdmin, models.RoleSalesHead, models.RoleLegal),
			handlers.ListDocumentsHandler)
		documents.POST("",
			middleware.RequireRoles(models.RoleAdmin, models.RoleLegal),
			handlers.CreateDocumentHandler)
		documents.POST("/generate-from-template",
			middleware.RequireRoles(models.RoleAdmin, models.RoleLegal),
			handlers.GenerateDocumentHandler)
		documents.PATCH("/:id/sign",
			middleware.RequireRoles(models.RoleAdmin, models.RoleSalesHead, models.RoleLegal),
			handlers.SignDocumentHandler)
	}

	// --- ШАБЛОНЫ ДОКУМЕНТОВ ---
	templates := api.Group("/document-templates")
	templates.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleLegal))
	{
		templates.GET("", handlers.ListDocumentTemplatesHandler)
		templates.POST("", handlers.CreateDocumentTemplateHandler)
	}

	// --- ПРОЕКТЫ ---
	projects := api.Group("/projects")
	{
		projects.GET("", handlers.ListProjectsHandler)
		projects.GET("/:id", handlers.GetProjectHandler)
		projects.GET("/:id/viewer", handlers.GetProjectViewerHandler)
		projects.PATCH("/:id/3d",
			middleware.RequireRoles(models.RoleAdmin),
			handlers.UpdateProject3DHandler)
	}

	// --- ПОЛЬЗОВАТЕЛИ ---
	users := api.Group("/users")
	{
		users.GET("",
			middleware.RequireRoles(models.RoleAdmin, models.RoleSalesHead),
			handlers.ListUsersHandler)
		users.POST("",
			middleware.RequireRoles(models.RoleAdmin),
			handlers.CreateUserHandler)
		users.PATCH("/:id/role",
			middleware.RequireRoles(models.RoleAdmin, models.RoleSalesHead),
			handlers.UpdateUserRoleHandler)
	}
}
