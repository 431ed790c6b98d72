package handlers

import (
	"net/http"

	"github.com/anosenkoalex/NewHorizonBuild/config"
	"github.com/anosenkoalex/NewHorizonBuild/models"

	"github.com/gin-gonic/gin"
)

// ListProjectsHandler возвращает проекты с корпусами.
func ListProjectsHandler(c *gin.Context) {
	var projects []models.Project
	if err := config.DB.
		Preload("Buildings").
		Order("id asc").
		Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProjectHandler возвращает один проект с корпусами и этажами.
func GetProjectHandler(c *gin.Context) {
	var project models.Project
	if err := config.DB.
		Preload("Buildings").
		Preload("Buildings.Floors").
		First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProject3DInput — тело PATCH /projects/:id/3d.
// Пустые строки очищают соответствующее поле.
type UpdateProject3DInput struct {
	Model3DURL      *string `json:"model3dUrl"`
	Model3DFormat   *string `json:"model3dFormat"`
	PreviewImageURL *string `json:"previewImageUrl"`
}

func UpdateProject3DHandler(c *gin.Context) {
	var project models.Project
	if err := config.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var input UpdateProject3DInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Model3DURL != nil {
		updates["model_3d_url"] = nilIfEmpty(input.Model3DURL)
	}
	if input.Model3DFormat != nil {
		updates["model_3d_format"] = nilIfEmpty(input.Model3DFormat)
	}
	if input.PreviewImageURL != nil {
		updates["preview_image_url"] = nilIfEmpty(input.PreviewImageURL)
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&project).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update project"})
			return
		}
	}

	if err := config.DB.First(&project, project.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch project"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func nilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// UnitStatusColors — палитра статусов для 3D-вьюера.
// Вьюер красит меши сцены этими цветами по elementKey.
var UnitStatusColors = map[string]string{
	models.UnitStatusFree:        "#4caf50",
	models.UnitStatusReserved:    "#ff9800",
	models.UnitStatusSold:        "#f44336",
	models.UnitStatusInstallment: "#2196f3",
	models.UnitStatusEquity:      "#9c27b0",
}

// ViewerBinding — привязка юнита к узлу 3D-сцены.
type ViewerBinding struct {
	ElementKey string `json:"elementKey"`
	UnitID     uint   `json:"unitId"`
	Number     string `json:"number"`
	Status     string `json:"status"`
	Color      string `json:"color"`
}

// BuildViewerBindings сопоставляет юниты проекта узлам сцены по modelElementKey.
// Юниты без привязки пропускаются.
func BuildViewerBindings(units []models.Unit) []ViewerBinding {
	bindings := make([]ViewerBinding, 0, len(units))
	for _, unit := range units {
		if unit.ModelElementKey == nil || *unit.ModelElementKey == "" {
			continue
		}
		bindings = append(bindings, ViewerBinding{
			ElementKey: *unit.ModelElementKey,
			UnitID:     unit.ID,
			Number:     unit.Number,
			Status:     unit.Status,
			Color:      UnitStatusColors[unit.Status],
		})
	}
	return bindings
}

// GetProjectViewerHandler отдаёт данные для страницы 3D-вьюера:
// метаданные модели и привязки юнитов с цветами статусов.
func GetProjectViewerHandler(c *gin.Context) {
	var project models.Project
	if err := config.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var units []models.Unit
	if err := config.DB.
		Where("project_id = ?", project.ID).
		Order("id asc").
		Find(&units).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch units"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project":  project,
		"bindings": BuildViewerBindings(units),
		"colors":   UnitStatusColors,
	})
}
