package handlers

import (
	"net/http"

	"github.com/anosenkoalex/NewHorizonBuild/config"
	"github.com/anosenkoalex/NewHorizonBuild/models"

	"github.com/gin-gonic/gin"
)

// ListDocumentTemplatesHandler возвращает список шаблонов документов.
func ListDocumentTemplatesHandler(c *gin.Context) {
	var templates []models.DocumentTemplate
	if err := config.DB.Order("created_at desc").Find(&templates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch templates"})
		return
	}
	c.JSON(http.StatusOK, templates)
}

// CreateDocumentTemplateInput — тело POST /document-templates.
type CreateDocumentTemplateInput struct {
	Name    string `json:"name" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateDocumentTemplateHandler создает новый шаблон документа.
func CreateDocumentTemplateHandler(c *gin.Context) {
	var input CreateDocumentTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tmpl := models.DocumentTemplate{
		Name:    input.Name,
		Type:    input.Type,
		Content: input.Content,
	}
	if err := config.DB.Create(&tmpl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template in DB"})
		return
	}
	c.JSON(http.StatusCreated, tmpl)
}
