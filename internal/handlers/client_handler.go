package handlers

import (
	"net/http"

	"github.com/anosenkoalex/NewHorizonBuild/config"
	"github.com/anosenkoalex/NewHorizonBuild/models"

	"github.com/gin-gonic/gin"
)

// ListClientsHandler возвращает клиентов со сделками, свежие сверху.
func ListClientsHandler(c *gin.Context) {
	var clients []models.Client
	if err := config.DB.
		Preload("Deals").
		Order("created_at desc").
		Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch clients"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClientHandler возвращает одного клиента по id.
func GetClientHandler(c *gin.Context) {
	var client models.Client
	if err := config.DB.
		Preload("Deals").
		First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClientInput — тело POST /clients.
type CreateClientInput struct {
	FullName string  `json:"fullName" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Email    *string `json:"email"`
}

func CreateClientHandler(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := models.Client{
		FullName: input.FullName,
		Phone:    input.Phone,
		Email:    input.Email,
	}
	if err := config.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create client"})
		return
	}
	c.JSON(http.StatusCreated, client)
}
