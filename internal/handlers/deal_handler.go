package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/anosenkoalex/NewHorizonBuild/config"
	"github.com/anosenkoalex/NewHorizonBuild/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListDealsHandler возвращает сделки для таблицы, свежие сверху.
func ListDealsHandler(c *gin.Context) {
	var deals []models.Deal
	if err := config.DB.
		Preload("Unit").
		Preload("Client").
		Preload("Manager").
		Order("created_at desc").
		Find(&deals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch deals"})
		return
	}
	c.JSON(http.StatusOK, deals)
}

// CreateDealInput — тело POST /deals. Клиент ищется/создаётся по телефону.
type CreateDealInput struct {
	UnitID         uint   `json:"unitId" binding:"required"`
	ClientFullName string `json:"clientFullName" binding:"required"`
	ClientPhone    string `json:"clientPhone" binding:"required"`
	Type           string `json:"type" binding:"required"`
	Status         string `json:"status" binding:"required"`
}

// CreateDealHandler создаёт сделку и, в той же транзакции,
// переводит юнит в новый статус в зависимости от типа сделки.
func CreateDealHandler(c *gin.Context) {
	var input CreateDealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 1. Проверяем юнит
	var unit models.Unit
	if err := config.DB.First(&unit, input.UnitID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		return
	}

	// 2. Ищем клиента по телефону; при расхождении имени — обновляем (last-write-wins)
	var client models.Client
	err := config.DB.Where("phone = ?", input.ClientPhone).First(&client).Error
	switch {
	case err == nil:
		if client.FullName != input.ClientFullName {
			client.FullName = input.ClientFullName
			if err := config.DB.Save(&client).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update client"})
				return
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		client = models.Client{
			FullName: input.ClientFullName,
			Phone:    input.ClientPhone,
		}
		if err := config.DB.Create(&client).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create client"})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch client"})
		return
	}

	// 3. Берём менеджера: сначала MANAGER, если нет — ADMIN
	var candidates []models.User
	if err := config.DB.
		Where("role IN ?", []string{models.RoleManager, models.RoleAdmin}).
		Order("id asc").
		Find(&candidates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch users"})
		return
	}
	manager := SelectDefaultManager(candidates)
	if manager == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Manager user not found (no MANAGER/ADMIN user in DB)"})
		return
	}

	// 4. Новый статус юнита в зависимости от типа сделки
	newUnitStatus := UnitStatusForDealType(input.Type)

	// 5. Транзакция: создаём сделку + обновляем статус юнита
	deal := models.Deal{
		UnitID:    unit.ID,
		ClientID:  client.ID,
		ManagerID: manager.ID,
		Type:      input.Type,
		Status:    input.Status,
	}
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&deal).Error; err != nil {
			return err
		}
		if newUnitStatus != "" {
			if err := tx.Model(&models.Unit{}).
				Where("id = ?", unit.ID).
				Update("status", newUnitStatus).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("Не удалось создать сделку", "error", err, "unit_id", unit.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create deal: " + err.Error()})
		return
	}

	// 6. Отдаём сделку со связями
	if err := config.DB.
		Preload("Unit").
		Preload("Client").
		Preload("Manager").
		First(&deal, deal.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch created deal"})
		return
	}
	c.JSON(http.StatusCreated, deal)
}
