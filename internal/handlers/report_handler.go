package handlers

import (
	"net/http"

	"github.com/anosenkoalex/NewHorizonBuild/config"
	"github.com/anosenkoalex/NewHorizonBuild/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SalesReportHandler — GET /reports/sales?from&to.
// Берёт завершённые сделки в диапазоне дат (включительно с обеих сторон)
// и агрегирует их одним проходом. Кривые даты игнорируются как фильтр.
func SalesReportHandler(c *gin.Context) {
	query := config.DB.Model(&models.Deal{}).
		Preload("Unit").
		Preload("Manager").
		Where("status = ?", models.DealStatusCompleted)

	if from := parseDateFilter(c.Query("from")); from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to := parseDateFilter(c.Query("to")); to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	var deals []models.Deal
	if err := query.Find(&deals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch deals"})
		return
	}

	c.JSON(http.StatusOK, AggregateSales(deals))
}

// DashboardHandler — GET /reports/dashboard.
// Оба скана (юниты и завершённые сделки) идут в одной read-транзакции,
// чтобы счётчики отражали один и тот же момент времени.
func DashboardHandler(c *gin.Context) {
	var summary DashboardSummary

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var units []models.Unit
		if err := tx.Find(&units).Error; err != nil {
			return err
		}
		summary.TotalUnits = int64(len(units))
		summary.UnitsByStatus = CountUnitsByStatus(units)

		var deals []models.Deal
		if err := tx.
			Preload("Unit").
			Where("status = ?", models.DealStatusCompleted).
			Find(&deals).Error; err != nil {
			return err
		}
		summary.TotalDeals = int64(len(deals))
		for _, deal := range deals {
			if deal.Unit != nil {
				summary.TotalRevenue += deal.Unit.Price
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
