package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/anosenkoalex/NewHorizonBuild/config"
	"github.com/anosenkoalex/NewHorizonBuild/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportSalesReportHandler — GET /reports/sales/export?from&to.
// Выгружает тот же отчёт, что и SalesReportHandler, но файлом Excel:
// по строке на менеджера плюс строка "Итого".
func ExportSalesReportHandler(c *gin.Context) {
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data for export"})
		return
	}

	report := AggregateSales(deals)

	f := excelize.NewFile()
	sheetName := "Отчёт по продажам"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)

	headers := []string{"Менеджер", "Сделок", "Выручка"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, m := range report.Managers {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), m.FullName)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), m.Count)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), m.Revenue)
	}

	totalRow := len(report.Managers) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalRow), "Итого")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", totalRow), report.TotalDeals)
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", totalRow), report.TotalRevenue)

	fileName := fmt.Sprintf("sales_report_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
