package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/anosenkoalex/NewHorizonBuild/config"
	"github.com/anosenkoalex/NewHorizonBuild/internal/template"
	"github.com/anosenkoalex/NewHorizonBuild/models"

	"github.com/divan/num2words"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseDateFilter принимает дату в формате RFC3339 либо YYYY-MM-DD.
// Некорректное значение трактуется как отсутствие фильтра.
func parseDateFilter(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// ListDocumentsHandler возвращает документы с фильтрами по сделке, типу,
// клиенту, юниту и датам создания. Фильтры clientId/unitId идут через сделку.
func ListDocumentsHandler(c *gin.Context) {
	query := config.DB.Model(&models.Document{}).
		Preload("Deal").
		Preload("Deal.Unit").
		Preload("Deal.Client").
		Order("documents.created_at desc")

	if dealID := parseUintFilter(c.Query("dealId")); dealID != nil {
		query = query.Where("documents.deal_id = ?", *dealID)
	}
	if docType := c.Query("type"); docType != "" {
		query = query.Where("documents.type = ?", docType)
	}

	needsJoin := false
	if clientID := parseUintFilter(c.Query("clientId")); clientID != nil {
		query = query.Where("deals.client_id = ?", *clientID)
		needsJoin = true
	}
	if unitID := parseUintFilter(c.Query("unitId")); unitID != nil {
		query = query.Where("deals.unit_id = ?", *unitID)
		needsJoin = true
	}
	if needsJoin {
		query = query.Joins("JOIN deals ON deals.id = documents.deal_id")
	}

	if from := parseDateFilter(c.Query("from")); from != nil {
		query = query.Where("documents.created_at >= ?", *from)
	}
	if to := parseDateFilter(c.Query("to")); to != nil {
		query = query.Where("documents.created_at <= ?", *to)
	}

	var documents []models.Document
	if err := query.Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch documents"})
		return
	}
	c.JSON(http.StatusOK, documents)
}

// CreateDocumentInput — тело POST /documents. Документ может храниться
// как ссылкой на файл, так и текстом в content.
type CreateDocumentInput struct {
	DealID  uint   `json:"dealId" binding:"required"`
	Type    string `json:"type" binding:"required"`
	FileURL string `json:"fileUrl"`
	Content string `json:"content"`
}

func CreateDocumentHandler(c *gin.Context) {
	var input CreateDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var deal models.Deal
	if err := config.DB.First(&deal, input.DealID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}

	document := models.Document{
		DealID:  deal.ID,
		Type:    input.Type,
		FileURL: input.FileURL,
		Content: input.Content,
	}
	if err := config.DB.Create(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create document"})
		return
	}
	c.JSON(http.StatusCreated, document)
}

// GenerateFromTemplateInput — тело POST /documents/generate-from-template.
type GenerateFromTemplateInput struct {
	TemplateID uint `json:"templateId" binding:"required"`
	DealID     uint `json:"dealId" binding:"required"`
}

// templateContext — контекст подстановки плейсхолдеров шаблона.
type templateContext struct {
	Deal    *models.Deal   `json:"deal"`
	Unit    *models.Unit   `json:"unit"`
	Client  *models.Client `json:"client"`
	Manager *models.User   `json:"manager"`
	// Цена юнита прописью, как в бумажных договорах купли-продажи.
	PriceInWords string `json:"priceInWords"`
}

// priceInWords переводит цену в сумму прописью: "five тенге 25 тиын".
func priceInWords(price float64) string {
	tenge := int(price)
	tiyn := int(math.Round((price - float64(tenge)) * 100))
	return fmt.Sprintf("%s тенге %02d тиын", num2words.Convert(tenge), tiyn)
}

// GenerateDocumentHandler рендерит шаблон по данным сделки
// и сохраняет результат как новый документ.
func GenerateDocumentHandler(c *gin.Context) {
	var input GenerateFromTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tmpl models.DocumentTemplate
	if err := config.DB.First(&tmpl, input.TemplateID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	var deal models.Deal
	if err := config.DB.
		Preload("Unit").
		Preload("Client").
		Preload("Manager").
		First(&deal, input.DealID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}

	ctx := templateContext{
		Deal:    &deal,
		Unit:    deal.Unit,
		Client:  deal.Client,
		Manager: deal.Manager,
	}
	if deal.Unit != nil {
		ctx.PriceInWords = priceInWords(deal.Unit.Price)
	}
	content := template.Render(tmpl.Content, ctx)

	document := models.Document{
		DealID:  deal.ID,
		Type:    tmpl.Type,
		Number:  generateDocumentNumber(),
		Content: content,
	}
	if err := config.DB.Create(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create document"})
		return
	}
	c.JSON(http.StatusCreated, document)
}

// generateDocumentNumber выдаёт короткий номер вида DOC-9F3A2C11.
func generateDocumentNumber() string {
	id := uuid.New().String()
	return fmt.Sprintf("DOC-%s", strings.ToUpper(id[:8]))
}

// SignDocumentHandler подписывает документ от имени текущего пользователя.
// Повторная подпись — no-op: возвращаем документ как есть.
func SignDocumentHandler(c *gin.Context) {
	var document models.Document
	if err := config.DB.First(&document, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	if document.SignedAt != nil {
		c.JSON(http.StatusOK, document)
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Не удалось определить пользователя"})
		return
	}

	now := time.Now()
	document.SignedAt = &now
	document.SignedByUserID = &userID
	if err := config.DB.Save(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not sign document"})
		return
	}
	c.JSON(http.StatusOK, document)
}
