package handlers

import (
	"net/http"
	"strconv"

	"github.com/anosenkoalex/NewHorizonBuild/config"
	"github.com/anosenkoalex/NewHorizonBuild/models"

	"github.com/gin-gonic/gin"
)

// parseFloatFilter возвращает nil для пустых и некорректных значений:
// кривой фильтр трактуем как "фильтра нет", а не как ошибку запроса.
func parseFloatFilter(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseUintFilter(raw string) *uint {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

// ListUnitsHandler возвращает юниты с фильтрами по статусу, типу, проекту,
// корпусу, цене и площади. Значения вне справочников игнорируются.
func ListUnitsHandler(c *gin.Context) {
	query := config.DB.Model(&models.Unit{}).Order("id asc")

	if status := c.Query("status"); models.IsValidUnitStatus(status) {
		query = query.Where("status = ?", status)
	}
	if unitType := c.Query("type"); models.IsValidUnitType(unitType) {
		query = query.Where("type = ?", unitType)
	}
	if projectID := parseUintFilter(c.Query("projectId")); projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	if buildingID := parseUintFilter(c.Query("buildingId")); buildingID != nil {
		query = query.Where("building_id = ?", *buildingID)
	}
	if minPrice := parseFloatFilter(c.Query("minPrice")); minPrice != nil {
		query = query.Where("price >= ?", *minPrice)
	}
	if maxPrice := parseFloatFilter(c.Query("maxPrice")); maxPrice != nil {
		query = query.Where("price <= ?", *maxPrice)
	}
	if minArea := parseFloatFilter(c.Query("minArea")); minArea != nil {
		query = query.Where("area >= ?", *minArea)
	}
	if maxArea := parseFloatFilter(c.Query("maxArea")); maxArea != nil {
		query = query.Where("area <= ?", *maxArea)
	}

	var units []models.Unit

	// Пагинация включается только явным параметром page;
	// без него отдаём полный список, как ждёт текущая админка.
	if c.Query("page") != "" {
		var totalRows int64
		query.Count(&totalRows)
		if err := query.Scopes(Paginate(c)).Find(&units).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch units"})
			return
		}
		c.JSON(http.StatusOK, CreatePaginatedResponse(c, units, totalRows))
		return
	}

	if err := query.Find(&units).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch units"})
		return
	}
	c.JSON(http.StatusOK, units)
}

// UpdateModelElementKeyInput — тело PATCH /units/:id/model-element-key.
// Пустая строка или null отвязывают юнит от 3D-сцены.
type UpdateModelElementKeyInput struct {
	ModelElementKey *string `json:"modelElementKey"`
}

func UpdateModelElementKeyHandler(c *gin.Context) {
	var unit models.Unit
	if err := config.DB.First(&unit, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		return
	}

	var input UpdateModelElementKeyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := input.ModelElementKey
	if key != nil && *key == "" {
		key = nil
	}

	if err := config.DB.Model(&unit).Update("model_element_key", key).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update unit"})
		return
	}

	unit.ModelElementKey = key
	c.JSON(http.StatusOK, unit)
}

// UpdatePlanImageURLInput — тело PATCH /units/:id/plan-image-url.
type UpdatePlanImageURLInput struct {
	PlanImageURL *string `json:"planImageUrl"`
}

func UpdatePlanImageURLHandler(c *gin.Context) {
	var unit models.Unit
	if err := config.DB.First(&unit, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		return
	}

	var input UpdatePlanImageURLInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url := input.PlanImageURL
	if url != nil && *url == "" {
		url = nil
	}

	if err := config.DB.Model(&unit).Update("plan_image_url", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update unit"})
		return
	}

	unit.PlanImageURL = url
	c.JSON(http.StatusOK, unit)
}
