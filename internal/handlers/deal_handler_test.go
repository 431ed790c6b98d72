package handlers

import (
	"net/http"
	"testing"

	"github.com/anosenkoalex/NewHorizonBuild/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func dealTestRouter() *gin.Engine {
	r := newTestRouter()
	r.POST("/deals", CreateDealHandler)
	r.GET("/deals", ListDealsHandler)
	return r
}

func seedManager(t *testing.T, db *gorm.DB) *models.User {
	return mustCreate(t, db, &models.User{
		Email:    "manager@test.kz",
		FullName: "Мария Менеджер",
		Role:     models.RoleManager,
	})
}

func seedFreeUnit(t *testing.T, db *gorm.DB, price float64) *models.Unit {
	project := mustCreate(t, db, &models.Project{Name: "ЖК Тест"})
	building := mustCreate(t, db, &models.Building{ProjectID: project.ID, Label: "Корпус 1"})
	return mustCreate(t, db, &models.Unit{
		Type:       models.UnitTypeApartment,
		Status:     models.UnitStatusFree,
		ProjectID:  project.ID,
		BuildingID: building.ID,
		Number:     "1A",
		Area:       45.5,
		Rooms:      2,
		Price:      price,
	})
}

func TestCreateDeal_SaleMarksUnitSold(t *testing.T) {
	db := setupTestDB(t)
	seedManager(t, db)
	unit := seedFreeUnit(t, db, 9500000)

	w := performJSON(t, dealTestRouter(), http.MethodPost, "/deals", gin.H{
		"unitId":         unit.ID,
		"clientFullName": "Анна Смирнова",
		"clientPhone":    "+7 777 000 11 22",
		"type":           models.DealTypeSale,
		"status":         models.DealStatusCompleted,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	deal := decodeBody[models.Deal](t, w)
	assert.Equal(t, unit.ID, deal.UnitID)
	require.NotNil(t, deal.Unit)
	assert.Equal(t, models.UnitStatusSold, deal.Unit.Status)
	require.NotNil(t, deal.Client)
	assert.Equal(t, "Анна Смирнова", deal.Client.FullName)
	require.NotNil(t, deal.Manager)

	var stored models.Unit
	require.NoError(t, db.First(&stored, unit.ID).Error)
	assert.Equal(t, models.UnitStatusSold, stored.Status)
}

func TestCreateDeal_StatusByType(t *testing.T) {
	cases := []struct {
		dealType   string
		wantStatus string
	}{
		{models.DealTypeSale, models.UnitStatusSold},
		{models.DealTypeEquity, models.UnitStatusSold},
		{models.DealTypeInstallment, models.UnitStatusInstallment},
		{"SOMETHING_ELSE", models.UnitStatusFree}, // статус не меняется
	}

	for _, tc := range cases {
		t.Run(tc.dealType, func(t *testing.T) {
			db := setupTestDB(t)
			seedManager(t, db)
			unit := seedFreeUnit(t, db, 1000000)

			w := performJSON(t, dealTestRouter(), http.MethodPost, "/deals", gin.H{
				"unitId":         unit.ID,
				"clientFullName": "Клиент",
				"clientPhone":    "+7 700 000 00 00",
				"type":           tc.dealType,
				"status":         models.DealStatusActive,
			})
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

			var stored models.Unit
			require.NoError(t, db.First(&stored, unit.ID).Error)
			assert.Equal(t, tc.wantStatus, stored.Status)
		})
	}
}

func TestCreateDeal_ClientDedupByPhone(t *testing.T) {
	db := setupTestDB(t)
	seedManager(t, db)
	unit := seedFreeUnit(t, db, 1000000)
	existing := mustCreate(t, db, &models.Client{
		FullName: "Старое Имя",
		Phone:    "+7 777 000 11 22",
	})

	w := performJSON(t, dealTestRouter(), http.MethodPost, "/deals", gin.H{
		"unitId":         unit.ID,
		"clientFullName": "Новое Имя",
		"clientPhone":    "+7 777 000 11 22",
		"type":           models.DealTypeSale,
		"status":         models.DealStatusCompleted,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	deal := decodeBody[models.Deal](t, w)
	// Сделка ссылается на существующего клиента, имя обновлено (last-write-wins)
	assert.Equal(t, existing.ID, deal.ClientID)

	var stored models.Client
	require.NoError(t, db.First(&stored, existing.ID).Error)
	assert.Equal(t, "Новое Имя", stored.FullName)

	var clientCount int64
	require.NoError(t, db.Model(&models.Client{}).Count(&clientCount).Error)
	assert.Equal(t, int64(1), clientCount)
}

func TestCreateDeal_NewPhoneCreatesClient(t *testing.T) {
	db := setupTestDB(t)
	seedManager(t, db)
	unit := seedFreeUnit(t, db, 1000000)

	w := performJSON(t, dealTestRouter(), http.MethodPost, "/deals", gin.H{
		"unitId":         unit.ID,
		"clientFullName": "Бауыржан Тлеуханов",
		"clientPhone":    "+7 708 333 44 55",
		"type":           models.DealTypeInstallment,
		"status":         models.DealStatusActive,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var stored models.Client
	require.NoError(t, db.Where("phone = ?", "+7 708 333 44 55").First(&stored).Error)
	assert.Equal(t, "Бауыржан Тлеуханов", stored.FullName)
}

func TestCreateDeal_UnitNotFound(t *testing.T) {
	db := setupTestDB(t)
	seedManager(t, db)

	w := performJSON(t, dealTestRouter(), http.MethodPost, "/deals", gin.H{
		"unitId":         9999,
		"clientFullName": "Клиент",
		"clientPhone":    "+7 700 111 22 33",
		"type":           models.DealTypeSale,
		"status":         models.DealStatusCompleted,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Никаких записей не появилось
	var dealCount, clientCount int64
	require.NoError(t, db.Model(&models.Deal{}).Count(&dealCount).Error)
	require.NoError(t, db.Model(&models.Client{}).Count(&clientCount).Error)
	assert.Zero(t, dealCount)
	assert.Zero(t, clientCount)
}

func TestCreateDeal_NoEligibleManager(t *testing.T) {
	db := setupTestDB(t)
	unit := seedFreeUnit(t, db, 1000000)
	// Только юрист — ни MANAGER, ни ADMIN
	mustCreate(t, db, &models.User{Email: "legal@test.kz", Role: models.RoleLegal})

	w := performJSON(t, dealTestRouter(), http.MethodPost, "/deals", gin.H{
		"unitId":         unit.ID,
		"clientFullName": "Клиент",
		"clientPhone":    "+7 700 111 22 33",
		"type":           models.DealTypeSale,
		"status":         models.DealStatusCompleted,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var dealCount int64
	require.NoError(t, db.Model(&models.Deal{}).Count(&dealCount).Error)
	assert.Zero(t, dealCount)
}

func TestCreateDeal_AdminFallback(t *testing.T) {
	db := setupTestDB(t)
	admin := mustCreate(t, db, &models.User{Email: "admin@test.kz", Role: models.RoleAdmin})
	unit := seedFreeUnit(t, db, 1000000)

	w := performJSON(t, dealTestRouter(), http.MethodPost, "/deals", gin.H{
		"unitId":         unit.ID,
		"clientFullName": "Клиент",
		"clientPhone":    "+7 700 111 22 33",
		"type":           models.DealTypeSale,
		"status":         models.DealStatusCompleted,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	deal := decodeBody[models.Deal](t, w)
	assert.Equal(t, admin.ID, deal.ManagerID)
}

func TestListDeals(t *testing.T) {
	db := setupTestDB(t)
	manager := seedManager(t, db)
	unit := seedFreeUnit(t, db, 1000000)
	client := mustCreate(t, db, &models.Client{FullName: "Клиент", Phone: "+7 700 1"})
	mustCreate(t, db, &models.Deal{
		UnitID: unit.ID, ClientID: client.ID, ManagerID: manager.ID,
		Type: models.DealTypeSale, Status: models.DealStatusCompleted,
	})

	w := performJSON(t, dealTestRouter(), http.MethodGet, "/deals", nil)
	require.Equal(t, http.StatusOK, w.Code)

	deals := decodeBody[[]models.Deal](t, w)
	require.Len(t, deals, 1)
	assert.NotNil(t, deals[0].Unit)
	assert.NotNil(t, deals[0].Client)
	assert.NotNil(t, deals[0].Manager)
}
