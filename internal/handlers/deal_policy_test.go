package handlers

import (
	"testing"

	"github.com/anosenkoalex/NewHorizonBuild/models"

	"github.com/stretchr/testify/assert"
)

func TestSelectDefaultManager(t *testing.T) {
	admin := models.User{ID: 1, Role: models.RoleAdmin, FullName: "Админ"}
	manager := models.User{ID: 2, Role: models.RoleManager, FullName: "Менеджер"}
	second := models.User{ID: 3, Role: models.RoleManager, FullName: "Второй менеджер"}

	t.Run("менеджер имеет приоритет над админом", func(t *testing.T) {
		got := SelectDefaultManager([]models.User{admin, manager, second})
		assert.NotNil(t, got)
		assert.Equal(t, manager.ID, got.ID)
	})

	t.Run("без менеджеров берётся админ", func(t *testing.T) {
		got := SelectDefaultManager([]models.User{admin})
		assert.NotNil(t, got)
		assert.Equal(t, admin.ID, got.ID)
	})

	t.Run("остальные роли не подходят", func(t *testing.T) {
		got := SelectDefaultManager([]models.User{
			{ID: 4, Role: models.RoleLegal},
			{ID: 5, Role: models.RoleViewer},
		})
		assert.Nil(t, got)
	})

	t.Run("пустой список", func(t *testing.T) {
		assert.Nil(t, SelectDefaultManager(nil))
	})
}

func TestUnitStatusForDealType(t *testing.T) {
	assert.Equal(t, models.UnitStatusSold, UnitStatusForDealType(models.DealTypeSale))
	assert.Equal(t, models.UnitStatusSold, UnitStatusForDealType(models.DealTypeEquity))
	assert.Equal(t, models.UnitStatusInstallment, UnitStatusForDealType(models.DealTypeInstallment))

	// Типы вне справочника не трогают статус юнита
	assert.Equal(t, "", UnitStatusForDealType("DRAFT_ONLY"))
	assert.Equal(t, "", UnitStatusForDealType(""))
}
