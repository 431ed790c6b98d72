package handlers

import "github.com/anosenkoalex/NewHorizonBuild/models"

// SelectDefaultManager выбирает менеджера для новой сделки:
// первый пользователь с ролью MANAGER, иначе первый ADMIN, иначе nil.
// Вынесено в чистую функцию, чтобы политику можно было тестировать без БД.
func SelectDefaultManager(users []models.User) *models.User {
	for i := range users {
		if users[i].Role == models.RoleManager {
			return &users[i]
		}
	}
	for i := range users {
		if users[i].Role == models.RoleAdmin {
			return &users[i]
		}
	}
	return nil
}

// UnitStatusForDealType возвращает новый статус юнита для типа сделки.
// Пустая строка означает "статус не меняется" — типы вне справочника
// нарочно не трогают юнит (черновые сделки и т.п.).
func UnitStatusForDealType(dealType string) string {
	switch dealType {
	case models.DealTypeSale, models.DealTypeEquity:
		return models.UnitStatusSold
	case models.DealTypeInstallment:
		return models.UnitStatusInstallment
	default:
		return ""
	}
}
