// Package seed наполняет базу демонстрационными данными:
// проект «NewHorizon», корпус с двумя этажами, пять юнитов,
// два клиента, админ, менеджер и пара завершённых сделок.
package seed

import (
	"log/slog"

	"github.com/anosenkoalex/NewHorizonBuild/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// Run заполняет базу демоданными. Повторный запуск пропускается,
// если в базе уже есть хотя бы один проект.
func Run(db *gorm.DB) error {
	var projectCount int64
	if err := db.Model(&models.Project{}).Count(&projectCount).Error; err != nil {
		return err
	}
	if projectCount > 0 {
		slog.Info("База уже содержит данные, сидирование пропущено.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		project := models.Project{
			Name:        "Demo ЖК NewHorizon",
			Description: "Демонстрационный проект с предзаполненными данными",
			Address:     "г. Алматы, проспект Демоданных, 1",
		}
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		building := models.Building{
			ProjectID:      project.ID,
			Label:          "Корпус 1",
			NumberOfFloors: 2,
		}
		if err := tx.Create(&building).Error; err != nil {
			return err
		}

		floor1 := models.Floor{BuildingID: building.ID, Number: 1}
		floor2 := models.Floor{BuildingID: building.ID, Number: 2}
		if err := tx.Create(&floor1).Error; err != nil {
			return err
		}
		if err := tx.Create(&floor2).Error; err != nil {
			return err
		}

		units := []models.Unit{
			{Type: models.UnitTypeApartment, Status: models.UnitStatusFree, ProjectID: project.ID, BuildingID: building.ID, FloorID: ptr(floor1.ID), Number: "1A", Area: 45.5, Rooms: 2, Price: 9500000},
			{Type: models.UnitTypeApartment, Status: models.UnitStatusReserved, ProjectID: project.ID, BuildingID: building.ID, FloorID: ptr(floor1.ID), Number: "1B", Area: 52.3, Rooms: 3, Price: 11300000},
			{Type: models.UnitTypeApartment, Status: models.UnitStatusSold, ProjectID: project.ID, BuildingID: building.ID, FloorID: ptr(floor2.ID), Number: "2A", Area: 61.7, Rooms: 3, Price: 14650000},
			{Type: models.UnitTypeCommercial, Status: models.UnitStatusFree, ProjectID: project.ID, BuildingID: building.ID, FloorID: ptr(floor1.ID), Number: "C1", Area: 80.2, Price: 23800000},
			{Type: models.UnitTypeCommercial, Status: models.UnitStatusSold, ProjectID: project.ID, BuildingID: building.ID, FloorID: ptr(floor2.ID), Number: "C2", Area: 92.5, Price: 26500000},
		}
		if err := tx.Create(&units).Error; err != nil {
			return err
		}

		clientAnna := models.Client{
			FullName: "Анна Смирнова",
			Phone:    "+7 777 000 11 22",
			Email:    ptr("anna@example.com"),
		}
		clientBauyrzhan := models.Client{
			FullName: "Бауыржан Тлеуханов",
			Phone:    "+7 708 333 44 55",
			Email:    ptr("bauyrzhan@example.com"),
		}
		if err := tx.Create(&clientAnna).Error; err != nil {
			return err
		}
		if err := tx.Create(&clientBauyrzhan).Error; err != nil {
			return err
		}

		adminUser := models.User{
			Email:        "admin@newhorizon.kz",
			FullName:     "Администратор Системы",
			Role:         models.RoleAdmin,
			PasswordHash: mustHash("admin123"),
		}
		managerUser := models.User{
			Email:        "manager@newhorizon.kz",
			FullName:     "Мария Менеджер",
			Role:         models.RoleManager,
			PasswordHash: mustHash("manager123"),
		}
		if err := tx.Create(&adminUser).Error; err != nil {
			return err
		}
		if err := tx.Create(&managerUser).Error; err != nil {
			return err
		}

		deals := []models.Deal{
			{UnitID: units[2].ID, ClientID: clientAnna.ID, ManagerID: managerUser.ID, Type: models.DealTypeSale, Status: models.DealStatusCompleted},
			{UnitID: units[4].ID, ClientID: clientBauyrzhan.ID, ManagerID: managerUser.ID, Type: models.DealTypeSale, Status: models.DealStatusCompleted},
		}
		if err := tx.Create(&deals).Error; err != nil {
			return err
		}

		tmpl := models.DocumentTemplate{
			Name:    "Договор купли-продажи",
			Type:    "CONTRACT",
			Content: "Договор по юниту {{unit.number}}. Покупатель: {{client.fullName}}, тел. {{client.phone}}. Менеджер: {{manager.fullName}}. Цена: {{unit.price}} тг.",
		}
		if err := tx.Create(&tmpl).Error; err != nil {
			return err
		}

		slog.Info("Демоданные успешно загружены.",
			"units", len(units), "deals", len(deals))
		return nil
	})
}
