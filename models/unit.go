package models

import "time"

// Типы юнитов.
const (
	UnitTypeApartment  = "APARTMENT"
	UnitTypeCommercial = "COMMERCIAL"
	UnitTypeParking    = "PARKING"
)

// Статусы юнитов. Статус меняется только при создании сделки.
const (
	UnitStatusFree        = "FREE"
	UnitStatusReserved    = "RESERVED"
	UnitStatusSold        = "SOLD"
	UnitStatusInstallment = "INSTALLMENT"
	UnitStatusEquity      = "EQUITY"
)

// AllUnitStatuses — фиксированный порядок статусов для отчётов:
// все пять ключей должны присутствовать в сводке, даже с нулевым счётчиком.
var AllUnitStatuses = []string{
	UnitStatusFree,
	UnitStatusReserved,
	UnitStatusSold,
	UnitStatusInstallment,
	UnitStatusEquity,
}

func IsValidUnitType(t string) bool {
	switch t {
	case UnitTypeApartment, UnitTypeCommercial, UnitTypeParking:
		return true
	default:
		return false
	}
}

func IsValidUnitStatus(s string) bool {
	switch s {
	case UnitStatusFree, UnitStatusReserved, UnitStatusSold, UnitStatusInstallment, UnitStatusEquity:
		return true
	default:
		return false
	}
}

// Unit — продаваемый объект: квартира, коммерция или паркинг.
type Unit struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Type   string `json:"type" gorm:"not null"`
	Status string `json:"status" gorm:"not null;default:FREE"`

	ProjectID  uint  `json:"projectId" gorm:"index;not null"`
	BuildingID uint  `json:"buildingId" gorm:"index;not null"`
	FloorID    *uint `json:"floorId"`

	Section string  `json:"section"`
	Number  string  `json:"number"`
	Area    float64 `json:"area"`
	Rooms   int     `json:"rooms"`
	// Цена в тенге; 0 означает "цена не задана" и не попадает в выручку отчётов.
	Price float64 `json:"price"`

	// Привязка к именованному узлу 3D-сцены (nil — юнит не привязан).
	ModelElementKey *string `json:"modelElementKey"`
	// Ссылка на 2D-планировку.
	PlanImageURL *string `json:"planImageUrl"`

	Project  *Project  `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Building *Building `json:"building,omitempty" gorm:"foreignKey:BuildingID"`
	Floor    *Floor    `json:"floor,omitempty" gorm:"foreignKey:FloorID"`
}

func (Unit) TableName() string { return "units" }
