package models

import "time"

// Building — корпус внутри проекта.
type Building struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ProjectID      uint   `json:"projectId" gorm:"index;not null"`
	Label          string `json:"label"`
	NumberOfFloors int    `json:"numberOfFloors"`

	Floors []Floor `json:"floors,omitempty" gorm:"foreignKey:BuildingID"`
}

func (Building) TableName() string { return "buildings" }

// Floor — этаж корпуса.
type Floor struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	BuildingID uint `json:"buildingId" gorm:"index;not null"`
	Number     int  `json:"number"`
}

func (Floor) TableName() string { return "floors" }
