package models

import "time"

// Типы сделок.
const (
	DealTypeSale        = "SALE"
	DealTypeInstallment = "INSTALLMENT"
	DealTypeEquity      = "EQUITY"
)

// Статусы сделок.
const (
	DealStatusDraft     = "DRAFT"
	DealStatusActive    = "ACTIVE"
	DealStatusCompleted = "COMPLETED"
	DealStatusCanceled  = "CANCELED"
)

// Deal — сделка: связывает клиента с юнитом через менеджера.
// После создания сделка не редактируется (ручки обновления нет).
type Deal struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UnitID    uint `json:"unitId" gorm:"index;not null"`
	ClientID  uint `json:"clientId" gorm:"index;not null"`
	ManagerID uint `json:"managerId" gorm:"index;not null"`

	Type   string `json:"type" gorm:"not null"`
	Status string `json:"status" gorm:"not null;default:DRAFT"`

	Unit    *Unit   `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
	Client  *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Manager *User   `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
}

func (Deal) TableName() string { return "deals" }
