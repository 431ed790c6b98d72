package models

import "time"

// Роли пользователей админки.
const (
	RoleAdmin     = "ADMIN"
	RoleManager   = "MANAGER"
	RoleSalesHead = "SALES_HEAD"
	RoleLegal     = "LEGAL"
	RoleViewer    = "VIEWER"
)

func IsValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSalesHead, RoleLegal, RoleViewer:
		return true
	default:
		return false
	}
}

// User — сотрудник. Роль определяет доступ к мутирующим ручкам.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	FullName     string `json:"fullName"`
	Role         string `json:"role" gorm:"not null;default:VIEWER"`
	PasswordHash string `json:"-"`
}

func (User) TableName() string { return "users" }
