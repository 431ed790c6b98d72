package models

import "time"

// Client — покупатель. Телефон используется как "мягкий" ключ дедупликации:
// уникального индекса нет, при гонке двух создаваемых сделок возможны дубли.
type Client struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FullName string  `json:"fullName" gorm:"not null"`
	Phone    string  `json:"phone" gorm:"index;not null"`
	Email    *string `json:"email"`

	Deals []Deal `json:"deals,omitempty" gorm:"foreignKey:ClientID"`
}

func (Client) TableName() string { return "clients" }
