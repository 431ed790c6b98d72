package models

import "time"

// Document — документ по сделке: либо ссылка на файл, либо текст,
// сгенерированный из шаблона. Подписывается ровно один раз.
type Document struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	DealID uint   `json:"dealId" gorm:"index;not null"`
	Type   string `json:"type" gorm:"not null"`
	// Номер вида DOC-xxxxxxxx, проставляется при генерации из шаблона.
	Number  string `json:"number"`
	FileURL string `json:"fileUrl"`
	Content string `json:"content" gorm:"type:text"`

	SignedAt       *time.Time `json:"signedAt"`
	SignedByUserID *uint      `json:"signedByUserId"`

	Deal     *Deal `json:"deal,omitempty" gorm:"foreignKey:DealID"`
	SignedBy *User `json:"signedBy,omitempty" gorm:"foreignKey:SignedByUserID"`
}

func (Document) TableName() string { return "documents" }
