package models

import "time"

// DocumentTemplate — шаблон документа с плейсхолдерами вида
// {{client.fullName}}, {{unit.number}}, {{deal.type}}, {{manager.fullName}}.
type DocumentTemplate struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name    string `json:"name" gorm:"not null"`
	Type    string `json:"type" gorm:"not null"`
	Content string `json:"content" gorm:"type:text"`
}

func (DocumentTemplate) TableName() string { return "document_templates" }
