package models

import "time"

// Project описывает жилой комплекс (ЖК).
// 3D-поля заполняются через PATCH /projects/:id/3d и нужны только страницам просмотра.
type Project struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Address     string `json:"address"`

	// Метаданные 3D-модели (URL на glb/gltf, формат, превью)
	Model3DURL      *string `json:"model3dUrl" gorm:"column:model_3d_url"`
	Model3DFormat   *string `json:"model3dFormat" gorm:"column:model_3d_format"`
	PreviewImageURL *string `json:"previewImageUrl"`

	Buildings []Building `json:"buildings,omitempty" gorm:"foreignKey:ProjectID"`
	Units     []Unit     `json:"units,omitempty" gorm:"foreignKey:ProjectID"`
}

func (Project) TableName() string { return "projects" }
