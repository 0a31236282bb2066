package models

import "time"

// Resource is a downloadable document (report, form, guide).
type Resource struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title" validate:"required,max=200"`
	Description string    `gorm:"type:text" json:"description"`
	File        string    `gorm:"type:varchar(500);not null" json:"file" validate:"required"`
	IsPublic    bool      `gorm:"default:true" json:"is_public"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (Resource) TableName() string {
	return "resources"
}
