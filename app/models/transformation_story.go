package models

import (
	"time"

	"gorm.io/gorm"
)

// TransformationStory is a testimonial from someone the organization has
// worked with.
type TransformationStory struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Location    string         `gorm:"type:varchar(100)" json:"location" validate:"max=100"`
	Story       string         `gorm:"type:text;not null" json:"story" validate:"required"`
	Image       string         `gorm:"type:varchar(500)" json:"image"`
	IsPublished bool           `gorm:"default:true" json:"is_published"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TransformationStory) TableName() string {
	return "transformation_stories"
}
