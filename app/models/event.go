package models

import (
	"time"

	"gorm.io/gorm"
)

// Event is a scheduled activity shown on the public events page.
type Event struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"type:varchar(200);not null" json:"title" validate:"required,min=1,max=200"`
	Slug        string         `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug" validate:"required,min=1,max=200"`
	Description string         `gorm:"type:text;not null" json:"description" validate:"required"`
	EventDate   time.Time      `gorm:"not null" json:"event_date" validate:"required"`
	Location    string         `gorm:"type:varchar(255);not null" json:"location" validate:"required,max=255"`
	Image       string         `gorm:"type:varchar(500)" json:"image"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Event) TableName() string {
	return "events"
}
