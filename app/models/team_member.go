package models

import (
	"time"

	"gorm.io/gorm"
)

// TeamMember appears on the public team page, sorted by order then name.
type TeamMember struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Role           string         `gorm:"type:varchar(255);not null" json:"role" validate:"required,max=255"`
	Bio            string         `gorm:"type:text" json:"bio"`
	ProfilePicture string         `gorm:"type:varchar(500)" json:"profile_picture"`
	LinkedinURL    string         `gorm:"type:varchar(500)" json:"linkedin_url" validate:"omitempty,url,max=500"`
	TwitterURL     string         `gorm:"type:varchar(500)" json:"twitter_url" validate:"omitempty,url,max=500"`
	Email          string         `gorm:"type:varchar(200)" json:"email" validate:"omitempty,email,max=200"`
	Order          int            `gorm:"column:sort_order;default:0" json:"order"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
