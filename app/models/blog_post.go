package models

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost is a published article. Content is stored as markdown and
// rendered to sanitized HTML at read time. The slug is derived from the
// title when staff do not supply one.
type BlogPost struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"type:varchar(200);not null" json:"title" validate:"required,min=1,max=200"`
	Slug          string         `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug" validate:"required,min=1,max=200"`
	Content       string         `gorm:"type:longtext;not null" json:"content" validate:"required"`
	Excerpt       string         `gorm:"type:text" json:"excerpt"`
	Author        string         `gorm:"type:varchar(100);not null" json:"author" validate:"required,max=100"`
	Image         string         `gorm:"type:varchar(500)" json:"image"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	CategoryID    *uint          `gorm:"index" json:"category_id"`
	Category      *Category      `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	PublishedDate time.Time      `gorm:"autoCreateTime" json:"published_date"`
	UpdatedDate   time.Time      `gorm:"autoUpdateTime" json:"updated_date"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
