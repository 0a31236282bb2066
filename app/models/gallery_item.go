package models

import (
	"time"

	"gorm.io/gorm"
)

// GalleryItem holds an uploaded image or video (both optional, both may be
// absent). Items belong to an optional category; the reference is cleared,
// not cascaded, when the category goes away.
type GalleryItem struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title" validate:"required,max=255"`
	Description string         `gorm:"type:text" json:"description"`
	Image       string         `gorm:"type:varchar(500)" json:"image"`
	Video       string         `gorm:"type:varchar(500)" json:"video"`
	ImageWidth  int            `gorm:"default:0" json:"image_width"`
	ImageHeight int            `gorm:"default:0" json:"image_height"`
	TakenAt     *time.Time     `json:"taken_at"`
	IsPublished bool           `gorm:"default:true" json:"is_published"`
	CategoryID  *uint          `gorm:"index" json:"category_id"`
	Category    *Category      `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	UploadDate  time.Time      `gorm:"autoCreateTime" json:"upload_date"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (GalleryItem) TableName() string {
	return "gallery_items"
}
