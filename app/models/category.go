package models

import "time"

// Category groups blog posts and gallery items. Both name and slug are
// globally unique; dependent rows keep a nullable reference so deleting a
// category never deletes content. Deletes are hard so the name and slug
// become reusable immediately.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required,min=1,max=100"`
	Slug      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug" validate:"required,min=1,max=100"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
