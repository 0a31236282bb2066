package models

import "time"

// ContactMessage is a submission from the public contact form. The public
// API only ever creates these; is_read is managed by staff.
type ContactMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Email       string    `gorm:"type:varchar(200);not null" json:"email" validate:"required,email,max=200"`
	Subject     string    `gorm:"type:varchar(200)" json:"subject" validate:"max=200"`
	Message     string    `gorm:"type:text;not null" json:"message" validate:"required"`
	IsRead      bool      `gorm:"default:false" json:"is_read"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
