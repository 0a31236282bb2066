package models

import "time"

// NewsletterSubscriber holds a unique email address. The unique index is the
// authoritative duplicate guard; the subscribe endpoint pre-checks only to
// produce a friendlier conflict message.
type NewsletterSubscriber struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"email" validate:"required,email,max=200"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribed_at"`
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}
