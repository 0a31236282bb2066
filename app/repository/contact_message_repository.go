package repository

import (
	"gorm.io/gorm"

	"github.com/pleromasprings/core-api/app/models"
)

// contactMessageRepository implements the ContactMessageRepository interface
type contactMessageRepository struct {
	db *gorm.DB
}

// NewContactMessageRepository creates a new contact message repository instance
func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(msg *models.ContactMessage) error {
	return r.db.Create(msg).Error
}

func (r *contactMessageRepository) GetByID(id uint) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := r.db.First(&msg, id).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *contactMessageRepository) GetAll(offset, limit int) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	err := r.db.Order("submitted_at DESC").Offset(offset).Limit(limit).Find(&msgs).Error
	return msgs, err
}

// MarkRead flags a message as handled. Existence is checked explicitly:
// MySQL reports rows changed, not rows matched, so a zero affected count on
// the update alone cannot distinguish "missing" from "already read".
func (r *contactMessageRepository) MarkRead(id uint) error {
	var count int64
	if err := r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", true).Error
}

func (r *contactMessageRepository) Delete(id uint) error {
	return r.db.Delete(&models.ContactMessage{}, id).Error
}

func (r *contactMessageRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactMessage{}).Count(&count).Error
	return count, err
}

func (r *contactMessageRepository) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}
