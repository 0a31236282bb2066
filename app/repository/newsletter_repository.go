package repository

import (
	"gorm.io/gorm"

	"github.com/pleromasprings/core-api/app/models"
)

// newsletterRepository implements the NewsletterRepository interface
type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository creates a new newsletter repository instance
func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(sub *models.NewsletterSubscriber) error {
	return r.db.Create(sub).Error
}

func (r *newsletterRepository) GetByID(id uint) (*models.NewsletterSubscriber, error) {
	var sub models.NewsletterSubscriber
	err := r.db.First(&sub, id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// EmailExists reports whether the address is already subscribed. The unique
// index still backs this up at insert time.
func (r *newsletterRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.NewsletterSubscriber{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *newsletterRepository) GetAll(offset, limit int) ([]models.NewsletterSubscriber, error) {
	var subs []models.NewsletterSubscriber
	err := r.db.Order("subscribed_at DESC").Offset(offset).Limit(limit).Find(&subs).Error
	return subs, err
}

func (r *newsletterRepository) Delete(id uint) error {
	return r.db.Delete(&models.NewsletterSubscriber{}, id).Error
}

func (r *newsletterRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.NewsletterSubscriber{}).Count(&count).Error
	return count, err
}
