package repository

import (
	"gorm.io/gorm"

	"github.com/pleromasprings/core-api/app/models"
)

// eventRepository implements the EventRepository interface
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository instance
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetBySlug(slug string) (*models.Event, error) {
	var event models.Event
	err := r.db.Where("slug = ?", slug).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetActiveBySlug(slug string) (*models.Event, error) {
	var event models.Event
	err := r.db.Where("slug = ? AND is_active = ?", slug, true).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetActive retrieves active events in chronological order.
func (r *eventRepository) GetActive() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("is_active = ?", true).Order("event_date ASC").Find(&events).Error
	return events, err
}

func (r *eventRepository) GetAll(offset, limit int) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Order("event_date ASC").Offset(offset).Limit(limit).Find(&events).Error
	return events, err
}

func (r *eventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *eventRepository) Delete(id uint) error {
	return r.db.Delete(&models.Event{}, id).Error
}

func (r *eventRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *eventRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}

func (r *eventRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Count(&count).Error
	return count, err
}
