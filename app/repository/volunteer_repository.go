package repository

import (
	"gorm.io/gorm"

	"github.com/pleromasprings/core-api/app/models"
)

// volunteerApplicationRepository implements the VolunteerApplicationRepository interface
type volunteerApplicationRepository struct {
	db *gorm.DB
}

// NewVolunteerApplicationRepository creates a new volunteer application repository instance
func NewVolunteerApplicationRepository(db *gorm.DB) VolunteerApplicationRepository {
	return &volunteerApplicationRepository{db: db}
}

func (r *volunteerApplicationRepository) Create(app *models.VolunteerApplication) error {
	return r.db.Create(app).Error
}

func (r *volunteerApplicationRepository) GetByID(id uint) (*models.VolunteerApplication, error) {
	var app models.VolunteerApplication
	err := r.db.First(&app, id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *volunteerApplicationRepository) GetAll(offset, limit int) ([]models.VolunteerApplication, error) {
	var apps []models.VolunteerApplication
	err := r.db.Order("application_date DESC").Offset(offset).Limit(limit).Find(&apps).Error
	return apps, err
}

// UpdateStatus moves an application through the review pipeline. This is the
// only write path that touches status after creation. Existence is checked
// explicitly instead of through the affected-row count: MySQL reports rows
// changed, so a no-op update to the current status would look like a miss.
func (r *volunteerApplicationRepository) UpdateStatus(id uint, status string) error {
	var count int64
	if err := r.db.Model(&models.VolunteerApplication{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.db.Model(&models.VolunteerApplication{}).Where("id = ?", id).Update("status", status).Error
}

func (r *volunteerApplicationRepository) Delete(id uint) error {
	return r.db.Delete(&models.VolunteerApplication{}, id).Error
}

func (r *volunteerApplicationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.VolunteerApplication{}).Count(&count).Error
	return count, err
}

func (r *volunteerApplicationRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.VolunteerApplication{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
