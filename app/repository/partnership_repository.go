package repository

import (
	"gorm.io/gorm"

	"github.com/pleromasprings/core-api/app/models"
)

// partnershipInquiryRepository implements the PartnershipInquiryRepository interface
type partnershipInquiryRepository struct {
	db *gorm.DB
}

// NewPartnershipInquiryRepository creates a new partnership inquiry repository instance
func NewPartnershipInquiryRepository(db *gorm.DB) PartnershipInquiryRepository {
	return &partnershipInquiryRepository{db: db}
}

func (r *partnershipInquiryRepository) Create(inq *models.PartnershipInquiry) error {
	return r.db.Create(inq).Error
}

func (r *partnershipInquiryRepository) GetByID(id uint) (*models.PartnershipInquiry, error) {
	var inq models.PartnershipInquiry
	err := r.db.First(&inq, id).Error
	if err != nil {
		return nil, err
	}
	return &inq, nil
}

func (r *partnershipInquiryRepository) GetAll(offset, limit int) ([]models.PartnershipInquiry, error) {
	var inqs []models.PartnershipInquiry
	err := r.db.Order("inquiry_date DESC").Offset(offset).Limit(limit).Find(&inqs).Error
	return inqs, err
}

// UpdateStatus moves an inquiry through its lifecycle. Existence is checked
// explicitly instead of through the affected-row count: MySQL reports rows
// changed, so a no-op update to the current status would look like a miss.
func (r *partnershipInquiryRepository) UpdateStatus(id uint, status string) error {
	var count int64
	if err := r.db.Model(&models.PartnershipInquiry{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.db.Model(&models.PartnershipInquiry{}).Where("id = ?", id).Update("status", status).Error
}

func (r *partnershipInquiryRepository) Delete(id uint) error {
	return r.db.Delete(&models.PartnershipInquiry{}, id).Error
}

func (r *partnershipInquiryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.PartnershipInquiry{}).Count(&count).Error
	return count, err
}
