package repository

import (
	"gorm.io/gorm"

	"github.com/pleromasprings/core-api/app/models"
)

// staffUserRepository implements the StaffUserRepository interface
type staffUserRepository struct {
	db *gorm.DB
}

// NewStaffUserRepository creates a new staff user repository instance
func NewStaffUserRepository(db *gorm.DB) StaffUserRepository {
	return &staffUserRepository{db: db}
}

func (r *staffUserRepository) Create(staff *models.StaffUser) error {
	return r.db.Create(staff).Error
}

func (r *staffUserRepository) GetByID(id uint) (*models.StaffUser, error) {
	var staff models.StaffUser
	err := r.db.First(&staff, id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffUserRepository) GetByEmail(email string) (*models.StaffUser, error) {
	var staff models.StaffUser
	err := r.db.Where("email = ?", email).First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// GetByAPIKeyHash looks up the account owning a hashed API key.
func (r *staffUserRepository) GetByAPIKeyHash(hash string) (*models.StaffUser, error) {
	var staff models.StaffUser
	err := r.db.Where("api_key_hash = ? AND api_key_hash != ''", hash).First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffUserRepository) Update(staff *models.StaffUser) error {
	return r.db.Save(staff).Error
}

func (r *staffUserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.StaffUser{}).Count(&count).Error
	return count, err
}
