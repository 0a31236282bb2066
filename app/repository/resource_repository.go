package repository

import (
	"gorm.io/gorm"

	"github.com/pleromasprings/core-api/app/models"
)

// resourceRepository implements the ResourceRepository interface
type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new resource repository instance
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(res *models.Resource) error {
	return r.db.Create(res).Error
}

func (r *resourceRepository) GetByID(id uint) (*models.Resource, error) {
	var res models.Resource
	err := r.db.First(&res, id).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetPublic retrieves public resources newest first.
func (r *resourceRepository) GetPublic() ([]models.Resource, error) {
	var resources []models.Resource
	err := r.db.Where("is_public = ?", true).Order("uploaded_at DESC").Find(&resources).Error
	return resources, err
}

func (r *resourceRepository) GetAll(offset, limit int) ([]models.Resource, error) {
	var resources []models.Resource
	err := r.db.Order("uploaded_at DESC").Offset(offset).Limit(limit).Find(&resources).Error
	return resources, err
}

func (r *resourceRepository) Update(res *models.Resource) error {
	return r.db.Save(res).Error
}

func (r *resourceRepository) Delete(id uint) error {
	return r.db.Delete(&models.Resource{}, id).Error
}

func (r *resourceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Resource{}).Count(&count).Error
	return count, err
}
