package repository

import (
	"gorm.io/gorm"

	"github.com/pleromasprings/core-api/app/models"
)

// impactStatRepository implements the ImpactStatRepository interface
type impactStatRepository struct {
	db *gorm.DB
}

// NewImpactStatRepository creates a new impact stat repository instance
func NewImpactStatRepository(db *gorm.DB) ImpactStatRepository {
	return &impactStatRepository{db: db}
}

func (r *impactStatRepository) Create(stat *models.ImpactStat) error {
	return r.db.Create(stat).Error
}

func (r *impactStatRepository) GetByID(id uint) (*models.ImpactStat, error) {
	var stat models.ImpactStat
	err := r.db.First(&stat, id).Error
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

// GetAll retrieves all stats in display order.
func (r *impactStatRepository) GetAll() ([]models.ImpactStat, error) {
	var stats []models.ImpactStat
	err := r.db.Order("sort_order ASC").Find(&stats).Error
	return stats, err
}

func (r *impactStatRepository) Update(stat *models.ImpactStat) error {
	return r.db.Save(stat).Error
}

func (r *impactStatRepository) Delete(id uint) error {
	return r.db.Delete(&models.ImpactStat{}, id).Error
}

func (r *impactStatRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ImpactStat{}).Count(&count).Error
	return count, err
}
