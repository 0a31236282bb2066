package repository

import (
	"gorm.io/gorm"

	"github.com/pleromasprings/core-api/app/models"
)

// transformationStoryRepository implements the TransformationStoryRepository interface
type transformationStoryRepository struct {
	db *gorm.DB
}

// NewTransformationStoryRepository creates a new transformation story repository instance
func NewTransformationStoryRepository(db *gorm.DB) TransformationStoryRepository {
	return &transformationStoryRepository{db: db}
}

func (r *transformationStoryRepository) Create(story *models.TransformationStory) error {
	return r.db.Create(story).Error
}

func (r *transformationStoryRepository) GetByID(id uint) (*models.TransformationStory, error) {
	var story models.TransformationStory
	err := r.db.First(&story, id).Error
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// GetPublished retrieves published stories newest first.
func (r *transformationStoryRepository) GetPublished() ([]models.TransformationStory, error) {
	var stories []models.TransformationStory
	err := r.db.Where("is_published = ?", true).Order("created_at DESC").Find(&stories).Error
	return stories, err
}

func (r *transformationStoryRepository) GetAll(offset, limit int) ([]models.TransformationStory, error) {
	var stories []models.TransformationStory
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&stories).Error
	return stories, err
}

func (r *transformationStoryRepository) Update(story *models.TransformationStory) error {
	return r.db.Save(story).Error
}

func (r *transformationStoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.TransformationStory{}, id).Error
}

func (r *transformationStoryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.TransformationStory{}).Count(&count).Error
	return count, err
}
