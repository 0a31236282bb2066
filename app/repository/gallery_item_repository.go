package repository

import (
	"gorm.io/gorm"

	"github.com/pleromasprings/core-api/app/models"
)

// galleryItemRepository implements the GalleryItemRepository interface
type galleryItemRepository struct {
	db *gorm.DB
}

// NewGalleryItemRepository creates a new gallery item repository instance
func NewGalleryItemRepository(db *gorm.DB) GalleryItemRepository {
	return &galleryItemRepository{db: db}
}

func (r *galleryItemRepository) Create(item *models.GalleryItem) error {
	return r.db.Create(item).Error
}

func (r *galleryItemRepository) GetByID(id uint) (*models.GalleryItem, error) {
	var item models.GalleryItem
	err := r.db.Preload("Category").First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetPublished retrieves published items newest first with their category.
func (r *galleryItemRepository) GetPublished() ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	err := r.db.Preload("Category").
		Where("is_published = ?", true).
		Order("upload_date DESC").
		Find(&items).Error
	return items, err
}

func (r *galleryItemRepository) GetAll(offset, limit int) ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	err := r.db.Preload("Category").
		Order("upload_date DESC").
		Offset(offset).Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *galleryItemRepository) Update(item *models.GalleryItem) error {
	return r.db.Save(item).Error
}

func (r *galleryItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.GalleryItem{}, id).Error
}

func (r *galleryItemRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.GalleryItem{}).Count(&count).Error
	return count, err
}
