package repository

import (
	"gorm.io/gorm"

	"github.com/pleromasprings/core-api/app/models"
)

// blogPostRepository implements the BlogPostRepository interface
type blogPostRepository struct {
	db *gorm.DB
}

// NewBlogPostRepository creates a new blog post repository instance
func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &blogPostRepository{db: db}
}

func (r *blogPostRepository) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *blogPostRepository) GetByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("Category").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogPostRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("Category").Where("slug = ?", slug).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetActiveBySlug retrieves a post by slug, restricted to active posts. The
// public API never serves inactive posts, not even by direct slug.
func (r *blogPostRepository) GetActiveBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("Category").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListActive returns active posts newest first, optionally filtered by
// category slug and a search term over title, content and author, together
// with the total matching count for pagination.
func (r *blogPostRepository) ListActive(filter PostFilter) ([]models.BlogPost, int64, error) {
	q := r.db.Model(&models.BlogPost{}).Where("blog_posts.is_active = ?", true)

	if filter.CategorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = blog_posts.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		q = q.Where("blog_posts.title LIKE ? OR blog_posts.content LIKE ? OR blog_posts.author LIKE ?", term, term, term)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.BlogPost
	err := q.Preload("Category").
		Order("blog_posts.published_date DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&posts).Error
	return posts, total, err
}

// GetAll retrieves posts for the admin listing, inactive ones included.
func (r *blogPostRepository) GetAll(offset, limit int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Preload("Category").
		Order("published_date DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *blogPostRepository) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

func (r *blogPostRepository) Delete(id uint) error {
	return r.db.Delete(&models.BlogPost{}, id).Error
}

func (r *blogPostRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *blogPostRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}

func (r *blogPostRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Count(&count).Error
	return count, err
}
