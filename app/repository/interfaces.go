package repository

import (
	"gorm.io/gorm"

	"github.com/pleromasprings/core-api/app/models"
)

// ErrDuplicate is returned by create paths when a unique index rejects the
// row. The index is the authoritative guard; pre-checks only improve error
// messages.
var ErrDuplicate = gorm.ErrDuplicatedKey

// PostFilter narrows public blog post listings.
type PostFilter struct {
	CategorySlug string // filter by category slug, empty for all
	Search       string // matches title, content or author
	Offset       int
	Limit        int
}

// CategoryRepository defines category persistence. Delete must clear the
// category reference on dependent posts and gallery items instead of
// cascading.
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
	NameExists(name string) (bool, error)
	Count() (int64, error)
}

// BlogPostRepository defines blog post persistence.
type BlogPostRepository interface {
	Create(post *models.BlogPost) error
	GetByID(id uint) (*models.BlogPost, error)
	GetBySlug(slug string) (*models.BlogPost, error)
	GetActiveBySlug(slug string) (*models.BlogPost, error)
	ListActive(filter PostFilter) ([]models.BlogPost, int64, error)
	GetAll(offset, limit int) ([]models.BlogPost, error)
	Update(post *models.BlogPost) error
	Delete(id uint) error
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
	Count() (int64, error)
}

// EventRepository defines event persistence.
type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id uint) (*models.Event, error)
	GetBySlug(slug string) (*models.Event, error)
	GetActiveBySlug(slug string) (*models.Event, error)
	GetActive() ([]models.Event, error)
	GetAll(offset, limit int) ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id uint) error
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
	Count() (int64, error)
}

// ContactMessageRepository stores contact form submissions.
type ContactMessageRepository interface {
	Create(msg *models.ContactMessage) error
	GetByID(id uint) (*models.ContactMessage, error)
	GetAll(offset, limit int) ([]models.ContactMessage, error)
	MarkRead(id uint) error
	Delete(id uint) error
	Count() (int64, error)
	CountUnread() (int64, error)
}

// NewsletterRepository stores newsletter subscriptions.
type NewsletterRepository interface {
	Create(sub *models.NewsletterSubscriber) error
	GetByID(id uint) (*models.NewsletterSubscriber, error)
	EmailExists(email string) (bool, error)
	GetAll(offset, limit int) ([]models.NewsletterSubscriber, error)
	Delete(id uint) error
	Count() (int64, error)
}

// ResourceRepository stores downloadable resources.
type ResourceRepository interface {
	Create(res *models.Resource) error
	GetByID(id uint) (*models.Resource, error)
	GetPublic() ([]models.Resource, error)
	GetAll(offset, limit int) ([]models.Resource, error)
	Update(res *models.Resource) error
	Delete(id uint) error
	Count() (int64, error)
}

// VolunteerApplicationRepository stores volunteer applications. Status only
// ever changes through UpdateStatus.
type VolunteerApplicationRepository interface {
	Create(app *models.VolunteerApplication) error
	GetByID(id uint) (*models.VolunteerApplication, error)
	GetAll(offset, limit int) ([]models.VolunteerApplication, error)
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
}

// PartnershipInquiryRepository stores partnership inquiries.
type PartnershipInquiryRepository interface {
	Create(inq *models.PartnershipInquiry) error
	GetByID(id uint) (*models.PartnershipInquiry, error)
	GetAll(offset, limit int) ([]models.PartnershipInquiry, error)
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
	Count() (int64, error)
}

// TeamMemberRepository stores team members.
type TeamMemberRepository interface {
	Create(member *models.TeamMember) error
	GetByID(id uint) (*models.TeamMember, error)
	GetActive() ([]models.TeamMember, error)
	GetAll(offset, limit int) ([]models.TeamMember, error)
	Update(member *models.TeamMember) error
	Delete(id uint) error
	Count() (int64, error)
}

// GalleryItemRepository stores gallery items with their category preloaded.
type GalleryItemRepository interface {
	Create(item *models.GalleryItem) error
	GetByID(id uint) (*models.GalleryItem, error)
	GetPublished() ([]models.GalleryItem, error)
	GetAll(offset, limit int) ([]models.GalleryItem, error)
	Update(item *models.GalleryItem) error
	Delete(id uint) error
	Count() (int64, error)
}

// ImpactStatRepository stores impact statistics.
type ImpactStatRepository interface {
	Create(stat *models.ImpactStat) error
	GetByID(id uint) (*models.ImpactStat, error)
	GetAll() ([]models.ImpactStat, error)
	Update(stat *models.ImpactStat) error
	Delete(id uint) error
	Count() (int64, error)
}

// TransformationStoryRepository stores transformation stories.
type TransformationStoryRepository interface {
	Create(story *models.TransformationStory) error
	GetByID(id uint) (*models.TransformationStory, error)
	GetPublished() ([]models.TransformationStory, error)
	GetAll(offset, limit int) ([]models.TransformationStory, error)
	Update(story *models.TransformationStory) error
	Delete(id uint) error
	Count() (int64, error)
}

// StaffUserRepository stores staff accounts for the admin API.
type StaffUserRepository interface {
	Create(staff *models.StaffUser) error
	GetByID(id uint) (*models.StaffUser, error)
	GetByEmail(email string) (*models.StaffUser, error)
	GetByAPIKeyHash(hash string) (*models.StaffUser, error)
	Update(staff *models.StaffUser) error
	Count() (int64, error)
}

// Repositories holds all repository instances.
type Repositories struct {
	Category    CategoryRepository
	BlogPost    BlogPostRepository
	Event       EventRepository
	Contact     ContactMessageRepository
	Newsletter  NewsletterRepository
	Resource    ResourceRepository
	Volunteer   VolunteerApplicationRepository
	Partnership PartnershipInquiryRepository
	TeamMember  TeamMemberRepository
	Gallery     GalleryItemRepository
	ImpactStat  ImpactStatRepository
	Story       TransformationStoryRepository
	StaffUser   StaffUserRepository
}

// NewRepositories creates a new instance of all repositories.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Category:    NewCategoryRepository(db),
		BlogPost:    NewBlogPostRepository(db),
		Event:       NewEventRepository(db),
		Contact:     NewContactMessageRepository(db),
		Newsletter:  NewNewsletterRepository(db),
		Resource:    NewResourceRepository(db),
		Volunteer:   NewVolunteerApplicationRepository(db),
		Partnership: NewPartnershipInquiryRepository(db),
		TeamMember:  NewTeamMemberRepository(db),
		Gallery:     NewGalleryItemRepository(db),
		ImpactStat:  NewImpactStatRepository(db),
		Story:       NewTransformationStoryRepository(db),
		StaffUser:   NewStaffUserRepository(db),
	}
}
