package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons.
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory.
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{db: db}
}

// GetRepositories returns a singleton instance of all repositories.
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

func (f *Factory) GetCategoryRepository() CategoryRepository {
	return f.GetRepositories().Category
}

func (f *Factory) GetBlogPostRepository() BlogPostRepository {
	return f.GetRepositories().BlogPost
}

func (f *Factory) GetEventRepository() EventRepository {
	return f.GetRepositories().Event
}

func (f *Factory) GetContactMessageRepository() ContactMessageRepository {
	return f.GetRepositories().Contact
}

func (f *Factory) GetNewsletterRepository() NewsletterRepository {
	return f.GetRepositories().Newsletter
}

func (f *Factory) GetResourceRepository() ResourceRepository {
	return f.GetRepositories().Resource
}

func (f *Factory) GetVolunteerApplicationRepository() VolunteerApplicationRepository {
	return f.GetRepositories().Volunteer
}

func (f *Factory) GetPartnershipInquiryRepository() PartnershipInquiryRepository {
	return f.GetRepositories().Partnership
}

func (f *Factory) GetTeamMemberRepository() TeamMemberRepository {
	return f.GetRepositories().TeamMember
}

func (f *Factory) GetGalleryItemRepository() GalleryItemRepository {
	return f.GetRepositories().Gallery
}

func (f *Factory) GetImpactStatRepository() ImpactStatRepository {
	return f.GetRepositories().ImpactStat
}

func (f *Factory) GetTransformationStoryRepository() TransformationStoryRepository {
	return f.GetRepositories().Story
}

func (f *Factory) GetStaffUserRepository() StaffUserRepository {
	return f.GetRepositories().StaffUser
}

var globalFactory *Factory
var globalMu sync.Mutex

// InitializeFactory installs the global repository factory. Calling it again
// replaces the factory, which is what tests rely on to point repositories at
// their own database.
func InitializeFactory(db *gorm.DB) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalFactory = NewFactory(db)
}

// GetGlobalFactory returns the global repository factory instance.
func GetGlobalFactory() *Factory {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance.
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}
