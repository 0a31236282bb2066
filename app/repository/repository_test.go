package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pleromasprings/core-api/app/models"
	"github.com/pleromasprings/core-api/internal/pkg/database"
)

// newTestDB opens an isolated in-memory database with the full schema.
// TranslateError mirrors production so duplicate-key behavior matches MySQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestCategoryDeleteClearsReferences(t *testing.T) {
	db := newTestDB(t)
	repos := NewRepositories(db)

	category := &models.Category{Name: "Outreach", Slug: "outreach"}
	require.NoError(t, repos.Category.Create(category))

	post := &models.BlogPost{
		Title: "Field Report", Slug: "field-report",
		Content: "body", Author: "Ada",
		IsActive: true, CategoryID: &category.ID,
	}
	require.NoError(t, repos.BlogPost.Create(post))

	item := &models.GalleryItem{Title: "Outreach Day", IsPublished: true, CategoryID: &category.ID}
	require.NoError(t, repos.Gallery.Create(item))

	require.NoError(t, repos.Category.Delete(category.ID))

	_, err := repos.Category.GetByID(category.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	gotPost, err := repos.BlogPost.GetByID(post.ID)
	require.NoError(t, err)
	assert.Nil(t, gotPost.CategoryID)

	gotItem, err := repos.Gallery.GetByID(item.ID)
	require.NoError(t, err)
	assert.Nil(t, gotItem.CategoryID)
}

func TestDuplicateSlugSurfacesAsErrDuplicate(t *testing.T) {
	db := newTestDB(t)
	repos := NewRepositories(db)

	first := &models.BlogPost{Title: "One", Slug: "shared", Content: "a", Author: "Ada", IsActive: true}
	require.NoError(t, repos.BlogPost.Create(first))

	second := &models.BlogPost{Title: "Two", Slug: "shared", Content: "b", Author: "Ada", IsActive: true}
	err := repos.BlogPost.Create(second)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestNewsletterEmailUniqueness(t *testing.T) {
	db := newTestDB(t)
	repos := NewRepositories(db)

	require.NoError(t, repos.Newsletter.Create(&models.NewsletterSubscriber{Email: "a@example.org", IsActive: true}))

	exists, err := repos.Newsletter.EmailExists("a@example.org")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repos.Newsletter.EmailExists("b@example.org")
	require.NoError(t, err)
	assert.False(t, exists)

	err = repos.Newsletter.Create(&models.NewsletterSubscriber{Email: "a@example.org", IsActive: true})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestBlogListActiveFiltering(t *testing.T) {
	db := newTestDB(t)
	repos := NewRepositories(db)

	news := &models.Category{Name: "News", Slug: "news"}
	require.NoError(t, repos.Category.Create(news))

	require.NoError(t, repos.BlogPost.Create(&models.BlogPost{
		Title: "Harvest Update", Slug: "harvest-update",
		Content: "The harvest went well", Author: "Ada",
		IsActive: true, CategoryID: &news.ID,
	}))
	require.NoError(t, repos.BlogPost.Create(&models.BlogPost{
		Title: "Quiet Draft", Slug: "quiet-draft",
		Content: "unpublished", Author: "Ada", IsActive: false,
	}))
	require.NoError(t, repos.BlogPost.Create(&models.BlogPost{
		Title: "Uncategorized Note", Slug: "uncategorized-note",
		Content: "free floating", Author: "Grace", IsActive: true,
	}))

	posts, total, err := repos.BlogPost.ListActive(PostFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, posts, 2)
	for _, p := range posts {
		assert.True(t, p.IsActive)
	}

	posts, total, err = repos.BlogPost.ListActive(PostFilter{CategorySlug: "news", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, posts, 1)
	assert.Equal(t, "harvest-update", posts[0].Slug)
	require.NotNil(t, posts[0].Category)
	assert.Equal(t, "news", posts[0].Category.Slug)

	posts, total, err = repos.BlogPost.ListActive(PostFilter{Search: "harvest", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	posts, total, err = repos.BlogPost.ListActive(PostFilter{Search: "Grace", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, posts, 1)
	assert.Equal(t, "uncategorized-note", posts[0].Slug)

	// Inactive posts stay invisible even by direct slug.
	_, err = repos.BlogPost.GetActiveBySlug("quiet-draft")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestVolunteerUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	repos := NewRepositories(db)

	app := &models.VolunteerApplication{
		Name: "Ada", Email: "ada@example.org",
		AreaOfInterest: models.AreaFundraising,
		Status:         models.ApplicationStatusPending,
	}
	require.NoError(t, repos.Volunteer.Create(app))

	require.NoError(t, repos.Volunteer.UpdateStatus(app.ID, models.ApplicationStatusAccepted))

	got, err := repos.Volunteer.GetByID(app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, got.Status)

	// Re-sending the current status is a no-op, not a missing row.
	require.NoError(t, repos.Volunteer.UpdateStatus(app.ID, models.ApplicationStatusAccepted))

	err = repos.Volunteer.UpdateStatus(9999, models.ApplicationStatusAccepted)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPartnershipUpdateStatusIdempotent(t *testing.T) {
	db := newTestDB(t)
	repos := NewRepositories(db)

	inq := &models.PartnershipInquiry{
		OrganizationName: "Helping Hands", ContactPerson: "Grace",
		Email:           "grace@example.org",
		PartnershipType: models.PartnershipResearch,
		Status:          models.InquiryStatusNew,
	}
	require.NoError(t, repos.Partnership.Create(inq))

	require.NoError(t, repos.Partnership.UpdateStatus(inq.ID, models.InquiryStatusReviewed))
	require.NoError(t, repos.Partnership.UpdateStatus(inq.ID, models.InquiryStatusReviewed))

	got, err := repos.Partnership.GetByID(inq.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusReviewed, got.Status)

	err = repos.Partnership.UpdateStatus(9999, models.InquiryStatusReviewed)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestContactMarkReadAndCounts(t *testing.T) {
	db := newTestDB(t)
	repos := NewRepositories(db)

	msg := &models.ContactMessage{Name: "Ada", Email: "ada@example.org", Message: "hi"}
	require.NoError(t, repos.Contact.Create(msg))
	require.NoError(t, repos.Contact.Create(&models.ContactMessage{Name: "Grace", Email: "g@example.org", Message: "hello"}))

	unread, err := repos.Contact.CountUnread()
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	require.NoError(t, repos.Contact.MarkRead(msg.ID))

	// Marking an already-read message again stays a success.
	require.NoError(t, repos.Contact.MarkRead(msg.ID))

	unread, err = repos.Contact.CountUnread()
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	err = repos.Contact.MarkRead(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStaffUserLookupByAPIKeyHash(t *testing.T) {
	db := newTestDB(t)
	repos := NewRepositories(db)

	staff, err := models.NewStaffUser("Ada", "ada@example.org", "correct-horse-battery")
	require.NoError(t, err)
	raw, err := staff.IssueAPIKey()
	require.NoError(t, err)
	require.NoError(t, repos.StaffUser.Create(staff))

	got, err := repos.StaffUser.GetByAPIKeyHash(models.HashAPIKey(raw))
	require.NoError(t, err)
	assert.Equal(t, staff.ID, got.ID)

	_, err = repos.StaffUser.GetByAPIKeyHash(models.HashAPIKey("ps_nope"))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
