package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pleromasprings/core-api/app/models"
	"github.com/pleromasprings/core-api/app/repository"
	"github.com/pleromasprings/core-api/internal/pkg/cache"
	"github.com/pleromasprings/core-api/internal/pkg/database"
	"github.com/pleromasprings/core-api/internal/pkg/mediastore"
	"github.com/pleromasprings/core-api/internal/pkg/router"
)

// setupTestApp boots the real route table against an isolated in-memory
// database. Redis-backed pieces (list cache, limiter store) degrade to
// local behavior when no Redis answers.
func setupTestApp(t *testing.T) (*fiber.App, *repository.Repositories) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.DB = db
	repository.InitializeFactory(db)
	mediastore.SetDefault(mediastore.NewLocalStore(mediastore.Config{
		Root:       t.TempDir(),
		PublicPath: "/media",
	}))

	// Drop any leftover cached listings from earlier tests.
	_ = cache.DeletePattern("pages:*")

	app := fiber.New()
	router.InstallRouter(app)
	return app, repository.GetGlobalRepositories()
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload interface{}, headers map[string]string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	if len(raw) > 0 && strings.Contains(resp.Header.Get("Content-Type"), "json") {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp, decoded
}

func TestPublicPostListingHidesInactive(t *testing.T) {
	app, repos := setupTestApp(t)

	require.NoError(t, repos.BlogPost.Create(&models.BlogPost{
		Title: "Published", Slug: "published", Content: "# Hello", Author: "Ada", IsActive: true,
	}))
	require.NoError(t, repos.BlogPost.Create(&models.BlogPost{
		Title: "Draft", Slug: "draft", Content: "secret", Author: "Ada", IsActive: false,
	}))

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/posts", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total"])

	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "published", data[0].(map[string]interface{})["slug"])

	// Inactive posts are invisible even by direct slug.
	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/posts/draft", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", body["error"])
}

func TestPublicPostDetailRendersHTML(t *testing.T) {
	app, repos := setupTestApp(t)

	require.NoError(t, repos.BlogPost.Create(&models.BlogPost{
		Title: "Report", Slug: "report", Content: "# Heading\n\n**bold**", Author: "Ada", IsActive: true,
	}))

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/posts/report", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "# Heading\n\n**bold**", body["content"])
	assert.Contains(t, body["content_html"], "<h1>Heading</h1>")
	assert.Nil(t, body["image_url"])
	assert.Nil(t, body["category"])
}

func TestSubscribeDuplicateConflicts(t *testing.T) {
	app, _ := setupTestApp(t)

	payload := map[string]string{"email": "Friend@Example.org"}

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/subscribe", payload, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "friend@example.org", body["email"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/subscribe", payload, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "conflict", body["error"])
	assert.Equal(t, "Email already subscribed.", body["message"])
}

func TestVolunteerStatusForcedToPending(t *testing.T) {
	app, repos := setupTestApp(t)

	payload := map[string]string{
		"name":             "Ada",
		"email":            "ada@example.org",
		"area_of_interest": models.AreaFundraising,
		"status":           "Accepted",
	}
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/volunteer", payload, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, models.ApplicationStatusPending, body["status"])

	apps, err := repos.Volunteer.GetAll(0, 10)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, models.ApplicationStatusPending, apps[0].Status)
}

func TestVolunteerRejectsUnknownArea(t *testing.T) {
	app, _ := setupTestApp(t)

	payload := map[string]string{
		"name":             "Ada",
		"email":            "ada@example.org",
		"area_of_interest": "Skydiving",
	}
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/volunteer", payload, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation_error", body["error"])
	fields := body["fields"].(map[string]interface{})
	assert.Contains(t, fields, "area_of_interest")
}

func TestPartnerStatusForcedToNew(t *testing.T) {
	app, repos := setupTestApp(t)

	payload := map[string]string{
		"organization_name": "Helping Hands",
		"contact_person":    "Grace",
		"email":             "grace@example.org",
		"partnership_type":  models.PartnershipResearch,
		"status":            "Completed",
	}
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/partner", payload, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, models.InquiryStatusNew, body["status"])

	inquiries, err := repos.Partnership.GetAll(0, 10)
	require.NoError(t, err)
	require.Len(t, inquiries, 1)
	assert.Equal(t, models.InquiryStatusNew, inquiries[0].Status)
}

func TestContactValidationFieldMap(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/contact", map[string]string{
		"name":  "Ada",
		"email": "not-an-email",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation_error", body["error"])

	fields := body["fields"].(map[string]interface{})
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "message")
	assert.NotContains(t, fields, "name")
}

func TestGalleryListNestsCategory(t *testing.T) {
	app, repos := setupTestApp(t)

	category := &models.Category{Name: "Events", Slug: "events"}
	require.NoError(t, repos.Category.Create(category))
	require.NoError(t, repos.Gallery.Create(&models.GalleryItem{
		Title: "Gala Night", Image: "gallery/gala.jpg", IsPublished: true, CategoryID: &category.ID,
	}))
	require.NoError(t, repos.Gallery.Create(&models.GalleryItem{
		Title: "Hidden", IsPublished: false,
	}))

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/gallery-items", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total"])

	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	item := data[0].(map[string]interface{})
	assert.Equal(t, "Gala Night", item["title"])
	require.NotNil(t, item["image_url"])
	assert.True(t, strings.HasSuffix(item["image_url"].(string), "/media/gallery/gala.jpg"))

	nested := item["category"].(map[string]interface{})
	assert.Equal(t, "events", nested["slug"])
	assert.Equal(t, "Events", nested["name"])
}

func TestResourceDetailHidesPrivate(t *testing.T) {
	app, repos := setupTestApp(t)

	require.NoError(t, repos.Resource.Create(&models.Resource{
		Title: "Internal Budget", File: "resources/budget.pdf", IsPublic: false,
	}))

	resources, err := repos.Resource.GetAll(0, 10)
	require.NoError(t, err)
	require.Len(t, resources, 1)

	resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/resources/%d", resources[0].ID), nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", body["error"])
}

func TestTeamListOrdering(t *testing.T) {
	app, repos := setupTestApp(t)

	require.NoError(t, repos.TeamMember.Create(&models.TeamMember{Name: "Zoe", Role: "Director", Order: 2, IsActive: true}))
	require.NoError(t, repos.TeamMember.Create(&models.TeamMember{Name: "Ada", Role: "Lead", Order: 1, IsActive: true}))
	require.NoError(t, repos.TeamMember.Create(&models.TeamMember{Name: "Gone", Role: "Past", Order: 0, IsActive: false}))

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/team-members", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "Ada", data[0].(map[string]interface{})["name"])
	assert.Equal(t, "Zoe", data[1].(map[string]interface{})["name"])
}
