package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pleromasprings/core-api/app/models"
	"github.com/pleromasprings/core-api/app/repository"
)

// seedStaff creates an active staff account and returns its raw API key.
func seedStaff(t *testing.T, repos *repository.Repositories) string {
	t.Helper()
	staff, err := models.NewStaffUser("Ada", "ada@example.org", "correct-horse-battery")
	require.NoError(t, err)
	raw, err := staff.IssueAPIKey()
	require.NoError(t, err)
	require.NoError(t, repos.StaffUser.Create(staff))
	return raw
}

func authHeader(key string) map[string]string {
	return map[string]string{"X-API-Key": key}
}

func TestAdminRequiresAPIKey(t *testing.T) {
	app, repos := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/admin/dashboard", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "unauthorized", body["error"])

	resp, body = doJSON(t, app, http.MethodGet, "/admin/dashboard", nil, authHeader("ps_wrong"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "unauthorized", body["error"])

	// Inactive accounts keep their key but lose access.
	staff, err := models.NewStaffUser("Grace", "grace@example.org", "correct-horse-battery")
	require.NoError(t, err)
	raw, err := staff.IssueAPIKey()
	require.NoError(t, err)
	staff.Status = models.StaffStatusInactive
	require.NoError(t, repos.StaffUser.Create(staff))

	resp, body = doJSON(t, app, http.MethodGet, "/admin/dashboard", nil, authHeader(raw))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "forbidden", body["error"])
}

func TestAdminBearerTokenAccepted(t *testing.T) {
	app, repos := setupTestApp(t)
	key := seedStaff(t, repos)

	resp, _ := doJSON(t, app, http.MethodGet, "/admin/dashboard", nil, map[string]string{
		"Authorization": "Bearer " + key,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminCreateCategoryDerivesSlug(t *testing.T) {
	app, repos := setupTestApp(t)
	key := seedStaff(t, repos)

	resp, body := doJSON(t, app, http.MethodPost, "/admin/categories", map[string]string{
		"name": "Community Outreach",
	}, authHeader(key))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "community-outreach", body["slug"])

	// Same name again conflicts.
	resp, body = doJSON(t, app, http.MethodPost, "/admin/categories", map[string]string{
		"name": "Community Outreach",
	}, authHeader(key))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "conflict", body["error"])
}

func TestAdminCreatePostSuffixesDerivedSlug(t *testing.T) {
	app, repos := setupTestApp(t)
	key := seedStaff(t, repos)

	payload := map[string]interface{}{
		"title":   "Annual Report",
		"content": "body",
		"author":  "Ada",
	}
	resp, body := doJSON(t, app, http.MethodPost, "/admin/posts", payload, authHeader(key))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "annual-report", body["slug"])

	resp, body = doJSON(t, app, http.MethodPost, "/admin/posts", payload, authHeader(key))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "annual-report-2", body["slug"])
}

func TestAdminCreatePostExplicitSlugConflicts(t *testing.T) {
	app, repos := setupTestApp(t)
	key := seedStaff(t, repos)

	payload := map[string]interface{}{
		"title":   "First",
		"slug":    "fixed-slug",
		"content": "body",
		"author":  "Ada",
	}
	resp, _ := doJSON(t, app, http.MethodPost, "/admin/posts", payload, authHeader(key))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	payload["title"] = "Second"
	resp, body := doJSON(t, app, http.MethodPost, "/admin/posts", payload, authHeader(key))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "conflict", body["error"])
}

func TestAdminCreatePostRejectsDanglingCategory(t *testing.T) {
	app, repos := setupTestApp(t)
	key := seedStaff(t, repos)

	resp, body := doJSON(t, app, http.MethodPost, "/admin/posts", map[string]interface{}{
		"title":       "Orphan",
		"content":     "body",
		"author":      "Ada",
		"category_id": 4242,
	}, authHeader(key))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation_error", body["error"])
	fields := body["fields"].(map[string]interface{})
	assert.Contains(t, fields, "category_id")
}

func TestAdminUpdatePostRederivesSlugOnTitleChange(t *testing.T) {
	app, repos := setupTestApp(t)
	key := seedStaff(t, repos)

	post := &models.BlogPost{Title: "Old Title", Slug: "old-title", Content: "body", Author: "Ada", IsActive: true}
	require.NoError(t, repos.BlogPost.Create(post))

	resp, body := doJSON(t, app, http.MethodPut, fmt.Sprintf("/admin/posts/%d", post.ID), map[string]interface{}{
		"title":   "New Title",
		"content": "body",
		"author":  "Ada",
	}, authHeader(key))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "new-title", body["slug"])

	// Unchanged title keeps the stored slug stable.
	resp, body = doJSON(t, app, http.MethodPut, fmt.Sprintf("/admin/posts/%d", post.ID), map[string]interface{}{
		"title":   "New Title",
		"content": "updated body",
		"author":  "Ada",
	}, authHeader(key))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "new-title", body["slug"])
}

func TestAdminApplicationStatusLifecycle(t *testing.T) {
	app, repos := setupTestApp(t)
	key := seedStaff(t, repos)

	application := &models.VolunteerApplication{
		Name: "Ada", Email: "ada@example.org",
		AreaOfInterest: models.AreaOther,
		Status:         models.ApplicationStatusPending,
	}
	require.NoError(t, repos.Volunteer.Create(application))

	target := fmt.Sprintf("/admin/applications/%d/status", application.ID)

	resp, body := doJSON(t, app, http.MethodPatch, target, map[string]string{"status": "Archived"}, authHeader(key))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation_error", body["error"])

	resp, body = doJSON(t, app, http.MethodPatch, target, map[string]string{"status": models.ApplicationStatusContacted}, authHeader(key))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.ApplicationStatusContacted, body["status"])

	// Re-sending the current status (admin UI retry) still succeeds.
	resp, body = doJSON(t, app, http.MethodPatch, target, map[string]string{"status": models.ApplicationStatusContacted}, authHeader(key))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.ApplicationStatusContacted, body["status"])

	resp, body = doJSON(t, app, http.MethodPatch, "/admin/applications/9999/status",
		map[string]string{"status": models.ApplicationStatusContacted}, authHeader(key))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", body["error"])
}

func TestAdminMarkMessageRead(t *testing.T) {
	app, repos := setupTestApp(t)
	key := seedStaff(t, repos)

	msg := &models.ContactMessage{Name: "Ada", Email: "ada@example.org", Message: "hi"}
	require.NoError(t, repos.Contact.Create(msg))

	resp, body := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/admin/messages/%d/read", msg.ID), nil, authHeader(key))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["is_read"])

	// Marking it read again is a no-op, not a 404.
	resp, body = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/admin/messages/%d/read", msg.ID), nil, authHeader(key))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["is_read"])
}

func TestAdminDeleteSubscriber(t *testing.T) {
	app, repos := setupTestApp(t)
	key := seedStaff(t, repos)

	sub := &models.NewsletterSubscriber{Email: "a@example.org", IsActive: true}
	require.NoError(t, repos.Newsletter.Create(sub))

	resp, body := doJSON(t, app, http.MethodDelete, "/admin/subscribers/9999", nil, authHeader(key))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", body["error"])

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/admin/subscribers/%d", sub.ID), nil, authHeader(key))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestAdminDashboardCounts(t *testing.T) {
	app, repos := setupTestApp(t)
	key := seedStaff(t, repos)

	require.NoError(t, repos.Contact.Create(&models.ContactMessage{Name: "A", Email: "a@example.org", Message: "x"}))
	require.NoError(t, repos.Volunteer.Create(&models.VolunteerApplication{
		Name: "B", Email: "b@example.org",
		AreaOfInterest: models.AreaFundraising,
		Status:         models.ApplicationStatusPending,
	}))

	resp, body := doJSON(t, app, http.MethodGet, "/admin/dashboard", nil, authHeader(key))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["unread_messages"])
	assert.Equal(t, float64(1), body["pending_applications"])
	assert.Equal(t, float64(0), body["posts"])

	staff := body["staff"].(map[string]interface{})
	assert.Equal(t, "Ada", staff["name"])
}

func TestAdminCategoryDeleteKeepsContent(t *testing.T) {
	app, repos := setupTestApp(t)
	key := seedStaff(t, repos)

	category := &models.Category{Name: "News", Slug: "news"}
	require.NoError(t, repos.Category.Create(category))
	post := &models.BlogPost{Title: "Linked", Slug: "linked", Content: "x", Author: "Ada", IsActive: true, CategoryID: &category.ID}
	require.NoError(t, repos.BlogPost.Create(post))

	resp, _ := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/admin/categories/%d", category.ID), nil, authHeader(key))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	got, err := repos.BlogPost.GetByID(post.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)
}

func TestAdminCategoryNameReusableAfterDelete(t *testing.T) {
	app, repos := setupTestApp(t)
	key := seedStaff(t, repos)

	resp, body := doJSON(t, app, http.MethodPost, "/admin/categories", map[string]string{
		"name": "News",
	}, authHeader(key))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := uint(body["id"].(float64))

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/admin/categories/%d", id), nil, authHeader(key))
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// The deleted name and slug are free again.
	resp, body = doJSON(t, app, http.MethodPost, "/admin/categories", map[string]string{
		"name": "News",
	}, authHeader(key))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "news", body["slug"])
}

func TestAdminUploadMedia(t *testing.T) {
	app, repos := setupTestApp(t)
	key := seedStaff(t, repos)

	var imgBuf bytes.Buffer
	require.NoError(t, png.Encode(&imgBuf, image.NewRGBA(image.Rect(0, 0, 3, 2))))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, err = part.Write(imgBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("folder", "gallery"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/media", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-API-Key", key)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded["key"], "gallery/")
	assert.NotNil(t, decoded["url"])
	assert.Equal(t, float64(3), decoded["width"])
	assert.Equal(t, float64(2), decoded["height"])
}

func TestAdminUploadRejectsUnknownType(t *testing.T) {
	app, repos := setupTestApp(t)
	key := seedStaff(t, repos)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "malware.exe")
	require.NoError(t, err)
	_, err = part.Write([]byte("MZ"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/media", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-API-Key", key)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
