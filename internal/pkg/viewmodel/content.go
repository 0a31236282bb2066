package viewmodel

import (
	"time"

	"github.com/pleromasprings/core-api/app/models"
	"github.com/pleromasprings/core-api/internal/pkg/markdown"
	"github.com/pleromasprings/core-api/internal/pkg/mediastore"
)

// Read-side response shapes. Every struct here holds exactly the fields the
// public contract exposes; write payloads are separate request structs on
// the controllers. Relations are embedded objects on read even though
// writes only ever carry a bare category_id.

type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func NewCategory(m *models.Category) *Category {
	if m == nil {
		return nil
	}
	return &Category{ID: m.ID, Name: m.Name, Slug: m.Slug}
}

type BlogPost struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Content       string    `json:"content"`
	ContentHTML   string    `json:"content_html"`
	Excerpt       string    `json:"excerpt"`
	Author        string    `json:"author"`
	ImageURL      *string   `json:"image_url"`
	IsActive      bool      `json:"is_active"`
	Category      *Category `json:"category"`
	PublishedDate time.Time `json:"published_date"`
	UpdatedDate   time.Time `json:"updated_date"`
}

// NewBlogPost shapes a post for responses. Content ships both as the stored
// markdown and as sanitized HTML so frontends can pick either.
func NewBlogPost(m *models.BlogPost, baseURL string) BlogPost {
	return BlogPost{
		ID:            m.ID,
		Title:         m.Title,
		Slug:          m.Slug,
		Content:       m.Content,
		ContentHTML:   markdown.Render(m.Content),
		Excerpt:       m.Excerpt,
		Author:        m.Author,
		ImageURL:      mediastore.ResolveURL(m.Image, baseURL),
		IsActive:      m.IsActive,
		Category:      NewCategory(m.Category),
		PublishedDate: m.PublishedDate,
		UpdatedDate:   m.UpdatedDate,
	}
}

// NewBlogPostList shapes a listing. The HTML rendering is skipped for list
// views; clients get the excerpt and fetch the full post by slug.
func NewBlogPostList(posts []models.BlogPost, baseURL string) []BlogPost {
	out := make([]BlogPost, 0, len(posts))
	for i := range posts {
		p := NewBlogPost(&posts[i], baseURL)
		p.Content = ""
		p.ContentHTML = ""
		out = append(out, p)
	}
	return out
}

type Event struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	Location    string    `json:"location"`
	ImageURL    *string   `json:"image_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewEvent(m *models.Event, baseURL string) Event {
	return Event{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Description: m.Description,
		EventDate:   m.EventDate,
		Location:    m.Location,
		ImageURL:    mediastore.ResolveURL(m.Image, baseURL),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func NewEventList(events []models.Event, baseURL string) []Event {
	out := make([]Event, 0, len(events))
	for i := range events {
		out = append(out, NewEvent(&events[i], baseURL))
	}
	return out
}
