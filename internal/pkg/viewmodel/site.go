package viewmodel

import (
	"time"

	"github.com/pleromasprings/core-api/app/models"
	"github.com/pleromasprings/core-api/internal/pkg/mediastore"
)

type Resource struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FileURL     *string   `json:"file_url"`
	IsPublic    bool      `json:"is_public"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func NewResource(m *models.Resource, baseURL string) Resource {
	return Resource{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		FileURL:     mediastore.ResolveURL(m.File, baseURL),
		IsPublic:    m.IsPublic,
		UploadedAt:  m.UploadedAt,
	}
}

func NewResourceList(resources []models.Resource, baseURL string) []Resource {
	out := make([]Resource, 0, len(resources))
	for i := range resources {
		out = append(out, NewResource(&resources[i], baseURL))
	}
	return out
}

type TeamMember struct {
	ID                uint    `json:"id"`
	Name              string  `json:"name"`
	Role              string  `json:"role"`
	Bio               string  `json:"bio"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	LinkedinURL       string  `json:"linkedin_url"`
	TwitterURL        string  `json:"twitter_url"`
	Email             string  `json:"email"`
	Order             int     `json:"order"`
	IsActive          bool    `json:"is_active"`
}

func NewTeamMember(m *models.TeamMember, baseURL string) TeamMember {
	return TeamMember{
		ID:                m.ID,
		Name:              m.Name,
		Role:              m.Role,
		Bio:               m.Bio,
		ProfilePictureURL: mediastore.ResolveURL(m.ProfilePicture, baseURL),
		LinkedinURL:       m.LinkedinURL,
		TwitterURL:        m.TwitterURL,
		Email:             m.Email,
		Order:             m.Order,
		IsActive:          m.IsActive,
	}
}

func NewTeamMemberList(members []models.TeamMember, baseURL string) []TeamMember {
	out := make([]TeamMember, 0, len(members))
	for i := range members {
		out = append(out, NewTeamMember(&members[i], baseURL))
	}
	return out
}

type GalleryItem struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    *string    `json:"image_url"`
	VideoURL    *string    `json:"video_url"`
	ImageWidth  int        `json:"image_width"`
	ImageHeight int        `json:"image_height"`
	TakenAt     *time.Time `json:"taken_at"`
	IsPublished bool       `json:"is_published"`
	Category    *Category  `json:"category"`
	UploadDate  time.Time  `json:"upload_date"`
}

func NewGalleryItem(m *models.GalleryItem, baseURL string) GalleryItem {
	return GalleryItem{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    mediastore.ResolveURL(m.Image, baseURL),
		VideoURL:    mediastore.ResolveURL(m.Video, baseURL),
		ImageWidth:  m.ImageWidth,
		ImageHeight: m.ImageHeight,
		TakenAt:     m.TakenAt,
		IsPublished: m.IsPublished,
		Category:    NewCategory(m.Category),
		UploadDate:  m.UploadDate,
	}
}

func NewGalleryItemList(items []models.GalleryItem, baseURL string) []GalleryItem {
	out := make([]GalleryItem, 0, len(items))
	for i := range items {
		out = append(out, NewGalleryItem(&items[i], baseURL))
	}
	return out
}

type ImpactStat struct {
	ID      uint    `json:"id"`
	Title   string  `json:"title"`
	Value   string  `json:"value"`
	IconURL *string `json:"icon_url"`
	Order   int     `json:"order"`
}

func NewImpactStat(m *models.ImpactStat, baseURL string) ImpactStat {
	return ImpactStat{
		ID:      m.ID,
		Title:   m.Title,
		Value:   m.Value,
		IconURL: mediastore.ResolveURL(m.Icon, baseURL),
		Order:   m.Order,
	}
}

func NewImpactStatList(stats []models.ImpactStat, baseURL string) []ImpactStat {
	out := make([]ImpactStat, 0, len(stats))
	for i := range stats {
		out = append(out, NewImpactStat(&stats[i], baseURL))
	}
	return out
}

type TransformationStory struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Story       string    `json:"story"`
	ImageURL    *string   `json:"image_url"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTransformationStory(m *models.TransformationStory, baseURL string) TransformationStory {
	return TransformationStory{
		ID:          m.ID,
		Name:        m.Name,
		Location:    m.Location,
		Story:       m.Story,
		ImageURL:    mediastore.ResolveURL(m.Image, baseURL),
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
	}
}

func NewTransformationStoryList(stories []models.TransformationStory, baseURL string) []TransformationStory {
	out := make([]TransformationStory, 0, len(stories))
	for i := range stories {
		out = append(out, NewTransformationStory(&stories[i], baseURL))
	}
	return out
}
