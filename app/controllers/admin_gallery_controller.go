package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pleromasprings/core-api/app/models"
	"github.com/pleromasprings/core-api/app/repository"
)

// galleryItemRequest carries the stored media keys plus the image metadata
// the upload endpoint reported. Image and video are both optional.
type galleryItemRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description"`
	Image       string     `json:"image" validate:"omitempty,max=500"`
	Video       string     `json:"video" validate:"omitempty,max=500"`
	ImageWidth  int        `json:"image_width"`
	ImageHeight int        `json:"image_height"`
	TakenAt     *time.Time `json:"taken_at"`
	IsPublished *bool      `json:"is_published"`
	CategoryID  *uint      `json:"category_id"`
}

// HandleAdminListGallery returns all gallery items, unpublished included.
func HandleAdminListGallery(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	repo := repository.GetGlobalRepositories().Gallery
	items, err := repo.GetAll(offset, limit)
	if err != nil {
		return serverError(c, err)
	}
	total, err := repo.Count()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(listPayload(items, total))
}

// HandleAdminCreateGalleryItem creates a gallery item.
func HandleAdminCreateGalleryItem(c *fiber.Ctx) error {
	var req galleryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}
	if ok, err := checkCategoryRef(req.CategoryID); err != nil {
		return serverError(c, err)
	} else if !ok {
		return fieldInvalid(c, "category_id", "Referenced category does not exist.")
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}
	item := models.GalleryItem{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Video:       req.Video,
		ImageWidth:  req.ImageWidth,
		ImageHeight: req.ImageHeight,
		TakenAt:     req.TakenAt,
		IsPublished: isPublished,
		CategoryID:  req.CategoryID,
	}
	if err := repository.GetGlobalRepositories().Gallery.Create(&item); err != nil {
		return serverError(c, err)
	}

	invalidateListCaches()
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleAdminUpdateGalleryItem replaces the writable fields of an item.
func HandleAdminUpdateGalleryItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid gallery item id")
	}
	var req galleryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}
	if ok, err := checkCategoryRef(req.CategoryID); err != nil {
		return serverError(c, err)
	} else if !ok {
		return fieldInvalid(c, "category_id", "Referenced category does not exist.")
	}

	repo := repository.GetGlobalRepositories().Gallery
	item, err := repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Gallery item not found")
		}
		return serverError(c, err)
	}

	item.Title = req.Title
	item.Description = req.Description
	item.Image = req.Image
	item.Video = req.Video
	item.ImageWidth = req.ImageWidth
	item.ImageHeight = req.ImageHeight
	item.TakenAt = req.TakenAt
	if req.IsPublished != nil {
		item.IsPublished = *req.IsPublished
	}
	item.CategoryID = req.CategoryID
	item.Category = nil

	if err := repo.Update(item); err != nil {
		return serverError(c, err)
	}

	invalidateListCaches()
	return c.JSON(item)
}

// HandleAdminDeleteGalleryItem removes a gallery item.
func HandleAdminDeleteGalleryItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid gallery item id")
	}
	repo := repository.GetGlobalRepositories().Gallery
	if _, err := repo.GetByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Gallery item not found")
		}
		return serverError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return serverError(c, err)
	}
	invalidateListCaches()
	return c.SendStatus(fiber.StatusNoContent)
}
