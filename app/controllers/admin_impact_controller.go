package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pleromasprings/core-api/app/models"
	"github.com/pleromasprings/core-api/app/repository"
)

type impactStatRequest struct {
	Title string `json:"title" validate:"required,max=100"`
	Value string `json:"value" validate:"required,max=50"`
	Icon  string `json:"icon" validate:"omitempty,max=500"`
	Order int    `json:"order"`
}

// HandleAdminListImpactStats returns all impact stats in display order.
func HandleAdminListImpactStats(c *fiber.Ctx) error {
	stats, err := repository.GetGlobalRepositories().ImpactStat.GetAll()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(listPayload(stats, int64(len(stats))))
}

// HandleAdminCreateImpactStat adds a homepage figure.
func HandleAdminCreateImpactStat(c *fiber.Ctx) error {
	var req impactStatRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	stat := models.ImpactStat{
		Title: req.Title,
		Value: req.Value,
		Icon:  req.Icon,
		Order: req.Order,
	}
	if err := repository.GetGlobalRepositories().ImpactStat.Create(&stat); err != nil {
		return serverError(c, err)
	}

	invalidateListCaches()
	return c.Status(fiber.StatusCreated).JSON(stat)
}

// HandleAdminUpdateImpactStat replaces the writable fields of a figure.
func HandleAdminUpdateImpactStat(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid impact stat id")
	}
	var req impactStatRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	repo := repository.GetGlobalRepositories().ImpactStat
	stat, err := repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Impact stat not found")
		}
		return serverError(c, err)
	}

	stat.Title = req.Title
	stat.Value = req.Value
	stat.Icon = req.Icon
	stat.Order = req.Order
	if err := repo.Update(stat); err != nil {
		return serverError(c, err)
	}

	invalidateListCaches()
	return c.JSON(stat)
}

// HandleAdminDeleteImpactStat removes a figure.
func HandleAdminDeleteImpactStat(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid impact stat id")
	}
	repo := repository.GetGlobalRepositories().ImpactStat
	if _, err := repo.GetByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Impact stat not found")
		}
		return serverError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return serverError(c, err)
	}
	invalidateListCaches()
	return c.SendStatus(fiber.StatusNoContent)
}

type storyRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Location    string `json:"location" validate:"max=100"`
	Story       string `json:"story" validate:"required"`
	Image       string `json:"image" validate:"omitempty,max=500"`
	IsPublished *bool  `json:"is_published"`
}

// HandleAdminListStories returns all stories, unpublished included.
func HandleAdminListStories(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	repo := repository.GetGlobalRepositories().Story
	stories, err := repo.GetAll(offset, limit)
	if err != nil {
		return serverError(c, err)
	}
	total, err := repo.Count()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(listPayload(stories, total))
}

// HandleAdminCreateStory adds a transformation story.
func HandleAdminCreateStory(c *fiber.Ctx) error {
	var req storyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}
	story := models.TransformationStory{
		Name:        req.Name,
		Location:    req.Location,
		Story:       req.Story,
		Image:       req.Image,
		IsPublished: isPublished,
	}
	if err := repository.GetGlobalRepositories().Story.Create(&story); err != nil {
		return serverError(c, err)
	}

	invalidateListCaches()
	return c.Status(fiber.StatusCreated).JSON(story)
}

// HandleAdminUpdateStory replaces the writable fields of a story.
func HandleAdminUpdateStory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid story id")
	}
	var req storyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	repo := repository.GetGlobalRepositories().Story
	story, err := repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Story not found")
		}
		return serverError(c, err)
	}

	story.Name = req.Name
	story.Location = req.Location
	story.Story = req.Story
	story.Image = req.Image
	if req.IsPublished != nil {
		story.IsPublished = *req.IsPublished
	}
	if err := repo.Update(story); err != nil {
		return serverError(c, err)
	}

	invalidateListCaches()
	return c.JSON(story)
}

// HandleAdminDeleteStory removes a story.
func HandleAdminDeleteStory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid story id")
	}
	repo := repository.GetGlobalRepositories().Story
	if _, err := repo.GetByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Story not found")
		}
		return serverError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return serverError(c, err)
	}
	invalidateListCaches()
	return c.SendStatus(fiber.StatusNoContent)
}
