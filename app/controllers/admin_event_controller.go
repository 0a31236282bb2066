package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pleromasprings/core-api/app/models"
	"github.com/pleromasprings/core-api/app/repository"
	"github.com/pleromasprings/core-api/internal/pkg/slugs"
)

type eventRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Slug        string    `json:"slug" validate:"omitempty,max=200"`
	Description string    `json:"description" validate:"required"`
	EventDate   time.Time `json:"event_date" validate:"required"`
	Location    string    `json:"location" validate:"required,max=255"`
	Image       string    `json:"image" validate:"omitempty,max=500"`
	IsActive    *bool     `json:"is_active"`
}

// HandleAdminListEvents returns all events, inactive ones included.
func HandleAdminListEvents(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	repo := repository.GetGlobalRepositories().Event
	events, err := repo.GetAll(offset, limit)
	if err != nil {
		return serverError(c, err)
	}
	total, err := repo.Count()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(listPayload(events, total))
}

// HandleAdminGetEvent returns one event by id regardless of active state.
func HandleAdminGetEvent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid event id")
	}
	event, err := repository.GetGlobalRepositories().Event.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Event not found")
		}
		return serverError(c, err)
	}
	return c.JSON(event)
}

// HandleAdminCreateEvent creates an event.
func HandleAdminCreateEvent(c *fiber.Ctx) error {
	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	repo := repository.GetGlobalRepositories().Event
	slug, err := slugs.Ensure(repo.SlugExists, req.Slug, req.Title)
	if err != nil {
		return serverError(c, err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	event := models.Event{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
		Image:       req.Image,
		IsActive:    isActive,
	}
	if err := repo.Create(&event); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return conflict(c, "Slug already in use")
		}
		return serverError(c, err)
	}

	invalidateListCaches()
	return c.Status(fiber.StatusCreated).JSON(event)
}

// HandleAdminUpdateEvent replaces the writable fields of an event.
func HandleAdminUpdateEvent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid event id")
	}
	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	repo := repository.GetGlobalRepositories().Event
	event, err := repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Event not found")
		}
		return serverError(c, err)
	}

	slug := event.Slug
	switch {
	case req.Slug != "":
		slug = req.Slug
	case req.Title != event.Title:
		taken := func(s string) (bool, error) { return repo.SlugExistsExceptID(s, id) }
		if slug, err = slugs.Ensure(taken, "", req.Title); err != nil {
			return serverError(c, err)
		}
	}

	event.Title = req.Title
	event.Slug = slug
	event.Description = req.Description
	event.EventDate = req.EventDate
	event.Location = req.Location
	event.Image = req.Image
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}

	if err := repo.Update(event); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return conflict(c, "Slug already in use")
		}
		return serverError(c, err)
	}

	invalidateListCaches()
	return c.JSON(event)
}

// HandleAdminDeleteEvent removes an event.
func HandleAdminDeleteEvent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid event id")
	}
	repo := repository.GetGlobalRepositories().Event
	if _, err := repo.GetByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Event not found")
		}
		return serverError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return serverError(c, err)
	}
	invalidateListCaches()
	return c.SendStatus(fiber.StatusNoContent)
}
