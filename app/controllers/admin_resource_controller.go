package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pleromasprings/core-api/app/models"
	"github.com/pleromasprings/core-api/app/repository"
)

type resourceRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	File        string `json:"file" validate:"required,max=500"`
	IsPublic    *bool  `json:"is_public"`
}

// HandleAdminListResources returns all resources, private ones included.
func HandleAdminListResources(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	repo := repository.GetGlobalRepositories().Resource
	resources, err := repo.GetAll(offset, limit)
	if err != nil {
		return serverError(c, err)
	}
	total, err := repo.Count()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(listPayload(resources, total))
}

// HandleAdminCreateResource registers an uploaded file as a resource.
func HandleAdminCreateResource(c *fiber.Ctx) error {
	var req resourceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	resource := models.Resource{
		Title:       req.Title,
		Description: req.Description,
		File:        req.File,
		IsPublic:    isPublic,
	}
	if err := repository.GetGlobalRepositories().Resource.Create(&resource); err != nil {
		return serverError(c, err)
	}

	invalidateListCaches()
	return c.Status(fiber.StatusCreated).JSON(resource)
}

// HandleAdminUpdateResource replaces the writable fields of a resource.
func HandleAdminUpdateResource(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid resource id")
	}
	var req resourceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	repo := repository.GetGlobalRepositories().Resource
	resource, err := repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Resource not found")
		}
		return serverError(c, err)
	}

	resource.Title = req.Title
	resource.Description = req.Description
	resource.File = req.File
	if req.IsPublic != nil {
		resource.IsPublic = *req.IsPublic
	}
	if err := repo.Update(resource); err != nil {
		return serverError(c, err)
	}

	invalidateListCaches()
	return c.JSON(resource)
}

// HandleAdminDeleteResource removes a resource record. The stored file is
// cleaned up separately through the media endpoints.
func HandleAdminDeleteResource(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid resource id")
	}
	repo := repository.GetGlobalRepositories().Resource
	if _, err := repo.GetByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Resource not found")
		}
		return serverError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return serverError(c, err)
	}
	invalidateListCaches()
	return c.SendStatus(fiber.StatusNoContent)
}
