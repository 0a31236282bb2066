package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/pleromasprings/core-api/app/models"
	"github.com/pleromasprings/core-api/app/repository"
	"github.com/pleromasprings/core-api/internal/pkg/slugs"
)

type categoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug" validate:"omitempty,max=100"`
}

// HandleAdminListCategories returns every category including usage-free ones.
func HandleAdminListCategories(c *fiber.Ctx) error {
	categories, err := repository.GetGlobalRepositories().Category.GetAll()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(listPayload(categories, int64(len(categories))))
}

// HandleAdminCreateCategory creates a category. The slug is derived from the
// name unless the payload carries one explicitly.
func HandleAdminCreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	repo := repository.GetGlobalRepositories().Category
	exists, err := repo.NameExists(req.Name)
	if err != nil {
		return serverError(c, err)
	}
	if exists {
		return conflict(c, "Category already exists")
	}

	slug, err := slugs.Ensure(repo.SlugExists, req.Slug, req.Name)
	if err != nil {
		return serverError(c, err)
	}

	category := models.Category{Name: req.Name, Slug: slug}
	if err := repo.Create(&category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return conflict(c, "Category already exists")
		}
		return serverError(c, err)
	}

	invalidateListCaches()
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleAdminUpdateCategory updates name and slug. The slug is re-derived
// only when the name changed and no explicit slug was sent.
func HandleAdminUpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid category id")
	}
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	repo := repository.GetGlobalRepositories().Category
	category, err := repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Category not found")
		}
		return serverError(c, err)
	}

	slug := category.Slug
	switch {
	case req.Slug != "":
		slug = req.Slug
	case req.Name != category.Name:
		taken := func(s string) (bool, error) { return repo.SlugExistsExceptID(s, id) }
		if slug, err = slugs.Ensure(taken, "", req.Name); err != nil {
			return serverError(c, err)
		}
	}

	category.Name = req.Name
	category.Slug = slug
	if err := repo.Update(category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return conflict(c, "Category already exists")
		}
		return serverError(c, err)
	}

	invalidateListCaches()
	return c.JSON(category)
}

// HandleAdminDeleteCategory removes a category. Posts and gallery items that
// referenced it keep existing with the reference cleared.
func HandleAdminDeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid category id")
	}
	repo := repository.GetGlobalRepositories().Category
	if _, err := repo.GetByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Category not found")
		}
		return serverError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return serverError(c, err)
	}
	invalidateListCaches()
	return c.SendStatus(fiber.StatusNoContent)
}
