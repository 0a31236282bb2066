package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/pleromasprings/core-api/app/models"
	"github.com/pleromasprings/core-api/app/repository"
	"github.com/pleromasprings/core-api/internal/pkg/slugs"
)

type blogPostRequest struct {
	Title      string `json:"title" validate:"required,max=200"`
	Slug       string `json:"slug" validate:"omitempty,max=200"`
	Content    string `json:"content" validate:"required"`
	Excerpt    string `json:"excerpt"`
	Author     string `json:"author" validate:"required,max=100"`
	Image      string `json:"image" validate:"omitempty,max=500"`
	IsActive   *bool  `json:"is_active"`
	CategoryID *uint  `json:"category_id"`
}

// checkCategoryRef verifies an optional category reference. A dangling id is
// a field-level validation error, not a 500.
func checkCategoryRef(categoryID *uint) (bool, error) {
	if categoryID == nil {
		return true, nil
	}
	_, err := repository.GetGlobalRepositories().Category.GetByID(*categoryID)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// HandleAdminListPosts returns all posts, inactive ones included.
func HandleAdminListPosts(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	repo := repository.GetGlobalRepositories().BlogPost
	posts, err := repo.GetAll(offset, limit)
	if err != nil {
		return serverError(c, err)
	}
	total, err := repo.Count()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(listPayload(posts, total))
}

// HandleAdminGetPost returns one post by id regardless of active state.
func HandleAdminGetPost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid post id")
	}
	post, err := repository.GetGlobalRepositories().BlogPost.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Post not found")
		}
		return serverError(c, err)
	}
	return c.JSON(post)
}

// HandleAdminCreatePost creates a blog post.
func HandleAdminCreatePost(c *fiber.Ctx) error {
	var req blogPostRequest
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

	repo := repository.GetGlobalRepositories().BlogPost
	slug, err := slugs.Ensure(repo.SlugExists, req.Slug, req.Title)
	if err != nil {
		return serverError(c, err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	post := models.BlogPost{
		Title:      req.Title,
		Slug:       slug,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		Author:     req.Author,
		Image:      req.Image,
		IsActive:   isActive,
		CategoryID: req.CategoryID,
	}
	if err := repo.Create(&post); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return conflict(c, "Slug already in use")
		}
		return serverError(c, err)
	}

	invalidateListCaches()
	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleAdminUpdatePost replaces the writable fields of a post. The slug is
// re-derived only when the title changed and no explicit slug was sent.
func HandleAdminUpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid post id")
	}
	var req blogPostRequest
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

	repo := repository.GetGlobalRepositories().BlogPost
	post, err := repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Post not found")
		}
		return serverError(c, err)
	}

	slug := post.Slug
	switch {
	case req.Slug != "":
		slug = req.Slug
	case req.Title != post.Title:
		taken := func(s string) (bool, error) { return repo.SlugExistsExceptID(s, id) }
		if slug, err = slugs.Ensure(taken, "", req.Title); err != nil {
			return serverError(c, err)
		}
	}

	post.Title = req.Title
	post.Slug = slug
	post.Content = req.Content
	post.Excerpt = req.Excerpt
	post.Author = req.Author
	post.Image = req.Image
	if req.IsActive != nil {
		post.IsActive = *req.IsActive
	}
	post.CategoryID = req.CategoryID
	post.Category = nil

	if err := repo.Update(post); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return conflict(c, "Slug already in use")
		}
		return serverError(c, err)
	}

	invalidateListCaches()
	return c.JSON(post)
}

// HandleAdminDeletePost removes a post.
func HandleAdminDeletePost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid post id")
	}
	repo := repository.GetGlobalRepositories().BlogPost
	if _, err := repo.GetByID(id); err != nil {
		if isNotFound(err) {
			return notFound(c, "Post not found")
		}
		return serverError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return serverError(c, err)
	}
	invalidateListCaches()
	return c.SendStatus(fiber.StatusNoContent)
}
