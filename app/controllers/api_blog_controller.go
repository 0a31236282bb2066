package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pleromasprings/core-api/app/repository"
	"github.com/pleromasprings/core-api/internal/pkg/viewmodel"
)

// HandleAPIListCategories returns every category. Categories are few and
// change rarely, so the whole list ships without pagination.
func HandleAPIListCategories(c *fiber.Ctx) error {
	return respondCachedList(c, "categories", func() (interface{}, error) {
		categories, err := repository.GetGlobalRepositories().Category.GetAll()
		if err != nil {
			return nil, err
		}
		out := make([]viewmodel.Category, 0, len(categories))
		for i := range categories {
			out = append(out, *viewmodel.NewCategory(&categories[i]))
		}
		return listPayload(out, int64(len(out))), nil
	})
}

// HandleAPIGetCategory returns one category by slug.
func HandleAPIGetCategory(c *fiber.Ctx) error {
	category, err := repository.GetGlobalRepositories().Category.GetBySlug(c.Params("slug"))
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Category not found")
		}
		return serverError(c, err)
	}
	return c.JSON(viewmodel.NewCategory(category))
}

// HandleAPIListPosts returns active blog posts, newest first. Supports
// ?category= (category slug), ?q= full text search and page/page_size
// pagination.
func HandleAPIListPosts(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	filter := repository.PostFilter{
		CategorySlug: c.Query("category"),
		Search:       c.Query("q"),
		Offset:       offset,
		Limit:        limit,
	}

	posts, total, err := repository.GetGlobalRepositories().BlogPost.ListActive(filter)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(listPayload(viewmodel.NewBlogPostList(posts, c.BaseURL()), total))
}

// HandleAPIGetPost returns one active post by slug, with rendered HTML.
func HandleAPIGetPost(c *fiber.Ctx) error {
	post, err := repository.GetGlobalRepositories().BlogPost.GetActiveBySlug(c.Params("slug"))
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Post not found")
		}
		return serverError(c, err)
	}
	return c.JSON(viewmodel.NewBlogPost(post, c.BaseURL()))
}
