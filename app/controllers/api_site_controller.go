package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pleromasprings/core-api/app/repository"
	"github.com/pleromasprings/core-api/internal/pkg/viewmodel"
)

// Read-only endpoints for the remaining site content. The listings are
// short and unpaginated, so they go through the list cache.

// HandleAPIListResources returns public downloadable resources.
func HandleAPIListResources(c *fiber.Ctx) error {
	baseURL := c.BaseURL()
	return respondCachedList(c, "resources", func() (interface{}, error) {
		resources, err := repository.GetGlobalRepositories().Resource.GetPublic()
		if err != nil {
			return nil, err
		}
		list := viewmodel.NewResourceList(resources, baseURL)
		return listPayload(list, int64(len(list))), nil
	})
}

// HandleAPIGetResource returns one public resource by id. Private resources
// are indistinguishable from missing ones.
func HandleAPIGetResource(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid resource id")
	}
	resource, err := repository.GetGlobalRepositories().Resource.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Resource not found")
		}
		return serverError(c, err)
	}
	if !resource.IsPublic {
		return notFound(c, "Resource not found")
	}
	return c.JSON(viewmodel.NewResource(resource, c.BaseURL()))
}

// HandleAPIListTeam returns active team members in display order.
func HandleAPIListTeam(c *fiber.Ctx) error {
	baseURL := c.BaseURL()
	return respondCachedList(c, "team", func() (interface{}, error) {
		members, err := repository.GetGlobalRepositories().TeamMember.GetActive()
		if err != nil {
			return nil, err
		}
		list := viewmodel.NewTeamMemberList(members, baseURL)
		return listPayload(list, int64(len(list))), nil
	})
}

// HandleAPIListGallery returns published gallery items, newest first.
func HandleAPIListGallery(c *fiber.Ctx) error {
	baseURL := c.BaseURL()
	return respondCachedList(c, "gallery", func() (interface{}, error) {
		items, err := repository.GetGlobalRepositories().Gallery.GetPublished()
		if err != nil {
			return nil, err
		}
		list := viewmodel.NewGalleryItemList(items, baseURL)
		return listPayload(list, int64(len(list))), nil
	})
}

// HandleAPIGetGalleryItem returns one published gallery item by id.
func HandleAPIGetGalleryItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid gallery item id")
	}
	item, err := repository.GetGlobalRepositories().Gallery.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Gallery item not found")
		}
		return serverError(c, err)
	}
	if !item.IsPublished {
		return notFound(c, "Gallery item not found")
	}
	return c.JSON(viewmodel.NewGalleryItem(item, c.BaseURL()))
}

// HandleAPIListImpactStats returns homepage impact figures in display order.
func HandleAPIListImpactStats(c *fiber.Ctx) error {
	baseURL := c.BaseURL()
	return respondCachedList(c, "impact", func() (interface{}, error) {
		stats, err := repository.GetGlobalRepositories().ImpactStat.GetAll()
		if err != nil {
			return nil, err
		}
		list := viewmodel.NewImpactStatList(stats, baseURL)
		return listPayload(list, int64(len(list))), nil
	})
}

// HandleAPIListStories returns published transformation stories.
func HandleAPIListStories(c *fiber.Ctx) error {
	baseURL := c.BaseURL()
	return respondCachedList(c, "stories", func() (interface{}, error) {
		stories, err := repository.GetGlobalRepositories().Story.GetPublished()
		if err != nil {
			return nil, err
		}
		list := viewmodel.NewTransformationStoryList(stories, baseURL)
		return listPayload(list, int64(len(list))), nil
	})
}

// HandleAPIGetStory returns one published story by id.
func HandleAPIGetStory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid story id")
	}
	story, err := repository.GetGlobalRepositories().Story.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Story not found")
		}
		return serverError(c, err)
	}
	if !story.IsPublished {
		return notFound(c, "Story not found")
	}
	return c.JSON(viewmodel.NewTransformationStory(story, c.BaseURL()))
}
