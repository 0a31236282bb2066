package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pleromasprings/core-api/app/repository"
	"github.com/pleromasprings/core-api/internal/pkg/viewmodel"
)

// HandleAPIListEvents returns active events ordered by event date.
func HandleAPIListEvents(c *fiber.Ctx) error {
	baseURL := c.BaseURL()
	return respondCachedList(c, "events", func() (interface{}, error) {
		events, err := repository.GetGlobalRepositories().Event.GetActive()
		if err != nil {
			return nil, err
		}
		list := viewmodel.NewEventList(events, baseURL)
		return listPayload(list, int64(len(list))), nil
	})
}

// HandleAPIGetEvent returns one active event by slug.
func HandleAPIGetEvent(c *fiber.Ctx) error {
	event, err := repository.GetGlobalRepositories().Event.GetActiveBySlug(c.Params("slug"))
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Event not found")
		}
		return serverError(c, err)
	}
	return c.JSON(viewmodel.NewEvent(event, c.BaseURL()))
}
