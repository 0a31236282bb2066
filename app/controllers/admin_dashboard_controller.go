package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pleromasprings/core-api/app/models"
	"github.com/pleromasprings/core-api/app/repository"
	"github.com/pleromasprings/core-api/internal/pkg/staffcontext"
)

// HandleAdminDashboard returns the entity counts the staff overview shows,
// including the actionable ones (unread messages, pending applications).
func HandleAdminDashboard(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	counts := map[string]func() (int64, error){
		"categories":      repos.Category.Count,
		"posts":           repos.BlogPost.Count,
		"events":          repos.Event.Count,
		"messages":        repos.Contact.Count,
		"unread_messages": repos.Contact.CountUnread,
		"subscribers":     repos.Newsletter.Count,
		"resources":       repos.Resource.Count,
		"applications":    repos.Volunteer.Count,
		"inquiries":       repos.Partnership.Count,
		"team_members":    repos.TeamMember.Count,
		"gallery_items":   repos.Gallery.Count,
		"impact_stats":    repos.ImpactStat.Count,
		"stories":         repos.Story.Count,
	}

	out := make(fiber.Map, len(counts)+2)
	for name, count := range counts {
		n, err := count()
		if err != nil {
			return serverError(c, err)
		}
		out[name] = n
	}

	pending, err := repos.Volunteer.CountByStatus(models.ApplicationStatusPending)
	if err != nil {
		return serverError(c, err)
	}
	out["pending_applications"] = pending

	staff := staffcontext.Get(c)
	out["staff"] = fiber.Map{"id": staff.StaffID, "name": staff.Name}

	return c.JSON(out)
}
