package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pleromasprings/core-api/app/controllers"
	"github.com/pleromasprings/core-api/internal/pkg/middleware"
)

type AdminRouter struct {
}

// InstallRouter registers the staff API. Every route sits behind the API key
// middleware; there is no anonymous admin surface.
func (h AdminRouter) InstallRouter(app *fiber.App) {
	admin := app.Group("/admin", middleware.APIKeyAuthMiddleware())

	admin.Get("/dashboard", controllers.HandleAdminDashboard)

	admin.Get("/categories", controllers.HandleAdminListCategories)
	admin.Post("/categories", controllers.HandleAdminCreateCategory)
	admin.Put("/categories/:id", controllers.HandleAdminUpdateCategory)
	admin.Delete("/categories/:id", controllers.HandleAdminDeleteCategory)

	admin.Get("/posts", controllers.HandleAdminListPosts)
	admin.Post("/posts", controllers.HandleAdminCreatePost)
	admin.Get("/posts/:id", controllers.HandleAdminGetPost)
	admin.Put("/posts/:id", controllers.HandleAdminUpdatePost)
	admin.Delete("/posts/:id", controllers.HandleAdminDeletePost)

	admin.Get("/events", controllers.HandleAdminListEvents)
	admin.Post("/events", controllers.HandleAdminCreateEvent)
	admin.Get("/events/:id", controllers.HandleAdminGetEvent)
	admin.Put("/events/:id", controllers.HandleAdminUpdateEvent)
	admin.Delete("/events/:id", controllers.HandleAdminDeleteEvent)

	admin.Get("/resources", controllers.HandleAdminListResources)
	admin.Post("/resources", controllers.HandleAdminCreateResource)
	admin.Put("/resources/:id", controllers.HandleAdminUpdateResource)
	admin.Delete("/resources/:id", controllers.HandleAdminDeleteResource)

	admin.Get("/team-members", controllers.HandleAdminListTeam)
	admin.Post("/team-members", controllers.HandleAdminCreateTeamMember)
	admin.Put("/team-members/:id", controllers.HandleAdminUpdateTeamMember)
	admin.Delete("/team-members/:id", controllers.HandleAdminDeleteTeamMember)

	admin.Get("/gallery-items", controllers.HandleAdminListGallery)
	admin.Post("/gallery-items", controllers.HandleAdminCreateGalleryItem)
	admin.Put("/gallery-items/:id", controllers.HandleAdminUpdateGalleryItem)
	admin.Delete("/gallery-items/:id", controllers.HandleAdminDeleteGalleryItem)

	admin.Get("/impact-stats", controllers.HandleAdminListImpactStats)
	admin.Post("/impact-stats", controllers.HandleAdminCreateImpactStat)
	admin.Put("/impact-stats/:id", controllers.HandleAdminUpdateImpactStat)
	admin.Delete("/impact-stats/:id", controllers.HandleAdminDeleteImpactStat)

	admin.Get("/stories", controllers.HandleAdminListStories)
	admin.Post("/stories", controllers.HandleAdminCreateStory)
	admin.Put("/stories/:id", controllers.HandleAdminUpdateStory)
	admin.Delete("/stories/:id", controllers.HandleAdminDeleteStory)

	admin.Get("/messages", controllers.HandleAdminListMessages)
	admin.Patch("/messages/:id/read", controllers.HandleAdminMarkMessageRead)
	admin.Delete("/messages/:id", controllers.HandleAdminDeleteMessage)

	admin.Get("/subscribers", controllers.HandleAdminListSubscribers)
	admin.Delete("/subscribers/:id", controllers.HandleAdminDeleteSubscriber)

	admin.Get("/applications", controllers.HandleAdminListApplications)
	admin.Get("/applications/:id", controllers.HandleAdminGetApplication)
	admin.Patch("/applications/:id/status", controllers.HandleAdminUpdateApplicationStatus)
	admin.Delete("/applications/:id", controllers.HandleAdminDeleteApplication)

	admin.Get("/inquiries", controllers.HandleAdminListInquiries)
	admin.Get("/inquiries/:id", controllers.HandleAdminGetInquiry)
	admin.Patch("/inquiries/:id/status", controllers.HandleAdminUpdateInquiryStatus)
	admin.Delete("/inquiries/:id", controllers.HandleAdminDeleteInquiry)

	admin.Post("/media", controllers.HandleAdminUploadMedia)
	admin.Delete("/media", controllers.HandleAdminDeleteMedia)
}

func NewAdminRouter() *AdminRouter {
	return &AdminRouter{}
}
