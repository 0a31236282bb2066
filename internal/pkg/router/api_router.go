package router

import (
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redisstorage "github.com/gofiber/storage/redis"

	"github.com/pleromasprings/core-api/app/controllers"
	"github.com/pleromasprings/core-api/internal/pkg/cache"
	"github.com/pleromasprings/core-api/internal/pkg/env"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		Storage:    newLimiterStorage(),
	}))

	v1 := api.Group("/v1")

	v1.Get("/categories", controllers.HandleAPIListCategories)
	v1.Get("/categories/:slug", controllers.HandleAPIGetCategory)

	v1.Get("/posts", controllers.HandleAPIListPosts)
	v1.Get("/posts/:slug", controllers.HandleAPIGetPost)

	v1.Get("/events", controllers.HandleAPIListEvents)
	v1.Get("/events/:slug", controllers.HandleAPIGetEvent)

	v1.Get("/resources", controllers.HandleAPIListResources)
	v1.Get("/resources/:id", controllers.HandleAPIGetResource)

	v1.Get("/team-members", controllers.HandleAPIListTeam)

	v1.Get("/gallery-items", controllers.HandleAPIListGallery)
	v1.Get("/gallery-items/:id", controllers.HandleAPIGetGalleryItem)

	v1.Get("/impact-stats", controllers.HandleAPIListImpactStats)

	v1.Get("/stories", controllers.HandleAPIListStories)
	v1.Get("/stories/:id", controllers.HandleAPIGetStory)

	v1.Post("/contact", controllers.HandleAPIContact)
	v1.Post("/subscribe", controllers.HandleAPISubscribe)
	v1.Post("/volunteer", controllers.HandleAPIVolunteer)
	v1.Post("/partner", controllers.HandleAPIPartner)
}

// newLimiterStorage backs the rate limiter with Redis so limits hold across
// instances. When Redis is down the limiter falls back to its in-memory
// store rather than refusing to start.
func newLimiterStorage() fiber.Storage {
	if !cache.Available() {
		return nil
	}

	host := "localhost"
	port := 6379
	password := env.GetEnv("CACHE_PASSWORD", "")

	client := cache.GetClient()
	if client != nil {
		if h, p, err := net.SplitHostPort(client.Options().Addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		if p := client.Options().Password; p != "" {
			password = p
		}
	}

	// Database 1 keeps limiter buckets out of the content cache in DB 0.
	return redisstorage.New(redisstorage.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1,
		Reset:    false,
	})
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
