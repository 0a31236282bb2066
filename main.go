package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pleromasprings/core-api/app/repository"
	"github.com/pleromasprings/core-api/internal/pkg/cache"
	"github.com/pleromasprings/core-api/internal/pkg/database"
	"github.com/pleromasprings/core-api/internal/pkg/env"
	"github.com/pleromasprings/core-api/internal/pkg/mediastore"
	"github.com/pleromasprings/core-api/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())
	if err := mediastore.Setup(); err != nil {
		log.Fatalf("media storage setup failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 25 << 20,
	})

	app.Use(recover.New(), logger.New())

	app.Get("/metrics", monitor.New())

	// The local driver serves uploads from the app itself; S3 media resolves
	// to bucket URLs and needs no route here.
	cfg := mediastore.LoadConfig()
	if cfg.Driver != "s3" {
		app.Static(cfg.PublicPath, cfg.Root, fiber.Static{
			CacheDuration: 10 * time.Second,
			MaxAge:        604800,
		})
	}

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	router.InstallRouter(app)

	return app
}
