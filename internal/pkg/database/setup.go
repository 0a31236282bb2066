package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/pleromasprings/core-api/app/models"
	"github.com/pleromasprings/core-api/internal/pkg/env"
)

var DB *gorm.DB

const maxRetries = 5
const retryDelay = 5 * time.Second

// SetupDatabase connects to MySQL with retries and migrates the content
// schema. TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey regardless of driver; the repositories rely on that
// as the authoritative duplicate signal.
func SetupDatabase() {
	var err error
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", ""),
	)

	cfg := &gorm.Config{
		TranslateError: true,
	}
	if sentryLogger := newSentryLogger(); sentryLogger != nil {
		cfg.Logger = sentryLogger
	}

	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                      dsn,
			DefaultStringSize:        256,
			DisableDatetimePrecision: true,
			DontSupportRenameIndex:   true,
			DontSupportRenameColumn:  true,
		}), cfg)
		if err == nil {
			if err := Migrate(DB); err != nil {
				panic(err)
			}
			return
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

// Migrate creates or updates the tables for all content models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.BlogPost{},
		&models.Event{},
		&models.ContactMessage{},
		&models.NewsletterSubscriber{},
		&models.Resource{},
		&models.VolunteerApplication{},
		&models.PartnershipInquiry{},
		&models.TeamMember{},
		&models.GalleryItem{},
		&models.ImpactStat{},
		&models.TransformationStory{},
		&models.StaffUser{},
	)
}

// GetDB returns the global database handle.
func GetDB() *gorm.DB {
	return DB
}
