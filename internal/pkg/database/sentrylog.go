package database

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pleromasprings/core-api/internal/pkg/env"
)

// sentryLogger wraps the default GORM logger and reports query errors to
// Sentry. Record-not-found is a normal outcome, not an error.
type sentryLogger struct {
	gormlogger.Interface
}

// newSentryLogger returns nil when SENTRY_DSN is not configured, leaving
// GORM on its default logger.
func newSentryLogger() gormlogger.Interface {
	dsn := env.GetEnv("SENTRY_DSN", "")
	if dsn == "" {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		AttachStacktrace: true,
		Environment:      env.GetEnv("APP_ENV", "prod"),
	}); err != nil {
		log.Printf("sentry init failed, continuing without: %v", err)
		return nil
	}

	return &sentryLogger{Interface: gormlogger.Default.LogMode(gormlogger.Warn)}
}

func (l *sentryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, gorm.ErrDuplicatedKey) {
		sentry.CaptureException(err)
	}
	l.Interface.Trace(ctx, begin, fc, err)
}
