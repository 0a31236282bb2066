package mediastore

import (
	"github.com/pleromasprings/core-api/internal/pkg/env"
)

// Config holds media storage configuration.
type Config struct {
	Driver string // "local" or "s3"

	// Local driver
	Root       string // directory uploads are written to
	PublicPath string // URL path the app serves Root under

	// S3 driver
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	EndpointURL     string // optional, for S3-compatible services
	PublicBaseURL   string // optional CDN/bucket URL used for resolution
}

// LoadConfig reads media storage configuration from the environment.
func LoadConfig() Config {
	return Config{
		Driver:          env.GetEnv("MEDIA_DRIVER", "local"),
		Root:            env.GetEnv("MEDIA_ROOT", "./media"),
		PublicPath:      env.GetEnv("MEDIA_PUBLIC_PATH", "/media"),
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		Region:          env.GetEnv("S3_REGION", "us-east-1"),
		BucketName:      env.GetEnv("S3_BUCKET_NAME", ""),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
		PublicBaseURL:   env.GetEnv("S3_PUBLIC_BASE_URL", ""),
	}
}
