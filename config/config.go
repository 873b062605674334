// Package config loads the service configuration from the environment once
// at startup. The resulting struct is passed into constructors so the
// services never read environment variables themselves.
package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port string

	UserTable      string // DynamoDB table holding player accounts
	UserEmailIndex string // GSI on the user table keyed by email
	FeedTable      string // DynamoDB table holding feed entries

	VideoBucket      string // S3 bucket for uploaded videos
	CloudFrontDomain string // domain videos are served from

	JWTSecret string
}

// Load reads the configuration from the environment. Variables without a
// listed default are required.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		UserTable:        os.Getenv("DYNAMODB_PLAYER_TABLE"),
		UserEmailIndex:   getEnv("DYNAMODB_PLAYER_EMAIL_INDEX", "email-index"),
		FeedTable:        os.Getenv("DYNAMODB_FEED_TABLE"),
		VideoBucket:      os.Getenv("AWS_BUCKET_NAME"),
		CloudFrontDomain: os.Getenv("CLOUDFRONT_DOMAIN"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
	}

	required := map[string]string{
		"DYNAMODB_PLAYER_TABLE": cfg.UserTable,
		"DYNAMODB_FEED_TABLE":   cfg.FeedTable,
		"AWS_BUCKET_NAME":       cfg.VideoBucket,
		"CLOUDFRONT_DOMAIN":     cfg.CloudFrontDomain,
		"JWT_SECRET":            cfg.JWTSecret,
	}
	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable %s", name)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
