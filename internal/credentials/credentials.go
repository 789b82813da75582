// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package credentials resolves API credentials for the finders.
// Implements: prd004-config (R2.1-R2.4); docs/ARCHITECTURE.md § Configuration.
//
// Resolution order for each credential: process environment (optionally
// populated from a local .env file at startup), then the config file value,
// then the fixed placeholder the tool has always shipped with. Placeholders
// are rejected by the APIs, which downgrades the affected finder to a
// warning instead of blocking the run.
package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names the tool has always honored in .env files.
const (
	EnvRedditClientID     = "REDDIT_CLIENT_ID"
	EnvRedditClientSecret = "REDDIT_CLIENT_SECRET"
	EnvTwitterBearerToken = "TWITTER_BEARER_TOKEN"
	EnvYouTubeAPIKey      = "YOUTUBE_API_KEY"
)

// Placeholder credential values for unconfigured installs.
const (
	PlaceholderRedditClientID     = "REDDIT_CLIENT_ID"
	PlaceholderRedditClientSecret = "REDDIT_CLIENT_SECRET"
	PlaceholderTwitterBearerToken = "TWITTER_BEARER_TOKEN"
)

// LoadDotenv populates the process environment from ./.env when the file
// exists. A missing file is not an error. Variables already set in the
// environment are never overridden.
func LoadDotenv() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// Resolve returns the first non-empty value among the environment variable
// envKey, the configured value, and the fallback.
func Resolve(envKey, configured, fallback string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if configured != "" {
		return configured
	}
	return fallback
}
