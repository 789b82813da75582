// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for finders that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with every HTTP request
	// (e.g. "alltheads/0.1"). Reddit rejects token requests without one.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// RedditCredentials holds the OAuth2 client-credentials pair for the Reddit
// API. Unconfigured installs fall back to placeholder strings, which Reddit
// rejects; the finder then reports a warning and its categories stay empty.
type RedditCredentials struct {
	ClientID     string `json:"client_id" yaml:"client_id"`
	ClientSecret string `json:"client_secret,omitempty" yaml:"client_secret,omitempty"`
}

// DiscoveryConfig holds settings for the channel discovery pipeline.
// Per prd001-discovery R5.1-R5.5.
type DiscoveryConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxPerCategory caps each category's channel list (default 20).
	MaxPerCategory int `json:"max_per_category" yaml:"max_per_category"`

	// InterFinderDelay is the pause between consecutive finders (default 0).
	InterFinderDelay time.Duration `json:"inter_finder_delay" yaml:"inter_finder_delay"`

	// Reddit is the OAuth2 client-credentials pair for subreddit search.
	Reddit RedditCredentials `json:"reddit" yaml:"reddit"`

	// TwitterBearerToken authenticates the recent-tweet search.
	TwitterBearerToken string `json:"twitter_bearer_token,omitempty" yaml:"twitter_bearer_token,omitempty"`

	// YouTubeAPIKey authenticates the channel search. Empty disables the
	// YouTube finder and leaves the category empty.
	YouTubeAPIKey string `json:"youtube_api_key,omitempty" yaml:"youtube_api_key,omitempty"`
}

// HistoryConfig holds settings for the run history store.
// Per prd003-history R1.1, R1.2.
type HistoryConfig struct {
	// Path is the SQLite database file (default "alltheads.db").
	Path string `json:"path" yaml:"path"`

	// Disabled turns off run recording entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// Config groups all configuration for the alltheads CLI.
type Config struct {
	Discovery DiscoveryConfig `json:"discovery" yaml:"discovery"`
	History   HistoryConfig   `json:"history" yaml:"history"`
}
