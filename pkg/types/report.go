// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the alltheads pipeline.
// Implements: prd001-discovery (Channel, ChannelReport, R1.1-R1.3);
//
//	prd003-history (Run, R2.2).
//
// See docs/ARCHITECTURE.md § Data Structures.
package types

import "time"

// Category names one of the report's channel groups. The eight categories
// and their order are fixed; the exported JSON always carries all of them.
type Category string

const (
	CategorySubreddits        Category = "subreddits"
	CategoryRedditCommunities Category = "reddit_communities"
	CategoryGitHubTopics      Category = "github_topics"
	CategoryTwitterHashtags   Category = "twitter_hashtags"
	CategoryDevCommunities    Category = "dev_communities"
	CategoryYouTubeChannels   Category = "youtube_channels"
	CategoryQuoraTopics       Category = "quora_topics"
	CategoryMediumTopics      Category = "medium_topics"
)

// Categories returns all categories in report order.
func Categories() []Category {
	return []Category{
		CategorySubreddits,
		CategoryRedditCommunities,
		CategoryGitHubTopics,
		CategoryTwitterHashtags,
		CategoryDevCommunities,
		CategoryYouTubeChannels,
		CategoryQuoraTopics,
		CategoryMediumTopics,
	}
}

// Channel is a single promotion channel: a name filed under a category.
// Finders return channels; the report groups them.
type Channel struct {
	Category Category `json:"category" yaml:"category"`
	Name     string   `json:"name" yaml:"name"`
}

// ChannelReport holds the promotion channels found for one niche, grouped
// by category. Field order fixes the key order of the exported JSON object.
// Every list is non-nil so empty categories serialize as [] rather than null.
type ChannelReport struct {
	Subreddits        []string `json:"subreddits" yaml:"subreddits"`
	RedditCommunities []string `json:"reddit_communities" yaml:"reddit_communities"`
	GitHubTopics      []string `json:"github_topics" yaml:"github_topics"`
	TwitterHashtags   []string `json:"twitter_hashtags" yaml:"twitter_hashtags"`
	DevCommunities    []string `json:"dev_communities" yaml:"dev_communities"`
	YouTubeChannels   []string `json:"youtube_channels" yaml:"youtube_channels"`
	QuoraTopics       []string `json:"quora_topics" yaml:"quora_topics"`
	MediumTopics      []string `json:"medium_topics" yaml:"medium_topics"`
}

// NewChannelReport returns a report with every category present and empty.
func NewChannelReport() ChannelReport {
	return ChannelReport{
		Subreddits:        []string{},
		RedditCommunities: []string{},
		GitHubTopics:      []string{},
		TwitterHashtags:   []string{},
		DevCommunities:    []string{},
		YouTubeChannels:   []string{},
		QuoraTopics:       []string{},
		MediumTopics:      []string{},
	}
}

// Normalize replaces nil category lists with empty ones. Reports decoded
// from external files pass through here so the [] invariant holds.
func (r *ChannelReport) Normalize() {
	for _, c := range Categories() {
		if r.Get(c) == nil {
			r.Set(c, []string{})
		}
	}
}

// Get returns the channel names filed under category.
func (r *ChannelReport) Get(category Category) []string {
	switch category {
	case CategorySubreddits:
		return r.Subreddits
	case CategoryRedditCommunities:
		return r.RedditCommunities
	case CategoryGitHubTopics:
		return r.GitHubTopics
	case CategoryTwitterHashtags:
		return r.TwitterHashtags
	case CategoryDevCommunities:
		return r.DevCommunities
	case CategoryYouTubeChannels:
		return r.YouTubeChannels
	case CategoryQuoraTopics:
		return r.QuoraTopics
	case CategoryMediumTopics:
		return r.MediumTopics
	}
	return nil
}

// Set replaces the channel names filed under category. Unknown categories
// are ignored.
func (r *ChannelReport) Set(category Category, names []string) {
	switch category {
	case CategorySubreddits:
		r.Subreddits = names
	case CategoryRedditCommunities:
		r.RedditCommunities = names
	case CategoryGitHubTopics:
		r.GitHubTopics = names
	case CategoryTwitterHashtags:
		r.TwitterHashtags = names
	case CategoryDevCommunities:
		r.DevCommunities = names
	case CategoryYouTubeChannels:
		r.YouTubeChannels = names
	case CategoryQuoraTopics:
		r.QuoraTopics = names
	case CategoryMediumTopics:
		r.MediumTopics = names
	}
}

// Add appends channels to their categories, preserving arrival order.
func (r *ChannelReport) Add(channels ...Channel) {
	for _, ch := range channels {
		r.Set(ch.Category, append(r.Get(ch.Category), ch.Name))
	}
}

// Total returns the number of channels across all categories.
func (r *ChannelReport) Total() int {
	n := 0
	for _, c := range Categories() {
		n += len(r.Get(c))
	}
	return n
}

// Run records one completed discovery run for the history store.
type Run struct {
	// ID is the history store's assigned identifier; zero before saving.
	ID int64 `json:"id" yaml:"id"`

	// Niche is the raw niche string the run researched.
	Niche string `json:"niche" yaml:"niche"`

	// CreatedAt is when the run started.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Duration is the wall-clock time the run took.
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Warnings holds one message per finder that failed.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Report is the aggregated channel report.
	Report ChannelReport `json:"report" yaml:"report"`
}
