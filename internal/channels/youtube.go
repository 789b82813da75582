// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package channels

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/eshkanala/AllTheAds/pkg/types"
)

// youtubeSearchBase is the YouTube Data API v3 search endpoint. Declared as
// a var so tests can substitute an httptest server.
var youtubeSearchBase = "https://www.googleapis.com/youtube/v3/search"

// youtubePageCap is the largest maxResults value the API accepts.
const youtubePageCap = 50

// YouTubeFinder locates channels via the YouTube Data API (R2.8). It only
// joins the finder chain when an API key is configured.
type YouTubeFinder struct {
	client *http.Client
	apiKey string
}

// NewYouTubeFinder returns a finder that searches YouTube channels using
// the given API key.
func NewYouTubeFinder(client *http.Client, apiKey string) *YouTubeFinder {
	return &YouTubeFinder{client: client, apiKey: apiKey}
}

// Name returns the finder identifier.
func (f *YouTubeFinder) Name() string { return "youtube" }

// Find searches for channels matching the niche and collects their titles,
// deduplicated and truncated to the category cap.
func (f *YouTubeFinder) Find(ctx context.Context, niche string, cfg types.DiscoveryConfig) ([]types.Channel, error) {
	limit := cfg.MaxPerCategory
	if limit <= 0 {
		limit = 20
	}
	pageSize := limit
	if pageSize > youtubePageCap {
		pageSize = youtubePageCap
	}

	params := url.Values{
		"part":       {"snippet"},
		"type":       {"channel"},
		"q":          {niche},
		"maxResults": {fmt.Sprintf("%d", pageSize)},
		"key":        {f.apiKey},
	}
	reqURL := youtubeSearchBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube search returned HTTP %d", resp.StatusCode)
	}

	var result channelSearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing youtube response: %w", err)
	}

	var titles []string
	for _, item := range result.Items {
		if item.Snippet.ChannelTitle != "" {
			titles = append(titles, item.Snippet.ChannelTitle)
		}
	}

	var found []types.Channel
	for _, title := range dedupeCap(titles, limit) {
		found = append(found, types.Channel{
			Category: types.CategoryYouTubeChannels,
			Name:     title,
		})
	}
	return found, nil
}

// YouTube Data API JSON structures.
type channelSearchResult struct {
	Items []struct {
		Snippet struct {
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}
