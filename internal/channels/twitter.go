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

// twitterSearchBase is the Twitter v2 recent-tweet search endpoint.
// Declared as a var so tests can substitute an httptest server.
var twitterSearchBase = "https://api.twitter.com/2/tweets/search/recent"

// twitterMaxResults is the page size requested from recent search; hashtags
// are harvested from however many tweets come back.
const twitterMaxResults = 100

// TwitterFinder harvests hashtags from recent tweets matching the niche
// (R2.6). Requests authenticate with an app-only bearer token.
type TwitterFinder struct {
	client *http.Client
	token  string
}

// NewTwitterFinder returns a finder that searches recent tweets using the
// given bearer token.
func NewTwitterFinder(client *http.Client, token string) *TwitterFinder {
	return &TwitterFinder{client: client, token: token}
}

// Name returns the finder identifier.
func (f *TwitterFinder) Name() string { return "twitter" }

// Find extracts hashtag entities from recent tweets, appends the generated
// community hashtags, deduplicates preserving first-seen order, and
// truncates to the category cap (R2.6, R2.7).
func (f *TwitterFinder) Find(ctx context.Context, niche string, cfg types.DiscoveryConfig) ([]types.Channel, error) {
	limit := cfg.MaxPerCategory
	if limit <= 0 {
		limit = 20
	}

	params := url.Values{
		"query":       {niche},
		"max_results": {fmt.Sprintf("%d", twitterMaxResults)},
	}
	reqURL := twitterSearchBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+f.token)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("twitter search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("twitter search returned HTTP %d", resp.StatusCode)
	}

	var result tweetSearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing twitter response: %w", err)
	}

	var hashtags []string
	for _, tweet := range result.Data {
		for _, tag := range tweet.Entities.Hashtags {
			if tag.Tag != "" {
				hashtags = append(hashtags, "#"+tag.Tag)
			}
		}
	}

	// Generated tags go last so extracted ones survive the cap.
	clean := CleanText(niche)
	hashtags = append(hashtags,
		"#"+clean+"community",
		"#"+clean+"hub",
		"#"+clean+"lovers",
	)

	var found []types.Channel
	for _, tag := range dedupeCap(hashtags, limit) {
		found = append(found, types.Channel{
			Category: types.CategoryTwitterHashtags,
			Name:     tag,
		})
	}
	return found, nil
}

// Twitter recent search JSON structures.
type tweetSearchResult struct {
	Data []struct {
		Entities struct {
			Hashtags []struct {
				Tag string `json:"tag"`
			} `json:"hashtags"`
		} `json:"entities"`
	} `json:"data"`
}
