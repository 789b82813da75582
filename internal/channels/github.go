// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package channels

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/eshkanala/AllTheAds/pkg/types"
)

// githubSearchBase is the GitHub repository search endpoint. Declared as a
// var so tests can substitute an httptest server.
var githubSearchBase = "https://api.github.com/search/repositories"

// githubPageDelay paces repository search pages. GitHub allows ten
// unauthenticated search requests per minute. Tests override this to
// avoid real sleeps.
var githubPageDelay = 6 * time.Second

// GitHubFinder locates repository names tagged with the niche as a topic
// (R2.4). The search API needs no authentication; a rate limiter keeps
// page requests under GitHub's unauthenticated search quota.
type GitHubFinder struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewGitHubFinder returns a finder that pages through GitHub repository
// search results.
func NewGitHubFinder(client *http.Client) *GitHubFinder {
	return &GitHubFinder{
		client:  client,
		limiter: rate.NewLimiter(rate.Every(githubPageDelay), 1),
	}
}

// Name returns the finder identifier.
func (f *GitHubFinder) Name() string { return "github" }

// Find pages through repositories whose topics include the cleaned niche,
// sorted by stars descending, until the category cap is reached, a page
// returns zero items, or a non-200 response arrives. A failed page stops
// the walk but keeps what earlier pages returned (R2.4). Names are
// deduplicated preserving first-seen order and truncated to the cap (R2.5).
func (f *GitHubFinder) Find(ctx context.Context, niche string, cfg types.DiscoveryConfig) ([]types.Channel, error) {
	target := cfg.MaxPerCategory
	if target <= 0 {
		target = 20
	}

	topic := CleanText(niche)
	if topic == "" {
		return nil, fmt.Errorf("niche %q cleans to an empty topic", niche)
	}

	var names []string
	for page := 1; len(names) < target; page++ {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		params := url.Values{
			"q":     {"topic:" + topic},
			"sort":  {"stars"},
			"order": {"desc"},
			"page":  {fmt.Sprintf("%d", page)},
		}
		reqURL := githubSearchBase + "?" + params.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("github search request: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			break
		}

		var result repoSearchResult
		err = json.NewDecoder(resp.Body).Decode(&result)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("parsing github response: %w", err)
		}

		if len(result.Items) == 0 {
			break
		}
		for _, item := range result.Items {
			if item.Name != "" {
				names = append(names, item.Name)
			}
		}
	}

	var found []types.Channel
	for _, name := range dedupeCap(names, target) {
		found = append(found, types.Channel{
			Category: types.CategoryGitHubTopics,
			Name:     name,
		})
	}
	return found, nil
}

// GitHub repository search JSON structure.
type repoSearchResult struct {
	Items []struct {
		Name string `json:"name"`
	} `json:"items"`
}
