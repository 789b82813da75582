// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package channels

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/eshkanala/AllTheAds/pkg/types"
)

// Reddit endpoints. Declared as vars so tests can substitute httptest servers.
var (
	redditTokenURL = "https://www.reddit.com/api/v1/access_token"
	redditAPIBase  = "https://oauth.reddit.com"
)

// redditDeviceID is sent with the token request per Reddit's guidance for
// installed clients that do not track users.
const redditDeviceID = "DO_NOT_TRACK_THIS_DEVICE"

// RedditFinder locates subreddits via the Reddit search API (R2.1). It
// authenticates with the OAuth2 client-credentials grant, then queries the
// subreddit search endpoint. It also contributes the generated
// reddit_communities names (R2.3); both categories stand or fall together,
// matching the single authenticated session they come from.
type RedditFinder struct {
	client *http.Client
	creds  types.RedditCredentials
}

// NewRedditFinder returns a finder that searches Reddit with creds.
func NewRedditFinder(client *http.Client, creds types.RedditCredentials) *RedditFinder {
	return &RedditFinder{client: client, creds: creds}
}

// Name returns the finder identifier.
func (f *RedditFinder) Name() string { return "reddit" }

// Find exchanges client credentials for a token and searches subreddits
// matching the niche (R2.1, R2.2).
func (f *RedditFinder) Find(ctx context.Context, niche string, cfg types.DiscoveryConfig) ([]types.Channel, error) {
	limit := cfg.MaxPerCategory
	if limit <= 0 {
		limit = 20
	}

	token, err := f.token(ctx)
	if err != nil {
		return nil, fmt.Errorf("reddit token exchange: %w", err)
	}

	params := url.Values{
		"q":     {niche},
		"limit": {fmt.Sprintf("%d", limit)},
	}
	reqURL := redditAPIBase + "/subreddits/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "bearer "+token)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reddit search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit search returned HTTP %d", resp.StatusCode)
	}

	var listing subredditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("parsing reddit response: %w", err)
	}

	var channels []types.Channel
	for _, child := range listing.Data.Children {
		if child.Data.DisplayName == "" {
			continue
		}
		channels = append(channels, types.Channel{
			Category: types.CategorySubreddits,
			Name:     child.Data.DisplayName,
		})
	}

	// Generated community names ride along with a successful search. The
	// first uses the cleaned niche, the other two the raw niche.
	for _, name := range []string{
		CleanText(niche) + "community",
		niche + "discussions",
		niche + "hub",
	} {
		channels = append(channels, types.Channel{
			Category: types.CategoryRedditCommunities,
			Name:     name,
		})
	}

	return channels, nil
}

// token performs the OAuth2 client-credentials exchange. The finder's own
// HTTP client is injected so the token request carries the configured
// User-Agent; Reddit rate-limits anonymous agents aggressively.
func (f *RedditFinder) token(ctx context.Context) (string, error) {
	conf := &clientcredentials.Config{
		ClientID:     f.creds.ClientID,
		ClientSecret: f.creds.ClientSecret,
		TokenURL:     redditTokenURL,
		EndpointParams: url.Values{
			"device_id": {redditDeviceID},
		},
		AuthStyle: oauth2.AuthStyleInHeader,
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, f.client)
	tok, err := conf.Token(ctx)
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// Reddit subreddit listing JSON structure.
type subredditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				DisplayName string `json:"display_name"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}
