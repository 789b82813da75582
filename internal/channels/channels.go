// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package channels discovers promotion channels for a niche across
// platforms and aggregates them into a single report.
// Implements: prd001-discovery (R1-R6);
//
//	docs/ARCHITECTURE.md § Discovery.
package channels

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/eshkanala/AllTheAds/internal/httputil"
	"github.com/eshkanala/AllTheAds/pkg/types"
)

// Finder locates promotion channels on a single platform. Each platform
// (Reddit, GitHub, Twitter, YouTube) and each generator implements this
// interface per the Strategy pattern (R1.2).
type Finder interface {
	Name() string
	Find(ctx context.Context, niche string, cfg types.DiscoveryConfig) ([]types.Channel, error)
}

// DefaultFinders returns the finder chain in its fixed run order: the
// network finders first, then the generators. The YouTube finder joins the
// chain only when an API key is configured (R5.4); without one the
// youtube_channels category stays empty.
func DefaultFinders(cfg types.DiscoveryConfig) []Finder {
	client := httputil.NewClient(cfg.Timeout, cfg.UserAgent)

	finders := []Finder{
		NewRedditFinder(client, cfg.Reddit),
		NewGitHubFinder(client),
		NewTwitterFinder(client, cfg.TwitterBearerToken),
	}
	if cfg.YouTubeAPIKey != "" {
		finders = append(finders, NewYouTubeFinder(client, cfg.YouTubeAPIKey))
	}
	return append(finders, DevCommunitiesFinder{}, OnlineCommunitiesFinder{})
}

// Discover runs the finders one at a time, in order, and merges their
// channels into one report (R1.1). A finder failure is reported as a
// warning on w and leaves its categories empty; discovery always continues
// to the end (R1.4). The returned warnings hold one message per failed
// finder.
func Discover(ctx context.Context, niche string, finders []Finder, cfg types.DiscoveryConfig, w io.Writer) (types.ChannelReport, []string, error) {
	report := types.NewChannelReport()

	if strings.TrimSpace(niche) == "" {
		return report, nil, fmt.Errorf("niche is empty: provide a topic to research")
	}
	if len(finders) == 0 {
		return report, nil, fmt.Errorf("no finders configured")
	}

	var warnings []string
	for i, f := range finders {
		if i > 0 && cfg.InterFinderDelay > 0 {
			time.Sleep(cfg.InterFinderDelay)
		}

		select {
		case <-ctx.Done():
			return report, warnings, ctx.Err()
		default:
		}

		found, err := f.Find(ctx, niche, cfg)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", f.Name(), err))
			fmt.Fprintf(w, "warning: finder %s failed: %v\n", f.Name(), err)
			continue
		}
		report.Add(found...)
	}

	return report, warnings, nil
}

// CleanText lowercases s and strips every rune that is not an ASCII letter,
// an ASCII digit, or whitespace, then trims surrounding whitespace (R1.5).
// Internal spacing is preserved.
func CleanText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// dedupeCap removes duplicate names preserving first-seen order and caps
// the result at limit entries. Zero or negative limit means no cap.
func dedupeCap(names []string, limit int) []string {
	seen := make(map[string]struct{}, len(names))
	deduped := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		deduped = append(deduped, name)
		if limit > 0 && len(deduped) == limit {
			break
		}
	}
	return deduped
}
