// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package channels

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/eshkanala/AllTheAds/pkg/types"
)

const sampleYouTubeJSON = `{
  "items": [
    {"snippet": {"channelTitle": "Go Time"}},
    {"snippet": {"channelTitle": "JustForFunc"}},
    {"snippet": {"channelTitle": ""}},
    {"snippet": {"channelTitle": "Go Time"}}
  ]
}`

func newYouTubeTestFinder(t *testing.T, handler http.HandlerFunc) *YouTubeFinder {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	old := youtubeSearchBase
	youtubeSearchBase = ts.URL
	t.Cleanup(func() { youtubeSearchBase = old })

	return NewYouTubeFinder(ts.Client(), "test-key")
}

func TestYouTubeFinderFind(t *testing.T) {
	f := newYouTubeTestFinder(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleYouTubeJSON)
	})

	found, err := f.Find(context.Background(), "go", testCfg())
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}

	var titles []string
	for _, ch := range found {
		if ch.Category != types.CategoryYouTubeChannels {
			t.Errorf("unexpected category %s", ch.Category)
			continue
		}
		titles = append(titles, ch.Name)
	}

	// Empty titles skipped, duplicates collapsed.
	want := []string{"Go Time", "JustForFunc"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("titles = %v, want %v", titles, want)
	}
}

func TestYouTubeFinderRequest(t *testing.T) {
	var part, typ, q, maxResults, key string
	f := newYouTubeTestFinder(t, func(w http.ResponseWriter, r *http.Request) {
		part = r.URL.Query().Get("part")
		typ = r.URL.Query().Get("type")
		q = r.URL.Query().Get("q")
		maxResults = r.URL.Query().Get("maxResults")
		key = r.URL.Query().Get("key")
		fmt.Fprint(w, `{"items":[]}`)
	})

	if _, err := f.Find(context.Background(), "machine learning", testCfg()); err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if part != "snippet" || typ != "channel" {
		t.Errorf("part/type = %q/%q, want snippet/channel", part, typ)
	}
	if q != "machine learning" {
		t.Errorf("q = %q, want raw niche", q)
	}
	if maxResults != "20" {
		t.Errorf("maxResults = %q, want 20", maxResults)
	}
	if key != "test-key" {
		t.Errorf("key = %q, want test-key", key)
	}
}

func TestYouTubeFinderPageSizeClamped(t *testing.T) {
	var maxResults string
	f := newYouTubeTestFinder(t, func(w http.ResponseWriter, r *http.Request) {
		maxResults = r.URL.Query().Get("maxResults")
		fmt.Fprint(w, `{"items":[]}`)
	})

	cfg := testCfg()
	cfg.MaxPerCategory = 200
	if _, err := f.Find(context.Background(), "go", cfg); err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if maxResults != "50" {
		t.Errorf("maxResults = %q, want the API cap of 50", maxResults)
	}
}

func TestYouTubeFinderHTTPError(t *testing.T) {
	f := newYouTubeTestFinder(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	if _, err := f.Find(context.Background(), "go", testCfg()); err == nil {
		t.Fatal("expected error for HTTP 403, got nil")
	}
}

func TestYouTubeFinderMalformedResponse(t *testing.T) {
	f := newYouTubeTestFinder(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	})

	if _, err := f.Find(context.Background(), "go", testCfg()); err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestYouTubeFinderName(t *testing.T) {
	f := NewYouTubeFinder(http.DefaultClient, "key")
	if got := f.Name(); got != "youtube" {
		t.Errorf("Name() = %q, want youtube", got)
	}
}
