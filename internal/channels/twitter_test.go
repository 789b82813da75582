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

const sampleTweetJSON = `{
  "data": [
    {"entities": {"hashtags": [{"tag": "golang"}, {"tag": "programming"}]}},
    {"text": "a tweet with no entities"},
    {"entities": {"hashtags": [{"tag": "golang"}, {"tag": "gophers"}]}}
  ]
}`

func newTwitterTestFinder(t *testing.T, handler http.HandlerFunc) *TwitterFinder {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	old := twitterSearchBase
	twitterSearchBase = ts.URL
	t.Cleanup(func() { twitterSearchBase = old })

	return NewTwitterFinder(ts.Client(), "test-bearer")
}

func hashtagNames(found []types.Channel) []string {
	var names []string
	for _, ch := range found {
		if ch.Category != types.CategoryTwitterHashtags {
			continue
		}
		names = append(names, ch.Name)
	}
	return names
}

func TestTwitterFinderFind(t *testing.T) {
	f := newTwitterTestFinder(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleTweetJSON)
	})

	found, err := f.Find(context.Background(), "go", testCfg())
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}

	// Extracted tags first in arrival order, then the generated ones,
	// duplicates collapsed.
	want := []string{"#golang", "#programming", "#gophers", "#gocommunity", "#gohub", "#golovers"}
	if got := hashtagNames(found); !reflect.DeepEqual(got, want) {
		t.Errorf("hashtags = %v, want %v", got, want)
	}
}

func TestTwitterFinderRequest(t *testing.T) {
	var auth, query, maxResults string
	f := newTwitterTestFinder(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		query = r.URL.Query().Get("query")
		maxResults = r.URL.Query().Get("max_results")
		fmt.Fprint(w, `{"data":[]}`)
	})

	if _, err := f.Find(context.Background(), "machine learning", testCfg()); err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if auth != "Bearer test-bearer" {
		t.Errorf("Authorization = %q, want \"Bearer test-bearer\"", auth)
	}
	if query != "machine learning" {
		t.Errorf("query = %q, want raw niche", query)
	}
	if maxResults != "100" {
		t.Errorf("max_results = %q, want 100", maxResults)
	}
}

func TestTwitterFinderNoTweetsStillGenerates(t *testing.T) {
	f := newTwitterTestFinder(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})

	found, err := f.Find(context.Background(), "Machine Learning!", testCfg())
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}

	want := []string{
		"#machine learningcommunity",
		"#machine learninghub",
		"#machine learninglovers",
	}
	if got := hashtagNames(found); !reflect.DeepEqual(got, want) {
		t.Errorf("hashtags = %v, want %v", got, want)
	}
}

func TestTwitterFinderGeneratedTagCollision(t *testing.T) {
	f := newTwitterTestFinder(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"entities":{"hashtags":[{"tag":"gocommunity"}]}}]}`)
	})

	found, err := f.Find(context.Background(), "go", testCfg())
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}

	want := []string{"#gocommunity", "#gohub", "#golovers"}
	if got := hashtagNames(found); !reflect.DeepEqual(got, want) {
		t.Errorf("hashtags = %v, want %v", got, want)
	}
}

func TestTwitterFinderCap(t *testing.T) {
	f := newTwitterTestFinder(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleTweetJSON)
	})

	cfg := testCfg()
	cfg.MaxPerCategory = 4
	found, err := f.Find(context.Background(), "go", cfg)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}

	want := []string{"#golang", "#programming", "#gophers", "#gocommunity"}
	if got := hashtagNames(found); !reflect.DeepEqual(got, want) {
		t.Errorf("hashtags = %v, want %v", got, want)
	}
}

func TestTwitterFinderHTTPError(t *testing.T) {
	f := newTwitterTestFinder(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	if _, err := f.Find(context.Background(), "go", testCfg()); err == nil {
		t.Fatal("expected error for HTTP 429, got nil")
	}
}

func TestTwitterFinderMalformedResponse(t *testing.T) {
	f := newTwitterTestFinder(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[`)
	})

	if _, err := f.Find(context.Background(), "go", testCfg()); err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestTwitterFinderName(t *testing.T) {
	f := NewTwitterFinder(http.DefaultClient, "tok")
	if got := f.Name(); got != "twitter" {
		t.Errorf("Name() = %q, want twitter", got)
	}
}
