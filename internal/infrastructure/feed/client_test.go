package feed_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
	"github.com/courtdata/judicial-sync/internal/infrastructure/feed"
)

func TestFetchPageSendsQueryParameters(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/people" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = map[string]string{
			"page":            r.URL.Query().Get("page"),
			"pageSize":        r.URL.Query().Get("pageSize"),
			"changedSince":    r.URL.Query().Get("changedSince"),
			"includeInactive": r.URL.Query().Get("includeInactive"),
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"results":[],"pagination":{}}`))
	}))
	defer server.Close()

	client := feed.NewClient(server.URL, 5*time.Second)
	since := time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC)

	body, status, err := client.FetchPage(context.Background(), 3, 50, since, true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(body) == 0 {
		t.Fatal("expected body")
	}

	want := map[string]string{
		"page":            "3",
		"pageSize":        "50",
		"changedSince":    "2026-02-01",
		"includeInactive": "true",
	}
	for key, value := range want {
		if gotQuery[key] != value {
			t.Fatalf("query %s: expected %q, got %q", key, value, gotQuery[key])
		}
	}
}

func TestFetchPageReturnsErrorStatusAsData(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := feed.NewClient(server.URL, 5*time.Second)

	_, status, err := client.FetchPage(context.Background(), 1, 50, time.Now(), false)
	if err != nil {
		t.Fatalf("an HTTP error status is not a transport error, got %v", err)
	}
	if status != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", status)
	}
}

func TestFetchPageTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := feed.NewClient(server.URL, time.Second)

	_, _, err := client.FetchPage(context.Background(), 1, 50, time.Now(), false)
	if !errors.Is(err, domain.ErrFeedUnavailable) {
		t.Fatalf("expected ErrFeedUnavailable, got %v", err)
	}
}
