package social

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"shoply/app/models"
)

func testAccount() *models.SocialAccount {
	return &models.SocialAccount{Platform: "mastodon", Handle: "shoply", AccessToken: "tok-123"}
}

func TestFetchMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/2/accounts/shoply/metrics" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("unexpected auth header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"followers":120,"following":30,"posts":12,"engagements":450}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	m, err := c.FetchMetrics(context.Background(), testAccount())
	if err != nil {
		t.Fatalf("FetchMetrics: %v", err)
	}
	if m.Followers != 120 || m.Following != 30 || m.Posts != 12 || m.Engagements != 450 {
		t.Fatalf("unexpected metrics: %+v", m)
	}
}

func TestFetchMetrics_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.FetchMetrics(context.Background(), testAccount())
	if err == nil {
		t.Fatalf("expected error")
	}
	apiErr, ok := err.(*apiError)
	if !ok {
		t.Fatalf("expected *apiError, got %T", err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Message != "invalid token" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestCreatePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/2/posts" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("unexpected auth header: %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("unexpected content type: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"ext_42"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	id, err := c.CreatePost(context.Background(), testAccount(), "hello world")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if id != "ext_42" {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestCreatePost_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	if _, err := c.CreatePost(context.Background(), testAccount(), "hello"); err == nil {
		t.Fatalf("expected error")
	}
}
