package quotable

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient()
	c.baseURL = srv.URL
	return c, srv
}

func TestRandom(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quotes/random" {
			t.Errorf("path = %q, want /quotes/random", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("tags"); got != "wisdom" {
			t.Errorf("tags = %q, want wisdom", got)
		}
		if got := q.Get("maxLength"); got != "150" {
			t.Errorf("maxLength = %q, want 150", got)
		}
		if got := q.Get("limit"); got != "1" {
			t.Errorf("limit = %q, want 1", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"content": "Know thyself.", "author": "Socrates"}]`))
	})
	defer srv.Close()

	quote, err := c.Random(context.Background(), "wisdom", 150)
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}

	if quote.Text != "Know thyself." {
		t.Errorf("Text = %q", quote.Text)
	}
	if quote.Author != "Socrates" {
		t.Errorf("Author = %q", quote.Author)
	}
}

func TestRandomEmptyList(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty array", body: `[]`},
		{name: "blank content", body: `[{"content": "", "author": "Nobody"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			defer srv.Close()

			_, err := c.Random(context.Background(), "life", 150)
			if !errors.Is(err, ErrNoQuotes) {
				t.Errorf("Random() error = %v, want ErrNoQuotes", err)
			}
		})
	}
}

func TestRandomServerError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer srv.Close()

	_, err := c.Random(context.Background(), "happiness", 150)
	if err == nil {
		t.Fatal("Random() error = nil, want error on 503")
	}
}
