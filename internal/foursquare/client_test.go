package foursquare

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(apiKey string, handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient(apiKey)
	c.baseURL = srv.URL
	return c, srv
}

func TestNearby(t *testing.T) {
	c, srv := newTestClient("fsq-key", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/places/search" {
			t.Errorf("path = %q, want /places/search", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "fsq-key" {
			t.Errorf("Authorization = %q, want raw api key", got)
		}
		q := r.URL.Query()
		if got := q.Get("categories"); got != "16032" {
			t.Errorf("categories = %q, want 16032", got)
		}
		if got := q.Get("radius"); got != "2000" {
			t.Errorf("radius = %q, want 2000", got)
		}
		if got := q.Get("sort"); got != "RELEVANCE" {
			t.Errorf("sort = %q, want RELEVANCE", got)
		}
		if ll := q.Get("ll"); !strings.HasPrefix(ll, "40.7") {
			t.Errorf("ll = %q, want to start with the latitude", ll)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [
			{
				"name": "Riverside Park",
				"location": {"formatted_address": "475 Riverside Dr, New York, NY"},
				"geocodes": {"main": {"latitude": 40.8107, "longitude": -73.9632}}
			},
			{"name": "Second Place", "location": {"formatted_address": "elsewhere"}}
		]}`))
	})
	defer srv.Close()

	place, err := c.Nearby(context.Background(), 40.7589, -73.9851, "16032", 2000)
	if err != nil {
		t.Fatalf("Nearby() error = %v", err)
	}

	if place.Name != "Riverside Park" {
		t.Errorf("Name = %q, want top result", place.Name)
	}
	if place.Address != "475 Riverside Dr, New York, NY" {
		t.Errorf("Address = %q", place.Address)
	}
	if place.Latitude != 40.8107 || place.Longitude != -73.9632 {
		t.Errorf("coordinates = %v,%v", place.Latitude, place.Longitude)
	}
}

func TestNearbyNoResults(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty results", body: `{"results": []}`},
		{name: "blank name", body: `{"results": [{"name": ""}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newTestClient("k", func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			defer srv.Close()

			_, err := c.Nearby(context.Background(), 40.0, -73.0, "13034", 2000)
			if !errors.Is(err, ErrNoPlaces) {
				t.Errorf("Nearby() error = %v, want ErrNoPlaces", err)
			}
		})
	}
}

func TestNearbyUnauthorized(t *testing.T) {
	c, srv := newTestClient("bad-key", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer srv.Close()

	_, err := c.Nearby(context.Background(), 40.0, -73.0, "16019", 2000)
	if err == nil {
		t.Fatal("Nearby() error = nil, want error on 401")
	}
}
