// Package openlibrary provides Open Library search for book
// recommendations.
package openlibrary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://openlibrary.org"
	userAgent      = "moodmate-backend/1.0"

	searchLimit = 20

	// minRating filters out poorly rated results; covers are required so
	// the client can always render something.
	minRating = 3.8
)

// ErrNoBooks is returned when no result passes the quality filter.
var ErrNoBooks = errors.New("no matching books")

// Book is a search result in normalized form.
type Book struct {
	Title    string
	Author   string
	CoverURL string
}

// Client is an Open Library search client. The API is unauthenticated.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Open Library client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: defaultBaseURL,
	}
}

type searchResponse struct {
	Docs []doc `json:"docs"`
}

type doc struct {
	Title         string   `json:"title"`
	AuthorName    []string `json:"author_name"`
	CoverID       int      `json:"cover_i"`
	RatingsAvg    float64  `json:"ratings_average"`
	RatingsCount  int      `json:"ratings_count"`
	FirstPublish  int      `json:"first_publish_year"`
	EditionsCount int      `json:"edition_count"`
}

// SearchBySubject returns the best-rated book for a subject that has
// both an acceptable rating and a cover image. A result list with no
// qualifying doc is ErrNoBooks, not a success.
func (c *Client) SearchBySubject(ctx context.Context, subject string) (Book, error) {
	params := url.Values{
		"q":      {"subject:" + subject},
		"sort":   {"rating"},
		"limit":  {strconv.Itoa(searchLimit)},
		"fields": {"title,author_name,cover_i,ratings_average,ratings_count"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search.json?"+params.Encode(), nil)
	if err != nil {
		return Book{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Book{}, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Book{}, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Book{}, fmt.Errorf("reading response body: %w", err)
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return Book{}, fmt.Errorf("parsing search response: %w", err)
	}

	for _, d := range result.Docs {
		if d.Title == "" || len(d.AuthorName) == 0 {
			continue
		}
		if d.CoverID == 0 || d.RatingsAvg < minRating {
			continue
		}
		return Book{
			Title:    d.Title,
			Author:   d.AuthorName[0],
			CoverURL: fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-M.jpg", d.CoverID),
		}, nil
	}

	return Book{}, ErrNoBooks
}
