// Package quotable provides random quotes by tag from the Quotable API.
package quotable

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
	defaultBaseURL = "https://api.quotable.io"
	userAgent      = "moodmate-backend/1.0"
)

// ErrNoQuotes is returned when the API responds with an empty list.
var ErrNoQuotes = errors.New("no quotes returned")

// Quote is a fetched quote in normalized form.
type Quote struct {
	Text   string
	Author string
}

// Client is a Quotable API client. The API is unauthenticated.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Quotable client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: defaultBaseURL,
	}
}

type apiQuote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Random fetches one random quote carrying the given tag, constrained
// to maxLength characters. An empty list is ErrNoQuotes.
func (c *Client) Random(ctx context.Context, tag string, maxLength int) (Quote, error) {
	params := url.Values{
		"tags":      {tag},
		"maxLength": {strconv.Itoa(maxLength)},
		"limit":     {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/quotes/random?"+params.Encode(), nil)
	if err != nil {
		return Quote{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("quote request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Quote{}, fmt.Errorf("reading response body: %w", err)
	}

	var quotes []apiQuote
	if err := json.Unmarshal(body, &quotes); err != nil {
		return Quote{}, fmt.Errorf("parsing quote response: %w", err)
	}

	if len(quotes) == 0 || quotes[0].Content == "" {
		return Quote{}, ErrNoQuotes
	}

	return Quote{Text: quotes[0].Content, Author: quotes[0].Author}, nil
}
