// Package foursquare provides nearby-place search via the Foursquare
// Places API.
package foursquare

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
	defaultBaseURL = "https://api.foursquare.com/v3"

	searchLimit = 5
)

// ErrNoPlaces is returned when the search yields zero results.
var ErrNoPlaces = errors.New("no places found")

// Place is a nearby place in normalized form.
type Place struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

// Client is a Foursquare Places API client.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Foursquare client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: defaultBaseURL,
	}
}

type searchResponse struct {
	Results []result `json:"results"`
}

type result struct {
	Name     string `json:"name"`
	Location struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"location"`
	Geocodes struct {
		Main struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"main"`
	} `json:"geocodes"`
}

// Nearby searches for places of the given category code within radius
// meters of the coordinates and returns the top result.
func (c *Client) Nearby(ctx context.Context, lat, lng float64, categoryCode string, radius int) (Place, error) {
	params := url.Values{
		"ll":         {fmt.Sprintf("%f,%f", lat, lng)},
		"categories": {categoryCode},
		"radius":     {strconv.Itoa(radius)},
		"sort":       {"RELEVANCE"},
		"limit":      {strconv.Itoa(searchLimit)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/places/search?"+params.Encode(), nil)
	if err != nil {
		return Place{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("place search returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Place{}, fmt.Errorf("reading response body: %w", err)
	}

	var search searchResponse
	if err := json.Unmarshal(body, &search); err != nil {
		return Place{}, fmt.Errorf("parsing search response: %w", err)
	}

	if len(search.Results) == 0 || search.Results[0].Name == "" {
		return Place{}, ErrNoPlaces
	}

	top := search.Results[0]
	return Place{
		Name:      top.Name,
		Address:   top.Location.FormattedAddress,
		Latitude:  top.Geocodes.Main.Latitude,
		Longitude: top.Geocodes.Main.Longitude,
	}, nil
}
