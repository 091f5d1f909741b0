// Package spotify provides a wrapper around the Spotify Web API for
// mood-targeted track recommendations.
package spotify

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/muesli/clusters"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

// ErrNoTracks is returned when a recommendation request yields zero
// tracks.
var ErrNoTracks = errors.New("no tracks returned")

// recommendationLimit is how many candidates to request before ranking.
const recommendationLimit = 10

// api is the subset of the Spotify client the wrapper uses.
type api interface {
	GetRecommendations(ctx context.Context, seeds spotify.Seeds, trackAttributes *spotify.TrackAttributes, opts ...spotify.RequestOption) (*spotify.Recommendations, error)
	GetAudioFeatures(ctx context.Context, ids ...spotify.ID) ([]*spotify.AudioFeatures, error)
}

// Client wraps the Spotify API client with mood-recommendation
// convenience methods.
type Client struct {
	api api
}

// New creates a new Spotify client wrapper. The underlying client
// should already be authenticated.
func New(apiClient *spotify.Client) *Client {
	return &Client{api: apiClient}
}

// NewFromCredentials creates a wrapper authenticated via the OAuth
// client-credentials flow. No user grant is involved; the token renews
// automatically.
func NewFromCredentials(ctx context.Context, clientID, clientSecret string) *Client {
	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	return New(spotify.New(cfg.Client(ctx)))
}

// Recommend fetches recommendation candidates for the target profile
// and returns the candidate whose audio features sit closest to the
// target. Ranking degrades to provider order when the feature fetch
// fails; an empty candidate list is ErrNoTracks.
func (c *Client) Recommend(ctx context.Context, target Target) (Track, error) {
	seeds := spotify.Seeds{Genres: target.Genres}

	attrs := spotify.NewTrackAttributes().
		TargetValence(target.Valence).
		TargetEnergy(target.Energy).
		MinTempo(target.MinTempo).
		MaxTempo(target.MaxTempo)

	recs, err := c.api.GetRecommendations(ctx, seeds, attrs, spotify.Limit(recommendationLimit))
	if err != nil {
		return Track{}, fmt.Errorf("fetching recommendations: %w", err)
	}
	if recs == nil || len(recs.Tracks) == 0 {
		return Track{}, ErrNoTracks
	}

	ordered := c.rankByTarget(ctx, recs.Tracks, target)
	return convertTrack(ordered[0]), nil
}

// rankByTarget orders candidates by Euclidean distance between their
// (valence, energy) coordinates and the target's. Candidates without
// features keep their provider position at the end.
func (c *Client) rankByTarget(ctx context.Context, tracks []spotify.SimpleTrack, target Target) []spotify.SimpleTrack {
	ids := make([]spotify.ID, len(tracks))
	for i, t := range tracks {
		ids[i] = t.ID
	}

	features, err := c.api.GetAudioFeatures(ctx, ids...)
	if err != nil {
		return tracks
	}

	featureByID := make(map[spotify.ID]*spotify.AudioFeatures, len(features))
	for _, f := range features {
		if f != nil {
			featureByID[f.ID] = f
		}
	}

	return rankTracks(tracks, featureByID, target)
}

// rankTracks is the pure ranking step, separated for testing.
func rankTracks(tracks []spotify.SimpleTrack, featureByID map[spotify.ID]*spotify.AudioFeatures, target Target) []spotify.SimpleTrack {
	want := clusters.Coordinates{target.Valence, target.Energy}

	type scored struct {
		track    spotify.SimpleTrack
		distance float64
		hasScore bool
		index    int
	}

	ranked := make([]scored, len(tracks))
	for i, t := range tracks {
		s := scored{track: t, index: i}
		if f, ok := featureByID[t.ID]; ok {
			have := clusters.Coordinates{float64(f.Valence), float64(f.Energy)}
			s.distance = have.Distance(want)
			s.hasScore = true
		}
		ranked[i] = s
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.hasScore != b.hasScore {
			return a.hasScore
		}
		if !a.hasScore {
			return a.index < b.index
		}
		return a.distance < b.distance
	})

	out := make([]spotify.SimpleTrack, len(ranked))
	for i, s := range ranked {
		out[i] = s.track
	}
	return out
}

// convertTrack maps a Spotify track into the normalized shape.
func convertTrack(t spotify.SimpleTrack) Track {
	names := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		names[i] = a.Name
	}

	return Track{
		Title:      t.Name,
		Artist:     strings.Join(names, ", "),
		SpotifyURL: t.ExternalURLs["spotify"],
	}
}
