package empathy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/moodmate/moodmate-backend/internal/foursquare"
	"github.com/moodmate/moodmate-backend/internal/mood"
	"github.com/moodmate/moodmate-backend/internal/openlibrary"
	"github.com/moodmate/moodmate-backend/internal/quotable"
	"github.com/moodmate/moodmate-backend/internal/retry"
	"github.com/moodmate/moodmate-backend/internal/spotify"
)

const (
	messageMaxTokens   = 400
	messageTemperature = 0.7
)

// messageSystemPrompt instructs the text-generation provider. The
// strict-JSON shape is load-bearing: parseMessageReply rejects anything
// else.
const messageSystemPrompt = `You are a warm, emotionally attuned companion inside a mood tracking app.
Write in the second person. Validate the user's feelings without being clinical, diagnostic, or saccharine.
Then offer exactly one concrete, time-boxed recommendation they can do right now.
Respond with strict JSON only, in this shape:
{"empathyMessage": "...", "recommendation": {"title": "...", "description": "...", "actionLabel": "...", "actionType": "..."}}
where actionType is one of: breathing, journal, timer, contact.`

// messageReply is the strict-JSON shape the provider must return.
type messageReply struct {
	EmpathyMessage string `json:"empathyMessage"`
	Recommendation struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ActionLabel string `json:"actionLabel"`
		ActionType  string `json:"actionType"`
	} `json:"recommendation"`
}

func (s *Service) retryOptions() retry.Options {
	return retry.Options{MaxAttempts: s.retryAttempts}
}

// lookupMessage generates the validation message and recommendation.
// Never fails: any provider or parse error yields the saved message for
// the mood plus a warning.
func (s *Service) lookupMessage(ctx context.Context, res resolution, in mood.Input) (string, Recommendation, string) {
	fallback := fallbackFor(res.category)

	if s.text == nil {
		return fallback.EmpathyMessage, fallback.Recommendation, warnMessage
	}

	user := buildMessagePrompt(res, in)

	raw, err := retry.Do(ctx, func(ctx context.Context) (string, error) {
		return s.text.CompleteJSON(ctx, messageSystemPrompt, user, messageMaxTokens, messageTemperature)
	}, s.retryOptions())
	if err != nil {
		s.logger.Warn("empathy message lookup fell back", "error", err)
		return fallback.EmpathyMessage, fallback.Recommendation, warnMessage
	}

	msg, rec, err := parseMessageReply(raw)
	if err != nil {
		s.logger.Warn("empathy message lookup fell back", "error", err)
		return fallback.EmpathyMessage, fallback.Recommendation, warnMessage
	}

	return msg, rec, ""
}

// buildMessagePrompt renders the resolved mood and whatever context is
// available into the user prompt.
func buildMessagePrompt(res resolution, in mood.Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The user is feeling %s with a mood score of %.0f/10 and energy %.0f/10.", res.category, res.score, res.energy)
	if len(res.emotions) > 0 {
		fmt.Fprintf(&b, " They tagged these emotions: %s.", strings.Join(res.emotions, ", "))
	}
	if in.Context != "" {
		fmt.Fprintf(&b, " They wrote: %q", in.Context)
	}
	if in.PresentingProblem != "" {
		fmt.Fprintf(&b, " They named this concern: %q", in.PresentingProblem)
	}
	return b.String()
}

// parseMessageReply validates the provider's strict-JSON reply. Missing
// required fields or an unknown action type are failures, never
// propagated as empty strings.
func parseMessageReply(raw string) (string, Recommendation, error) {
	var reply messageReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return "", Recommendation{}, fmt.Errorf("parsing message reply: %w", err)
	}

	rec := Recommendation(reply.Recommendation)
	switch {
	case reply.EmpathyMessage == "":
		return "", Recommendation{}, errors.New("message reply missing empathyMessage")
	case rec.Title == "" || rec.Description == "" || rec.ActionLabel == "":
		return "", Recommendation{}, errors.New("message reply missing recommendation fields")
	case !validActionTypes[rec.ActionType]:
		return "", Recommendation{}, fmt.Errorf("message reply has unknown action type %q", rec.ActionType)
	}

	return reply.EmpathyMessage, rec, nil
}

// lookupMusic fetches a track for the mood's audio-feature target.
func (s *Service) lookupMusic(ctx context.Context, category mood.Category) (Music, string) {
	params := musicTargets[category]

	if s.music == nil {
		return fallbackFor(category).Music, warnMusic
	}

	track, err := retry.Do(ctx, func(ctx context.Context) (spotify.Track, error) {
		return s.music.Recommend(ctx, params.target)
	}, s.retryOptions())
	if err != nil {
		s.logger.Warn("music lookup fell back", "mood", category, "error", err)
		return fallbackFor(category).Music, warnMusic
	}

	spotifyURL := track.SpotifyURL
	if spotifyURL == "" {
		spotifyURL = spotifySearchURL(track.Title, track.Artist)
	}

	return Music{
		Title:         track.Title,
		Artist:        track.Artist,
		Reason:        params.reason,
		SpotifyURL:    spotifyURL,
		AppleMusicURL: appleMusicSearchURL(track.Title, track.Artist),
	}, ""
}

// lookupBook searches one of the mood's subjects, chosen at random per
// call so repeat visitors see variety.
func (s *Service) lookupBook(ctx context.Context, category mood.Category) (Book, string) {
	params := bookParams[category]
	subject := params.subjects[rand.IntN(len(params.subjects))]

	if s.books == nil {
		return fallbackFor(category).Book, warnBook
	}

	found, err := retry.Do(ctx, func(ctx context.Context) (openlibrary.Book, error) {
		return s.books.SearchBySubject(ctx, subject)
	}, s.retryOptions())
	if err != nil {
		s.logger.Warn("book lookup fell back", "mood", category, "subject", subject, "error", err)
		return fallbackFor(category).Book, warnBook
	}

	return Book{
		Title:     found.Title,
		Author:    found.Author,
		Relevance: params.relevance,
		AmazonURL: amazonSearchURL(found.Title, found.Author),
		CoverURL:  found.CoverURL,
	}, ""
}

// lookupQuote fetches a random quote for the mood's tag.
func (s *Service) lookupQuote(ctx context.Context, category mood.Category) (Quote, string) {
	tag := quoteTags[category]

	if s.quotes == nil {
		return fallbackFor(category).Quote, warnQuote
	}

	found, err := retry.Do(ctx, func(ctx context.Context) (quotable.Quote, error) {
		return s.quotes.Random(ctx, tag, quoteMaxLength)
	}, s.retryOptions())
	if err != nil {
		s.logger.Warn("quote lookup fell back", "mood", category, "error", err)
		return fallbackFor(category).Quote, warnQuote
	}

	return Quote{Text: found.Text, Author: found.Author}, ""
}

// lookupPlace searches for a nearby place matching the mood's category.
// Without coordinates or a configured provider it goes straight to the
// saved suggestion.
func (s *Service) lookupPlace(ctx context.Context, category mood.Category, lat, lng *float64) (Place, string) {
	params := placeParams[category]

	if s.places == nil || lat == nil || lng == nil {
		return fallbackFor(category).Place, warnPlace
	}

	found, err := retry.Do(ctx, func(ctx context.Context) (foursquare.Place, error) {
		return s.places.Nearby(ctx, *lat, *lng, params.categoryCode, placeRadiusMeters)
	}, s.retryOptions())
	if err != nil {
		s.logger.Warn("place lookup fell back", "mood", category, "error", err)
		return fallbackFor(category).Place, warnPlace
	}

	return Place{
		Type:     params.placeType,
		Reason:   params.reason,
		Benefits: params.benefits,
		Address:  found.Address,
		Coordinates: &Coordinates{
			Latitude:  found.Latitude,
			Longitude: found.Longitude,
		},
	}, ""
}
