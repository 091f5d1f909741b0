// Package empathy resolves partially-populated mood signals into a
// single mood estimate and fans out to independent content
// recommendation lookups, merging results with per-source fallback.
package empathy

import (
	"context"
	"log/slog"
	"sync"

	"github.com/moodmate/moodmate-backend/internal/foursquare"
	"github.com/moodmate/moodmate-backend/internal/mood"
	"github.com/moodmate/moodmate-backend/internal/openlibrary"
	"github.com/moodmate/moodmate-backend/internal/quotable"
	"github.com/moodmate/moodmate-backend/internal/spotify"
)

// maxContextLength bounds how much free-text context reaches providers.
// The last characters are kept; recency is assumed more relevant.
const maxContextLength = 600

// lookupRetryAttempts is the per-lookup retry budget. Lower than the
// generic retry default so a flapping provider cannot stall a response.
const lookupRetryAttempts = 2

// TextGenerator produces the empathy message and recommendation.
type TextGenerator interface {
	CompleteJSON(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error)
}

// MusicSource recommends a track for an audio-feature target.
type MusicSource interface {
	Recommend(ctx context.Context, target spotify.Target) (spotify.Track, error)
}

// BookSource finds a book for a subject.
type BookSource interface {
	SearchBySubject(ctx context.Context, subject string) (openlibrary.Book, error)
}

// QuoteSource fetches a random quote for a tag.
type QuoteSource interface {
	Random(ctx context.Context, tag string, maxLength int) (quotable.Quote, error)
}

// PlaceSource searches for nearby places by category.
type PlaceSource interface {
	Nearby(ctx context.Context, lat, lng float64, categoryCode string, radius int) (foursquare.Place, error)
}

// Service is the mood resolution and recommendation-fusion engine. Any
// provider may be nil; a nil provider behaves like an unreachable one
// and its lookup serves fallback content.
type Service struct {
	text   TextGenerator
	music  MusicSource
	books  BookSource
	quotes QuoteSource
	places PlaceSource

	logger        *slog.Logger
	retryAttempts int
}

// Option configures a Service.
type Option func(*Service)

// WithTextGenerator sets the text-generation provider.
func WithTextGenerator(g TextGenerator) Option {
	return func(s *Service) { s.text = g }
}

// WithMusic sets the music provider.
func WithMusic(m MusicSource) Option {
	return func(s *Service) { s.music = m }
}

// WithBooks sets the book provider.
func WithBooks(b BookSource) Option {
	return func(s *Service) { s.books = b }
}

// WithQuotes sets the quote provider.
func WithQuotes(q QuoteSource) Option {
	return func(s *Service) { s.quotes = q }
}

// WithPlaces sets the place provider.
func WithPlaces(p PlaceSource) Option {
	return func(s *Service) { s.places = p }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithRetryAttempts overrides the per-lookup retry budget.
func WithRetryAttempts(n int) Option {
	return func(s *Service) { s.retryAttempts = n }
}

// New creates an engine. Providers left unset serve fallback content.
func New(opts ...Option) *Service {
	s := &Service{
		logger:        slog.Default(),
		retryAttempts: lookupRetryAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// resolution is the normalized mood estimate every lookup consumes.
type resolution struct {
	category mood.Category
	score    float64
	energy   float64
	emotions []string
}

// resolve cascades through the available signals: an explicit mood
// string wins, then tagged emotions / score, then an image-derived
// label, then free-text inference, then the neutral default. Score
// precedence: explicit, then text-inferred, then recent-history mean,
// then 5.
func resolve(in mood.Input) resolution {
	res := resolution{score: 5, energy: 5, emotions: in.Emotions}

	if len(in.RecentMoods) > 0 {
		var sum float64
		for _, v := range in.RecentMoods {
			sum += v
		}
		res.score = sum / float64(len(in.RecentMoods))
	}
	if in.MoodScore != nil {
		res.score = *in.MoodScore
	}
	if in.EnergyLevel != nil {
		res.energy = *in.EnergyLevel
	}

	switch {
	case in.Mood != "":
		res.category = mood.ParseCategory(in.Mood)
	case len(in.Emotions) > 0 || in.MoodScore != nil:
		res.category = mood.DetectCategory(in.Emotions, res.score)
	default:
		if c, ok := mood.FromString(in.ImageMood); ok {
			res.category = c
			break
		}

		text := in.Context
		if text == "" {
			text = in.VoiceTranscript
		}
		if text == "" {
			res.category = mood.DefaultCategory
			break
		}

		inferred := mood.InferFromText(text)
		res.category = inferred.Category
		if in.MoodScore == nil {
			res.score = inferred.Score
		}
		if len(res.emotions) == 0 {
			res.emotions = inferred.Emotions
		}
	}

	return res
}

// Generate is the sole public entry point. It always returns a
// well-formed response: provider failures degrade to saved content plus
// a warning, and a defensive recover covers anything that escapes the
// lookups themselves.
func (s *Service) Generate(ctx context.Context, in mood.Input) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("recommendation pipeline failed, serving saved content", "panic", r)
			resp = s.staticResponse(in)
		}
	}()

	in.Context = lastChars(in.Context, maxContextLength)

	res := resolve(in)
	confidence := mood.Confidence(in)
	summary := mood.Summary(in, res.category, confidence)
	sources := mood.Sources(in)

	var (
		wg sync.WaitGroup

		msg      string
		rec      Recommendation
		music    Music
		book     Book
		quote    Quote
		place    Place
		warnings [5]string
	)

	fallback := fallbackFor(res.category)

	// Each goroutine writes only its own variables, so no locking is
	// needed; warnings merge at the join point in fixed lookup order.
	wg.Add(5)
	go func() {
		defer wg.Done()
		defer absorb(&warnings[0], warnMessage, func() {
			msg, rec = fallback.EmpathyMessage, fallback.Recommendation
		})
		msg, rec, warnings[0] = s.lookupMessage(ctx, res, in)
	}()
	go func() {
		defer wg.Done()
		defer absorb(&warnings[1], warnMusic, func() { music = fallback.Music })
		music, warnings[1] = s.lookupMusic(ctx, res.category)
	}()
	go func() {
		defer wg.Done()
		defer absorb(&warnings[2], warnBook, func() { book = fallback.Book })
		book, warnings[2] = s.lookupBook(ctx, res.category)
	}()
	go func() {
		defer wg.Done()
		defer absorb(&warnings[3], warnQuote, func() { quote = fallback.Quote })
		quote, warnings[3] = s.lookupQuote(ctx, res.category)
	}()
	go func() {
		defer wg.Done()
		defer absorb(&warnings[4], warnPlace, func() { place = fallback.Place })
		place, warnings[4] = s.lookupPlace(ctx, res.category, in.Latitude, in.Longitude)
	}()
	wg.Wait()

	// Last-resort substitution for any lookup that settled without a
	// usable value.
	if msg == "" {
		msg, rec, warnings[0] = fallback.EmpathyMessage, fallback.Recommendation, warnMessage
	}
	if music.Title == "" {
		music, warnings[1] = fallback.Music, warnMusic
	}
	if book.Title == "" {
		book, warnings[2] = fallback.Book, warnBook
	}
	if quote.Text == "" {
		quote, warnings[3] = fallback.Quote, warnQuote
	}
	if place.Type == "" {
		place, warnings[4] = fallback.Place, warnPlace
	}

	resp = Response{
		RecommendationSet: RecommendationSet{
			EmpathyMessage: msg,
			Recommendation: rec,
			Quote:          quote,
			Music:          music,
			Book:           book,
			Place:          place,
		},
		DetectedMood:    res.category,
		Confidence:      confidence,
		AnalysisSummary: summary,
		AnalysisSources: sources,
	}
	for _, w := range warnings {
		if w != "" {
			resp.Warnings = append(resp.Warnings, w)
		}
	}
	return resp
}

// absorb converts a panic inside a lookup goroutine into that lookup's
// fallback plus its warning. Lookups already absorb their own errors;
// this guards against bugs, not expected failures.
func absorb(warning *string, text string, restore func()) {
	if r := recover(); r != nil {
		restore()
		*warning = text
	}
}

// staticResponse is the outermost floor: a fully saved recommendation
// set with one generic warning. Analysis fields still derive from the
// real input so only content recommendations are affected.
func (s *Service) staticResponse(in mood.Input) Response {
	category := resolve(in).category
	confidence := mood.Confidence(in)

	return Response{
		RecommendationSet: fallbackFor(category),
		DetectedMood:      category,
		Confidence:        confidence,
		AnalysisSummary:   mood.Summary(in, category, confidence),
		AnalysisSources:   mood.Sources(in),
		Warnings:          []string{warnPipeline},
	}
}

// lastChars keeps the trailing n characters of s, never splitting a
// rune.
func lastChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
