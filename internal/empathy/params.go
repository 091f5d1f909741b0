package empathy

import (
	"fmt"
	"net/url"

	"github.com/moodmate/moodmate-backend/internal/mood"
	"github.com/moodmate/moodmate-backend/internal/spotify"
)

// musicTargets are the per-mood audio-feature profiles sent to the
// music provider, with the reason attached to a live result.
var musicTargets = map[mood.Category]struct {
	target spotify.Target
	reason string
}{
	mood.Anxious: {
		target: spotify.Target{Valence: 0.4, Energy: 0.3, MinTempo: 60, MaxTempo: 90, Genres: []string{"ambient", "chill"}},
		reason: "Slow, low-intensity audio picked to help a racing mind settle.",
	},
	mood.Happy: {
		target: spotify.Target{Valence: 0.9, Energy: 0.7, MinTempo: 100, MaxTempo: 140, Genres: []string{"pop", "happy"}},
		reason: "Bright, upbeat audio matched to your good mood.",
	},
	mood.Sad: {
		target: spotify.Target{Valence: 0.3, Energy: 0.3, MinTempo: 60, MaxTempo: 100, Genres: []string{"acoustic", "piano"}},
		reason: "Gentle, warm audio that keeps you company without forcing cheer.",
	},
	mood.Tired: {
		target: spotify.Target{Valence: 0.5, Energy: 0.2, MinTempo: 50, MaxTempo: 85, Genres: []string{"ambient", "sleep"}},
		reason: "Soft, low-energy audio that asks nothing of you.",
	},
	mood.Stressed: {
		target: spotify.Target{Valence: 0.4, Energy: 0.35, MinTempo: 60, MaxTempo: 95, Genres: []string{"chill", "downtempo"}},
		reason: "Downtempo audio picked to help pressure drain off.",
	},
	mood.Excited: {
		target: spotify.Target{Valence: 0.95, Energy: 0.9, MinTempo: 120, MaxTempo: 160, Genres: []string{"dance", "edm"}},
		reason: "High-energy audio to run alongside your momentum.",
	},
}

// bookParams are the per-mood search subjects (one chosen at random per
// call) and the relevance line attached to a live result.
var bookParams = map[mood.Category]struct {
	subjects  []string
	relevance string
}{
	mood.Anxious: {
		subjects:  []string{"anxiety", "mindfulness", "self_help"},
		relevance: "Chosen for practical tools to quiet an anxious mind.",
	},
	mood.Happy: {
		subjects:  []string{"happiness", "gratitude"},
		relevance: "Chosen to help you savor and extend a good stretch.",
	},
	mood.Sad: {
		subjects:  []string{"grief", "hope", "memoir"},
		relevance: "Chosen for honest company through a heavier day.",
	},
	mood.Tired: {
		subjects:  []string{"rest", "sleep"},
		relevance: "Chosen to make the case for the rest you need.",
	},
	mood.Stressed: {
		subjects:  []string{"stress_management", "mindfulness", "productivity"},
		relevance: "Chosen for ways to release pressure instead of carrying it.",
	},
	mood.Excited: {
		subjects:  []string{"adventure", "creativity", "motivation"},
		relevance: "Chosen as fuel for the energy you're carrying.",
	},
}

// quoteMaxLength constrains fetched quotes so they fit a card.
const quoteMaxLength = 150

// quoteTags are the per-mood tags for the quote provider.
var quoteTags = map[mood.Category]string{
	mood.Anxious:  "wisdom",
	mood.Happy:    "happiness",
	mood.Sad:      "inspirational",
	mood.Tired:    "life",
	mood.Stressed: "wisdom",
	mood.Excited:  "motivational",
}

// placeRadiusMeters bounds the nearby search.
const placeRadiusMeters = 2000

// placeParams are the per-mood nearby-search parameters. The category
// codes are Foursquare place categories.
var placeParams = map[mood.Category]struct {
	categoryCode string
	placeType    string
	reason       string
	benefits     string
}{
	mood.Anxious: {
		categoryCode: "16032",
		placeType:    "park",
		reason:       "Green space helps your nervous system downshift.",
		benefits:     "Fresh air, soft focus, gentle movement",
	},
	mood.Happy: {
		categoryCode: "13034",
		placeType:    "cafe",
		reason:       "A lively spot keeps good energy rolling.",
		benefits:     "Connection, people-watching, a favorite drink",
	},
	mood.Sad: {
		categoryCode: "12080",
		placeType:    "library",
		reason:       "Quiet, low-pressure spaces are kind to a low day.",
		benefits:     "Stillness, warmth, no one asking anything of you",
	},
	mood.Tired: {
		categoryCode: "16019",
		placeType:    "garden",
		reason:       "Slow, quiet surroundings help depleted reserves refill.",
		benefits:     "Soft light, fresh air, no hurry",
	},
	mood.Stressed: {
		categoryCode: "16027",
		placeType:    "trail",
		reason:       "Brisk walking burns off stress hormones faster than sitting with them.",
		benefits:     "Movement, rhythm, a change of scenery",
	},
	mood.Excited: {
		categoryCode: "16041",
		placeType:    "plaza",
		reason:       "Busy public spaces amplify an up mood.",
		benefits:     "Buzz, spontaneity, room to wander",
	},
}

// spotifySearchURL builds a search link for a track, used when the
// provider did not supply a direct one.
func spotifySearchURL(title, artist string) string {
	return "https://open.spotify.com/search/" + url.PathEscape(title+" "+artist)
}

// appleMusicSearchURL builds an Apple Music search link for a track.
func appleMusicSearchURL(title, artist string) string {
	return "https://music.apple.com/us/search?" + url.Values{"term": {title + " " + artist}}.Encode()
}

// amazonSearchURL builds an Amazon search link for a book.
func amazonSearchURL(title, author string) string {
	return "https://www.amazon.com/s?" + url.Values{"k": {fmt.Sprintf("%s %s", title, author)}}.Encode()
}
