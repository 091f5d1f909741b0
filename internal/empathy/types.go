package empathy

import "github.com/moodmate/moodmate-backend/internal/mood"

// Action types a recommendation can carry.
const (
	ActionBreathing = "breathing"
	ActionJournal   = "journal"
	ActionTimer     = "timer"
	ActionContact   = "contact"
)

// validActionTypes is the closed set a generated recommendation must
// use; anything else fails validation and triggers fallback.
var validActionTypes = map[string]bool{
	ActionBreathing: true,
	ActionJournal:   true,
	ActionTimer:     true,
	ActionContact:   true,
}

// Recommendation is one concrete, time-boxed suggested action.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ActionLabel string `json:"actionLabel"`
	ActionType  string `json:"actionType"`
}

// Quote is an attributed quote.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Music is a track suggestion.
type Music struct {
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	Reason        string `json:"reason"`
	SpotifyURL    string `json:"spotifyUrl"`
	AppleMusicURL string `json:"appleMusicUrl"`
}

// Book is a reading suggestion.
type Book struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Relevance string `json:"relevance"`
	AmazonURL string `json:"amazonUrl"`
	CoverURL  string `json:"coverUrl,omitempty"`
}

// Coordinates is a geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is a nearby-place suggestion. Address and Coordinates are only
// present on live results.
type Place struct {
	Type        string       `json:"type"`
	Reason      string       `json:"reason"`
	Benefits    string       `json:"benefits"`
	Address     string       `json:"address,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// RecommendationSet bundles the five enrichment outputs. Each field is
// either freshly fetched or a per-mood static fallback; callers cannot
// tell which without consulting the response warnings.
type RecommendationSet struct {
	EmpathyMessage string         `json:"empathyMessage"`
	Recommendation Recommendation `json:"recommendation"`
	Quote          Quote          `json:"quote"`
	Music          Music          `json:"music"`
	Book           Book           `json:"book"`
	Place          Place          `json:"place"`
}

// Response is the sole externally observable artifact of the engine.
// Warnings is present only when at least one lookup fell back; its
// absence is the positive signal of a fully live response.
type Response struct {
	RecommendationSet

	DetectedMood    mood.Category         `json:"detectedMood"`
	Confidence      int                   `json:"confidence"`
	AnalysisSummary string                `json:"analysisSummary"`
	AnalysisSources []mood.AnalysisSource `json:"analysisSources"`
	Warnings        []string              `json:"warnings,omitempty"`
}
