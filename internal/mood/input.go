package mood

// Input is a raw check-in: a bundle of optional signals describing the
// user's emotional state. Every field may be absent; pointer fields
// distinguish "not provided" from a zero value.
type Input struct {
	// Mood is a caller-supplied category string. Unrecognized values are
	// coerced to the neutral default during resolution.
	Mood string `json:"mood,omitempty"`

	// MoodScore is a 1-10 self-rating. Not validated; used as-is.
	MoodScore *float64 `json:"moodScore,omitempty"`

	// Emotions are free-form, case-insensitive emotion words.
	Emotions []string `json:"emotions,omitempty"`

	// EnergyLevel is a 1-10 self-rating; 5 is the neutral placeholder.
	EnergyLevel *float64 `json:"energyLevel,omitempty"`

	// Context is a free-text narrative about the user's day.
	Context string `json:"context,omitempty"`

	// VoiceTranscript is already-transcribed text from a voice check-in.
	VoiceTranscript string `json:"voiceTranscript,omitempty"`

	// ImageMood is a mood label derived from a photo check-in, with the
	// analyzer's confidence in it.
	ImageMood       string   `json:"imageMood,omitempty"`
	ImageConfidence *float64 `json:"imageConfidence,omitempty"`

	// Latitude and Longitude enable nearby-place lookups.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// RecentMoods are the user's recent mood scores, newest first.
	// Supplied by the history collaborator, not by the user.
	RecentMoods []float64 `json:"recentMoods,omitempty"`

	// Therapeutic intake fields. These influence confidence and the
	// analysis summary only, never category resolution.
	SymptomRatings                    map[string]float64 `json:"symptomRatings,omitempty"`
	TherapyHistory                    *bool              `json:"therapyHistory,omitempty"`
	TherapeuticRelationshipImportance *float64           `json:"therapeuticRelationshipImportance,omitempty"`
	PatientReadiness                  *float64           `json:"patientReadiness,omitempty"`
	PresentingProblem                 string             `json:"presentingProblem,omitempty"`
}
