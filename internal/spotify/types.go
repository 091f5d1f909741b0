package spotify

// Target describes the audio-feature profile a recommendation request
// aims for.
type Target struct {
	Valence  float64  // 0-1, musical positivity
	Energy   float64  // 0-1, intensity
	MinTempo float64  // BPM
	MaxTempo float64  // BPM
	Genres   []string // seed genres, max 5 per Spotify API limits
}

// Track is a recommended track in normalized form.
type Track struct {
	Title      string
	Artist     string
	SpotifyURL string
}
