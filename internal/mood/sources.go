package mood

import "math"

// SourceType identifies an input channel for attribution.
type SourceType string

// The attribution channel types.
const (
	SourceText    SourceType = "text"
	SourceEmoji   SourceType = "emoji"
	SourceVoice   SourceType = "voice"
	SourcePhoto   SourceType = "photo"
	SourceHistory SourceType = "history"
)

// AnalysisSource attributes a share of the analysis to one input
// channel. Weights across a source list always sum to 100.
type AnalysisSource struct {
	Type   SourceType `json:"type"`
	Label  string     `json:"label"`
	Weight int        `json:"weight"`
}

// baselineSource is substituted when no input channel was present.
var baselineSource = AnalysisSource{
	Type:   SourceText,
	Label:  "Baseline wellness model",
	Weight: 100,
}

// Sources attributes the analysis across whichever input channels were
// present, normalizing the raw channel weights so they total exactly
// 100. An input with no channels yields the single baseline entry.
func Sources(in Input) []AnalysisSource {
	type rawSource struct {
		typ    SourceType
		label  string
		weight float64
	}

	var raw []rawSource
	if in.Context != "" {
		raw = append(raw, rawSource{SourceText, "What you wrote", 0.6})
	}
	if len(in.Emotions) > 0 {
		raw = append(raw, rawSource{SourceEmoji, "Emotions you tagged", 0.2})
	}
	if in.MoodScore != nil {
		raw = append(raw, rawSource{SourceHistory, "Your mood score", 0.15})
	}
	if in.EnergyLevel != nil {
		raw = append(raw, rawSource{SourceHistory, "Energy level", 0.1})
	}
	if in.VoiceTranscript != "" {
		raw = append(raw, rawSource{SourceVoice, "Voice check-in", 0.25})
	}
	if in.ImageMood != "" {
		raw = append(raw, rawSource{SourcePhoto, "Photo analysis", 0.2})
	}

	if len(raw) == 0 {
		return []AnalysisSource{baselineSource}
	}

	var total float64
	for _, r := range raw {
		total += r.weight
	}

	out := make([]AnalysisSource, len(raw))
	assigned := 0
	for i, r := range raw {
		w := int(math.Round(r.weight / total * 100))
		if i == len(raw)-1 {
			// Absorb rounding drift so the list totals exactly 100.
			w = 100 - assigned
		}
		assigned += w
		out[i] = AnalysisSource{Type: r.typ, Label: r.label, Weight: w}
	}

	return out
}
