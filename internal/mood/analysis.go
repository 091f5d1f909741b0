package mood

import (
	"fmt"
	"math"
	"strings"
)

// Confidence bounds. Every confidence value is clamped into this range.
const (
	MinConfidence = 45
	MaxConfidence = 95

	baseConfidence = 60
)

// Confidence scores how much signal the input carries, 45-95. Purely
// additive: each present channel adds a fixed bonus on top of the base.
func Confidence(in Input) int {
	score := float64(baseConfidence)

	if in.MoodScore != nil {
		score += math.Min(15, math.Abs(*in.MoodScore-5)*3)
	}
	if len(in.Context) > 80 {
		score += 10
	}
	if len(in.Emotions) > 0 {
		score += 5
	}
	if in.EnergyLevel != nil && *in.EnergyLevel != 5 {
		score += 5
	}
	if len(in.VoiceTranscript) > 20 {
		score += 5
	}
	if in.ImageMood != "" {
		score += 5
	}
	if len(in.SymptomRatings) > 0 {
		score += 8
	}
	if in.PresentingProblem != "" {
		score += 7
	}
	if in.TherapyHistory != nil {
		// Knowing the history either way is signal, true or false.
		score += 3
	}

	return int(clamp(score, MinConfidence, MaxConfidence))
}

// descriptors are the one-sentence per-category openers for the
// analysis summary.
var descriptors = map[Category]string{
	Anxious:  "Signals suggest your nervous system is running high, with worry taking up more space than usual.",
	Happy:    "Signals point to a bright, settled state with plenty of positive momentum.",
	Sad:      "Signals suggest a heavier emotional weight today, with energy pulled inward.",
	Tired:    "Signals point to a depleted reserve, with your body asking for rest.",
	Stressed: "Signals suggest sustained pressure, with tension building faster than it releases.",
	Excited:  "Signals point to a surge of energy and anticipation looking for an outlet.",
}

// symptomOrder fixes the rendering order of elevated symptom ratings.
var symptomOrder = []string{"anxiety", "sadness", "stress", "loneliness"}

// Summary builds the human-readable analysis narrative: the category
// descriptor followed by clauses for whichever channels were present.
// The confidence value is accepted for API symmetry but is not rendered
// in the text today.
func Summary(in Input, category Category, confidence int) string {
	_ = confidence

	parts := []string{descriptors[category]}

	switch {
	case in.PresentingProblem != "":
		parts = append(parts, fmt.Sprintf("You shared: %q.", truncate(in.PresentingProblem, 100)))
	case in.Context != "":
		parts = append(parts, fmt.Sprintf("Recent context: %q.", truncate(in.Context, 120)))
	}

	if elevated := elevatedSymptoms(in.SymptomRatings); len(elevated) > 0 {
		parts = append(parts, fmt.Sprintf("Elevated ratings: %s.", strings.Join(elevated, ", ")))
	}

	if len(in.Emotions) > 0 {
		shown := in.Emotions
		if len(shown) > 3 {
			shown = shown[:3]
		}
		parts = append(parts, fmt.Sprintf("You tagged feeling %s.", strings.Join(shown, ", ")))
	}

	if in.EnergyLevel != nil {
		parts = append(parts, fmt.Sprintf("Energy level around %.0f/10.", *in.EnergyLevel))
	}

	if in.TherapyHistory != nil && *in.TherapyHistory {
		parts = append(parts, "Your previous therapy experience is factored in.")
	}

	if in.PatientReadiness != nil && *in.PatientReadiness >= 4 {
		parts = append(parts, "You indicated strong readiness to work on this.")
	}

	return strings.Join(parts, " ")
}

// elevatedSymptoms renders symptom ratings above 2 as "name (value/5)",
// in fixed order.
func elevatedSymptoms(ratings map[string]float64) []string {
	var out []string
	for _, name := range symptomOrder {
		if v, ok := ratings[name]; ok && v > 2 {
			out = append(out, fmt.Sprintf("%s (%.0f/5)", name, v))
		}
	}
	return out
}

// truncate keeps the leading n characters of s, never splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
