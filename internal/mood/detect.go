package mood

import "strings"

// emotionCategories maps specific lowercase emotion words to a category.
// DetectCategory scans the caller's emotion list in order and the first
// word found here wins.
var emotionCategories = map[string]Category{
	"anxious":      Anxious,
	"worried":      Anxious,
	"nervous":      Anxious,
	"uneasy":       Anxious,
	"panicked":     Anxious,
	"happy":        Happy,
	"joyful":       Happy,
	"content":      Happy,
	"cheerful":     Happy,
	"grateful":     Happy,
	"sad":          Sad,
	"down":         Sad,
	"lonely":       Sad,
	"heartbroken":  Sad,
	"gloomy":       Sad,
	"tired":        Tired,
	"exhausted":    Tired,
	"drained":      Tired,
	"sleepy":       Tired,
	"weary":        Tired,
	"stressed":     Stressed,
	"frustrated":   Stressed,
	"overwhelmed":  Stressed,
	"tense":        Stressed,
	"irritable":    Stressed,
	"excited":      Excited,
	"energized":    Excited,
	"thrilled":     Excited,
	"eager":        Excited,
	"enthusiastic": Excited,
}

// DetectCategory resolves a category from tagged emotions and a mood
// score. The first emotion with a known mapping wins; when none match,
// score bands decide. Total function: always returns a category.
func DetectCategory(emotions []string, score float64) Category {
	for _, e := range emotions {
		if c, ok := emotionCategories[strings.ToLower(strings.TrimSpace(e))]; ok {
			return c
		}
	}

	switch {
	case score >= 8:
		return Happy
	case score >= 6:
		return Excited
	case score >= 4:
		return Tired
	case score >= 2:
		return Sad
	default:
		return Anxious
	}
}

// categoryKeywords are the phrases InferFromText counts per category.
var categoryKeywords = map[Category][]string{
	Anxious:  {"anxious", "worried", "nervous", "uneasy", "on edge", "overwhelmed", "panic"},
	Happy:    {"happy", "joy", "great", "wonderful", "grateful", "good mood"},
	Sad:      {"sad", "down", "lonely", "miserable", "crying", "heartbroken"},
	Tired:    {"tired", "exhausted", "sleepy", "drained", "fatigued", "worn out"},
	Stressed: {"stressed", "stress", "pressure", "deadline", "frustrated", "tense"},
	Excited:  {"excited", "thrilled", "energized", "pumped", "can't wait", "eager"},
}

// baseScores are the starting scores per category before intensity
// adjustment.
var baseScores = map[Category]float64{
	Anxious:  3,
	Happy:    8,
	Sad:      3,
	Tired:    4,
	Stressed: 4,
	Excited:  8,
}

var (
	intensifiers = []string{"very", "really", "extremely"}
	softeners    = []string{"slightly", "kind of", "a little"}

	// maxInferredEmotions caps how many matched keywords are reported.
	maxInferredEmotions = 5
)

// Inference is the result of free-text mood inference.
type Inference struct {
	Category Category
	Score    float64
	Emotions []string
}

// InferFromText derives a mood from free text by counting per-category
// keyword occurrences. Ties resolve to the earlier category in canonical
// order. When no keyword matches at all, a length heuristic applies:
// very short text reads as excited, anything longer as mildly happy.
func InferFromText(text string) Inference {
	lowered := strings.ToLower(text)

	best := Inference{}
	bestCount := 0

	for _, c := range Categories {
		var matched []string
		for _, kw := range categoryKeywords[c] {
			if strings.Contains(lowered, kw) {
				matched = append(matched, kw)
			}
		}
		if len(matched) > bestCount {
			bestCount = len(matched)
			best = Inference{Category: c, Emotions: dedupe(matched, maxInferredEmotions)}
		}
	}

	if bestCount == 0 {
		if len(text) <= 6 {
			return Inference{Category: Excited, Score: 7, Emotions: []string{}}
		}
		return Inference{Category: Happy, Score: 6, Emotions: []string{}}
	}

	score := baseScores[best.Category]
	if containsAny(lowered, intensifiers) {
		score++
	}
	if containsAny(lowered, softeners) {
		score--
	}
	best.Score = clamp(score, 2, 10)

	return best
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// dedupe removes duplicates preserving insertion order and caps the
// result at limit entries.
func dedupe(words []string, limit int) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
		if len(out) == limit {
			break
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
