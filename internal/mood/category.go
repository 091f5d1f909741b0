// Package mood resolves heterogeneous, partially-populated emotional
// signals into a single consistent mood estimate: a category, a 1-10
// score, an energy level, and a deduplicated emotion set.
package mood

import "strings"

// Category is a mood classification. The set is closed: every code path
// that produces a mood coerces to one of the six values below.
type Category string

// The six mood categories, in canonical order.
const (
	Anxious  Category = "anxious"
	Happy    Category = "happy"
	Sad      Category = "sad"
	Tired    Category = "tired"
	Stressed Category = "stressed"
	Excited  Category = "excited"
)

// Categories lists all categories in canonical order. Tie-breaks during
// text inference resolve in this order, so it must not be reordered.
var Categories = []Category{Anxious, Happy, Sad, Tired, Stressed, Excited}

// DefaultCategory is the neutral fallback for unrecognized mood strings.
const DefaultCategory = Tired

// FromString returns the category matching s (case-insensitive) and
// whether the match succeeded.
func FromString(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return known, true
		}
	}
	return "", false
}

// ParseCategory coerces s to a known category, falling back to
// DefaultCategory for anything unrecognized (including the empty string).
func ParseCategory(s string) Category {
	if c, ok := FromString(s); ok {
		return c
	}
	return DefaultCategory
}
