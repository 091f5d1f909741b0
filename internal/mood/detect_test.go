package mood

import (
	"reflect"
	"testing"
)

func TestDetectCategoryFromEmotions(t *testing.T) {
	tests := []struct {
		name     string
		emotions []string
		score    float64
		want     Category
	}{
		{name: "anxious words", emotions: []string{"worried", "nervous"}, score: 9, want: Anxious},
		{name: "happy words", emotions: []string{"joyful"}, score: 1, want: Happy},
		{name: "sad words", emotions: []string{"down", "lonely"}, score: 9, want: Sad},
		{name: "tired words", emotions: []string{"exhausted"}, score: 9, want: Tired},
		{name: "stressed words", emotions: []string{"frustrated", "tense"}, score: 9, want: Stressed},
		{name: "excited words", emotions: []string{"energized"}, score: 1, want: Excited},
		{name: "first match wins", emotions: []string{"drained", "joyful"}, score: 5, want: Tired},
		{name: "case insensitive", emotions: []string{"WORRIED"}, score: 9, want: Anxious},
		{name: "unknown words fall through to score", emotions: []string{"quixotic"}, score: 9, want: Happy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCategory(tt.emotions, tt.score); got != tt.want {
				t.Errorf("DetectCategory(%v, %v) = %v, want %v", tt.emotions, tt.score, got, tt.want)
			}
		})
	}
}

func TestDetectCategoryScoreBands(t *testing.T) {
	tests := []struct {
		score float64
		want  Category
	}{
		{9, Happy},
		{8, Happy},
		{7, Excited},
		{6, Excited},
		{5, Tired},
		{4, Tired},
		{3, Sad},
		{2, Sad},
		{1, Anxious},
		{0, Anxious},
	}

	for _, tt := range tests {
		if got := DetectCategory(nil, tt.score); got != tt.want {
			t.Errorf("DetectCategory(nil, %v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestInferFromText(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantCategory Category
		wantScore    float64
		wantEmotions []string
	}{
		{
			name:         "intensified anxious",
			text:         "I feel very anxious",
			wantCategory: Anxious,
			wantScore:    4,
			wantEmotions: []string{"anxious"},
		},
		{
			name:         "softened sadness",
			text:         "feeling a little sad today",
			wantCategory: Sad,
			wantScore:    2,
			wantEmotions: []string{"sad"},
		},
		{
			name:         "intensifier and softener combine",
			text:         "really stressed but only a little",
			wantCategory: Stressed,
			wantScore:    4,
			wantEmotions: []string{"stressed", "stress"},
		},
		{
			name:         "tie resolves to earlier category",
			text:         "happy and sad at the same time",
			wantCategory: Happy,
			wantScore:    8,
			wantEmotions: []string{"happy"},
		},
		{
			name:         "most matches wins",
			text:         "tired, exhausted, completely drained, and a bit sad",
			wantCategory: Tired,
			wantScore:    4,
			wantEmotions: []string{"tired", "exhausted", "drained"},
		},
		{
			name:         "empty text reads as excited",
			text:         "",
			wantCategory: Excited,
			wantScore:    7,
			wantEmotions: []string{},
		},
		{
			name:         "short unmatched text reads as excited",
			text:         "woo!",
			wantCategory: Excited,
			wantScore:    7,
			wantEmotions: []string{},
		},
		{
			name:         "long unmatched text reads as mildly happy",
			text:         "went to the market and bought some apples",
			wantCategory: Happy,
			wantScore:    6,
			wantEmotions: []string{},
		},
		{
			name:         "matched keywords capped at five",
			text:         "anxious worried nervous uneasy on edge overwhelmed panic",
			wantCategory: Anxious,
			wantScore:    3,
			wantEmotions: []string{"anxious", "worried", "nervous", "uneasy", "on edge"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferFromText(tt.text)
			if got.Category != tt.wantCategory {
				t.Errorf("category = %v, want %v", got.Category, tt.wantCategory)
			}
			if got.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", got.Score, tt.wantScore)
			}
			if !reflect.DeepEqual(got.Emotions, tt.wantEmotions) {
				t.Errorf("emotions = %v, want %v", got.Emotions, tt.wantEmotions)
			}
		})
	}
}

func TestInferFromTextIdempotent(t *testing.T) {
	text := "worried about the deadline, kind of tired"
	first := InferFromText(text)
	second := InferFromText(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("InferFromText not deterministic: %+v vs %+v", first, second)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"happy", Happy},
		{"HAPPY", Happy},
		{" stressed ", Stressed},
		{"euphoric", Tired},
		{"", Tired},
	}

	for _, tt := range tests {
		if got := ParseCategory(tt.in); got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
