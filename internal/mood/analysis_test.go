package mood

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func f(v float64) *float64 { return &v }
func b(v bool) *bool       { return &v }

func TestConfidence(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  int
	}{
		{
			name:  "empty input is base confidence",
			input: Input{},
			want:  60,
		},
		{
			name: "score and emotions",
			input: Input{
				Emotions:  []string{"joyful"},
				MoodScore: f(8),
				Context:   "Had a great day with friends",
			},
			want: 74, // 60 + min(15, 3*3) + 5; context too short for bonus
		},
		{
			name: "mood score bonus caps at 15",
			input: Input{
				MoodScore: f(10),
			},
			want: 75,
		},
		{
			name: "neutral energy placeholder adds nothing",
			input: Input{
				EnergyLevel: f(5),
			},
			want: 60,
		},
		{
			name: "non-neutral energy adds",
			input: Input{
				EnergyLevel: f(8),
			},
			want: 65,
		},
		{
			name: "therapy history known counts either way",
			input: Input{
				TherapyHistory: b(false),
			},
			want: 63,
		},
		{
			name: "fully populated input clamps at 95",
			input: Input{
				MoodScore:         f(10),
				Emotions:          []string{"worried"},
				EnergyLevel:       f(2),
				Context:           strings.Repeat("a long narrative about the day ", 5),
				VoiceTranscript:   "today was a lot, honestly, start to finish",
				ImageMood:         "sad",
				SymptomRatings:    map[string]float64{"anxiety": 4},
				PresentingProblem: "trouble sleeping",
				TherapyHistory:    b(true),
			},
			want: 95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Confidence(tt.input)
			if got != tt.want {
				t.Errorf("Confidence() = %d, want %d", got, tt.want)
			}
			if got < MinConfidence || got > MaxConfidence {
				t.Errorf("Confidence() = %d, outside [%d,%d]", got, MinConfidence, MaxConfidence)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	t.Run("starts with category descriptor", func(t *testing.T) {
		for _, c := range Categories {
			got := Summary(Input{}, c, 60)
			if !strings.HasPrefix(got, descriptors[c]) {
				t.Errorf("Summary for %v does not start with its descriptor: %q", c, got)
			}
		}
	})

	t.Run("presenting problem wins over context", func(t *testing.T) {
		in := Input{
			Context:           "a long day at work",
			PresentingProblem: "trouble sleeping",
		}
		got := Summary(in, Anxious, 70)
		if !strings.Contains(got, `"trouble sleeping"`) {
			t.Errorf("summary missing presenting problem: %q", got)
		}
		if strings.Contains(got, "Recent context") {
			t.Errorf("summary should omit context when presenting problem is set: %q", got)
		}
	})

	t.Run("context appears without presenting problem", func(t *testing.T) {
		got := Summary(Input{Context: "a long day at work"}, Tired, 70)
		if !strings.Contains(got, `Recent context: "a long day at work".`) {
			t.Errorf("summary missing context: %q", got)
		}
	})

	t.Run("elevated symptoms rendered in fixed order", func(t *testing.T) {
		in := Input{
			SymptomRatings: map[string]float64{
				"stress":     4,
				"anxiety":    3,
				"sadness":    2, // at threshold, excluded
				"loneliness": 5,
			},
		}
		got := Summary(in, Stressed, 70)
		if !strings.Contains(got, "anxiety (3/5), stress (4/5), loneliness (5/5)") {
			t.Errorf("elevated symptoms wrong or out of order: %q", got)
		}
	})

	t.Run("emotions capped at three", func(t *testing.T) {
		in := Input{Emotions: []string{"worried", "tense", "drained", "lonely"}}
		got := Summary(in, Anxious, 70)
		if !strings.Contains(got, "worried, tense, drained.") {
			t.Errorf("summary emotions wrong: %q", got)
		}
		if strings.Contains(got, "lonely") {
			t.Errorf("summary should cap emotions at three: %q", got)
		}
	})

	t.Run("therapy and readiness notes", func(t *testing.T) {
		in := Input{TherapyHistory: b(true), PatientReadiness: f(4)}
		got := Summary(in, Sad, 70)
		if !strings.Contains(got, "previous therapy experience") {
			t.Errorf("summary missing therapy note: %q", got)
		}
		if !strings.Contains(got, "strong readiness") {
			t.Errorf("summary missing readiness note: %q", got)
		}
	})
}

func TestSources(t *testing.T) {
	tests := []struct {
		name      string
		input     Input
		wantLen   int
		wantFirst SourceType
	}{
		{
			name:      "no channels yields baseline",
			input:     Input{},
			wantLen:   1,
			wantFirst: SourceText,
		},
		{
			name:      "context only",
			input:     Input{Context: "today was fine"},
			wantLen:   1,
			wantFirst: SourceText,
		},
		{
			name: "all channels",
			input: Input{
				Context:         "today was fine",
				Emotions:        []string{"content"},
				MoodScore:       f(7),
				EnergyLevel:     f(6),
				VoiceTranscript: "hello",
				ImageMood:       "happy",
			},
			wantLen:   6,
			wantFirst: SourceText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sources(tt.input)
			if len(got) != tt.wantLen {
				t.Fatalf("len(Sources()) = %d, want %d", len(got), tt.wantLen)
			}
			if got[0].Type != tt.wantFirst {
				t.Errorf("first source type = %v, want %v", got[0].Type, tt.wantFirst)
			}

			total := 0
			for _, s := range got {
				total += s.Weight
			}
			if total != 100 {
				t.Errorf("weights sum to %d, want 100", total)
			}
		})
	}
}

func TestSourcesBaselineLabel(t *testing.T) {
	got := Sources(Input{})
	if got[0].Label != "Baseline wellness model" || got[0].Weight != 100 {
		t.Errorf("baseline source = %+v", got[0])
	}
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	long := strings.Repeat("über-stressé ", 20)

	got := truncate(long, 120)

	if !utf8.ValidString(got) {
		t.Errorf("truncate() = %q, split a rune at the cut point", got)
	}
	if n := utf8.RuneCountInString(got); n != 120 {
		t.Errorf("rune count = %d, want 120", n)
	}
	if short := truncate("kurz", 120); short != "kurz" {
		t.Errorf("truncate() = %q, want input unchanged when under the limit", short)
	}
}
