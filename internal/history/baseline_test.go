package history

import (
	"math"
	"testing"
)

func TestDominantStateEmpty(t *testing.T) {
	_, ok := DominantState(nil)
	if ok {
		t.Error("DominantState(nil) ok = true, want false")
	}
}

func TestDominantStateSmallSampleUsesMean(t *testing.T) {
	checkIns := []CheckIn{
		{Score: 8, Energy: 6},
		{Score: 6, Energy: 4},
		{Score: 7, Energy: 5},
	}

	got, ok := DominantState(checkIns)
	if !ok {
		t.Fatal("DominantState() ok = false")
	}
	if got.Score != 7 {
		t.Errorf("Score = %v, want 7", got.Score)
	}
	if got.Energy != 5 {
		t.Errorf("Energy = %v, want 5", got.Energy)
	}
}

func TestDominantStatePicksLargestCluster(t *testing.T) {
	// Six tight low-mood points and two high outliers: the dominant
	// state should land near the low group, not the overall mean.
	checkIns := []CheckIn{
		{Score: 3, Energy: 3},
		{Score: 3.2, Energy: 2.8},
		{Score: 2.8, Energy: 3.1},
		{Score: 3.1, Energy: 3.2},
		{Score: 2.9, Energy: 2.9},
		{Score: 3, Energy: 3},
		{Score: 9, Energy: 9},
		{Score: 8.8, Energy: 9.1},
	}

	got, ok := DominantState(checkIns)
	if !ok {
		t.Fatal("DominantState() ok = false")
	}

	if math.Abs(got.Score-3) > 1 {
		t.Errorf("Score = %v, want near the dominant low group", got.Score)
	}
	if math.Abs(got.Energy-3) > 1 {
		t.Errorf("Energy = %v, want near the dominant low group", got.Energy)
	}
}

func TestRecentScores(t *testing.T) {
	checkIns := []CheckIn{
		{Score: 8},
		{Score: 5},
		{Score: 3},
	}

	got := RecentScores(checkIns)

	want := []float64{8, 5, 3}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("scores[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRecentScoresEmpty(t *testing.T) {
	if got := RecentScores(nil); len(got) != 0 {
		t.Errorf("RecentScores(nil) = %v, want empty", got)
	}
}
