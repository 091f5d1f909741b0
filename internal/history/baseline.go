package history

import (
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// minClusterInput is the smallest sample worth clustering; below it a
// plain mean is the better estimate.
const minClusterInput = 4

// baselineClusters partitions recent check-ins into this many mood
// states; the most populated one is the dominant state.
const baselineClusters = 2

// Baseline is the user's dominant recent mood state, used to default
// score and energy when a request carries neither.
type Baseline struct {
	Score  float64
	Energy float64
}

// checkInObservation wraps a CheckIn to implement the
// clusters.Observation interface over (score, energy) coordinates.
type checkInObservation struct {
	coords clusters.Coordinates
}

func (o checkInObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o checkInObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// DominantState estimates the user's baseline from recent check-ins by
// clustering (score, energy) observations and taking the center of the
// largest cluster. Small samples fall back to a plain mean; an empty
// sample reports no baseline.
func DominantState(checkIns []CheckIn) (Baseline, bool) {
	if len(checkIns) == 0 {
		return Baseline{}, false
	}

	if len(checkIns) < minClusterInput {
		return meanBaseline(checkIns), true
	}

	var obs clusters.Observations
	for _, c := range checkIns {
		obs = append(obs, checkInObservation{
			coords: clusters.Coordinates{c.Score, c.Energy},
		})
	}

	km := kmeans.New()
	result, err := km.Partition(obs, baselineClusters)
	if err != nil {
		// Clustering is best-effort; the mean is always available.
		return meanBaseline(checkIns), true
	}

	largest := result[0]
	for _, cluster := range result[1:] {
		if len(cluster.Observations) > len(largest.Observations) {
			largest = cluster
		}
	}

	return Baseline{
		Score:  largest.Center[0],
		Energy: largest.Center[1],
	}, true
}

// RecentScores extracts the score series, newest first, for use as the
// recentMoods input channel.
func RecentScores(checkIns []CheckIn) []float64 {
	scores := make([]float64, len(checkIns))
	for i, c := range checkIns {
		scores[i] = c.Score
	}
	return scores
}

func meanBaseline(checkIns []CheckIn) Baseline {
	var score, energy float64
	for _, c := range checkIns {
		score += c.Score
		energy += c.Energy
	}
	n := float64(len(checkIns))
	return Baseline{Score: score / n, Energy: energy / n}
}
