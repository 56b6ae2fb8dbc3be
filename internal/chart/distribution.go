// Package chart builds the wait-time "teaser" graph shown to all users:
// a histogram of samples drawn from a normal distribution centered on the
// computed AWT. Purely illustrative; it carries no engineering contract
// and is never fed back into the calculation.
package chart

import "math/rand"

const (
	DefaultSamples = 500
	DefaultBins    = 30
)

// Histogram is the binned sample set the frontend renders.
type Histogram struct {
	Mean     float64   `json:"mean"`
	StdDev   float64   `json:"std_dev"`
	BinEdges []float64 `json:"bin_edges"` // len = len(Counts) + 1
	Counts   []int     `json:"counts"`
	Samples  int       `json:"samples"`
}

// WaitTimeHistogram samples a normal distribution around awt with
// sigma = awt/4 and bins the draws. A fixed seed makes the teaser stable
// across recalculations of the same analysis. Returns an empty histogram
// for a non-positive AWT.
func WaitTimeHistogram(awt float64, samples, bins int, seed int64) Histogram {
	if awt <= 0 || samples <= 0 || bins <= 0 {
		return Histogram{}
	}

	sigma := awt / 4
	rng := rand.New(rand.NewSource(seed))

	draws := make([]float64, samples)
	min, max := awt, awt
	for i := range draws {
		v := rng.NormFloat64()*sigma + awt
		draws[i] = v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		max = min + 1
	}

	width := (max - min) / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}

	counts := make([]int, bins)
	for _, v := range draws {
		idx := int((v - min) / width)
		if idx >= bins { // max lands in the last bin
			idx = bins - 1
		}
		counts[idx]++
	}

	return Histogram{
		Mean:     awt,
		StdDev:   sigma,
		BinEdges: edges,
		Counts:   counts,
		Samples:  samples,
	}
}
