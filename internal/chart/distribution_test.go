package chart

import "testing"

func TestHistogramShape(t *testing.T) {
	h := WaitTimeHistogram(221.16, DefaultSamples, DefaultBins, 42)

	if h.Samples != DefaultSamples {
		t.Errorf("expected %d samples, got %d", DefaultSamples, h.Samples)
	}
	if len(h.Counts) != DefaultBins {
		t.Errorf("expected %d bins, got %d", DefaultBins, len(h.Counts))
	}
	if len(h.BinEdges) != DefaultBins+1 {
		t.Errorf("expected %d edges, got %d", DefaultBins+1, len(h.BinEdges))
	}

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	if total != DefaultSamples {
		t.Errorf("counts sum to %d, expected %d", total, DefaultSamples)
	}

	for i := 1; i < len(h.BinEdges); i++ {
		if h.BinEdges[i] <= h.BinEdges[i-1] {
			t.Fatalf("bin edges not strictly increasing at %d", i)
		}
	}
}

func TestHistogramDeterministicForSeed(t *testing.T) {
	a := WaitTimeHistogram(100, 200, 10, 7)
	b := WaitTimeHistogram(100, 200, 10, 7)

	for i := range a.Counts {
		if a.Counts[i] != b.Counts[i] {
			t.Fatal("same seed must produce the same histogram")
		}
	}
}

func TestHistogramDegenerateAWT(t *testing.T) {
	h := WaitTimeHistogram(0, DefaultSamples, DefaultBins, 1)
	if h.Samples != 0 || len(h.Counts) != 0 {
		t.Errorf("expected empty histogram for AWT=0, got %+v", h)
	}
}

func TestHistogramSigmaIsQuarterOfMean(t *testing.T) {
	h := WaitTimeHistogram(200, 100, 10, 1)
	if h.StdDev != 50 {
		t.Errorf("expected sigma 50, got %.2f", h.StdDev)
	}
}
