package segmentation

import (
	"github.com/mjibson/go-dsp/window"

	"github.com/sonata-semantics/scoreprofile/numeric"
	"github.com/sonata-semantics/scoreprofile/score"
)

// NoveltyCurve computes one novelty value per measure index: the tapered
// mean of all content distances between the window of measures before the
// index and the window starting at it. Peaks mark likely phrase
// boundaries. Windows are truncated at the sequence edges; an index whose
// left window is empty has novelty 0.
func (s *Segmenter) NoveltyCurve(descriptors []score.ContentDescriptor) []float64 {
	n := len(descriptors)
	novelty := make([]float64, n)

	w := s.cfg.WindowSize
	for i := range descriptors {
		lo := max(0, i-w)
		hi := min(n, i+w)

		weightedSum := 0.0
		weightTotal := 0.0
		for a := lo; a < i; a++ {
			for b := i; b < hi; b++ {
				// Lags from the candidate boundary, 0 .. w-1
				weight := s.taper[i-1-a] * s.taper[b-i]
				weightedSum += weight * s.distance(descriptors[a], descriptors[b])
				weightTotal += weight
			}
		}

		if weightTotal > 0 {
			novelty[i] = weightedSum / weightTotal
		}
	}

	if s.cfg.SmoothingWidth > 1 {
		novelty = numeric.MovingAverage(novelty, s.cfg.SmoothingWidth)
	}

	return novelty
}

// kernelTaper returns per-lag weights for the cross-window comparison: the
// descending half of a Hann window, peaking at lag 0. A flat kernel uses
// unit weights.
func kernelTaper(windowSize int, taper bool) []float64 {
	weights := make([]float64, windowSize)
	if !taper {
		for k := range weights {
			weights[k] = 1.0
		}
		return weights
	}

	hann := window.Hann(2*windowSize + 1)
	copy(weights, hann[windowSize:2*windowSize])
	return weights
}
