package segmentation

import (
	"math"

	"github.com/sonata-semantics/scoreprofile/numeric"
	"github.com/sonata-semantics/scoreprofile/score"
)

// distance computes the weighted content dissimilarity of two measures.
// It is symmetric, zero for identical descriptors and bounded to [0, 1].
func (s *Segmenter) distance(a, b score.ContentDescriptor) float64 {
	pitch := 1.0 - pitchClassOverlap(a.PitchClasses, b.PitchClasses)

	rhythm := 0.0
	if a.RhythmSignature != b.RhythmSignature {
		rhythm = 1.0
	}

	dynamic := numeric.Clamp(math.Abs(a.DynamicLevel-b.DynamicLevel)/score.DynamicLevelMax, 0.0, 1.0)

	return s.pitchWeight*pitch + s.rhythmWeight*rhythm + s.dynamicWeight*dynamic
}

// pitchClassOverlap is the Jaccard overlap of two active pitch-class sets.
// Two empty sets overlap fully.
func pitchClassOverlap(a, b [12]bool) float64 {
	intersection := 0
	union := 0
	for pc := 0; pc < 12; pc++ {
		if a[pc] && b[pc] {
			intersection++
		}
		if a[pc] || b[pc] {
			union++
		}
	}

	if union == 0 {
		return 1.0
	}
	return float64(intersection) / float64(union)
}
