package complexity

import (
	"github.com/sonata-semantics/scoreprofile/numeric"
	"github.com/sonata-semantics/scoreprofile/score"
)

// NormalizationStats is a read-only snapshot of each metric's observed
// [min, max] range across the whole corpus. Build it once over every work
// being compared and pass the same snapshot into every scoring call,
// otherwise LCI values are not comparable across movements.
type NormalizationStats struct {
	ranges map[Metric]Range
}

// Range returns the observed reference range for a metric
func (s *NormalizationStats) Range(m Metric) Range {
	if s == nil {
		return Range{}
	}
	return s.ranges[m]
}

// ComputeNormalizationStats scans every measure of every movement and
// records the per-metric min and max
func ComputeNormalizationStats(movements []score.Movement) *NormalizationStats {
	values := make(map[Metric][]float64, len(Metrics))

	for _, movement := range movements {
		for _, features := range movement.Features {
			for _, m := range Metrics {
				values[m] = append(values[m], metricValue(features, m))
			}
		}
	}

	ranges := make(map[Metric]Range, len(Metrics))
	for _, m := range Metrics {
		lo, hi := numeric.MinMax(values[m])
		ranges[m] = Range{Min: lo, Max: hi}
	}

	return &NormalizationStats{ranges: ranges}
}
