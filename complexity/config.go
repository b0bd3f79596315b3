package complexity

import (
	"github.com/sonata-semantics/scoreprofile/score"
)

// Metric names one of the six raw complexity metrics
type Metric string

const (
	MetricNoteCount         Metric = "noteCount"
	MetricAccidentalCount   Metric = "measureAccidentalCount"
	MetricSubdivisionIndex  Metric = "subdivisionIndex"
	MetricMinNoteValue      Metric = "minNoteValue"
	MetricDynamicCount      Metric = "dynamicCount"
	MetricArticulationCount Metric = "articulationCount"
)

// Metrics lists the six metrics in canonical order
var Metrics = []Metric{
	MetricNoteCount,
	MetricAccidentalCount,
	MetricSubdivisionIndex,
	MetricMinNoteValue,
	MetricDynamicCount,
	MetricArticulationCount,
}

// Range is a [Min, Max] normalization reference range for one metric
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AggregateMethod selects how a movement's LCI values collapse into the GCI
type AggregateMethod string

const (
	AggregateMean     AggregateMethod = "mean"
	AggregateMedian   AggregateMethod = "median"
	AggregateWeighted AggregateMethod = "weighted"
)

// Config configures the complexity engine. Weights are retunable by domain
// experts: any nonnegative weights with a positive sum are accepted and
// normalized to sum 1 at construction.
type Config struct {
	// Weights per metric. A missing metric weighs 0.
	Weights map[Metric]float64 `json:"weights"`

	// Ranges optionally fixes the normalization reference range for a
	// metric (a theoretical ceiling). Metrics absent here use the
	// corpus-derived range from NormalizationStats.
	Ranges map[Metric]Range `json:"ranges,omitempty"`

	// Aggregate selects the GCI summary; duration weights for
	// AggregateWeighted are supplied per call.
	Aggregate AggregateMethod `json:"aggregate"`
}

// DefaultConfig returns equal weighting over the six metrics and mean
// aggregation
func DefaultConfig() *Config {
	weights := make(map[Metric]float64, len(Metrics))
	for _, m := range Metrics {
		weights[m] = 1.0 / float64(len(Metrics))
	}

	return &Config{
		Weights:   weights,
		Aggregate: AggregateMean,
	}
}

// Validate checks the configuration once at setup
func (c *Config) Validate() error {
	if len(c.Weights) == 0 {
		return &score.ConfigurationError{Field: "weights", Reason: "no metric weights configured"}
	}

	sum := 0.0
	for metric, weight := range c.Weights {
		if !isKnownMetric(metric) {
			return &score.ConfigurationError{Field: "weights", Reason: "unknown metric " + string(metric)}
		}
		if weight < 0 {
			return &score.ConfigurationError{Field: "weights", Reason: "negative weight for " + string(metric)}
		}
		sum += weight
	}
	if sum <= 0 {
		return &score.ConfigurationError{Field: "weights", Reason: "weights sum to zero"}
	}

	for metric, rng := range c.Ranges {
		if !isKnownMetric(metric) {
			return &score.ConfigurationError{Field: "ranges", Reason: "unknown metric " + string(metric)}
		}
		if rng.Max <= rng.Min {
			return &score.ConfigurationError{Field: "ranges", Reason: "empty reference range for " + string(metric)}
		}
	}

	switch c.Aggregate {
	case "", AggregateMean, AggregateMedian, AggregateWeighted:
	default:
		return &score.ConfigurationError{Field: "aggregate", Reason: "unknown method " + string(c.Aggregate)}
	}

	return nil
}

// normalizedWeights returns the configured weights scaled to sum 1
func (c *Config) normalizedWeights() map[Metric]float64 {
	sum := 0.0
	for _, weight := range c.Weights {
		sum += weight
	}

	normalized := make(map[Metric]float64, len(c.Weights))
	for metric, weight := range c.Weights {
		normalized[metric] = weight / sum
	}
	return normalized
}

func isKnownMetric(m Metric) bool {
	for _, known := range Metrics {
		if m == known {
			return true
		}
	}
	return false
}

// metricValue extracts one raw metric from a feature record
func metricValue(f score.MeasureFeatures, m Metric) float64 {
	switch m {
	case MetricNoteCount:
		return float64(f.NoteCount)
	case MetricAccidentalCount:
		return float64(f.AccidentalCount)
	case MetricSubdivisionIndex:
		return f.SubdivisionIndex
	case MetricMinNoteValue:
		return f.MinNoteValue
	case MetricDynamicCount:
		return float64(f.DynamicCount)
	case MetricArticulationCount:
		return float64(f.ArticulationCount)
	default:
		return 0.0
	}
}
