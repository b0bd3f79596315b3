package complexity

import (
	"github.com/sonata-semantics/scoreprofile/logging"
	"github.com/sonata-semantics/scoreprofile/numeric"
	"github.com/sonata-semantics/scoreprofile/score"
)

// GlobalComplexityProfile is the aggregate complexity of one movement,
// on the same scale as the LCI values it summarizes
type GlobalComplexityProfile struct {
	Value        float64         `json:"globalComplexityIndex"`
	Method       AggregateMethod `json:"method"`
	MeasureCount int             `json:"measureCount"`
}

// GlobalAggregator collapses a movement's ordered LCI sequence into a
// single Global Complexity Index
type GlobalAggregator struct {
	method AggregateMethod
	logger logging.Logger
}

// NewGlobalAggregator validates the configuration and creates an
// aggregator. A nil config uses the defaults.
func NewGlobalAggregator(cfg *Config) (*GlobalAggregator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	method := cfg.Aggregate
	if method == "" {
		method = AggregateMean
	}

	return &GlobalAggregator{
		method: method,
		logger: logging.WithFields(logging.Fields{
			"component": "global_aggregator",
		}),
	}, nil
}

// Aggregate computes the GCI from a movement's complete LCI sequence, in
// measure order. Call it only after every measure of the movement has been
// scored. AggregateWeighted without per-measure weights degrades to the
// uniform mean; use AggregateWeightedBy to supply duration weights.
func (ga *GlobalAggregator) Aggregate(lcis []LocalComplexityIndex) (GlobalComplexityProfile, error) {
	if len(lcis) == 0 {
		return GlobalComplexityProfile{}, &score.EmptyMovementError{}
	}

	values := lciValues(lcis)

	var value float64
	switch ga.method {
	case AggregateMedian:
		value = numeric.Median(values)
	default:
		value = numeric.Mean(values)
	}

	return GlobalComplexityProfile{
		Value:        value,
		Method:       ga.method,
		MeasureCount: len(lcis),
	}, nil
}

// AggregateWeightedBy computes a duration-weighted GCI. weights must be
// one nonnegative weight per measure with a positive sum.
func (ga *GlobalAggregator) AggregateWeightedBy(lcis []LocalComplexityIndex, weights []float64) (GlobalComplexityProfile, error) {
	if len(lcis) == 0 {
		return GlobalComplexityProfile{}, &score.EmptyMovementError{}
	}
	if len(weights) != len(lcis) {
		return GlobalComplexityProfile{}, &score.ConfigurationError{
			Field:  "weights",
			Reason: "one weight per measure required",
		}
	}

	sum := 0.0
	for _, w := range weights {
		if w < 0 {
			return GlobalComplexityProfile{}, &score.ConfigurationError{
				Field:  "weights",
				Reason: "negative measure weight",
			}
		}
		sum += w
	}
	if sum <= 0 {
		return GlobalComplexityProfile{}, &score.ConfigurationError{
			Field:  "weights",
			Reason: "measure weights sum to zero",
		}
	}

	return GlobalComplexityProfile{
		Value:        numeric.WeightedMean(lciValues(lcis), weights),
		Method:       AggregateWeighted,
		MeasureCount: len(lcis),
	}, nil
}

func lciValues(lcis []LocalComplexityIndex) []float64 {
	values := make([]float64, len(lcis))
	for i, lci := range lcis {
		values[i] = lci.Value
	}
	return values
}
