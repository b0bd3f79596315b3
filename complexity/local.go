package complexity

import (
	"fmt"

	"github.com/sonata-semantics/scoreprofile/logging"
	"github.com/sonata-semantics/scoreprofile/numeric"
	"github.com/sonata-semantics/scoreprofile/score"
)

// LocalComplexityIndex is the normalized complexity score of one measure,
// together with the raw metrics it was derived from
type LocalComplexityIndex struct {
	MeasureIndex int                   `json:"measureIndex"`
	Value        float64               `json:"LCIvalue"` // in [0, 1]
	Features     score.MeasureFeatures `json:"features"`
}

// LocalScorer computes per-measure Local Complexity Index values as a
// weighted sum of min-max normalized metrics
type LocalScorer struct {
	weights map[Metric]float64 // normalized to sum 1
	ranges  map[Metric]Range   // fixed reference overrides
	logger  logging.Logger
}

// NewLocalScorer validates the configuration and creates a scorer. A nil
// config uses the defaults.
func NewLocalScorer(cfg *Config) (*LocalScorer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &LocalScorer{
		weights: cfg.normalizedWeights(),
		ranges:  cfg.Ranges,
		logger: logging.WithFields(logging.Fields{
			"component": "local_scorer",
		}),
	}, nil
}

// Score computes the LCI for one measure. stats must be the corpus-wide
// snapshot shared by every measure being compared; it is never mutated.
// The function is pure: identical inputs always produce the identical
// index.
func (ls *LocalScorer) Score(features score.MeasureFeatures, measureIndex int, stats *NormalizationStats) (LocalComplexityIndex, error) {
	if err := features.Validate(measureIndex); err != nil {
		return LocalComplexityIndex{}, err
	}

	value := 0.0
	for _, m := range Metrics {
		weight, ok := ls.weights[m]
		if !ok || weight == 0 {
			continue
		}
		value += weight * ls.normalize(m, features, stats)
	}

	return LocalComplexityIndex{
		MeasureIndex: measureIndex,
		Value:        value,
		Features:     features,
	}, nil
}

// normalize scales one raw metric into [0, 1] against its reference range.
// MinNoteValue is inverted so a smaller note value scores higher. A
// degenerate range contributes 0, as do the duration terms of an empty
// measure.
func (ls *LocalScorer) normalize(m Metric, features score.MeasureFeatures, stats *NormalizationStats) float64 {
	if features.NoteCount == 0 && (m == MetricSubdivisionIndex || m == MetricMinNoteValue) {
		return 0.0
	}

	rng, ok := ls.ranges[m]
	if !ok {
		rng = stats.Range(m)
	}
	if rng.Max <= rng.Min {
		return 0.0
	}

	scaled := numeric.MinMaxScale(metricValue(features, m), rng.Min, rng.Max)
	if m == MetricMinNoteValue {
		return 1.0 - scaled
	}
	return scaled
}

// ScoreMovement scores every measure of a movement in ascending measure
// order. The first invalid measure aborts the movement with its index
// attached; no partial result is returned.
func (ls *LocalScorer) ScoreMovement(movement score.Movement, stats *NormalizationStats) ([]LocalComplexityIndex, error) {
	lcis := make([]LocalComplexityIndex, 0, len(movement.Features))
	for i, features := range movement.Features {
		lci, err := ls.Score(features, i, stats)
		if err != nil {
			return nil, fmt.Errorf("movement %s: %w", movement.ID, err)
		}
		lcis = append(lcis, lci)
	}

	ls.logger.Debug("scored movement", logging.Fields{
		"movement": movement.ID,
		"measures": len(lcis),
	})

	return lcis, nil
}
