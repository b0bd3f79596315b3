package complexity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonata-semantics/scoreprofile/score"
)

func lcisWithValues(values ...float64) []LocalComplexityIndex {
	lcis := make([]LocalComplexityIndex, len(values))
	for i, v := range values {
		lcis[i] = LocalComplexityIndex{MeasureIndex: i, Value: v}
	}
	return lcis
}

func TestAggregateMean(t *testing.T) {
	aggregator, err := NewGlobalAggregator(nil)
	require.NoError(t, err)

	profile, err := aggregator.Aggregate(lcisWithValues(0.2, 0.4, 0.6))
	require.NoError(t, err)

	assert.InDelta(t, 0.4, profile.Value, 1e-9)
	assert.Equal(t, AggregateMean, profile.Method)
	assert.Equal(t, 3, profile.MeasureCount)
}

func TestAggregateEmptyMovement(t *testing.T) {
	aggregator, err := NewGlobalAggregator(nil)
	require.NoError(t, err)

	_, err = aggregator.Aggregate(nil)
	require.Error(t, err)

	var empty *score.EmptyMovementError
	assert.True(t, errors.As(err, &empty))
}

func TestAggregateMedian(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Aggregate = AggregateMedian
	aggregator, err := NewGlobalAggregator(cfg)
	require.NoError(t, err)

	profile, err := aggregator.Aggregate(lcisWithValues(0.9, 0.1, 0.2))
	require.NoError(t, err)

	assert.InDelta(t, 0.2, profile.Value, 1e-9)
	assert.Equal(t, AggregateMedian, profile.Method)
}

func TestAggregateWeightedBy(t *testing.T) {
	aggregator, err := NewGlobalAggregator(nil)
	require.NoError(t, err)

	profile, err := aggregator.AggregateWeightedBy(lcisWithValues(0.0, 1.0), []float64{1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 0.75, profile.Value, 1e-9)
	assert.Equal(t, AggregateWeighted, profile.Method)
}

func TestAggregateWeightedByRejectsBadWeights(t *testing.T) {
	aggregator, err := NewGlobalAggregator(nil)
	require.NoError(t, err)

	lcis := lcisWithValues(0.5, 0.5)

	tests := []struct {
		name    string
		weights []float64
	}{
		{"length mismatch", []float64{1}},
		{"negative weight", []float64{1, -1}},
		{"zero sum", []float64{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := aggregator.AggregateWeightedBy(lcis, tt.weights)
			require.Error(t, err)

			var cfgErr *score.ConfigurationError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestAggregateWeightedByEmptyMovement(t *testing.T) {
	aggregator, err := NewGlobalAggregator(nil)
	require.NoError(t, err)

	_, err = aggregator.AggregateWeightedBy(nil, nil)

	var empty *score.EmptyMovementError
	assert.True(t, errors.As(err, &empty))
}

func TestComputeNormalizationStats(t *testing.T) {
	movements := []score.Movement{
		{Features: []score.MeasureFeatures{
			{NoteCount: 2, MinNoteValue: 0.5},
			{NoteCount: 8, MinNoteValue: 0.125},
		}},
		{Features: []score.MeasureFeatures{
			{NoteCount: 5, MinNoteValue: 0.25, AccidentalCount: 3},
		}},
	}

	stats := ComputeNormalizationStats(movements)

	assert.Equal(t, Range{Min: 2, Max: 8}, stats.Range(MetricNoteCount))
	assert.Equal(t, Range{Min: 0.125, Max: 0.5}, stats.Range(MetricMinNoteValue))
	assert.Equal(t, Range{Min: 0, Max: 3}, stats.Range(MetricAccidentalCount))
}

func TestComputeNormalizationStatsEmptyCorpus(t *testing.T) {
	stats := ComputeNormalizationStats(nil)
	assert.Equal(t, Range{}, stats.Range(MetricNoteCount))
}
