package complexity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonata-semantics/scoreprofile/score"
)

// fixedRanges pins every reference range so tests do not depend on a
// corpus scan
func fixedRanges() map[Metric]Range {
	return map[Metric]Range{
		MetricNoteCount:         {Min: 0, Max: 20},
		MetricAccidentalCount:   {Min: 0, Max: 10},
		MetricSubdivisionIndex:  {Min: 0, Max: 8},
		MetricMinNoteValue:      {Min: 1.0 / 64.0, Max: 1.0},
		MetricDynamicCount:      {Min: 0, Max: 4},
		MetricArticulationCount: {Min: 0, Max: 10},
	}
}

func newFixedScorer(t *testing.T) *LocalScorer {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Ranges = fixedRanges()
	scorer, err := NewLocalScorer(cfg)
	require.NoError(t, err)
	return scorer
}

func TestScoreZeroActivityMeasure(t *testing.T) {
	scorer := newFixedScorer(t)

	lci, err := scorer.Score(score.MeasureFeatures{}, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lci.Value)
}

func TestScoreEmptyMeasureFailsClosed(t *testing.T) {
	// A full-measure rest has no durations; the subdivision and
	// min-note-value terms must contribute 0 instead of dividing by zero
	// or inverting a missing value.
	scorer := newFixedScorer(t)

	lci, err := scorer.Score(score.MeasureFeatures{DynamicCount: 1}, 0, nil)
	require.NoError(t, err)
	assert.InDelta(t, (1.0/6.0)*(1.0/4.0), lci.Value, 1e-9)
}

func TestScoreMonotonicity(t *testing.T) {
	scorer := newFixedScorer(t)

	base := score.MeasureFeatures{
		NoteCount:         5,
		AccidentalCount:   2,
		SubdivisionIndex:  2,
		MinNoteValue:      0.25,
		DynamicCount:      1,
		ArticulationCount: 1,
	}

	scoreOf := func(f score.MeasureFeatures) float64 {
		lci, err := scorer.Score(f, 0, nil)
		require.NoError(t, err)
		return lci.Value
	}

	baseline := scoreOf(base)

	increasing := []func(*score.MeasureFeatures){
		func(f *score.MeasureFeatures) { f.NoteCount += 3 },
		func(f *score.MeasureFeatures) { f.AccidentalCount += 2 },
		func(f *score.MeasureFeatures) { f.SubdivisionIndex += 2 },
		func(f *score.MeasureFeatures) { f.DynamicCount += 1 },
		func(f *score.MeasureFeatures) { f.ArticulationCount += 2 },
	}
	for _, bump := range increasing {
		f := base
		bump(&f)
		assert.GreaterOrEqual(t, scoreOf(f), baseline)
	}

	// Smaller minNoteValue means a finer note, hence higher complexity
	finer := base
	finer.MinNoteValue = 1.0 / 32.0
	assert.GreaterOrEqual(t, scoreOf(finer), baseline)

	coarser := base
	coarser.MinNoteValue = 0.5
	assert.LessOrEqual(t, scoreOf(coarser), baseline)
}

func TestScoreStaysInBounds(t *testing.T) {
	scorer := newFixedScorer(t)

	measures := []score.MeasureFeatures{
		{},
		{NoteCount: 1, MinNoteValue: 1.0},
		{NoteCount: 20, AccidentalCount: 10, SubdivisionIndex: 8, MinNoteValue: 1.0 / 64.0, DynamicCount: 4, ArticulationCount: 10},
		{NoteCount: 7, AccidentalCount: 3, SubdivisionIndex: 4, MinNoteValue: 1.0 / 16.0, DynamicCount: 2, ArticulationCount: 5},
		// Values outside the configured reference ranges still clamp
		{NoteCount: 500, AccidentalCount: 100, SubdivisionIndex: 64, MinNoteValue: 1.0 / 256.0, DynamicCount: 40, ArticulationCount: 99},
	}

	for i, f := range measures {
		lci, err := scorer.Score(f, i, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, lci.Value, 0.0, "measure %d", i)
		assert.LessOrEqual(t, lci.Value, 1.0, "measure %d", i)
	}
}

func TestScoreMaximalMeasureWithRetunedWeights(t *testing.T) {
	// Arbitrary nonnegative weights are normalized to sum 1, so a measure
	// at the top of every reference range scores exactly 1.
	cfg := &Config{
		Weights: map[Metric]float64{
			MetricNoteCount:         3.06,
			MetricAccidentalCount:   4.31,
			MetricSubdivisionIndex:  3.75,
			MetricMinNoteValue:      3.68,
			MetricDynamicCount:      3.68,
			MetricArticulationCount: 4.43,
		},
		Ranges: fixedRanges(),
	}
	scorer, err := NewLocalScorer(cfg)
	require.NoError(t, err)

	maximal := score.MeasureFeatures{
		NoteCount:         20,
		AccidentalCount:   10,
		SubdivisionIndex:  8,
		MinNoteValue:      1.0 / 64.0, // range minimum inverts to 1
		DynamicCount:      4,
		ArticulationCount: 10,
	}

	lci, err := scorer.Score(maximal, 0, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, lci.Value, 1e-9)
}

func TestScoreUsesCorpusStats(t *testing.T) {
	scorer, err := NewLocalScorer(nil)
	require.NoError(t, err)

	movement := score.Movement{
		ID: "M1",
		Features: []score.MeasureFeatures{
			{NoteCount: 2, MinNoteValue: 0.5, SubdivisionIndex: 1},
			{NoteCount: 10, MinNoteValue: 0.125, SubdivisionIndex: 2},
		},
	}
	stats := ComputeNormalizationStats([]score.Movement{movement})

	lcis, err := scorer.ScoreMovement(movement, stats)
	require.NoError(t, err)
	require.Len(t, lcis, 2)

	// The busier measure with the finer notes scores higher
	assert.Greater(t, lcis[1].Value, lcis[0].Value)
	assert.Equal(t, 0, lcis[0].MeasureIndex)
	assert.Equal(t, 1, lcis[1].MeasureIndex)
}

func TestScoreMovementAbortsOnInvalidMeasure(t *testing.T) {
	scorer := newFixedScorer(t)

	movement := score.Movement{
		ID: "M2",
		Features: []score.MeasureFeatures{
			{NoteCount: 1, MinNoteValue: 0.25},
			{NoteCount: -3},
			{NoteCount: 1, MinNoteValue: 0.25},
		},
	}

	_, err := scorer.ScoreMovement(movement, nil)
	require.Error(t, err)

	var invalid *score.InvalidFeatureError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, 1, invalid.MeasureIndex)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"no weights", &Config{}},
		{"negative weight", &Config{Weights: map[Metric]float64{MetricNoteCount: -1}}},
		{"all-zero weights", &Config{Weights: map[Metric]float64{MetricNoteCount: 0}}},
		{"unknown metric", &Config{Weights: map[Metric]float64{"tempo": 1}}},
		{"empty reference range", func() *Config {
			c := DefaultConfig()
			c.Ranges = map[Metric]Range{MetricNoteCount: {Min: 5, Max: 5}}
			return c
		}()},
		{"unknown aggregate", func() *Config {
			c := DefaultConfig()
			c.Aggregate = "mode"
			return c
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocalScorer(tt.cfg)
			require.Error(t, err)

			var cfgErr *score.ConfigurationError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestScoreIsPure(t *testing.T) {
	scorer := newFixedScorer(t)
	features := score.MeasureFeatures{NoteCount: 6, AccidentalCount: 1, SubdivisionIndex: 2, MinNoteValue: 0.125}

	first, err := scorer.Score(features, 4, nil)
	require.NoError(t, err)
	second, err := scorer.Score(features, 4, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
