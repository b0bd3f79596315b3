package score

import "fmt"

// ConfigurationError reports an invalid engine configuration. It is raised
// once at construction, never per measure.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// InvalidFeatureError reports a MeasureFeatures record that violates a
// non-negativity or range invariant. The offending measure index is
// attached so batch processing can skip just that work.
type InvalidFeatureError struct {
	MeasureIndex int
	Field        string
	Value        float64
}

func (e *InvalidFeatureError) Error() string {
	return fmt.Sprintf("invalid feature at measure %d: %s = %g", e.MeasureIndex, e.Field, e.Value)
}

// EmptyMovementError reports an attempt to aggregate a movement with no
// measures. A movement with zero measures is invalid input, not silently
// zero complexity.
type EmptyMovementError struct {
	MovementID string
}

func (e *EmptyMovementError) Error() string {
	if e.MovementID == "" {
		return "movement has no measures"
	}
	return fmt.Sprintf("movement %s has no measures", e.MovementID)
}

// InsufficientMeasuresError reports a movement shorter than the novelty
// comparison window. It is non-fatal: the segmenter still returns the
// implicit first boundary alongside it.
type InsufficientMeasuresError struct {
	MeasureCount int
	WindowSize   int
}

func (e *InsufficientMeasuresError) Error() string {
	return fmt.Sprintf("movement has %d measures, fewer than window size %d", e.MeasureCount, e.WindowSize)
}
