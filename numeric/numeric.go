package numeric

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Shared normalization and smoothing helpers used by the complexity and
// segmentation engines, backed by gonum.

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// WeightedMean calculates a weighted arithmetic mean. weights must have the
// same length as data.
func WeightedMean(data, weights []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, weights)
}

// Median calculates the empirical median of a slice
func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// StandardDeviation calculates the sample standard deviation
func StandardDeviation(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return math.Sqrt(stat.Variance(data, nil))
}

// MinMax returns the minimum and maximum of a slice, (0, 0) when empty
func MinMax(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0.0, 0.0
	}
	return floats.Min(data), floats.Max(data)
}

// Clamp restricts value to the [min, max] interval
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// MinMaxScale scales value against the [min, max] reference range into
// [0, 1]. A degenerate range (max <= min) scales to 0.
func MinMaxScale(value, min, max float64) float64 {
	if max <= min {
		return 0.0
	}
	return Clamp((value-min)/(max-min), 0.0, 1.0)
}

// MovingAverage smooths data with a centered moving average of the given
// width, truncating the window at the slice edges. A width of 0 or 1
// returns an unsmoothed copy.
func MovingAverage(data []float64, width int) []float64 {
	smoothed := make([]float64, len(data))
	if width <= 1 {
		copy(smoothed, data)
		return smoothed
	}

	half := width / 2
	for i := range data {
		lo := max(0, i-half)
		hi := min(len(data)-1, i+half)

		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += data[j]
		}
		smoothed[i] = sum / float64(hi-lo+1)
	}

	return smoothed
}
