package segmentation

import (
	"github.com/sonata-semantics/scoreprofile/score"
)

// Config configures novelty segmentation
type Config struct {
	// WindowSize is the half-width of the cross-comparison window, in
	// measures. It also sets the peak-picking neighborhood.
	WindowSize int `json:"window_size"`

	// Threshold is the minimum novelty a local maximum must reach to
	// become a phrase boundary. The comparison is non-strict.
	Threshold float64 `json:"threshold"`

	// Distance component weights; normalized to sum 1.
	PitchWeight   float64 `json:"pitch_weight"`
	RhythmWeight  float64 `json:"rhythm_weight"`
	DynamicWeight float64 `json:"dynamic_weight"`

	// Taper applies a Hann taper over pair lags so near-boundary pairs
	// dominate the novelty estimate, the checkerboard-kernel form.
	Taper bool `json:"taper"`

	// SmoothingWidth is the moving-average width applied to the novelty
	// curve before peak picking; 0 or 1 disables smoothing.
	SmoothingWidth int `json:"smoothing_width"`
}

// DefaultConfig returns the segmentation defaults: a four-measure window,
// equal distance weights and a tapered kernel
func DefaultConfig() *Config {
	return &Config{
		WindowSize:    4,
		Threshold:     0.15,
		PitchWeight:   1.0 / 3.0,
		RhythmWeight:  1.0 / 3.0,
		DynamicWeight: 1.0 / 3.0,
		Taper:         true,
	}
}

// Validate checks the configuration once at setup
func (c *Config) Validate() error {
	if c.WindowSize < 1 {
		return &score.ConfigurationError{Field: "window_size", Reason: "must be at least 1"}
	}
	if c.Threshold <= 0 {
		return &score.ConfigurationError{Field: "threshold", Reason: "must be positive"}
	}
	if c.PitchWeight < 0 || c.RhythmWeight < 0 || c.DynamicWeight < 0 {
		return &score.ConfigurationError{Field: "distance weights", Reason: "negative component weight"}
	}
	if c.PitchWeight+c.RhythmWeight+c.DynamicWeight <= 0 {
		return &score.ConfigurationError{Field: "distance weights", Reason: "weights sum to zero"}
	}
	if c.SmoothingWidth < 0 {
		return &score.ConfigurationError{Field: "smoothing_width", Reason: "must be nonnegative"}
	}
	return nil
}
