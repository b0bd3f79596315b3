package segmentation

import (
	"github.com/sonata-semantics/scoreprofile/logging"
	"github.com/sonata-semantics/scoreprofile/score"
)

// Segmenter detects phrase boundaries in a movement from its ordered
// per-measure content descriptors. It is state-free across calls:
// identical inputs always produce the identical boundary list.
type Segmenter struct {
	cfg           *Config
	pitchWeight   float64
	rhythmWeight  float64
	dynamicWeight float64
	taper         []float64
	logger        logging.Logger
}

// NewSegmenter validates the configuration and creates a segmenter. A nil
// config uses the defaults.
func NewSegmenter(cfg *Config) (*Segmenter, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	weightSum := cfg.PitchWeight + cfg.RhythmWeight + cfg.DynamicWeight

	return &Segmenter{
		cfg:           cfg,
		pitchWeight:   cfg.PitchWeight / weightSum,
		rhythmWeight:  cfg.RhythmWeight / weightSum,
		dynamicWeight: cfg.DynamicWeight / weightSum,
		taper:         kernelTaper(cfg.WindowSize, cfg.Taper),
		logger: logging.WithFields(logging.Fields{
			"component": "novelty_segmenter",
		}),
	}, nil
}

// Segment returns the ordered phrase-boundary measure indices for one
// movement. The list is strictly increasing and always starts with the
// implicit boundary at measure 0, so every movement has at least one
// phrase.
//
// A movement with fewer measures than the window returns the implicit
// boundary alone together with an InsufficientMeasuresError; callers may
// keep the degraded result. A movement with no measures returns no
// boundaries and the same error.
func (s *Segmenter) Segment(descriptors []score.ContentDescriptor) ([]int, error) {
	n := len(descriptors)
	if n == 0 {
		return nil, &score.InsufficientMeasuresError{MeasureCount: 0, WindowSize: s.cfg.WindowSize}
	}
	if n < s.cfg.WindowSize {
		return []int{0}, &score.InsufficientMeasuresError{MeasureCount: n, WindowSize: s.cfg.WindowSize}
	}

	novelty := s.NoveltyCurve(descriptors)
	boundaries := []int{0}

	w := s.cfg.WindowSize
	for i := 1; i < n; i++ {
		if novelty[i] < s.cfg.Threshold {
			continue
		}
		if s.isPeak(novelty, i, w) {
			boundaries = append(boundaries, i)
		}
	}

	s.logger.Debug("segmented movement", logging.Fields{
		"measures":   n,
		"boundaries": len(boundaries),
	})

	return boundaries, nil
}

// isPeak reports whether index i is a local maximum over its windowSize
// neighborhood. The comparison is strict against earlier indices and
// non-strict against later ones, so the earliest index of a plateau wins
// and boundary selection is reproducible.
func (s *Segmenter) isPeak(novelty []float64, i, w int) bool {
	for j := max(0, i-w); j < i; j++ {
		if novelty[j] >= novelty[i] {
			return false
		}
	}
	for j := i + 1; j <= min(len(novelty)-1, i+w); j++ {
		if novelty[j] > novelty[i] {
			return false
		}
	}
	return true
}
