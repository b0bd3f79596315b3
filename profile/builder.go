package profile

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/sonata-semantics/scoreprofile/complexity"
	"github.com/sonata-semantics/scoreprofile/logging"
	"github.com/sonata-semantics/scoreprofile/score"
	"github.com/sonata-semantics/scoreprofile/segmentation"
)

// Builder runs both engines over movements that share one corpus
// normalization snapshot
type Builder struct {
	scorer     *complexity.LocalScorer
	aggregator *complexity.GlobalAggregator
	segmenter  *segmentation.Segmenter
	logger     logging.Logger
}

// NewBuilder validates both configurations once and creates a builder.
// Nil configs use the respective defaults.
func NewBuilder(complexityCfg *complexity.Config, segmentationCfg *segmentation.Config) (*Builder, error) {
	scorer, err := complexity.NewLocalScorer(complexityCfg)
	if err != nil {
		return nil, err
	}
	aggregator, err := complexity.NewGlobalAggregator(complexityCfg)
	if err != nil {
		return nil, err
	}
	segmenter, err := segmentation.NewSegmenter(segmentationCfg)
	if err != nil {
		return nil, err
	}

	return &Builder{
		scorer:     scorer,
		aggregator: aggregator,
		segmenter:  segmenter,
		logger: logging.WithFields(logging.Fields{
			"component": "profile_builder",
		}),
	}, nil
}

// Build computes the complete profile for one movement. stats must be the
// corpus snapshot shared by every movement being compared.
func (b *Builder) Build(movement score.Movement, stats *complexity.NormalizationStats) (*MovementProfile, error) {
	lcis, err := b.scorer.ScoreMovement(movement, stats)
	if err != nil {
		return nil, err
	}

	global, err := b.aggregator.Aggregate(lcis)
	if err != nil {
		return nil, fmt.Errorf("movement %s: %w", movement.ID, err)
	}

	boundaries, err := b.segmenter.Segment(movement.Content)
	if err != nil {
		var insufficient *score.InsufficientMeasuresError
		if !errors.As(err, &insufficient) {
			return nil, fmt.Errorf("movement %s: %w", movement.ID, err)
		}
		// Short movements keep the implicit first boundary
		b.logger.Warn("movement shorter than novelty window", logging.Fields{
			"movement": movement.ID,
			"measures": insufficient.MeasureCount,
			"window":   insufficient.WindowSize,
		})
	}

	return &MovementProfile{
		MovementID: movement.ID,
		Local:      lcis,
		Global:     global,
		Boundaries: boundaries,
		Novelty:    b.segmenter.NoveltyCurve(movement.Content),
	}, nil
}

// BuildAll profiles a batch of movements. The corpus normalization
// snapshot is computed once over every movement before any scoring, then
// movements are processed independently across a bounded worker pool; the
// per-movement results and errors come back in input order. A movement
// that fails leaves a nil profile and its error set; the rest of the batch
// is unaffected.
func (b *Builder) BuildAll(movements []score.Movement) ([]*MovementProfile, []error) {
	stats := complexity.ComputeNormalizationStats(movements)

	profiles := make([]*MovementProfile, len(movements))
	errs := make([]error, len(movements))

	workers := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup

	for i := range movements {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			workers <- struct{}{}
			defer func() { <-workers }()

			profiles[i], errs[i] = b.Build(movements[i], stats)
			if errs[i] != nil {
				b.logger.Error(errs[i], "movement skipped", logging.Fields{
					"movement": movements[i].ID,
				})
			}
		}()
	}
	wg.Wait()

	return profiles, errs
}
