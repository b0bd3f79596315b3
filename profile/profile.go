// Package profile assembles the outputs of the complexity and segmentation
// engines into per-movement records shaped for the external graph
// serializer.
package profile

import (
	"github.com/sonata-semantics/scoreprofile/complexity"
)

// MovementProfile is the assembled analytical output for one movement
type MovementProfile struct {
	MovementID string                             `json:"movementId"`
	Local      []complexity.LocalComplexityIndex  `json:"localComplexity"`
	Global     complexity.GlobalComplexityProfile `json:"globalComplexity"`
	Boundaries []int                              `json:"phraseBoundaries"`
	Novelty    []float64                          `json:"noveltyCurve,omitempty"`
}
