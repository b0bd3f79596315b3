package score

import "math"

// TimeSignature is the prevailing meter of a measure
type TimeSignature struct {
	Numerator   int `json:"numerator"`
	Denominator int `json:"denominator"`
}

// DefaultTimeSignature returns 4/4, assumed when a measure carries no
// explicit meter
func DefaultTimeSignature() TimeSignature {
	return TimeSignature{Numerator: 4, Denominator: 4}
}

// noteTypeDenominators maps a note-type name to the denominator of its
// fraction of a whole note. Types longer than a whole note carry no
// subdivision information and are unmapped.
var noteTypeDenominators = map[string]int{
	"whole":   1,
	"half":    2,
	"quarter": 4,
	"eighth":  8,
	"16th":    16,
	"32nd":    32,
	"64th":    64,
	"128th":   128,
	"256th":   256,
}

// NoteTypeDenominator returns the whole-note denominator for a note-type
// name and whether the type is recognized
func NoteTypeDenominator(noteType string) (int, bool) {
	den, ok := noteTypeDenominators[noteType]
	return den, ok
}

// NoteEvent is one sounding event inside a measure, as delivered by the
// notation-parsing collaborator
type NoteEvent struct {
	NoteType      string `json:"noteType"`
	PitchClass    int    `json:"pitchClass"` // 0=C .. 11=B, -1 for rests/unpitched
	Accidental    bool   `json:"accidental"`
	Articulations int    `json:"articulations"`
}

// MeasureEvents is the raw per-measure content handed over by the
// notation-parsing collaborator
type MeasureEvents struct {
	Notes         []NoteEvent   `json:"notes"`
	Dynamics      []string      `json:"dynamics"` // loudness markings in order of appearance
	TimeSignature TimeSignature `json:"timeSignature"`
}

// MeasureFeatures is the immutable raw-metric record for one measure.
// Produced once by the feature extraction step and never mutated.
type MeasureFeatures struct {
	NoteCount         int     `json:"noteCount"`
	AccidentalCount   int     `json:"measureAccidentalCount"`
	SubdivisionIndex  float64 `json:"subdivisionIndex"`
	MinNoteValue      float64 `json:"minNoteValue"` // fraction of a whole note, smaller = more complex
	DynamicCount      int     `json:"dynamicCount"`
	ArticulationCount int     `json:"articulationCount"`
}

// Validate checks the record's range invariants. measureIndex is attached
// to the returned error for batch reporting.
func (f MeasureFeatures) Validate(measureIndex int) error {
	if f.NoteCount < 0 {
		return &InvalidFeatureError{MeasureIndex: measureIndex, Field: "noteCount", Value: float64(f.NoteCount)}
	}
	if f.AccidentalCount < 0 {
		return &InvalidFeatureError{MeasureIndex: measureIndex, Field: "measureAccidentalCount", Value: float64(f.AccidentalCount)}
	}
	if f.SubdivisionIndex < 0 {
		return &InvalidFeatureError{MeasureIndex: measureIndex, Field: "subdivisionIndex", Value: f.SubdivisionIndex}
	}
	if f.DynamicCount < 0 {
		return &InvalidFeatureError{MeasureIndex: measureIndex, Field: "dynamicCount", Value: float64(f.DynamicCount)}
	}
	if f.ArticulationCount < 0 {
		return &InvalidFeatureError{MeasureIndex: measureIndex, Field: "articulationCount", Value: float64(f.ArticulationCount)}
	}
	// MinNoteValue must be a positive fraction for a sounding measure;
	// an empty measure records 0 by convention.
	if f.NoteCount > 0 && f.MinNoteValue <= 0 {
		return &InvalidFeatureError{MeasureIndex: measureIndex, Field: "minNoteValue", Value: f.MinNoteValue}
	}
	if f.MinNoteValue < 0 {
		return &InvalidFeatureError{MeasureIndex: measureIndex, Field: "minNoteValue", Value: f.MinNoteValue}
	}
	return nil
}

// Movement is the ordered per-measure input for one movement of a work.
// Features and Content describe the same measure sequence.
type Movement struct {
	ID       string              `json:"id"`
	Features []MeasureFeatures   `json:"features"`
	Content  []ContentDescriptor `json:"content"`
}

// DeriveMeasureFeatures computes the six raw complexity metrics for one
// measure from its events
func DeriveMeasureFeatures(ev MeasureEvents) MeasureFeatures {
	ts := ev.TimeSignature
	if ts.Denominator <= 0 {
		ts = DefaultTimeSignature()
	}

	accidentals := 0
	articulations := 0
	maxDenominator := 0
	maxSubdivision := 0.0

	for _, note := range ev.Notes {
		if note.Accidental {
			accidentals++
		}
		articulations += note.Articulations

		den, ok := NoteTypeDenominator(note.NoteType)
		if !ok {
			continue
		}
		if den > maxDenominator {
			maxDenominator = den
		}

		// Subdivision relative to the beat denominator
		sub := math.Ceil(float64(den) / float64(ts.Denominator))
		if sub > maxSubdivision {
			maxSubdivision = sub
		}
	}

	// Smallest note duration as a fraction of a whole note; 0 for a
	// measure with no recognized durations.
	minNoteValue := 0.0
	if maxDenominator > 0 {
		minNoteValue = 1.0 / float64(maxDenominator)
	}

	dynamicCount := 0
	for _, marking := range ev.Dynamics {
		if IsLoudnessDynamic(marking) {
			dynamicCount++
		}
	}

	return MeasureFeatures{
		NoteCount:         len(ev.Notes),
		AccidentalCount:   accidentals,
		SubdivisionIndex:  maxSubdivision,
		MinNoteValue:      minNoteValue,
		DynamicCount:      dynamicCount,
		ArticulationCount: articulations,
	}
}
