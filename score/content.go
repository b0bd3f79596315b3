package score

import "strings"

// PitchClassNames are the twelve pitch class names, index 0=C .. 11=B
var PitchClassNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// DynamicLevelMax is the top of the relative dynamic-level scale
const DynamicLevelMax = 8.0

// dynamicLevels maps a loudness marking to a relative level on a 1-8
// scale. Accented markings are approximated by their plain counterparts.
var dynamicLevels = map[string]float64{
	"ppp": 1,
	"pp":  2,
	"p":   3,
	"mp":  4,
	"mf":  5,
	"f":   6,
	"ff":  7,
	"fff": 8,
	"sf":  7,
	"sfp": 7,
	"fp":  6,
	"pf":  6,
}

// IsLoudnessDynamic reports whether a marking is a recognized loudness
// dynamic
func IsLoudnessDynamic(marking string) bool {
	_, ok := dynamicLevels[strings.ToLower(marking)]
	return ok
}

// DynamicLevel returns the relative level of a loudness marking, or 0 for
// an unrecognized marking
func DynamicLevel(marking string) float64 {
	return dynamicLevels[strings.ToLower(marking)]
}

// ContentDescriptor is the compact per-measure content summary consumed by
// phrase segmentation. It is derived from the same source measure as
// MeasureFeatures but independent of it.
type ContentDescriptor struct {
	PitchClasses    [12]bool `json:"pitchClasses"`    // active pitch classes, index 0=C
	RhythmSignature string   `json:"rhythmSignature"` // ordered duration-class pattern
	DynamicLevel    float64  `json:"dynamicLevel"`    // 1-8 scale, 0 = unmarked
}

// DeriveContentDescriptor summarizes one measure's events for novelty
// analysis
func DeriveContentDescriptor(ev MeasureEvents) ContentDescriptor {
	var d ContentDescriptor

	var sig strings.Builder
	for i, note := range ev.Notes {
		if note.PitchClass >= 0 && note.PitchClass < 12 {
			d.PitchClasses[note.PitchClass] = true
		}
		if i > 0 {
			sig.WriteByte('.')
		}
		sig.WriteString(note.NoteType)
	}
	d.RhythmSignature = sig.String()

	// Loudest marking in the measure sets the dynamic level
	for _, marking := range ev.Dynamics {
		if level := DynamicLevel(marking); level > d.DynamicLevel {
			d.DynamicLevel = level
		}
	}

	return d
}
