package fate

import (
	"errors"
	"fmt"

	"github.com/louisbranch/tabletop/internal/track"
)

// ErrInvalidVariant indicates an unrecognized FATE rules variant.
var ErrInvalidVariant = errors.New("unknown fate variant")

// Variant selects which FATE rules edition governs stress and skills.
type Variant string

const (
	VariantCondensed   Variant = "condensed"
	VariantCore        Variant = "core"
	VariantAccelerated Variant = "accelerated"
)

// DefaultVariant is used when a record does not carry a variant.
const DefaultVariant = VariantCondensed

// Valid reports whether the variant is one of the three known editions.
func (v Variant) Valid() bool {
	switch v {
	case VariantCondensed, VariantCore, VariantAccelerated:
		return true
	}
	return false
}

// ParseVariant returns the variant for a stored string, defaulting empty
// input to DefaultVariant.
func ParseVariant(value string) (Variant, error) {
	if value == "" {
		return DefaultVariant, nil
	}
	v := Variant(value)
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidVariant, value)
	}
	return v, nil
}

// StressBoxes returns the stress track capacity for a governing skill
// rating under the given variant.
//
//	variant                 rating 0   rating 1-2   rating >=3
//	core                    2          3            4
//	condensed/accelerated   3          4            6
func StressBoxes(rating int, variant Variant) int {
	if variant == VariantCore {
		switch {
		case rating <= 0:
			return 2
		case rating <= 2:
			return 3
		default:
			return 4
		}
	}
	switch {
	case rating <= 0:
		return 3
	case rating <= 2:
		return 4
	default:
		return 6
	}
}

// FillDiscipline returns how stress boxes fill under the given variant.
// Core stress boxes toggle independently; the other editions fill
// sequentially.
func FillDiscipline(variant Variant) track.Discipline {
	if variant == VariantCore {
		return track.Independent
	}
	return track.Sequential
}

// StressTrack builds the stress track for a governing skill rating,
// pre-filled from a list of filled box indices. Indices beyond the
// computed capacity extend the track rather than being dropped, so imports
// from documents with a different capacity stay visible.
func StressTrack(rating int, variant Variant, filled []int) track.Track {
	capacity := StressBoxes(rating, variant)
	for _, index := range filled {
		if index+1 > capacity {
			capacity = index + 1
		}
	}

	tr := track.Track{
		Boxes:      make([]bool, capacity),
		Discipline: FillDiscipline(variant),
	}
	for _, index := range filled {
		if index >= 0 {
			tr.Boxes[index] = true
		}
	}
	return tr
}
