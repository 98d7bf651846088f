// Package blades implements the Blades in the Dark ruleset: d6 action
// pools, outcome classification, effect tiers, bonus-die resolution, and
// the character record.
package blades

import (
	"errors"
	"fmt"
)

// DieFaces is the number of faces on every Blades die.
const DieFaces = 6

var (
	// ErrEmptyPool indicates an outcome evaluation with no dice.
	ErrEmptyPool = errors.New("pool must contain at least one die")
	// ErrInvalidDie indicates a die value outside 1..6.
	ErrInvalidDie = errors.New("die values must be between 1 and 6")
	// ErrInvalidPosition indicates an unrecognized position.
	ErrInvalidPosition = errors.New("unknown position")
)

// Outcome classifies an action roll.
type Outcome int

const (
	OutcomeFailure Outcome = iota
	OutcomeMixed
	OutcomeSuccess
	OutcomeCritical
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFailure:
		return "Failure"
	case OutcomeMixed:
		return "Mixed"
	case OutcomeSuccess:
		return "Success"
	case OutcomeCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// Position is the situational position of an action roll.
type Position string

const (
	PositionControlled Position = "controlled"
	PositionRisky      Position = "risky"
	PositionDesperate  Position = "desperate"
)

// ParsePosition returns the position for a stored string, defaulting empty
// input to risky.
func ParsePosition(value string) (Position, error) {
	switch value {
	case "":
		return PositionRisky, nil
	case string(PositionControlled), string(PositionRisky), string(PositionDesperate):
		return Position(value), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPosition, value)
}

// Effect is the secondary effect tier of an action roll.
type Effect string

const (
	EffectLimited  Effect = "limited"
	EffectStandard Effect = "standard"
	EffectGreat    Effect = "great"
)

// PoolResult captures the evaluation of an action pool.
type PoolResult struct {
	Values     []int
	WorstOfTwo bool
	Selected   int
	Outcome    Outcome
}

// EvaluatePool deterministically classifies an action pool.
//
// A worst-of-two pool takes the minimum die and can never crit. A normal
// pool takes the maximum die, and two or more sixes make the roll a
// critical regardless of the usual six-is-success rule.
func EvaluatePool(values []int, worstOfTwo bool) (PoolResult, error) {
	if len(values) == 0 {
		return PoolResult{}, ErrEmptyPool
	}

	sixes := 0
	selected := values[0]
	for _, value := range values {
		if value < 1 || value > DieFaces {
			return PoolResult{}, fmt.Errorf("%w: %d", ErrInvalidDie, value)
		}
		if value == DieFaces {
			sixes++
		}
		if worstOfTwo {
			if value < selected {
				selected = value
			}
		} else if value > selected {
			selected = value
		}
	}

	outcome := classify(selected)
	if !worstOfTwo && sixes >= 2 {
		outcome = OutcomeCritical
	}

	return PoolResult{
		Values:     values,
		WorstOfTwo: worstOfTwo,
		Selected:   selected,
		Outcome:    outcome,
	}, nil
}

func classify(value int) Outcome {
	switch {
	case value <= 3:
		return OutcomeFailure
	case value <= 5:
		return OutcomeMixed
	default:
		return OutcomeSuccess
	}
}

// EffectFor combines an outcome with the roll's position into an effect
// tier. This is a fixed lookup: a critical, or a full success from a
// controlled position, gives great effect; any other full success gives
// standard; mixed results and failures give limited.
func EffectFor(outcome Outcome, position Position) Effect {
	switch {
	case outcome == OutcomeCritical:
		return EffectGreat
	case outcome == OutcomeSuccess && position == PositionControlled:
		return EffectGreat
	case outcome == OutcomeSuccess:
		return EffectStandard
	default:
		return EffectLimited
	}
}
