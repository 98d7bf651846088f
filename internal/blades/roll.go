package blades

import (
	"errors"
	"fmt"

	"github.com/louisbranch/tabletop/internal/dice"
)

var (
	// ErrNegativePool indicates a requested pool size below zero.
	ErrNegativePool = errors.New("pool size must be non-negative")
	// ErrBonusUsed indicates a bonus die type pressed twice on one roll.
	ErrBonusUsed = errors.New("bonus die already used for this roll")
	// ErrUnknownBonus indicates an unrecognized bonus die type.
	ErrUnknownBonus = errors.New("unknown bonus die type")
)

// BonusKind identifies one of the three single-use bonus dice.
type BonusKind string

const (
	BonusAssist  BonusKind = "assist"
	BonusPush    BonusKind = "push"
	BonusBargain BonusKind = "bargain"
)

// ParseBonusKind returns the bonus kind for a stored string.
func ParseBonusKind(value string) (BonusKind, error) {
	switch value {
	case string(BonusAssist), string(BonusPush), string(BonusBargain):
		return BonusKind(value), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBonus, value)
}

// ActionRoll is a live action roll that bonus dice can still augment.
//
// A zero-rated action rolls two dice and takes the worst. The first bonus
// die on such a roll flips it to best-of-pool without adding a die; every
// other bonus press appends one freshly rolled d6. Each bonus type is
// single-use, so a roll gains at most three extra dice.
type ActionRoll struct {
	values     []int
	worstOfTwo bool
	used       map[BonusKind]bool
}

// NewActionRoll rolls an action pool of the requested rating. A rating of
// zero rolls two dice in worst-of-two mode; this remapping lives here, not
// in the dice primitives.
func NewActionRoll(roller *dice.Roller, rating int) (*ActionRoll, error) {
	if rating < 0 {
		return nil, ErrNegativePool
	}

	count := rating
	worstOfTwo := false
	if rating == 0 {
		count = 2
		worstOfTwo = true
	}

	values, err := roller.RollPool(count, DieFaces)
	if err != nil {
		return nil, err
	}

	return &ActionRoll{
		values:     values,
		worstOfTwo: worstOfTwo,
		used:       map[BonusKind]bool{},
	}, nil
}

// ResumeActionRoll reconstructs a roll from persisted state so bonus
// transitions can continue across requests.
func ResumeActionRoll(values []int, worstOfTwo bool, used []BonusKind) (*ActionRoll, error) {
	if _, err := EvaluatePool(values, worstOfTwo); err != nil {
		return nil, err
	}

	usedSet := make(map[BonusKind]bool, len(used))
	for _, kind := range used {
		if _, err := ParseBonusKind(string(kind)); err != nil {
			return nil, err
		}
		usedSet[kind] = true
	}

	return &ActionRoll{
		values:     append([]int{}, values...),
		worstOfTwo: worstOfTwo,
		used:       usedSet,
	}, nil
}

// Values returns the rolled dice in roll order.
func (a *ActionRoll) Values() []int {
	return append([]int{}, a.values...)
}

// WorstOfTwo reports whether the roll is still in worst-of-two mode.
func (a *ActionRoll) WorstOfTwo() bool {
	return a.worstOfTwo
}

// Used returns the bonus kinds already spent on this roll.
func (a *ActionRoll) Used() []BonusKind {
	used := make([]BonusKind, 0, len(a.used))
	for _, kind := range []BonusKind{BonusAssist, BonusPush, BonusBargain} {
		if a.used[kind] {
			used = append(used, kind)
		}
	}
	return used
}

// Result evaluates the roll's current pool and mode.
func (a *ActionRoll) Result() PoolResult {
	// The pool is never empty and mode is validated on construction.
	result, err := EvaluatePool(a.values, a.worstOfTwo)
	if err != nil {
		panic(err)
	}
	return result
}

// AddBonus applies one bonus-die press and re-evaluates the roll.
//
// On a roll that is still worst-of-two the press flips the mode without
// adding a die; the original two dice are untouched. Otherwise the press
// appends one freshly rolled d6. Each kind may be pressed once.
func (a *ActionRoll) AddBonus(roller *dice.Roller, kind BonusKind) (PoolResult, error) {
	if _, err := ParseBonusKind(string(kind)); err != nil {
		return PoolResult{}, err
	}
	if a.used[kind] {
		return PoolResult{}, fmt.Errorf("%w: %s", ErrBonusUsed, kind)
	}
	a.used[kind] = true

	if a.worstOfTwo {
		a.worstOfTwo = false
		return a.Result(), nil
	}

	value, err := roller.RollDie(DieFaces)
	if err != nil {
		return PoolResult{}, err
	}
	a.values = append(a.values, value)
	return a.Result(), nil
}
