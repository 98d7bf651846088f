// Package dice implements the die-roll primitives shared by the rulesets.
package dice

import (
	"errors"
	"math/rand"
)

// ErrInvalidFaces indicates a die was requested with fewer than one face.
var ErrInvalidFaces = errors.New("faces must be at least 1")

// ErrInvalidCount indicates a pool was requested with fewer than one die.
var ErrInvalidCount = errors.New("count must be at least 1")

// FudgePoolSize is the number of Fudge dice in a standard FATE roll.
const FudgePoolSize = 4

// Roller produces uniform die rolls from a seeded source.
//
// # Determinism
//
// Given the same seed, a Roller always produces the same sequence of
// values for the same sequence of calls. Rolls are otherwise independent
// and uniform.
type Roller struct {
	rng *rand.Rand
}

// NewRoller returns a Roller seeded with the provided value.
func NewRoller(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// RollDie rolls a single die, returning a uniform value in [1, faces].
func (r *Roller) RollDie(faces int) (int, error) {
	if faces < 1 {
		return 0, ErrInvalidFaces
	}
	return r.rng.Intn(faces) + 1, nil
}

// RollPool rolls count independent dice with the provided number of faces.
//
// Callers own any ruleset-specific pool-size remapping (e.g. the Blades
// zero-dice rule); RollPool itself rejects count < 1.
func (r *Roller) RollPool(count, faces int) ([]int, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if faces < 1 {
		return nil, ErrInvalidFaces
	}

	values := make([]int, count)
	for i := range values {
		values[i] = r.rng.Intn(faces) + 1
	}
	return values, nil
}

// RollFudge rolls one Fudge die: -1, 0, or +1 with equal probability.
func (r *Roller) RollFudge() int {
	return r.rng.Intn(3) - 1
}

// RollFudgePool rolls count Fudge dice. Pass FudgePoolSize for a standard
// 4dF roll.
func (r *Roller) RollFudgePool(count int) ([]int, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}

	values := make([]int, count)
	for i := range values {
		values[i] = r.RollFudge()
	}
	return values, nil
}
