package blades

import (
	"errors"
	"testing"

	"github.com/louisbranch/tabletop/internal/dice"
)

// TestNewActionRollZeroRating ensures a zero-rated action rolls two dice
// in worst-of-two mode.
func TestNewActionRollZeroRating(t *testing.T) {
	roll, err := NewActionRoll(dice.NewRoller(1), 0)
	if err != nil {
		t.Fatalf("NewActionRoll returned error: %v", err)
	}
	if len(roll.Values()) != 2 {
		t.Fatalf("expected 2 dice, got %d", len(roll.Values()))
	}
	if !roll.WorstOfTwo() {
		t.Fatal("expected worst-of-two mode for zero rating")
	}

	result := roll.Result()
	min := roll.Values()[0]
	if roll.Values()[1] < min {
		min = roll.Values()[1]
	}
	if result.Selected != min {
		t.Fatalf("expected minimum die %d selected, got %d", min, result.Selected)
	}
}

// TestNewActionRollNormalRating ensures rated actions roll that many dice
// in best-of-pool mode.
func TestNewActionRollNormalRating(t *testing.T) {
	roll, err := NewActionRoll(dice.NewRoller(1), 3)
	if err != nil {
		t.Fatalf("NewActionRoll returned error: %v", err)
	}
	if len(roll.Values()) != 3 {
		t.Fatalf("expected 3 dice, got %d", len(roll.Values()))
	}
	if roll.WorstOfTwo() {
		t.Fatal("expected best-of-pool mode for rated action")
	}
	if _, err := NewActionRoll(dice.NewRoller(1), -1); !errors.Is(err, ErrNegativePool) {
		t.Fatalf("expected ErrNegativePool, got %v", err)
	}
}

// TestFirstBonusFlipsWorstOfTwo ensures the first bonus press on a
// worst-of-two roll flips the mode without touching the original dice.
func TestFirstBonusFlipsWorstOfTwo(t *testing.T) {
	roll, err := ResumeActionRoll([]int{6, 2}, true, nil)
	if err != nil {
		t.Fatalf("ResumeActionRoll returned error: %v", err)
	}

	result, err := roll.AddBonus(dice.NewRoller(1), BonusAssist)
	if err != nil {
		t.Fatalf("AddBonus returned error: %v", err)
	}
	if len(result.Values) != 2 {
		t.Fatalf("expected flip to keep 2 dice, got %v", result.Values)
	}
	if result.WorstOfTwo {
		t.Fatal("expected mode flipped to best-of-pool")
	}
	if result.Selected != 6 || result.Outcome != OutcomeSuccess {
		t.Fatalf("expected Success on 6 after flip, got %s on %d", result.Outcome, result.Selected)
	}
}

// TestSecondBonusAddsDie ensures every press after the flip appends one
// fresh die.
func TestSecondBonusAddsDie(t *testing.T) {
	roll, err := ResumeActionRoll([]int{6, 2}, true, nil)
	if err != nil {
		t.Fatalf("ResumeActionRoll returned error: %v", err)
	}

	roller := dice.NewRoller(1)
	if _, err := roll.AddBonus(roller, BonusAssist); err != nil {
		t.Fatalf("first AddBonus returned error: %v", err)
	}
	result, err := roll.AddBonus(roller, BonusPush)
	if err != nil {
		t.Fatalf("second AddBonus returned error: %v", err)
	}
	if len(result.Values) != 3 {
		t.Fatalf("expected 3 dice after second press, got %v", result.Values)
	}
}

// TestBonusAddsDieOnNormalRoll ensures rolls that never were worst-of-two
// gain a die on the first press.
func TestBonusAddsDieOnNormalRoll(t *testing.T) {
	roll, err := ResumeActionRoll([]int{3, 2}, false, nil)
	if err != nil {
		t.Fatalf("ResumeActionRoll returned error: %v", err)
	}
	result, err := roll.AddBonus(dice.NewRoller(1), BonusBargain)
	if err != nil {
		t.Fatalf("AddBonus returned error: %v", err)
	}
	if len(result.Values) != 3 {
		t.Fatalf("expected 3 dice after press, got %v", result.Values)
	}
}

// TestBonusIsSingleUse ensures each bonus kind may be pressed once.
func TestBonusIsSingleUse(t *testing.T) {
	roll, err := ResumeActionRoll([]int{3, 2}, false, nil)
	if err != nil {
		t.Fatalf("ResumeActionRoll returned error: %v", err)
	}
	roller := dice.NewRoller(1)
	if _, err := roll.AddBonus(roller, BonusPush); err != nil {
		t.Fatalf("AddBonus returned error: %v", err)
	}
	if _, err := roll.AddBonus(roller, BonusPush); !errors.Is(err, ErrBonusUsed) {
		t.Fatalf("expected ErrBonusUsed, got %v", err)
	}
	// The other two kinds are still available.
	if _, err := roll.AddBonus(roller, BonusAssist); err != nil {
		t.Fatalf("AddBonus returned error: %v", err)
	}
	if _, err := roll.AddBonus(roller, BonusBargain); err != nil {
		t.Fatalf("AddBonus returned error: %v", err)
	}
	if len(roll.Values()) != 5 {
		t.Fatalf("expected at most 3 extra dice, got %v", roll.Values())
	}
}

// TestResumeActionRollValidates ensures persisted state is checked before
// transitions continue.
func TestResumeActionRollValidates(t *testing.T) {
	if _, err := ResumeActionRoll(nil, false, nil); !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
	if _, err := ResumeActionRoll([]int{3}, false, []BonusKind{"luck"}); !errors.Is(err, ErrUnknownBonus) {
		t.Fatalf("expected ErrUnknownBonus, got %v", err)
	}

	roll, err := ResumeActionRoll([]int{3, 2}, false, []BonusKind{BonusPush})
	if err != nil {
		t.Fatalf("ResumeActionRoll returned error: %v", err)
	}
	if _, err := roll.AddBonus(dice.NewRoller(1), BonusPush); !errors.Is(err, ErrBonusUsed) {
		t.Fatalf("expected ErrBonusUsed for resumed usage, got %v", err)
	}
}
