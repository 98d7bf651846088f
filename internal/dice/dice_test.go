package dice

import (
	"errors"
	"testing"
)

// TestRollDieRange ensures single die rolls stay within [1, faces].
func TestRollDieRange(t *testing.T) {
	roller := NewRoller(1)
	for i := 0; i < 100; i++ {
		value, err := roller.RollDie(6)
		if err != nil {
			t.Fatalf("RollDie returned error: %v", err)
		}
		if value < 1 || value > 6 {
			t.Fatalf("expected value in [1,6], got %d", value)
		}
	}
}

// TestRollDieRejectsInvalidFaces ensures faces < 1 fails fast.
func TestRollDieRejectsInvalidFaces(t *testing.T) {
	roller := NewRoller(1)
	if _, err := roller.RollDie(0); !errors.Is(err, ErrInvalidFaces) {
		t.Fatalf("expected ErrInvalidFaces, got %v", err)
	}
	if _, err := roller.RollDie(-4); !errors.Is(err, ErrInvalidFaces) {
		t.Fatalf("expected ErrInvalidFaces, got %v", err)
	}
}

// TestRollPoolIsDeterministic ensures the same seed yields the same pool.
func TestRollPoolIsDeterministic(t *testing.T) {
	first, err := NewRoller(42).RollPool(4, 6)
	if err != nil {
		t.Fatalf("RollPool returned error: %v", err)
	}
	second, err := NewRoller(42).RollPool(4, 6)
	if err != nil {
		t.Fatalf("RollPool returned error: %v", err)
	}
	if len(first) != 4 || len(second) != 4 {
		t.Fatalf("expected 4 dice, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical pools, got %v and %v", first, second)
		}
	}
}

// TestRollPoolRejectsInvalidInput ensures bad counts and faces fail fast.
func TestRollPoolRejectsInvalidInput(t *testing.T) {
	roller := NewRoller(1)
	if _, err := roller.RollPool(0, 6); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("expected ErrInvalidCount, got %v", err)
	}
	if _, err := roller.RollPool(-1, 6); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("expected ErrInvalidCount, got %v", err)
	}
	if _, err := roller.RollPool(2, 0); !errors.Is(err, ErrInvalidFaces) {
		t.Fatalf("expected ErrInvalidFaces, got %v", err)
	}
}

// TestRollFudgeRange ensures Fudge dice only produce -1, 0, or +1.
func TestRollFudgeRange(t *testing.T) {
	roller := NewRoller(7)
	seen := map[int]bool{}
	for i := 0; i < 300; i++ {
		value := roller.RollFudge()
		if value < -1 || value > 1 {
			t.Fatalf("expected value in {-1,0,1}, got %d", value)
		}
		seen[value] = true
	}
	if !seen[-1] || !seen[0] || !seen[1] {
		t.Fatalf("expected all three Fudge faces over 300 rolls, saw %v", seen)
	}
}

// TestRollFudgePoolSize ensures the standard pool holds four dice.
func TestRollFudgePoolSize(t *testing.T) {
	values, err := NewRoller(3).RollFudgePool(FudgePoolSize)
	if err != nil {
		t.Fatalf("RollFudgePool returned error: %v", err)
	}
	if len(values) != 4 {
		t.Fatalf("expected 4 dice, got %d", len(values))
	}
	if _, err := NewRoller(3).RollFudgePool(0); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("expected ErrInvalidCount, got %v", err)
	}
}
