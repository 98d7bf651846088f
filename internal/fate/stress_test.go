package fate

import (
	"errors"
	"testing"

	"github.com/louisbranch/tabletop/internal/track"
)

// TestStressBoxesCapacityTable ensures the capacity table per variant and
// rating.
func TestStressBoxesCapacityTable(t *testing.T) {
	tests := []struct {
		rating  int
		variant Variant
		want    int
	}{
		{0, VariantCore, 2},
		{1, VariantCore, 3},
		{2, VariantCore, 3},
		{3, VariantCore, 4},
		{5, VariantCore, 4},
		{0, VariantCondensed, 3},
		{1, VariantCondensed, 4},
		{2, VariantCondensed, 4},
		{3, VariantCondensed, 6},
		{5, VariantCondensed, 6},
	}
	for _, tc := range tests {
		if got := StressBoxes(tc.rating, tc.variant); got != tc.want {
			t.Fatalf("StressBoxes(%d, %s): expected %d, got %d", tc.rating, tc.variant, tc.want, got)
		}
	}
}

// TestStressBoxesAcceleratedMatchesCondensed ensures the two editions share
// a capacity table for every rating.
func TestStressBoxesAcceleratedMatchesCondensed(t *testing.T) {
	for rating := -1; rating <= 6; rating++ {
		condensed := StressBoxes(rating, VariantCondensed)
		accelerated := StressBoxes(rating, VariantAccelerated)
		if condensed != accelerated {
			t.Fatalf("rating %d: condensed %d != accelerated %d", rating, condensed, accelerated)
		}
	}
}

// TestFillDisciplinePerVariant ensures only core stress toggles
// independently.
func TestFillDisciplinePerVariant(t *testing.T) {
	if got := FillDiscipline(VariantCore); got != track.Independent {
		t.Fatalf("expected core to use independent fill, got %v", got)
	}
	if got := FillDiscipline(VariantCondensed); got != track.Sequential {
		t.Fatalf("expected condensed to use sequential fill, got %v", got)
	}
	if got := FillDiscipline(VariantAccelerated); got != track.Sequential {
		t.Fatalf("expected accelerated to use sequential fill, got %v", got)
	}
}

// TestParseVariantDefaultsEmpty ensures an absent selection defaults
// rather than failing.
func TestParseVariantDefaultsEmpty(t *testing.T) {
	v, err := ParseVariant("")
	if err != nil {
		t.Fatalf("ParseVariant returned error: %v", err)
	}
	if v != DefaultVariant {
		t.Fatalf("expected default variant, got %s", v)
	}
	if _, err := ParseVariant("classic"); !errors.Is(err, ErrInvalidVariant) {
		t.Fatalf("expected ErrInvalidVariant, got %v", err)
	}
}

// TestStressTrackExtendsForOversizedIndices ensures imported indices past
// the computed capacity stay visible instead of being dropped.
func TestStressTrackExtendsForOversizedIndices(t *testing.T) {
	tr := StressTrack(0, VariantCore, []int{0, 3})
	if tr.Capacity() != 4 {
		t.Fatalf("expected capacity 4, got %d", tr.Capacity())
	}
	got := tr.FilledIndices()
	if len(got) != 2 || got[0] != 0 || got[1] != 3 {
		t.Fatalf("expected filled indices [0 3], got %v", got)
	}
}
