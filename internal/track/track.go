// Package track models fillable capacity tracks: stress boxes, load slots,
// and training ticks. A track is an ordered sequence of boolean boxes with
// one of two fill disciplines.
package track

import "errors"

var (
	// ErrInvalidCapacity indicates a negative box count.
	ErrInvalidCapacity = errors.New("capacity must be non-negative")
	// ErrIndexOutOfRange indicates a box index outside the track.
	ErrIndexOutOfRange = errors.New("box index out of range")
	// ErrSequentialOnly indicates an operation that requires the prefix
	// invariant was attempted on an independent track.
	ErrSequentialOnly = errors.New("operation requires a sequential track")
)

// Discipline selects how boxes in a track may be filled.
type Discipline int

const (
	// Sequential tracks keep filled boxes as a prefix: box i filled
	// implies all boxes below i are filled.
	Sequential Discipline = iota
	// Independent tracks let each box toggle on its own.
	Independent
)

// Track is an ordered sequence of fillable boxes.
type Track struct {
	Boxes      []bool
	Discipline Discipline
}

// New returns an empty track with the provided capacity and discipline.
func New(capacity int, discipline Discipline) (Track, error) {
	if capacity < 0 {
		return Track{}, ErrInvalidCapacity
	}
	return Track{
		Boxes:      make([]bool, capacity),
		Discipline: discipline,
	}, nil
}

// Capacity returns the number of boxes in the track.
func (t Track) Capacity() int {
	return len(t.Boxes)
}

// Value returns the number of filled boxes. For sequential tracks this is
// the prefix length; for independent tracks a single number is not
// meaningful for display and callers should read boxes individually.
func (t Track) Value() int {
	count := 0
	for _, filled := range t.Boxes {
		if filled {
			count++
		}
	}
	return count
}

// FilledIndices returns the indices of filled boxes in ascending order.
func (t Track) FilledIndices() []int {
	indices := make([]int, 0, len(t.Boxes))
	for i, filled := range t.Boxes {
		if filled {
			indices = append(indices, i)
		}
	}
	return indices
}

// SetValue fills boxes [0, n) and clears the rest. Only valid for
// sequential tracks.
func (t *Track) SetValue(n int) error {
	if t.Discipline != Sequential {
		return ErrSequentialOnly
	}
	if n < 0 || n > len(t.Boxes) {
		return ErrIndexOutOfRange
	}
	for i := range t.Boxes {
		t.Boxes[i] = i < n
	}
	return nil
}

// Click applies the box-click rule for the track's discipline.
//
// Sequential tracks give "click to set level, click the same max again to
// reset": clicking the highest filled box clears the whole track, clicking
// any other box fills up to and including it (which shrinks the fill when
// clicking below the current level). Independent tracks toggle the single
// clicked box.
func (t *Track) Click(index int) error {
	if index < 0 || index >= len(t.Boxes) {
		return ErrIndexOutOfRange
	}

	if t.Discipline == Independent {
		t.Boxes[index] = !t.Boxes[index]
		return nil
	}

	if index == t.Value()-1 {
		return t.SetValue(0)
	}
	return t.SetValue(index + 1)
}

// Resize rebuilds the track at a new capacity, preserving as much fill
// state as the shrink mathematically allows. Sequential tracks keep their
// filled count clamped to the new capacity; independent tracks keep every
// filled index that still fits.
func (t *Track) Resize(capacity int) error {
	if capacity < 0 {
		return ErrInvalidCapacity
	}

	boxes := make([]bool, capacity)
	if t.Discipline == Sequential {
		value := t.Value()
		if value > capacity {
			value = capacity
		}
		for i := 0; i < value; i++ {
			boxes[i] = true
		}
	} else {
		for i := 0; i < capacity && i < len(t.Boxes); i++ {
			boxes[i] = t.Boxes[i]
		}
	}
	t.Boxes = boxes
	return nil
}
