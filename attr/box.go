package attr

import (
	"cmp"
	"errors"
)

// ErrEmpty is returned when reading or taking from a disengaged box.
var ErrEmpty = errors.New("attr: box is empty")

// Box holds an optionally-engaged value of type T.
//
// The zero Box is disengaged and ready to use. The engaged flag always
// matches whether the slot holds a live value: engaging stores the value,
// disengaging zeroes the slot so references held by the old value are
// dropped exactly once.
type Box[T any] struct {
	val     T
	engaged bool
}

// Of returns an engaged box holding v.
func Of[T any](v T) Box[T] {
	return Box[T]{val: v, engaged: true}
}

// Empty returns a disengaged box. Equivalent to the zero value; exists for
// symmetry with Of at call sites that spell both states.
func Empty[T any]() Box[T] {
	return Box[T]{}
}

// Has reports whether the box currently holds a value.
func (b *Box[T]) Has() bool { return b.engaged }

// Set stores v and engages the box.
func (b *Box[T]) Set(v T) {
	b.val = v
	b.engaged = true
}

// Get returns the contained value, or ErrEmpty if the box is disengaged.
func (b *Box[T]) Get() (T, error) {
	if !b.engaged {
		var zero T
		return zero, ErrEmpty
	}
	return b.val, nil
}

// MustGet returns the contained value or panics if the box is disengaged.
func (b *Box[T]) MustGet() T {
	if !b.engaged {
		panic(ErrEmpty)
	}
	return b.val
}

// GetOr returns the contained value, or fallback if the box is disengaged.
func (b *Box[T]) GetOr(fallback T) T {
	if !b.engaged {
		return fallback
	}
	return b.val
}

// Reset disengages the box and zeroes the slot. Resetting an already
// disengaged box is a no-op.
func (b *Box[T]) Reset() {
	var zero T
	b.val = zero
	b.engaged = false
}

// Take removes and returns the contained value, leaving the box
// disengaged. Taking from a disengaged box returns ErrEmpty.
func (b *Box[T]) Take() (T, error) {
	v, err := b.Get()
	if err != nil {
		return v, err
	}
	b.Reset()
	return v, nil
}

// Swap exchanges the contents of two boxes, values and engagement state
// alike. All four engagement combinations are handled by whole-state
// exchange.
func (b *Box[T]) Swap(other *Box[T]) {
	*b, *other = *other, *b
}

// Equal reports whether two boxes agree on engagement and, when both are
// engaged, on value. Two disengaged boxes are equal.
func Equal[T comparable](a, b Box[T]) bool {
	if a.engaged != b.engaged {
		return false
	}
	return !a.engaged || a.val == b.val
}

// Compare orders two boxes. A disengaged box sorts before any engaged one;
// two engaged boxes compare by value.
func Compare[T cmp.Ordered](a, b Box[T]) int {
	switch {
	case a.engaged && b.engaged:
		return cmp.Compare(a.val, b.val)
	case a.engaged:
		return 1
	case b.engaged:
		return -1
	default:
		return 0
	}
}
