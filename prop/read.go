package prop

import "cmp"

// Read-surface helpers.
//
// These give read-only properties (and anything else with a getter) the
// comparison, subscript and dereference surface of the flavors without
// duplicating flavor types per kind. Pass the proxy's Get method value:
//
//	prop.Eq(r.Area.Get, 50.0)
//	prop.At(b.Items.Get, 0)

// Eq reports whether the read value equals want.
func Eq[T comparable](get func() T, want T) bool { return get() == want }

// Less reports whether the read value is ordered before than.
func Less[T cmp.Ordered](get func() T, than T) bool { return cmp.Less(get(), than) }

// Compare three-way compares the read value against to.
func Compare[T cmp.Ordered](get func() T, to T) int { return cmp.Compare(get(), to) }

// Len returns the length of the read slice.
func Len[S ~[]E, E any](get func() S) int { return len(get()) }

// At returns the element at index i of the read slice. The element is read
// from a value copy; no reference into owner storage escapes.
func At[S ~[]E, E any](get func() S, i int) (E, error) {
	s := get()
	if i < 0 || i >= len(s) {
		var zero E
		return zero, IndexError{Index: i, Len: len(s)}
	}
	return s[i], nil
}

// Deref returns the pointee of the read pointer.
func Deref[E any](get func() *E) (E, error) {
	v := get()
	if v == nil {
		var zero E
		return zero, ErrNilPointer
	}
	return *v, nil
}
