package prop

import "slices"

// Slice is a read-write proxy for slice value types.
//
// Subscript reads index into the value returned by the getter; the proxy
// never hands out a reference into owner-internal storage. Element writes
// exist only as SetAt, which clones the current value, mutates the clone
// and writes the whole slice back through the setter, so setter validation
// re-runs on every element write.
type Slice[O any, S ~[]E, E any, A Accessor[O, S]] struct {
	RW[O, S, A]
}

// Len returns the length of the current value.
func (p *Slice[O, S, E, A]) Len() int { return len(p.Get()) }

// At returns the element at index i of the current value.
func (p *Slice[O, S, E, A]) At(i int) (E, error) {
	s := p.Get()
	if i < 0 || i >= len(s) {
		var zero E
		return zero, IndexError{Index: i, Len: len(s)}
	}
	return s[i], nil
}

// SetAt replaces the element at index i, writing the updated slice back
// through the setter.
func (p *Slice[O, S, E, A]) SetAt(i int, v E) error {
	s := p.Get()
	if i < 0 || i >= len(s) {
		return IndexError{Index: i, Len: len(s)}
	}
	cp := slices.Clone(s)
	cp[i] = v
	return p.Set(cp)
}

// Append appends elements, writing the grown slice back through the setter.
// The written slice never aliases the previous backing array.
func (p *Slice[O, S, E, A]) Append(items ...E) error {
	s := p.Get()
	cp := make(S, 0, len(s)+len(items))
	cp = append(cp, s...)
	cp = append(cp, items...)
	return p.Set(cp)
}
