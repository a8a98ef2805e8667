package prop

// Ptr is a read-write proxy for pointer value types, adding dereference on
// top of equality.
type Ptr[O, E any, A Accessor[O, *E]] struct {
	Cmp[O, *E, A]
}

// IsNil reports whether the current value is nil.
func (p *Ptr[O, E, A]) IsNil() bool { return p.Get() == nil }

// Deref returns the pointee of the current value.
func (p *Ptr[O, E, A]) Deref() (E, error) {
	v := p.Get()
	if v == nil {
		var zero E
		return zero, ErrNilPointer
	}
	return *v, nil
}

// MustDeref returns the pointee or panics if the current value is nil.
func (p *Ptr[O, E, A]) MustDeref() E {
	v, err := p.Deref()
	if err != nil {
		panic(err)
	}
	return v
}
