package prop

import (
	"reflect"
	"unsafe"
)

// RO is a read-only property proxy, typically backing a computed value.
//
// It exposes no write surface at all: assigning through an RO field is a
// compile error, and SetAny (the reflective path) returns ErrReadOnly.
// Reads always re-run the getter, so computed properties reflect the
// owner's current backing state, never a cached value.
type RO[O, T any, G GetterOf[O, T]] struct{}

func (p *RO[O, T, G]) host() *O {
	var g G
	return (*O)(unsafe.Add(unsafe.Pointer(p), -int(g.Offset())))
}

// Get reads the property through the owner's getter.
func (p *RO[O, T, G]) Get() T {
	var g G
	return g.Get(p.host())
}

// Kind implements Property.
func (p *RO[O, T, G]) Kind() Kind { return ReadOnly }

// FieldOffset implements Property.
func (p *RO[O, T, G]) FieldOffset() uintptr {
	var g G
	return g.Offset()
}

// HostType implements Property.
func (p *RO[O, T, G]) HostType() reflect.Type { return reflect.TypeFor[O]() }

// ValueType implements Property.
func (p *RO[O, T, G]) ValueType() reflect.Type { return reflect.TypeFor[T]() }

// GetAny implements Property.
func (p *RO[O, T, G]) GetAny() (any, bool) { return p.Get(), true }

// SetAny implements Property. It always fails with ErrReadOnly.
func (p *RO[O, T, G]) SetAny(any) error { return ErrReadOnly }
