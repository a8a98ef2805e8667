package prop

import (
	"reflect"
	"unsafe"
)

// Property is the kind-independent runtime facet shared by every proxy.
//
// It exists for reflective consumers (Verify, Describe, propmap) that walk
// an owner's fields without knowing each property's type parameters.
//
// Kind, FieldOffset, HostType and ValueType are positional metadata and are
// safe on any instance, including detached ones created via reflect.New.
// GetAny and SetAny resolve the owner and must only be called on a proxy
// that lives inside its owner.
type Property interface {
	// Kind reports the property's access surface.
	Kind() Kind

	// FieldOffset returns the byte offset the descriptor was bound with.
	FieldOffset() uintptr

	// HostType returns the owner type the descriptor was bound to.
	HostType() reflect.Type

	// ValueType returns the property's value type.
	ValueType() reflect.Type

	// GetAny reads the property as an untyped value.
	// ok is false for write-only properties.
	GetAny() (v any, ok bool)

	// SetAny writes an untyped value through the setter.
	// It returns ErrReadOnly for read-only properties and a TypeError when
	// the value is not of the property's value type.
	SetAny(v any) error
}

// RW is a read-write property proxy.
//
// It is declared as a named field of O and occupies no storage of its own.
// Every operation recovers the owner from the proxy's address minus the
// offset baked into A, then calls the bound accessor methods.
type RW[O, T any, A Accessor[O, T]] struct{}

// host recovers the owning O from the proxy's own address. Valid only while
// the proxy sits in its declared field slot of a live owner.
func (p *RW[O, T, A]) host() *O {
	var a A
	return (*O)(unsafe.Add(unsafe.Pointer(p), -int(a.Offset())))
}

// Get reads the property through the owner's getter.
func (p *RW[O, T, A]) Get() T {
	var a A
	return a.Get(p.host())
}

// Set writes the property through the owner's setter.
//
// Any error is the setter's own validation failure, passed through
// unchanged; the proxy performs no validation of its own.
func (p *RW[O, T, A]) Set(v T) error {
	var a A
	return a.Set(p.host(), v)
}

// MustSet writes the property and panics if the setter rejects the value.
func (p *RW[O, T, A]) MustSet(v T) {
	if err := p.Set(v); err != nil {
		panic(err)
	}
}

// Swap writes a new value and returns the previous one.
//
// On setter error the previous value is still returned and the stored value
// is whatever the setter left behind.
func (p *RW[O, T, A]) Swap(v T) (old T, err error) {
	old = p.Get()
	err = p.Set(v)
	return old, err
}

// Update applies fn to the current value and writes the result back through
// the setter. It returns the re-read, post-setter value.
func (p *RW[O, T, A]) Update(fn func(T) T) (T, error) {
	if fn == nil {
		return p.Get(), ErrNilUpdate
	}
	if err := p.Set(fn(p.Get())); err != nil {
		return p.Get(), err
	}
	return p.Get(), nil
}

// Kind implements Property.
func (p *RW[O, T, A]) Kind() Kind { return ReadWrite }

// FieldOffset implements Property.
func (p *RW[O, T, A]) FieldOffset() uintptr {
	var a A
	return a.Offset()
}

// HostType implements Property.
func (p *RW[O, T, A]) HostType() reflect.Type { return reflect.TypeFor[O]() }

// ValueType implements Property.
func (p *RW[O, T, A]) ValueType() reflect.Type { return reflect.TypeFor[T]() }

// GetAny implements Property.
func (p *RW[O, T, A]) GetAny() (any, bool) { return p.Get(), true }

// SetAny implements Property.
func (p *RW[O, T, A]) SetAny(v any) error {
	t, ok := v.(T)
	if !ok {
		return TypeError{Want: reflect.TypeFor[T](), Got: reflect.TypeOf(v)}
	}
	return p.Set(t)
}
