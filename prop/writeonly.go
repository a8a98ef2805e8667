package prop

import (
	"reflect"
	"unsafe"
)

// WO is a write-only property proxy (e.g. a secret that can be rotated but
// never read back).
//
// It exposes no read surface: there is no Get method, so reading a
// write-only property is a compile error rather than a silent default, and
// GetAny (the reflective path) reports ok=false.
type WO[O, T any, S SetterOf[O, T]] struct{}

func (p *WO[O, T, S]) host() *O {
	var s S
	return (*O)(unsafe.Add(unsafe.Pointer(p), -int(s.Offset())))
}

// Set writes the property through the owner's setter.
func (p *WO[O, T, S]) Set(v T) error {
	var s S
	return s.Set(p.host(), v)
}

// MustSet writes the property and panics if the setter rejects the value.
func (p *WO[O, T, S]) MustSet(v T) {
	if err := p.Set(v); err != nil {
		panic(err)
	}
}

// Kind implements Property.
func (p *WO[O, T, S]) Kind() Kind { return WriteOnly }

// FieldOffset implements Property.
func (p *WO[O, T, S]) FieldOffset() uintptr {
	var s S
	return s.Offset()
}

// HostType implements Property.
func (p *WO[O, T, S]) HostType() reflect.Type { return reflect.TypeFor[O]() }

// ValueType implements Property.
func (p *WO[O, T, S]) ValueType() reflect.Type { return reflect.TypeFor[T]() }

// GetAny implements Property. ok is always false.
func (p *WO[O, T, S]) GetAny() (any, bool) { return nil, false }

// SetAny implements Property.
func (p *WO[O, T, S]) SetAny(v any) error {
	t, ok := v.(T)
	if !ok {
		return TypeError{Want: reflect.TypeFor[T](), Got: reflect.TypeOf(v)}
	}
	return p.Set(t)
}
