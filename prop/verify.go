package prop

import (
	"errors"
	"reflect"
)

var propertyType = reflect.TypeFor[Property]()

// FieldInfo describes one property field of an owner type.
type FieldInfo struct {
	// Name is the Go field name of the proxy.
	Name string

	// Kind is the property's access surface.
	Kind Kind

	// Value is the property's value type.
	Value reflect.Type

	// Offset is the field's byte offset inside the owner.
	Offset uintptr
}

// Verify checks every property field of the owner type O.
//
// For each proxy it verifies that the descriptor's declared offset matches
// the field's actual offset and that the descriptor is bound to O (not
// copy-pasted from another owner). Both mistakes would make the proxy
// resolve a wrong owner address, so they must be caught before first use —
// call Verify (or MustVerify) from a test or an init of the owner's
// package; cmd/propgen emits that init for you.
//
// All violations are reported, joined, each naming the offending property.
func Verify[O any]() error {
	t := reflect.TypeFor[O]()
	if t.Kind() != reflect.Struct {
		return NotStructError{Type: t}
	}

	var errs []error
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !reflect.PointerTo(f.Type).Implements(propertyType) {
			continue
		}

		// Detached instance: only positional metadata is read, never the
		// owner-resolving paths.
		p := reflect.New(f.Type).Interface().(Property)

		if host := p.HostType(); host != t {
			errs = append(errs, HostError{Owner: t.Name(), Field: f.Name, Host: host.String()})
			continue
		}
		if declared := p.FieldOffset(); declared != f.Offset {
			errs = append(errs, OffsetError{Owner: t.Name(), Field: f.Name, Declared: declared, Actual: f.Offset})
		}
	}
	return errors.Join(errs...)
}

// MustVerify panics if Verify reports any violation.
func MustVerify[O any]() {
	if err := Verify[O](); err != nil {
		panic(err)
	}
}

// Describe returns the property inventory of the owner type O, in field
// declaration order. Non-property fields are skipped; a non-struct O yields
// nil.
func Describe[O any]() []FieldInfo {
	t := reflect.TypeFor[O]()
	if t.Kind() != reflect.Struct {
		return nil
	}

	var infos []FieldInfo
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !reflect.PointerTo(f.Type).Implements(propertyType) {
			continue
		}
		p := reflect.New(f.Type).Interface().(Property)
		infos = append(infos, FieldInfo{
			Name:   f.Name,
			Kind:   p.Kind(),
			Value:  p.ValueType(),
			Offset: f.Offset,
		})
	}
	return infos
}
