package prop

import (
	"errors"
	"reflect"
	"strconv"
)

var (
	// ErrReadOnly is returned when a write reaches a read-only property
	// through the runtime Property facet (SetAny). Direct writes to a
	// read-only proxy do not compile.
	ErrReadOnly = errors.New("prop: property is read-only")

	// ErrNilUpdate is returned by Update when the supplied function is nil.
	ErrNilUpdate = errors.New("prop: nil update function")

	// ErrNilPointer is returned when dereferencing a pointer property
	// whose current value is nil.
	ErrNilPointer = errors.New("prop: nil pointer dereference")
)

// TypeError is returned by SetAny when the supplied value is not of the
// property's value type.
type TypeError struct {
	// Want is the property's value type.
	Want reflect.Type

	// Got is the dynamic type of the rejected value, nil for a nil input.
	Got reflect.Type
}

// Error implements the error interface.
func (e TypeError) Error() string {
	got := "<nil>"
	if e.Got != nil {
		got = e.Got.String()
	}
	// Example: prop: value of type string is not assignable to float64
	return "prop: value of type " + got + " is not assignable to " + e.Want.String()
}

// IndexError is returned by subscript operations on slice properties when
// the index is outside the current value's bounds.
type IndexError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e IndexError) Error() string {
	// Example: prop: index 5 out of range (len 3)
	return "prop: index " + strconv.Itoa(e.Index) + " out of range (len " + strconv.Itoa(e.Len) + ")"
}

// NotStructError is returned by Verify when the owner type parameter is not
// a struct type.
type NotStructError struct{ Type reflect.Type }

// Error implements the error interface.
func (e NotStructError) Error() string {
	return "prop: owner type " + e.Type.String() + " is not a struct"
}

// OffsetError reports a property whose descriptor declares a byte offset
// different from the field's actual offset inside the owner. Such a proxy
// would resolve the wrong owner address and must not be used.
type OffsetError struct {
	Owner    string
	Field    string
	Declared uintptr
	Actual   uintptr
}

// Error implements the error interface.
func (e OffsetError) Error() string {
	// Example: prop: property "Width" of Rectangle declares offset 8, field is at 16
	return "prop: property " + strconv.Quote(e.Field) + " of " + e.Owner +
		" declares offset " + strconv.FormatUint(uint64(e.Declared), 10) +
		", field is at " + strconv.FormatUint(uint64(e.Actual), 10)
}

// HostError reports a property embedded in one owner type but bound, via
// its descriptor, to a different host type.
type HostError struct {
	Owner string
	Field string
	Host  string
}

// Error implements the error interface.
func (e HostError) Error() string {
	// Example: prop: property "Width" of Circle is bound to host type examples.Rectangle
	return "prop: property " + strconv.Quote(e.Field) + " of " + e.Owner +
		" is bound to host type " + e.Host
}
