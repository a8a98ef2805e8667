package prop

// Accessor descriptors bind a proxy field to the owner methods that back it.
//
// A descriptor is a zero-size struct type implemented next to the owner
// (usually generated by cmd/propgen). It contributes no storage to the
// owner: the descriptor travels inside the proxy's type parameters, so the
// getter, setter and field offset are fixed per property type with no
// function pointers held at run time.

// Binding ties a descriptor to one proxy field of the owner type O.
type Binding[O any] interface {
	// Offset returns the byte offset of the proxy field inside O.
	// Implementations return unsafe.Offsetof(O{}.<Field>) so the value is
	// a compile-time constant of the declaration site.
	Offset() uintptr
}

// GetterOf describes the read half of a property: a zero-argument accessor
// on the owner whose result is the property's value type.
type GetterOf[O, T any] interface {
	Binding[O]
	Get(*O) T
}

// SetterOf describes the write half of a property: a single-argument
// accessor on the owner taking the property's value type. The error return
// is the channel for setter-side validation failures; setters that cannot
// fail return nil.
type SetterOf[O, T any] interface {
	Binding[O]
	Set(*O, T) error
}

// Accessor describes a full read-write property binding.
type Accessor[O, T any] interface {
	GetterOf[O, T]
	SetterOf[O, T]
}
