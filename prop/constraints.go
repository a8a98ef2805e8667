package prop

// Capability constraint sets.
//
// Each proxy flavor is parameterized over one of these sets (or over the
// built-in comparable / cmp.Ordered). A value type outside the set cannot
// instantiate the flavor at all, which is how unsupported operations stay
// absent from a property's surface instead of becoming runtime failures.

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of integer types, the capability gate for modulo,
// bitwise and shift operations.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number is the set of numeric types, the capability gate for arithmetic
// and increment/decrement.
type Number interface {
	Integer | Float
}
