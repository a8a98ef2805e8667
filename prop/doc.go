// Package prop implements zero-storage property proxies: struct fields that
// route plain reads and writes through getter/setter methods of the struct
// that contains them.
//
// A proxy holds no data. Its identity is purely positional: the accessor
// descriptor bound into its type carries the byte offset of the proxy field
// inside the owner, and at access time the proxy subtracts that offset from
// its own address to recover the owner. Because of that, whole-owner copies
// behave correctly (the copy's proxies resolve the copy), while a proxy must
// never be moved or used outside its declared field slot.
//
// Declaring a property takes three parts — the backing state and accessors
// on the owner, a zero-size descriptor type, and the proxy field:
//
//	type Rectangle struct {
//		width float64
//
//		Width prop.Num[Rectangle, float64, rectWidthAccess]
//	}
//
//	func (r *Rectangle) getWidth() float64 { return r.width }
//
//	func (r *Rectangle) setWidth(v float64) error {
//		if v < 0 {
//			v = 0
//		}
//		r.width = v
//		return nil
//	}
//
//	type rectWidthAccess struct{}
//
//	func (rectWidthAccess) Offset() uintptr              { return unsafe.Offsetof(Rectangle{}.Width) }
//	func (rectWidthAccess) Get(r *Rectangle) float64     { return r.getWidth() }
//	func (rectWidthAccess) Set(r *Rectangle, v float64) error { return r.setWidth(v) }
//
// cmd/propgen generates the descriptor part from a JSON spec so owners only
// declare the field and the accessors.
//
// Proxy kinds and flavors
//
// RW, RO and WO are the base kinds. RO has no Set method and WO has no Get
// method, so writing a read-only property or reading a write-only one does
// not compile. The flavors layer operations onto RW gated by what the value
// type supports:
//
//   - Cmp:   Eq (comparable types)
//   - Ord:   Less, Compare (ordered types)
//   - Num:   Add, Sub, Mul, Div, Inc, Dec (numeric types)
//   - Bits:  Mod, And, Or, Xor, Shl, Shr (integer types)
//   - Text:  Append (string types)
//   - Slice: At, Len, SetAt, Append (slice types)
//   - Ptr:   Deref, MustDeref, IsNil (pointer types)
//
// A type outside a flavor's constraint cannot instantiate it, so unsupported
// operations are absent from the surface rather than failing at run time.
//
// All mutating flavor operations are read-modify-write through the accessor
// pair: the setter sees the computed result, so setter-side clamping and
// validation apply to compound operations too, and the returned value is the
// re-read, post-setter state.
//
// Guardrails
//
// The compile-time checks a language with deletable constructors would give
// you are covered two ways: the type system (wrong kind, wrong value type,
// missing accessor methods all fail to compile) and Verify/MustVerify, which
// reflect over an owner type and report, per property, descriptors bound to
// the wrong field offset or the wrong host type.
//
// Hard preconditions (not checked, by contract):
//
//   - a proxy value must never be copied out of its owner; only the field
//     inside a live owner resolves correctly
//   - owners containing proxies must be addressable when properties are used
//   - concurrent access to one owner requires external synchronization
package prop
