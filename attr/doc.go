// Package attr provides boxed attribute values: containers whose contained
// value has an explicitly shorter lifetime than the container itself.
//
// This package is independent of prop; a box owns its value outright and
// needs no owner resolution.
//
// Two types exist:
//
//   - Box[T]: a value plus an engaged/disengaged flag. The zero Box is
//     disengaged. Writing engages it, Reset disengages it (idempotently)
//     and zeroes the slot so held references are dropped. Reading a
//     disengaged box never yields a silent default: Get returns ErrEmpty,
//     MustGet panics. A box used only via Of and Set never disengages and
//     behaves as a plain value wrapper.
//
//   - Guarded[T]: a Box whose reads and writes pass through injectable
//     policies. A read policy transforms the value on the way out (derived
//     values, masking); a write policy can transform or reject the value on
//     the way in. WithRule compiles a go-playground/validator tag
//     ("gte=0,lte=100", "email", ...) into a rejecting write policy.
//
// Error policy is uniform across the package: accessors return errors,
// Must* variants are the explicit panic path, nothing aborts implicitly.
//
// Boxes are not synchronized; concurrent use of one box requires external
// locking by contract.
package attr
