// Package propkit provides field-like property proxies and boxed attribute
// values for Go.
//
// This repository contains two independent building blocks:
//
//   - prop: zero-storage property proxies. A proxy is declared as a named
//     field of its owning struct and routes every read and write through
//     getter/setter methods on the owner. The proxy holds no state of its
//     own: it recovers the owner from its own address and a compile-time
//     field offset baked into its accessor descriptor. Read-write,
//     read-only, and write-only kinds exist, plus capability-gated flavors
//     (numeric, bitwise, string, slice, pointer) that only expose the
//     operations the value type actually supports.
//
//   - attr: a standalone boxed value container with explicit
//     engaged/disengaged state, plus a policy-wrapped variant whose reads
//     and writes pass through user-supplied transformation and validation
//     logic.
//
// Supporting pieces:
//
//   - propmap: snapshot an owner's properties into a map and apply a map
//     back through the setters, with weak-type coercion.
//   - cmd/propgen: generates the accessor descriptor boilerplate for an
//     owner from a small JSON spec.
//   - examples/*: runnable walkthroughs of both building blocks.
//
// Everything here is a pure in-process data-access layer: no I/O, no
// goroutines, no persistence. Concurrent access to the same owner or box
// without external synchronization is the caller's problem by contract.
//
// Start with the package docs of prop and attr, and the examples directory
// for end-to-end declaration style.
package propkit
