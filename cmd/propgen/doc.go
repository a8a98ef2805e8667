// Command propgen generates accessor descriptors for property owners.
//
// Declaring a property by hand means writing a zero-size descriptor type
// with an Offset method and one or two forwarding methods per property.
// That is mechanical, and a typo in the offset expression is exactly the
// kind of bug that is hard to see in review. propgen generates the whole
// block from a small JSON spec kept next to the owner:
//
//   - You write a tiny *.props.json spec next to your owner struct.
//   - You add a //go:generate ... directive in the owner Go file.
//   - propgen emits, per property:
//       - a zero-size descriptor type named <owner><Field>Access
//       - Offset() derived from unsafe.Offsetof on the proxy field
//       - Get/Set forwarders to the getter/setter methods the spec names
//   - plus an init() calling prop.MustVerify on the owner, so a drifted
//     declaration fails at package load.
//
// Spec format (*.props.json)
//
// Minimal example:
//
//	{
//	  "package": "examples",
//	  "owner": "Rectangle",
//	  "properties": [
//	    { "field": "Width",  "kind": "rw", "type": "float64", "getter": "getWidth", "setter": "setWidth" },
//	    { "field": "Area",   "kind": "ro", "type": "float64", "getter": "getArea" }
//	  ]
//	}
//
// Kinds are "rw", "ro" and "wo". Read-only properties need only a getter,
// write-only properties only a setter. Value types from other packages are
// supported via the optional "imports" list:
//
//	{ "imports": ["time"], ... }
//
// Typical go:generate usage
//
// Put this in the owner Go file (same package directory as the spec):
//
//	//go:generate go run ../cmd/propgen -spec ./specs/rectangle.props.json -out ./rectangle_props.gen.go
//
// Then:
//
//	go generate ./...
//
// Validation
//
// Before emitting anything, propgen parses the output directory's Go files
// and checks that the owner struct exists and that every getter and setter
// the spec names is declared as a method on it. A typo in the spec therefore
// fails with a message naming the missing method, not with an opaque compile
// error inside the generated file.
//
// See examples/ for an end-to-end owner declared this way.
package main
