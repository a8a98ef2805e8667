// Package propmap moves property values between owners and plain maps.
//
// Snapshot reads every readable property of an owner into a map; Apply
// writes map entries back through each property's setter, so setter-side
// validation runs on every applied value. Inputs whose type does not match
// the property's value type are coerced with mapstructure (weakly typed:
// "8080" applies to an int property, "5s" to a time.Duration one, "a,b,c"
// to a []string one).
//
// Keys come from the proxy field's `prop:"..."` tag, falling back to the
// lower-cased field name.
//
// Both directions are pure in-memory transformations; nothing here touches
// files or the network.
package propmap
