package attr

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

// validate is the shared rule engine behind WithRule. Tag parsing is cached
// inside the validator, so one instance serves all guarded boxes.
var validate = validator.New()

// GetPolicy transforms a value on the way out of a guarded box.
type GetPolicy[T any] func(T) T

// SetPolicy transforms or rejects a value on the way into a guarded box.
// On error the box is left unchanged.
type SetPolicy[T any] func(T) (T, error)

// RuleError is returned by a WithRule write policy when the value fails
// the rule.
type RuleError struct {
	// Tag is the validator rule that rejected the value.
	Tag string

	// Cause is the underlying validator error.
	Cause error
}

// Error implements the error interface.
func (e RuleError) Error() string {
	// Example: attr: rule "gte=0,lte=100" rejected value
	return "attr: rule " + strconv.Quote(e.Tag) + " rejected value"
}

// Unwrap exposes the validator error for errors.As chains.
func (e RuleError) Unwrap() error { return e.Cause }

// Guarded is a Box whose reads and writes pass through injectable policies.
type Guarded[T any] struct {
	box   Box[T]
	read  GetPolicy[T]
	write SetPolicy[T]
}

// Option configures a Guarded box at construction time.
type Option[T any] func(*Guarded[T])

// WithValue engages the box with an initial value. The value is stored
// as-is; write policies apply to subsequent Sets only.
func WithValue[T any](v T) Option[T] {
	return func(g *Guarded[T]) { g.box.Set(v) }
}

// WithRead installs a read transform.
func WithRead[T any](p GetPolicy[T]) Option[T] {
	return func(g *Guarded[T]) { g.read = p }
}

// WithWrite installs a write policy.
func WithWrite[T any](p SetPolicy[T]) Option[T] {
	return func(g *Guarded[T]) { g.write = p }
}

// WithRule installs a write policy that checks every written value against
// a go-playground/validator tag, e.g. "gte=0,lte=100" or "email".
// Rejected writes fail with a RuleError and leave the box unchanged.
func WithRule[T any](tag string) Option[T] {
	return WithWrite[T](func(v T) (T, error) {
		if err := validate.Var(v, tag); err != nil {
			return v, RuleError{Tag: tag, Cause: err}
		}
		return v, nil
	})
}

// NewGuarded constructs a guarded box. With no options it behaves like a
// disengaged Box with pass-through policies.
func NewGuarded[T any](opts ...Option[T]) *Guarded[T] {
	g := &Guarded[T]{}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Has reports whether the box currently holds a value.
func (g *Guarded[T]) Has() bool { return g.box.Has() }

// Set runs the write policy, then stores the (possibly transformed) value.
// A policy rejection is returned unchanged and nothing is stored.
func (g *Guarded[T]) Set(v T) error {
	if g.write != nil {
		nv, err := g.write(v)
		if err != nil {
			return err
		}
		v = nv
	}
	g.box.Set(v)
	return nil
}

// MustSet stores the value or panics on policy rejection.
func (g *Guarded[T]) MustSet(v T) {
	if err := g.Set(v); err != nil {
		panic(err)
	}
}

// Get returns the contained value after the read transform, or ErrEmpty if
// the box is disengaged.
func (g *Guarded[T]) Get() (T, error) {
	v, err := g.box.Get()
	if err != nil {
		return v, err
	}
	if g.read != nil {
		v = g.read(v)
	}
	return v, nil
}

// MustGet returns the transformed value or panics if the box is disengaged.
func (g *Guarded[T]) MustGet() T {
	v, err := g.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// GetOr returns the transformed value, or fallback if the box is
// disengaged. The fallback is returned untransformed.
func (g *Guarded[T]) GetOr(fallback T) T {
	v, err := g.Get()
	if err != nil {
		return fallback
	}
	return v
}

// Reset disengages the box. Policies stay installed.
func (g *Guarded[T]) Reset() { g.box.Reset() }
