package propmap

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/propkit-dev/propkit/prop"
)

// NotOwnerError is returned when the owner argument is not a non-nil
// pointer to a struct.
type NotOwnerError struct{ Got string }

// Error implements the error interface.
func (e NotOwnerError) Error() string {
	// Example: propmap: owner must be a non-nil struct pointer, got *int
	return "propmap: owner must be a non-nil struct pointer, got " + e.Got
}

// UnknownFieldError is returned by Apply for a key that matches no property
// field of the owner.
type UnknownFieldError struct{ Key string }

// Error implements the error interface.
func (e UnknownFieldError) Error() string {
	return "propmap: no property for key " + strconv.Quote(e.Key)
}

// ReadOnlyFieldError is returned by Apply for a key that targets a
// read-only property.
type ReadOnlyFieldError struct{ Key string }

// Error implements the error interface.
func (e ReadOnlyFieldError) Error() string {
	return "propmap: property " + strconv.Quote(e.Key) + " is read-only"
}

// DecodeError wraps a coercion or setter failure for one key.
type DecodeError struct {
	Key   string
	Cause error
}

// Error implements the error interface.
func (e DecodeError) Error() string {
	return "propmap: cannot apply key " + strconv.Quote(e.Key) + ": " + e.Cause.Error()
}

// Unwrap exposes the underlying failure for errors.Is / errors.As chains.
func (e DecodeError) Unwrap() error { return e.Cause }

// entry pairs a map key with the live property behind it.
type entry struct {
	key string
	p   prop.Property
}

// walk collects the owner's exported property fields with their map keys.
func walk(owner any) ([]entry, error) {
	if owner == nil {
		return nil, NotOwnerError{Got: "<nil>"}
	}
	rv := reflect.ValueOf(owner)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, NotOwnerError{Got: reflect.TypeOf(owner).String()}
	}

	propertyType := reflect.TypeFor[prop.Property]()
	elem := rv.Elem()
	t := elem.Type()

	var entries []entry
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if !reflect.PointerTo(f.Type).Implements(propertyType) {
			continue
		}

		key := f.Tag.Get("prop")
		if key == "" {
			key = strings.ToLower(f.Name)
		}

		entries = append(entries, entry{
			key: key,
			p:   elem.Field(i).Addr().Interface().(prop.Property),
		})
	}
	return entries, nil
}

// Snapshot reads every readable property of owner into a map. Write-only
// properties are omitted; read-only computed properties are included.
func Snapshot(owner any) (map[string]any, error) {
	entries, err := walk(owner)
	if err != nil {
		return nil, err
	}

	m := make(map[string]any, len(entries))
	for _, e := range entries {
		if v, ok := e.p.GetAny(); ok {
			m[e.key] = v
		}
	}
	return m, nil
}

// Apply writes values back through the owners' setters, key by key.
//
// Values whose type does not match the property's value type are coerced
// with mapstructure before the write. Apply stops at the first failure:
// unknown keys, read-only targets, failed coercions and setter rejections
// are all errors.
func Apply(owner any, values map[string]any) error {
	entries, err := walk(owner)
	if err != nil {
		return err
	}

	byKey := make(map[string]prop.Property, len(entries))
	for _, e := range entries {
		byKey[e.key] = e.p
	}

	for key, val := range values {
		p, ok := byKey[key]
		if !ok {
			return UnknownFieldError{Key: key}
		}
		if p.Kind() == prop.ReadOnly {
			return ReadOnlyFieldError{Key: key}
		}

		if err := p.SetAny(val); err != nil {
			var typeErr prop.TypeError
			if !errors.As(err, &typeErr) {
				// Setter rejection, not a type problem.
				return DecodeError{Key: key, Cause: err}
			}
			coerced, cerr := coerce(val, p.ValueType())
			if cerr != nil {
				return DecodeError{Key: key, Cause: cerr}
			}
			if err := p.SetAny(coerced); err != nil {
				return DecodeError{Key: key, Cause: err}
			}
		}
	}
	return nil
}

// coerce converts val into the target type with mapstructure's weak typing
// plus the usual string hooks.
func coerce(val any, target reflect.Type) (any, error) {
	out := reflect.New(target)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out.Interface(),
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(val); err != nil {
		return nil, err
	}
	return out.Elem().Interface(), nil
}
