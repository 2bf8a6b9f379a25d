package argz

import (
	"path/filepath"
	"strconv"
)

// Path is a filesystem path value. Path slots normalize their tokens with
// filepath.Clean on assignment; string slots store tokens verbatim.
type Path string

// Bindable is the closed set of value types an Option can bind. Every
// member also has an optional form, bound through BindOpt.
type Bindable interface {
	bool | int32 | uint32 | int64 | uint64 | float64 | string | Path
}

// Binding aliases a caller-owned storage slot. A Binding never owns data:
// coercing a token through it writes into the caller's variable in place,
// so the result of a parse is read back from the caller's own variables.
type Binding interface {
	// coerce parses token and assigns the result to the aliased slot.
	// The slot is left untouched when coercion fails.
	coerce(token string) error

	// render returns the slot's current value as display text, or "" for
	// an absent optional. Display only; not meant to round-trip.
	render() string

	// kind names the slot's type for diagnostics.
	kind() string
}

// Bind aliases the plain slot p. Parse mutates *p whenever the owning
// option is matched. p must not be nil.
func Bind[T Bindable](p *T) Binding {
	return ref[T]{p}
}

// BindOpt aliases the optional slot p. The option is absent while *p is
// nil and becomes present the first time a value is coerced through the
// binding. p must not be nil.
func BindOpt[T Bindable](p **T) Binding {
	return optRef[T]{p}
}

type ref[T Bindable] struct {
	slot *T
}

func (r ref[T]) coerce(token string) error {
	return coerceValue(token, r.slot)
}

func (r ref[T]) render() string {
	return renderValue(*r.slot)
}

func (r ref[T]) kind() string {
	return kindOf[T]()
}

type optRef[T Bindable] struct {
	slot **T
}

func (r optRef[T]) coerce(token string) error {
	var v T
	if err := coerceValue(token, &v); err != nil {
		return err
	}
	*r.slot = &v
	return nil
}

func (r optRef[T]) render() string {
	if *r.slot == nil {
		return ""
	}
	return renderValue(**r.slot)
}

func (r optRef[T]) kind() string {
	return "optional " + kindOf[T]()
}

// coerceValue parses token into dst according to dst's concrete type.
// Integer slots parse as base-10 signed 64-bit and convert to the slot's
// width and signedness without range checks, so out-of-range tokens wrap:
// "4294967296" lands in an int32 slot as 0, "-1" in a uint32 slot as
// 4294967295. Bool slots compare against the literal "true"; anything
// else, including "TRUE" and "1", assigns false.
func coerceValue[T Bindable](token string, dst *T) error {
	switch d := any(dst).(type) {
	case *bool:
		*d = token == "true"
	case *int32:
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return &malformedNumberError{token: token}
		}
		*d = int32(v)
	case *uint32:
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return &malformedNumberError{token: token}
		}
		*d = uint32(v)
	case *int64:
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return &malformedNumberError{token: token}
		}
		*d = v
	case *uint64:
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return &malformedNumberError{token: token}
		}
		*d = uint64(v)
	case *float64:
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return &malformedNumberError{token: token}
		}
		*d = v
	case *string:
		*d = token
	case *Path:
		*d = Path(filepath.Clean(token))
	}
	return nil
}

// renderValue formats a slot value for help and dump output.
func renderValue[T Bindable](v T) string {
	switch x := any(v).(type) {
	case bool:
		return strconv.FormatBool(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	case Path:
		return string(x)
	}
	return ""
}

func kindOf[T Bindable]() string {
	var zero T
	switch any(zero).(type) {
	case bool:
		return "bool"
	case int32:
		return "int32"
	case uint32:
		return "uint32"
	case int64:
		return "int64"
	case uint64:
		return "uint64"
	case float64:
		return "float64"
	case string:
		return "string"
	case Path:
		return "path"
	}
	return "unknown"
}
