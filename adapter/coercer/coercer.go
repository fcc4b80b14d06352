// Package coercer contains the default [domain.Coercer] implementation:
// matched leaves converted to the Go representation of a target type, with
// un-representable values treated as hard errors.
package coercer

import (
	"encoding/hex"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/goccy/go-reflect"
	"github.com/mitchellh/mapstructure"

	"github.com/attrkit/jsonmap/domain"
)

var (
	// ErrNullValue is returned when a JSON null is coerced to any target
	// type.
	ErrNullValue = errors.New("null has no typed representation")
	// ErrFractional is returned when a number with a fractional part is
	// coerced to an integer type.
	ErrFractional = errors.New("value has a fractional part")
	// ErrOutOfRange is returned when a numeric value does not fit the
	// target type's range.
	ErrOutOfRange = errors.New("value out of range")
	// ErrBadDate is returned when a value cannot be read as a date.
	ErrBadDate = errors.New("value is not a date")
)

// Coercer implements [domain.Coercer].
type Coercer struct{}

// NewCoercer returns a new implementation of [domain.Coercer].
func NewCoercer() domain.Coercer {
	return &Coercer{}
}

// Coerce implements [domain.Coercer].
func (c *Coercer) Coerce(value any, t domain.Type) (any, error) {
	if value == nil {
		return nil, domain.ErrCoerce{Value: value, Type: t, Err: ErrNullValue}
	}

	out, err := c.coerce(value, t)
	if err != nil {
		return nil, domain.ErrCoerce{Value: value, Type: t, Err: err}
	}
	return out, nil
}

func (c *Coercer) coerce(value any, t domain.Type) (any, error) {
	switch t {
	case domain.TypeString:
		var s string
		if err := decodeWeak(value, &s); err != nil {
			return nil, err
		}
		return s, nil

	case domain.TypeBool:
		var b bool
		if err := decodeWeak(value, &b); err != nil {
			return nil, err
		}
		return b, nil

	case domain.TypeInt32, domain.TypeInt64:
		i, err := c.toInt64(value)
		if err != nil {
			return nil, err
		}
		if t == domain.TypeInt32 && (i < math.MinInt32 || i > math.MaxInt32) {
			return nil, ErrOutOfRange
		}
		return i, nil

	case domain.TypeUint32, domain.TypeUint64:
		u, err := c.toUint64(value)
		if err != nil {
			return nil, err
		}
		if t == domain.TypeUint32 && u > math.MaxUint32 {
			return nil, ErrOutOfRange
		}
		return u, nil

	case domain.TypeFloat64:
		var f float64
		if err := decodeWeak(value, &f); err != nil {
			return nil, err
		}
		return f, nil

	case domain.TypeOctets:
		return c.toOctets(value)

	case domain.TypeDate:
		return c.toDate(value)

	default:
		return nil, domain.ErrUnknownType{Name: t.String()}
	}
}

func (c *Coercer) toInt64(value any) (int64, error) {
	if err := checkIntegral(value, math.MinInt64, math.MaxInt64); err != nil {
		return 0, err
	}
	var i int64
	if err := decodeWeak(value, &i); err != nil {
		return 0, err
	}
	return i, nil
}

func (c *Coercer) toUint64(value any) (uint64, error) {
	if err := checkIntegral(value, 0, math.MaxUint64); err != nil {
		return 0, err
	}
	var u uint64
	if err := decodeWeak(value, &u); err != nil {
		return 0, err
	}
	return u, nil
}

func (c *Coercer) toOctets(value any) ([]byte, error) {
	var s string
	if err := decodeWeak(value, &s); err != nil {
		return nil, err
	}
	if hs, ok := strings.CutPrefix(s, "0x"); ok {
		return hex.DecodeString(hs)
	}
	return []byte(s), nil
}

func (c *Coercer) toDate(value any) (time.Time, error) {
	switch v := value.(type) {
	case string:
		d, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, ErrBadDate
		}
		return d, nil
	case int64:
		return time.Unix(v, 0).UTC(), nil
	case uint64:
		if v > math.MaxInt64 {
			return time.Time{}, ErrOutOfRange
		}
		return time.Unix(int64(v), 0).UTC(), nil
	case float64:
		if v != math.Trunc(v) {
			return time.Time{}, ErrFractional
		}
		return time.Unix(int64(v), 0).UTC(), nil
	default:
		return time.Time{}, ErrBadDate
	}
}

// checkIntegral rejects floats with fractional parts or outside the target
// range before the weak decode silently truncates them.
func checkIntegral(value any, lo, hi float64) error {
	v := reflect.ValueNoEscapeOf(value)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f != math.Trunc(f) {
			return ErrFractional
		}
		if f < lo || f > hi {
			return ErrOutOfRange
		}
	}
	return nil
}

func decodeWeak(source any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}
	return dec.Decode(source)
}
