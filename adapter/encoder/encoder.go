// Package encoder contains the default [domain.Encoder] implementation:
// name→value lists rendered as JSON documents in one of a fixed set of
// output modes, preserving accumulation order.
package encoder

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/attrkit/jsonmap/domain"
)

// ErrUnencodable is returned when a value's data has no JSON
// representation.
type ErrUnencodable struct {
	Name string
	Data any
}

// Error implements [error].
func (e ErrUnencodable) Error() string {
	return fmt.Sprintf("attribute %q holds unencodable data of type %T", e.Name, e.Data)
}

// Encoder implements [domain.Encoder].
type Encoder struct {
	int64Support bool
}

// NewEncoder returns a new implementation of [domain.Encoder].
func NewEncoder(options ...Option) domain.Encoder {
	e := &Encoder{int64Support: true}
	for _, option := range options {
		option(e)
	}
	return e
}

// Supports64Bit implements [domain.Encoder].
func (e *Encoder) Supports64Bit() bool {
	return e.int64Support
}

// Encode implements [domain.Encoder]. Values are rendered in the order
// given; the object modes group repeated names into one member at the
// position of the name's first occurrence.
func (e *Encoder) Encode(values []domain.Value, format domain.Format) ([]byte, error) {
	var b bytes.Buffer
	var err error

	switch format.Mode {
	case domain.ModeObject:
		err = e.object(&b, values, format, false)
	case domain.ModeObjectSimple:
		err = e.object(&b, values, format, true)
	case domain.ModeArray:
		err = e.array(&b, values, format)
	case domain.ModeArrayOfValues:
		err = e.arrayOfValues(&b, values, format)
	case domain.ModeArrayOfNames:
		err = e.arrayOfNames(&b, values, format)
	default:
		return nil, domain.ErrUnknownMode{Mode: format.Mode.String()}
	}
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (e *Encoder) object(b *bytes.Buffer, values []domain.Value, format domain.Format, simple bool) error {
	names := make([]string, 0, len(values))
	groups := make(map[string][]domain.Value, len(values))
	for _, v := range values {
		if _, ok := groups[v.Name]; !ok {
			names = append(names, v.Name)
		}
		groups[v.Name] = append(groups[v.Name], v)
	}

	b.WriteByte('{')
	for n, name := range names {
		if n > 0 {
			b.WriteByte(',')
		}
		group := groups[name]
		writeString(b, e.attrName(name, format))
		b.WriteByte(':')
		if !simple {
			b.WriteString(`{"type":`)
			writeString(b, group[0].Type.String())
			b.WriteString(`,"value":`)
		}
		if err := e.groupValues(b, group, format); err != nil {
			return err
		}
		if !simple {
			b.WriteByte('}')
		}
	}
	b.WriteByte('}')
	return nil
}

func (e *Encoder) groupValues(b *bytes.Buffer, group []domain.Value, format domain.Format) error {
	if len(group) == 1 && !format.ValueAsArray {
		return e.value(b, group[0], format)
	}
	b.WriteByte('[')
	for n, v := range group {
		if n > 0 {
			b.WriteByte(',')
		}
		if err := e.value(b, v, format); err != nil {
			return err
		}
	}
	b.WriteByte(']')
	return nil
}

func (e *Encoder) array(b *bytes.Buffer, values []domain.Value, format domain.Format) error {
	b.WriteByte('[')
	for n, v := range values {
		if n > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`{"name":`)
		writeString(b, e.attrName(v.Name, format))
		b.WriteString(`,"type":`)
		writeString(b, v.Type.String())
		b.WriteString(`,"value":`)
		if err := e.value(b, v, format); err != nil {
			return err
		}
		b.WriteByte('}')
	}
	b.WriteByte(']')
	return nil
}

func (e *Encoder) arrayOfValues(b *bytes.Buffer, values []domain.Value, format domain.Format) error {
	b.WriteByte('[')
	for n, v := range values {
		if n > 0 {
			b.WriteByte(',')
		}
		if err := e.value(b, v, format); err != nil {
			return err
		}
	}
	b.WriteByte(']')
	return nil
}

func (e *Encoder) arrayOfNames(b *bytes.Buffer, values []domain.Value, format domain.Format) error {
	b.WriteByte('[')
	for n, v := range values {
		if n > 0 {
			b.WriteByte(',')
		}
		writeString(b, e.attrName(v.Name, format))
	}
	b.WriteByte(']')
	return nil
}

func (e *Encoder) attrName(name string, format domain.Format) string {
	if format.AttrPrefix == "" {
		return name
	}
	return format.AttrPrefix + ":" + name
}

func (e *Encoder) value(b *bytes.Buffer, v domain.Value, format domain.Format) error {
	switch data := v.Data.(type) {
	case string:
		writeString(b, data)
	case bool:
		b.WriteString(strconv.FormatBool(data))
	case int64:
		b.WriteString(strconv.FormatInt(data, 10))
	case uint64:
		b.WriteString(strconv.FormatUint(data, 10))
	case float64:
		b.WriteString(strconv.FormatFloat(data, 'g', -1, 64))
	case []byte:
		writeString(b, "0x"+hex.EncodeToString(data))
	case time.Time:
		if format.DatesAsInteger {
			b.WriteString(strconv.FormatInt(data.Unix(), 10))
		} else {
			writeString(b, data.Format(time.RFC3339))
		}
	default:
		return ErrUnencodable{Name: v.Name, Data: v.Data}
	}
	return nil
}

func writeString(b *bytes.Buffer, s string) {
	b.WriteByte('"')
	b.WriteString(Quote(s))
	b.WriteByte('"')
}
