package domain

import "fmt"

// Operator describes how a produced value should be combined into its
// destination collection.
type Operator uint8

const (
	// OpSet overwrites any existing value under the same name.
	OpSet Operator = iota
	// OpAdd appends the value, keeping existing ones.
	OpAdd
	// OpCompare marks the value as a comparison term rather than an
	// assignment.
	OpCompare
)

// String implements [fmt.Stringer].
func (o Operator) String() string {
	switch o {
	case OpSet:
		return "="
	case OpAdd:
		return "+="
	case OpCompare:
		return "=="
	default:
		return fmt.Sprintf("Operator(%d)", uint8(o))
	}
}

// Type is the target type a matched leaf is coerced to.
type Type uint8

const (
	// TypeString coerces to a Go string.
	TypeString Type = iota
	// TypeBool coerces to a Go bool.
	TypeBool
	// TypeInt32 coerces to an int64 restricted to the int32 range.
	TypeInt32
	// TypeInt64 coerces to an int64.
	TypeInt64
	// TypeUint32 coerces to a uint64 restricted to the uint32 range.
	TypeUint32
	// TypeUint64 coerces to a uint64.
	TypeUint64
	// TypeFloat64 coerces to a float64.
	TypeFloat64
	// TypeOctets coerces to a byte slice. String sources may use a "0x"
	// hex prefix.
	TypeOctets
	// TypeDate coerces to a [time.Time], from RFC 3339 text or a Unix
	// epoch number.
	TypeDate
)

var typeNames = map[Type]string{
	TypeString:  "string",
	TypeBool:    "bool",
	TypeInt32:   "int32",
	TypeInt64:   "int64",
	TypeUint32:  "uint32",
	TypeUint64:  "uint64",
	TypeFloat64: "float64",
	TypeOctets:  "octets",
	TypeDate:    "date",
}

// String implements [fmt.Stringer].
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType resolves a type name to its [Type]. Unknown names return
// [ErrUnknownType].
func ParseType(name string) (Type, error) {
	for t, s := range typeNames {
		if s == name {
			return t, nil
		}
	}
	return 0, ErrUnknownType{Name: name}
}

// RHSKind tags the variant held by a mapping's right-hand side.
type RHSKind uint8

const (
	// RHSStatic is expression text known entirely at configuration time.
	RHSStatic RHSKind = iota
	// RHSLiteral is a pre-typed constant string, also compiled once.
	RHSLiteral
	// RHSDynamic is a template that must be expanded per call before it
	// can be compiled.
	RHSDynamic
	// RHSUnsupported is any other kind. Mappings carrying it are skipped
	// during evaluation.
	RHSUnsupported
)

// RHS is the right-hand side of a [Mapping]. Text holds the expression
// source for the static and literal kinds, and the unexpanded template for
// the dynamic kind.
type RHS struct {
	Kind RHSKind
	Text string
}

// Mapping declares one extraction rule: a target name with its expected
// type, the operator produced values carry, and the right-hand expression
// that selects values from a document. Mappings form an ordered sequence
// and order is preserved end to end.
type Mapping struct {
	Name string
	Type Type
	Op   Operator
	RHS  RHS
}

// Value is one typed, named value, either produced by evaluating a mapping
// or held in a list destined for document encoding. Data holds the coerced
// Go representation: string, bool, int64, uint64, float64, []byte or
// [time.Time].
type Value struct {
	Name string
	Type Type
	Op   Operator
	Data any
}

// Result is the outcome of one mapping evaluation call.
type Result uint8

const (
	// ResultNoop means no mapping produced a value.
	ResultNoop Result = iota
	// ResultUpdated means at least one value was delivered to the sink.
	ResultUpdated
	// ResultFail means the evaluation aborted. Nothing was delivered.
	ResultFail
)

// String implements [fmt.Stringer].
func (r Result) String() string {
	switch r {
	case ResultNoop:
		return "noop"
	case ResultUpdated:
		return "updated"
	case ResultFail:
		return "fail"
	default:
		return fmt.Sprintf("Result(%d)", uint8(r))
	}
}

// Mode selects the document layout produced by the encoder.
type Mode uint8

const (
	// ModeObject encodes {"name": {"type": ..., "value": ...}} entries.
	ModeObject Mode = iota
	// ModeObjectSimple encodes {"name": value} entries.
	ModeObjectSimple
	// ModeArray encodes a list of {"name", "type", "value"} objects.
	ModeArray
	// ModeArrayOfValues encodes a flat list of values.
	ModeArrayOfValues
	// ModeArrayOfNames encodes a flat list of names.
	ModeArrayOfNames
)

var modeNames = map[Mode]string{
	ModeObject:        "object",
	ModeObjectSimple:  "object_simple",
	ModeArray:         "array",
	ModeArrayOfValues: "array_of_values",
	ModeArrayOfNames:  "array_of_names",
}

// String implements [fmt.Stringer].
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Valid reports whether m is one of the fixed set of output modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode resolves an output mode name to its [Mode]. Unknown names
// return [ErrUnknownMode]; there is no runtime default.
func ParseMode(name string) (Mode, error) {
	for m, s := range modeNames {
		if s == name {
			return m, nil
		}
	}
	return 0, ErrUnknownMode{Mode: name}
}

// Format carries the output formatting options for the encoding path.
type Format struct {
	// Mode selects the document layout.
	Mode Mode
	// AttrPrefix, when set, is prepended to every encoded name with a
	// colon separator.
	AttrPrefix string
	// ValueAsArray forces single values to be encoded as one-element
	// arrays in the object modes.
	ValueAsArray bool
	// DatesAsInteger encodes date values as Unix epoch seconds instead
	// of RFC 3339 text.
	DatesAsInteger bool
}
