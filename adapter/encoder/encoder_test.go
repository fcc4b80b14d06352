package encoder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/attrkit/jsonmap/domain"
)

type EncoderTestSuite struct {
	suite.Suite
	encoder domain.Encoder
}

func (s *EncoderTestSuite) SetupTest() {
	s.encoder = NewEncoder()
}

func (s *EncoderTestSuite) encode(values []domain.Value, format domain.Format) string {
	out, err := s.encoder.Encode(values, format)
	s.Require().NoError(err)
	return string(out)
}

func values() []domain.Value {
	return []domain.Value{
		{Name: "User-Name", Type: domain.TypeString, Data: "bob"},
		{Name: "Login-Count", Type: domain.TypeUint32, Data: uint64(3)},
		{Name: "User-Name", Type: domain.TypeString, Data: "bobby"},
	}
}

// Object mode groups repeated names and carries the type.
func (s *EncoderTestSuite) TestObject() {
	s.Equal(
		`{"User-Name":{"type":"string","value":["bob","bobby"]},`+
			`"Login-Count":{"type":"uint32","value":3}}`,
		s.encode(values(), domain.Format{Mode: domain.ModeObject}),
	)
}

// Simple object mode drops the type wrapper.
func (s *EncoderTestSuite) TestObjectSimple() {
	s.Equal(
		`{"User-Name":["bob","bobby"],"Login-Count":3}`,
		s.encode(values(), domain.Format{Mode: domain.ModeObjectSimple}),
	)
}

// ValueAsArray forces one-element arrays in object modes.
func (s *EncoderTestSuite) TestValueAsArray() {
	vals := []domain.Value{{Name: "a", Type: domain.TypeString, Data: "x"}}
	s.Equal(
		`{"a":["x"]}`,
		s.encode(vals, domain.Format{Mode: domain.ModeObjectSimple, ValueAsArray: true}),
	)
}

// Array mode keeps one entry per value, in order.
func (s *EncoderTestSuite) TestArray() {
	s.Equal(
		`[{"name":"User-Name","type":"string","value":"bob"},`+
			`{"name":"Login-Count","type":"uint32","value":3},`+
			`{"name":"User-Name","type":"string","value":"bobby"}]`,
		s.encode(values(), domain.Format{Mode: domain.ModeArray}),
	)
}

// The flat array modes list values or names only.
func (s *EncoderTestSuite) TestFlatArrays() {
	s.Equal(
		`["bob",3,"bobby"]`,
		s.encode(values(), domain.Format{Mode: domain.ModeArrayOfValues}),
	)
	s.Equal(
		`["User-Name","Login-Count","User-Name"]`,
		s.encode(values(), domain.Format{Mode: domain.ModeArrayOfNames}),
	)
}

// The attribute prefix applies to every encoded name.
func (s *EncoderTestSuite) TestAttrPrefix() {
	vals := []domain.Value{{Name: "User-Name", Type: domain.TypeString, Data: "bob"}}
	s.Equal(
		`{"radius:User-Name":"bob"}`,
		s.encode(vals, domain.Format{Mode: domain.ModeObjectSimple, AttrPrefix: "radius"}),
	)
}

// Every supported data representation has a JSON rendering.
func (s *EncoderTestSuite) TestDataKinds() {
	date := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	vals := []domain.Value{
		{Name: "b", Type: domain.TypeBool, Data: true},
		{Name: "i", Type: domain.TypeInt64, Data: int64(-5)},
		{Name: "f", Type: domain.TypeFloat64, Data: 1.5},
		{Name: "o", Type: domain.TypeOctets, Data: []byte{0xde, 0xad}},
		{Name: "d", Type: domain.TypeDate, Data: date},
	}
	s.Equal(
		`[true,-5,1.5,"0xdead","2020-06-01T12:00:00Z"]`,
		s.encode(vals, domain.Format{Mode: domain.ModeArrayOfValues}),
	)
	s.Equal(
		`[true,-5,1.5,"0xdead",1591012800]`,
		s.encode(vals, domain.Format{Mode: domain.ModeArrayOfValues, DatesAsInteger: true}),
	)
}

// Unencodable data aborts with no partial output.
func (s *EncoderTestSuite) TestUnencodable() {
	vals := []domain.Value{{Name: "bad", Data: struct{}{}}}
	_, err := s.encoder.Encode(vals, domain.Format{Mode: domain.ModeArrayOfValues})
	s.ErrorAs(err, &ErrUnencodable{})
}

// An empty list still yields a syntactically complete document.
func (s *EncoderTestSuite) TestEmpty() {
	s.Equal(`{}`, s.encode(nil, domain.Format{Mode: domain.ModeObject}))
	s.Equal(`[]`, s.encode(nil, domain.Format{Mode: domain.ModeArray}))
}

// Quote escapes for embedding and passes empty input through.
func (s *EncoderTestSuite) TestQuote() {
	s.Equal(``, Quote(""))
	s.Equal(`plain`, Quote("plain"))
	s.Equal(`say \"hi\"\n`, Quote("say \"hi\"\n"))
	s.Equal(`tab\tslash\\`, Quote("tab\tslash\\"))
	s.Equal(``, Quote("\x01"))
}

// 64-bit support is on unless configured away.
func (s *EncoderTestSuite) TestInt64Support() {
	s.True(s.encoder.Supports64Bit())
	s.False(NewEncoder(WithInt64Support(false)).Supports64Bit())
}

// Format sections are decoded and their mode validated.
func (s *EncoderTestSuite) TestParseFormat() {
	format, err := ParseFormat(map[string]any{
		"output_mode": "array",
		"attr":        map[string]any{"prefix": "radius"},
		"value":       map[string]any{"value_as_array": true},
	})
	s.Require().NoError(err)
	s.Equal(domain.Format{Mode: domain.ModeArray, AttrPrefix: "radius", ValueAsArray: true}, format)

	format, err = ParseFormat(map[string]any{})
	s.Require().NoError(err)
	s.Equal(domain.ModeObject, format.Mode)

	_, err = ParseFormat(map[string]any{"output_mode": "csv"})
	s.ErrorAs(err, &domain.ErrUnknownMode{})
}

func TestEncoderTestSuite(t *testing.T) {
	suite.Run(t, new(EncoderTestSuite))
}
