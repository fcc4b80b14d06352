package coercer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/attrkit/jsonmap/domain"
)

type CoercerTestSuite struct {
	suite.Suite
	coercer domain.Coercer
}

func (s *CoercerTestSuite) SetupTest() {
	s.coercer = NewCoercer()
}

func (s *CoercerTestSuite) coerce(v any, t domain.Type) any {
	out, err := s.coercer.Coerce(v, t)
	s.Require().NoError(err)
	return out
}

func (s *CoercerTestSuite) fails(v any, t domain.Type) {
	_, err := s.coercer.Coerce(v, t)
	s.Require().Error(err)
	s.ErrorAs(err, &domain.ErrCoerce{})
}

// Scalars convert to strings.
func (s *CoercerTestSuite) TestToString() {
	s.Equal("hello", s.coerce("hello", domain.TypeString))
	s.Equal("42", s.coerce(int64(42), domain.TypeString))
	s.Equal("1.5", s.coerce(1.5, domain.TypeString))
	s.Equal("1", s.coerce(true, domain.TypeString))
}

// Booleans accept bools and their common textual forms.
func (s *CoercerTestSuite) TestToBool() {
	s.Equal(true, s.coerce(true, domain.TypeBool))
	s.Equal(true, s.coerce("true", domain.TypeBool))
	s.Equal(false, s.coerce("false", domain.TypeBool))
	s.fails("maybe", domain.TypeBool)
}

// Integers convert from integral numbers and numeric strings only.
func (s *CoercerTestSuite) TestToInt() {
	s.Equal(int64(42), s.coerce(int64(42), domain.TypeInt64))
	s.Equal(int64(42), s.coerce("42", domain.TypeInt64))
	s.Equal(int64(2), s.coerce(2.0, domain.TypeInt64))
	s.fails(1.5, domain.TypeInt64)
	s.fails("hello", domain.TypeInt64)
}

// 32-bit targets enforce their range.
func (s *CoercerTestSuite) TestRanges() {
	s.Equal(int64(1), s.coerce(int64(1), domain.TypeInt32))
	s.fails(int64(1)<<40, domain.TypeInt32)
	s.Equal(uint64(7), s.coerce(int64(7), domain.TypeUint32))
	s.fails(uint64(1)<<40, domain.TypeUint32)
	s.fails(int64(-1), domain.TypeUint64)
}

// Floats convert from any numeric form.
func (s *CoercerTestSuite) TestToFloat() {
	s.Equal(1.5, s.coerce(1.5, domain.TypeFloat64))
	s.Equal(42.0, s.coerce(int64(42), domain.TypeFloat64))
	s.Equal(1.5, s.coerce("1.5", domain.TypeFloat64))
}

// Octets come from raw strings or 0x-prefixed hex.
func (s *CoercerTestSuite) TestToOctets() {
	s.Equal([]byte("abc"), s.coerce("abc", domain.TypeOctets))
	s.Equal([]byte{0xde, 0xad}, s.coerce("0xdead", domain.TypeOctets))
	s.fails("0xzz", domain.TypeOctets)
}

// Dates come from RFC 3339 text or epoch numbers.
func (s *CoercerTestSuite) TestToDate() {
	want := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	s.Equal(want, s.coerce("2020-06-01T12:00:00Z", domain.TypeDate))
	s.Equal(want, s.coerce(want.Unix(), domain.TypeDate))
	s.fails("yesterday", domain.TypeDate)
	s.fails(true, domain.TypeDate)
}

// Null has no typed representation.
func (s *CoercerTestSuite) TestNull() {
	for _, t := range []domain.Type{
		domain.TypeString, domain.TypeBool, domain.TypeInt64,
		domain.TypeUint64, domain.TypeFloat64, domain.TypeOctets,
		domain.TypeDate,
	} {
		s.fails(nil, t)
	}
}

func TestCoercerTestSuite(t *testing.T) {
	suite.Run(t, new(CoercerTestSuite))
}
