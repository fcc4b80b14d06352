package jsonmap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/attrkit/jsonmap/adapter/attrstore"
	"github.com/attrkit/jsonmap/domain"
)

type JSONMapTestSuite struct {
	suite.Suite
	ctx      context.Context
	module   *Module
	mappings []domain.Mapping
}

func (s *JSONMapTestSuite) SetupTest() {
	s.ctx = context.Background()
	module, err := New()
	s.Require().NoError(err)
	s.module = module
	s.mappings = []domain.Mapping{{
		Name: "Reply-Message",
		Type: domain.TypeString,
		Op:   domain.OpSet,
		RHS:  domain.RHS{Kind: domain.RHSStatic, Text: "$.msg"},
	}}
}

func (s *JSONMapTestSuite) sink() *attrstore.Store {
	sink, err := attrstore.NewStore()
	s.Require().NoError(err)
	return sink
}

func (s *JSONMapTestSuite) TestEvaluate() {
	cache, err := s.module.Instantiate(s.mappings)
	s.Require().NoError(err)
	sink := s.sink()

	result := s.module.Evaluate(s.ctx, cache, `{"msg":"hello"}`, s.mappings, sink)

	s.Equal(domain.ResultUpdated, result)
	values, err := sink.Resolve(s.ctx, "Reply-Message")
	s.Require().NoError(err)
	s.Require().Len(values, 1)
	s.Equal("hello", values[0].Data)
}

func (s *JSONMapTestSuite) TestEvaluateNoMatch() {
	cache, err := s.module.Instantiate(s.mappings)
	s.Require().NoError(err)
	sink := s.sink()

	result := s.module.Evaluate(s.ctx, cache, `{"other":"x"}`, s.mappings, sink)

	s.Equal(domain.ResultNoop, result)
	values, err := sink.Resolve(s.ctx, "Reply-Message")
	s.Require().NoError(err)
	s.Empty(values)
}

func (s *JSONMapTestSuite) TestEvaluateMalformedDocument() {
	cache, err := s.module.Instantiate(s.mappings)
	s.Require().NoError(err)

	result := s.module.Evaluate(s.ctx, cache, `{"msg":`, s.mappings, s.sink())

	s.Equal(domain.ResultFail, result)
}

func (s *JSONMapTestSuite) TestInstantiateBadExpression() {
	_, err := s.module.Instantiate([]domain.Mapping{{
		Name: "Reply-Message",
		Type: domain.TypeString,
		RHS:  domain.RHS{Kind: domain.RHSStatic, Text: "$.msg["},
	}})
	s.ErrorAs(err, &ErrSyntax{})
}

func (s *JSONMapTestSuite) TestEncode() {
	store, err := attrstore.NewStore(
		domain.Value{Name: "User-Name", Type: domain.TypeString, Data: "bob"},
		domain.Value{Name: "User-Password", Type: domain.TypeString, Data: "hunter2"},
	)
	s.Require().NoError(err)
	module, err := New(
		WithFormat(domain.Format{Mode: domain.ModeObjectSimple}),
		WithProvider(store),
	)
	s.Require().NoError(err)

	out, err := module.Encode(s.ctx, "User-Name !User-Password")
	s.Require().NoError(err)
	s.Equal(`{"User-Name":"bob"}`, out)
}

func (s *JSONMapTestSuite) TestFormatSection() {
	module, err := New(WithFormatSection(map[string]any{
		"output_mode": "array",
		"attr": map[string]any{
			"prefix": "radius",
		},
	}))
	s.Require().NoError(err)
	s.Equal(domain.ModeArray, module.format.Mode)
	s.Equal("radius", module.format.AttrPrefix)
}

func (s *JSONMapTestSuite) TestUnknownModeFailsNew() {
	_, err := New(WithFormatSection(map[string]any{"output_mode": "csv"}))
	s.ErrorAs(err, &ErrUnknownMode{})

	_, err = New(WithFormat(domain.Format{Mode: domain.Mode(99)}))
	s.ErrorAs(err, &ErrUnknownMode{})
}

func (s *JSONMapTestSuite) TestQuote() {
	out, err := s.module.Quote("say \"hi\"\n")
	s.Require().NoError(err)
	s.Equal(`say \"hi\"\n`, out)
}

func (s *JSONMapTestSuite) TestValidate() {
	s.Equal("5:$.msg", s.module.Validate("$.msg"))
	s.Equal("1:expected '.' or '['", s.module.Validate("$msg"))
}

func (s *JSONMapTestSuite) TestFuncs() {
	module, err := New(WithName("rest"))
	s.Require().NoError(err)

	funcs := module.Funcs()
	s.Contains(funcs, "jsonquote")
	s.Contains(funcs, "jpathvalidate")
	s.Contains(funcs, "rest_encode")
	s.IsType(QuoteFunc(nil), funcs["jsonquote"])
	s.IsType(ValidateFunc(nil), funcs["jpathvalidate"])
	s.IsType(EncodeFunc(nil), funcs["rest_encode"])
}

func (s *JSONMapTestSuite) TestProcessor() {
	proc := s.module.Processor()
	s.Equal("json", proc.Name)
	s.NotNil(proc.Instantiate)
	s.NotNil(proc.Evaluate)

	cache, err := proc.Instantiate(s.mappings)
	s.Require().NoError(err)
	sink := s.sink()
	s.Equal(domain.ResultUpdated,
		proc.Evaluate(s.ctx, cache, `{"msg":"hello"}`, s.mappings, sink))
}

func TestJSONMapTestSuite(t *testing.T) {
	suite.Run(t, new(JSONMapTestSuite))
}
