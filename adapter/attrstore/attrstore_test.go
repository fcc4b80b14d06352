package attrstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/attrkit/jsonmap/domain"
)

type AttrstoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *Store
}

func (s *AttrstoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	store, err := NewStore(
		domain.Value{Name: "User-Name", Type: domain.TypeString, Data: "bob"},
		domain.Value{Name: "Group", Type: domain.TypeString, Data: "admin"},
	)
	s.Require().NoError(err)
	s.store = store
}

func (s *AttrstoreTestSuite) TestResolve() {
	group, err := s.store.Resolve(s.ctx, "User-Name")
	s.Require().NoError(err)
	s.Require().Len(group, 1)
	s.Equal("bob", group[0].Data)
}

// Values appended under one name keep their insertion order, duplicates
// included.
func (s *AttrstoreTestSuite) TestAppendOrder() {
	err := s.store.Append(
		domain.Value{Name: "Group", Type: domain.TypeString, Data: "audit"},
		domain.Value{Name: "Group", Type: domain.TypeString, Data: "admin"},
	)
	s.Require().NoError(err)

	group, err := s.store.Resolve(s.ctx, "Group")
	s.Require().NoError(err)
	s.Require().Len(group, 3)
	s.Equal("admin", group[0].Data)
	s.Equal("audit", group[1].Data)
	s.Equal("admin", group[2].Data)
}

func (s *AttrstoreTestSuite) TestResolveUnknownName() {
	group, err := s.store.Resolve(s.ctx, "Framed-Route")
	s.NoError(err)
	s.Empty(group)
}

func (s *AttrstoreTestSuite) TestResolveBadReference() {
	for _, ref := range []string{"", "0name", "-name", "User Name", "a$b"} {
		_, err := s.store.Resolve(s.ctx, ref)
		s.ErrorAs(err, &domain.ErrBadToken{}, "ref %q", ref)
	}
}

// Resolved groups are detached from the store.
func (s *AttrstoreTestSuite) TestResolveReturnsCopy() {
	group, err := s.store.Resolve(s.ctx, "User-Name")
	s.Require().NoError(err)
	group[0].Data = "mallory"

	again, err := s.store.Resolve(s.ctx, "User-Name")
	s.Require().NoError(err)
	s.Equal("bob", again[0].Data)
}

func TestAttrstoreTestSuite(t *testing.T) {
	suite.Run(t, new(AttrstoreTestSuite))
}
