// Package attrstore contains the default [domain.ValueProvider]
// implementation: an ordered name→value-group store. It also implements
// [domain.ValueSink], so values extracted by a mapping evaluation can be
// collected and encoded back out without an intermediate copy.
package attrstore

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"github.com/vinicius-lino-figueiredo/bst"
	"github.com/vinicius-lino-figueiredo/bst/adapter/avl"

	"github.com/attrkit/jsonmap/domain"
)

var refName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.-]*$`)

// Store implements [domain.ValueProvider] and [domain.ValueSink]. It is
// not safe for concurrent mutation; share it read-only or give each call
// its own.
type Store struct {
	tree bst.BST[string, domain.Value]
}

// NewStore returns a new Store holding the given values.
func NewStore(values ...domain.Value) (*Store, error) {
	s := &Store{tree: avl.NewBST(false, 8, comparer{})}
	if err := s.Append(values...); err != nil {
		return nil, err
	}
	return s, nil
}

// Append implements [domain.ValueSink]. Values keep their insertion order
// within their name group.
func (s *Store) Append(values ...domain.Value) error {
	for _, v := range values {
		if err := s.tree.Insert(v.Name, v); err != nil {
			return err
		}
	}
	return nil
}

// Resolve implements [domain.ValueProvider]. A name that holds no values
// yields an empty group; a reference that is not a valid attribute name
// yields [domain.ErrBadToken].
func (s *Store) Resolve(_ context.Context, ref string) ([]domain.Value, error) {
	if !refName.MatchString(ref) {
		return nil, domain.ErrBadToken{Token: ref}
	}
	found, err := s.tree.Search(ref)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, nil
	}
	return slices.Clone(found.Values()), nil
}

type comparer struct{}

// CompareKeys implements [bst.Comparer].
func (comparer) CompareKeys(a, b string) (int, error) {
	return strings.Compare(a, b), nil
}

// CompareValues implements [bst.Comparer]. Values under one name are kept
// even when equal, so nothing compares as a duplicate.
func (comparer) CompareValues(a, b domain.Value) (bool, error) {
	return false, nil
}
