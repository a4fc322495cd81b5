package jsonvalue

import (
	"github.com/google/btree"
)

const stringSetDegree = 16

// StringSet is an ordered set of strings without duplicates. Iteration is in
// ascending byte order. The zero value is an empty set ready to use.
//
// A StringSet is not safe for concurrent use.
type StringSet struct {
	tree *btree.BTreeG[string]
}

// NewStringSet returns a set holding items
func NewStringSet(items ...string) *StringSet {
	s := &StringSet{}
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

func (s *StringSet) init() {
	if s.tree == nil {
		s.tree = btree.NewOrderedG[string](stringSetDegree)
	}
}

// Insert adds item and reports whether it was not present before
func (s *StringSet) Insert(item string) bool {
	s.init()
	_, replaced := s.tree.ReplaceOrInsert(item)
	return !replaced
}

// Has reports whether item is in the set
func (s *StringSet) Has(item string) bool {
	if s == nil || s.tree == nil {
		return false
	}
	return s.tree.Has(item)
}

// Delete removes item and reports whether it was present
func (s *StringSet) Delete(item string) bool {
	if s == nil || s.tree == nil {
		return false
	}
	_, found := s.tree.Delete(item)
	return found
}

// Len returns the number of items
func (s *StringSet) Len() int {
	if s == nil || s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

// Ascend calls fn for each item in ascending order until fn returns false
func (s *StringSet) Ascend(fn func(item string) bool) {
	if s == nil || s.tree == nil {
		return
	}
	s.tree.Ascend(fn)
}

// Items returns the items in ascending order
func (s *StringSet) Items() []string {
	items := make([]string, 0, s.Len())
	s.Ascend(func(item string) bool {
		items = append(items, item)
		return true
	})
	return items
}

// Clone returns an independent copy of the set
func (s *StringSet) Clone() *StringSet {
	if s == nil || s.tree == nil {
		return &StringSet{}
	}
	return &StringSet{tree: s.tree.Clone()}
}
