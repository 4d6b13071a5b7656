package nodestore

import (
	"iter"

	"github.com/google/btree"
)

// mapIndexDegree is the B-tree degree of the MapStore id index.
const mapIndexDegree = 32

// MapStore keeps nodes in a hash map and maintains an ordered B-tree of ids
// for ascending iteration. Identifiers may be arbitrary and sparse.
//
// Complexity:
//   - Find, Upsert of an existing id: O(1).
//   - Upsert of a new id: O(log n) regardless of arrival order.
//   - All: O(n).
type MapStore[P any] struct {
	entries map[NodeID]*P
	ids     *btree.BTreeG[NodeID]
}

var _ Backend[struct{}, *MapStore[struct{}]] = (*MapStore[struct{}])(nil)

// NewMapStore returns an empty MapStore.
func NewMapStore[P any]() *MapStore[P] {
	return &MapStore[P]{
		entries: make(map[NodeID]*P),
		ids:     btree.NewOrderedG[NodeID](mapIndexDegree),
	}
}

// Upsert returns the entry for id, inserting ifAbsent when missing.
// MapStore never fails; the error is always nil.
func (s *MapStore[P]) Upsert(id NodeID, ifAbsent P) (*P, error) {
	if p, ok := s.entries[id]; ok {
		return p, nil
	}
	if s.entries == nil {
		s.entries = make(map[NodeID]*P)
	}
	if s.ids == nil {
		s.ids = btree.NewOrderedG[NodeID](mapIndexDegree)
	}
	p := new(P)
	*p = ifAbsent
	s.entries[id] = p
	s.ids.ReplaceOrInsert(id)

	return p, nil
}

// Find returns the entry for id.
func (s *MapStore[P]) Find(id NodeID) (*P, bool) {
	p, ok := s.entries[id]
	return p, ok
}

// Admit always succeeds: every id is storable.
func (s *MapStore[P]) Admit(NodeID) error { return nil }

// Len returns the number of stored nodes.
func (s *MapStore[P]) Len() int { return len(s.entries) }

// All yields entries in ascending id order.
func (s *MapStore[P]) All() iter.Seq2[NodeID, P] {
	return func(yield func(NodeID, P) bool) {
		if s.ids == nil {
			return
		}
		s.ids.Ascend(func(id NodeID) bool {
			return yield(id, *s.entries[id])
		})
	}
}

// Reset removes all entries.
func (s *MapStore[P]) Reset() {
	s.entries = make(map[NodeID]*P)
	s.ids = btree.NewOrderedG[NodeID](mapIndexDegree)
}

// Clone returns a deep copy of the store. The source is only read, so Clone
// may run alongside other readers.
func (s *MapStore[P]) Clone() *MapStore[P] {
	out := NewMapStore[P]()
	for id, p := range s.All() {
		out.entries[id] = &p
		out.ids.ReplaceOrInsert(id)
	}
	return out
}
