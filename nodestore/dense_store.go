package nodestore

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"
)

const (
	// DefaultDenseCapacityLimit is the largest id ceiling NewDenseStore picks
	// when no explicit limit is given.
	DefaultDenseCapacityLimit = 1 << 24

	// DefaultDenseMemoryBudget bounds, in bytes, the backing slices a store
	// with the default ceiling can grow to.
	DefaultDenseMemoryBudget = 256 << 20
)

// DefaultDenseLimit returns the default id ceiling for payload type P:
// DefaultDenseCapacityLimit, lowered so that values and presence flags fit
// within DefaultDenseMemoryBudget.
func DefaultDenseLimit[P any]() int {
	var zero P
	perID := int(unsafe.Sizeof(zero)) + 1 // value + presence flag
	return min(DefaultDenseCapacityLimit, DefaultDenseMemoryBudget/perID)
}

// DenseStore keeps nodes in a slice indexed by id. Identifiers are expected to
// be contiguous from zero; ids at or beyond the capacity limit are rejected
// with ErrIdentifierOutOfPolicy instead of growing without bound.
//
// Only ids passed to Upsert are present: growing the slice to cover a large id
// does not materialise the ids in between.
//
// Complexity: Upsert O(1) amortised, Find O(1), All O(limit touched).
type DenseStore[P any] struct {
	vals    []P
	present []bool
	count   int
	limit   uint64
}

var _ Backend[struct{}, *DenseStore[struct{}]] = (*DenseStore[struct{}])(nil)

// NewDenseStore returns an empty DenseStore accepting ids in [0, limit).
// A non-positive limit selects DefaultDenseLimit[P]().
func NewDenseStore[P any](limit int) *DenseStore[P] {
	if limit <= 0 {
		limit = DefaultDenseLimit[P]()
	}
	return &DenseStore[P]{limit: uint64(limit)}
}

// Limit returns the configured id ceiling (exclusive).
func (s *DenseStore[P]) Limit() int { return int(s.limit) }

// Admit returns ErrIdentifierOutOfPolicy when id is at or beyond the ceiling.
func (s *DenseStore[P]) Admit(id NodeID) error {
	if uint64(id) >= s.limit {
		return fmt.Errorf("id=%d limit=%d: %w", id, s.limit, ErrIdentifierOutOfPolicy)
	}
	return nil
}

// Upsert returns the entry for id, inserting ifAbsent when missing.
// The returned pointer is invalidated by any later growth of the store.
func (s *DenseStore[P]) Upsert(id NodeID, ifAbsent P) (*P, error) {
	if err := s.Admit(id); err != nil {
		return nil, err
	}
	i := int(id)
	if i >= len(s.vals) {
		s.grow(i + 1)
	}
	if !s.present[i] {
		s.vals[i] = ifAbsent
		s.present[i] = true
		s.count++
	}
	return &s.vals[i], nil
}

// grow extends the backing slices to length n.
func (s *DenseStore[P]) grow(n int) {
	extra := n - len(s.vals)
	s.vals = slices.Grow(s.vals, extra)[:n]
	s.present = slices.Grow(s.present, extra)[:n]
}

// Find returns the entry for id.
func (s *DenseStore[P]) Find(id NodeID) (*P, bool) {
	if uint64(id) >= uint64(len(s.vals)) || !s.present[id] {
		return nil, false
	}
	return &s.vals[id], true
}

// Len returns the number of present nodes.
func (s *DenseStore[P]) Len() int { return s.count }

// All yields present entries in index (== id) order.
func (s *DenseStore[P]) All() iter.Seq2[NodeID, P] {
	return func(yield func(NodeID, P) bool) {
		for i, ok := range s.present {
			if ok && !yield(NodeID(i), s.vals[i]) {
				return
			}
		}
	}
}

// Reset removes all entries; the capacity limit is kept.
func (s *DenseStore[P]) Reset() {
	s.vals = nil
	s.present = nil
	s.count = 0
}

// Clone returns a deep copy of the store.
func (s *DenseStore[P]) Clone() *DenseStore[P] {
	return &DenseStore[P]{
		vals:    slices.Clone(s.vals),
		present: slices.Clone(s.present),
		count:   s.count,
		limit:   s.limit,
	}
}
