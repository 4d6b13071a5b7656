package nodestore

import (
	"errors"
	"iter"
)

// ErrIdentifierOutOfPolicy indicates that a DenseStore was asked to service an
// identifier that would require growth beyond its configured capacity ceiling.
var ErrIdentifierOutOfPolicy = errors.New("nodestore: identifier out of policy")

// NodeID identifies a node within a graph.
type NodeID uint64

// Store is the contract shared by all node-storage backends.
//
// Pointers returned by Upsert and Find stay valid only until the next
// mutation of the store.
type Store[P any] interface {
	// Upsert returns the entry for id, inserting ifAbsent first when missing.
	Upsert(id NodeID, ifAbsent P) (*P, error)

	// Find returns the entry for id without mutating the store.
	Find(id NodeID) (*P, bool)

	// Admit reports whether id may be stored, without mutating the store.
	Admit(id NodeID) error

	// Len returns the number of stored entries.
	Len() int

	// All yields (id, payload) pairs in ascending id order.
	All() iter.Seq2[NodeID, P]

	// Reset drops every entry but keeps the backend configuration.
	Reset()
}

// Backend is a Store that can deep-copy itself into its own concrete type.
// Graphs are parameterised over Backend so cloning stays statically typed.
type Backend[P any, S any] interface {
	Store[P]

	// Clone returns an independent deep copy.
	Clone() S
}
