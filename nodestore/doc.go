// Package nodestore provides the pluggable node storage used by pose graphs.
//
// A Store maps a NodeID to a payload. Two interchangeable backends share the
// same contract:
//
//   - MapStore   – hash map plus a lazily sorted key index; ids may be sparse.
//   - DenseStore – slice indexed directly by id; ids are expected to be
//     contiguous from zero and are bounded by a capacity ceiling.
//
// Both backends iterate in ascending identifier order.
//
// Thread safety:
//
//   - Stores perform no locking. Concurrent reads are safe only while no
//     goroutine mutates the store (Upsert, Reset).
//
// Errors:
//
//	ErrIdentifierOutOfPolicy – DenseStore asked to cover an id at or beyond its ceiling.
package nodestore
