// Package services holds the write-side gateway of the tree: guarded
// add/update of primary records, the family back-reference maintenance
// that keeps parent and child handle lists consistent, payload
// normalization, and transaction audit records.
package services

import "errors"

var (
	// ErrReadOnly rejects any mutation attempt against a read-only store.
	ErrReadOnly = errors.New("store is read-only")

	// ErrNotWritable signals a store that lacks the write surface.
	ErrNotWritable = errors.New("store does not support writing")

	// ErrHandleExists signals a strict add colliding on handle.
	ErrHandleExists = errors.New("handle already exists")

	// ErrGrampsIDExists signals a strict add colliding on Gramps ID.
	ErrGrampsIDExists = errors.New("gramps id already exists")

	// ErrUpdateNewObject signals an update of a handle the store has never
	// seen; updates never create.
	ErrUpdateNewObject = errors.New("cannot be used for new objects")
)
