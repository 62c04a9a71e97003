package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when an operation addresses a nonexistent id.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a create hits an already-present id.
	ErrConflict = errors.New("record already exists")
)

// Row is one entry in a table's list index: the record's position in
// insertion order plus its current serialized form.
type Row struct {
	Seq  int64
	Data []byte
}

// Backend is the physical storage medium behind a Store. Implementations
// keep one keyed table plus one ordered index per table name, and must be
// safe for concurrent use.
type Backend interface {
	// Get returns the serialized record, or ErrNotFound.
	Get(ctx context.Context, table, id string) ([]byte, error)
	// Exists reports whether the id is present.
	Exists(ctx context.Context, table, id string) (bool, error)
	// Insert stores a new record and appends it to the list index.
	// Returns ErrConflict if the id is already present.
	Insert(ctx context.Context, table, id string, data []byte) error
	// Update replaces an existing record in place; its index position is
	// unchanged. Returns ErrNotFound if the id is absent.
	Update(ctx context.Context, table, id string, data []byte) error
	// List returns up to limit rows with index positions strictly greater
	// than afterSeq, in ascending position order.
	List(ctx context.Context, table string, afterSeq int64, limit int) ([]Row, error)
}
