// Package store implements the keyed entity storage used by every record type
// in the system: get/create/patch by id, idempotent seed bootstrapping, and
// cursor-based listing in insertion order. A Store is a thin typed layer over
// a Backend, which owns the physical medium (in-memory or PostgreSQL).
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

const (
	// DefaultLimit is used when a caller passes a non-positive page size.
	DefaultLimit = 10
	// MaxLimit caps the page size for any list call.
	MaxLimit = 100
)

// Record is the constraint for anything a Store can hold. Key returns the
// record's unique id within its type.
type Record interface {
	Key() string
}

// Page is one page of a cursor-based listing. Next is nil once the end of the
// index has been reached.
type Page[T any] struct {
	Items []T     `json:"items"`
	Next  *string `json:"next"`
}

// Store provides typed keyed storage for one record type. All writes for a
// given store are serialized so a patch always applies to the latest
// committed state.
type Store[T Record] struct {
	backend Backend
	table   string

	mu     sync.Mutex
	seeded bool
}

// New creates a store for one record type backed by the given Backend.
// The table name must be unique per record type.
func New[T Record](backend Backend, table string) *Store[T] {
	return &Store[T]{backend: backend, table: table}
}

// Table returns the store's table name.
func (s *Store[T]) Table() string { return s.table }

// Get returns the record with the given id, or ErrNotFound.
func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	var rec T
	data, err := s.backend.Get(ctx, s.table, id)
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("decode %s/%s: %w", s.table, id, err)
	}
	return rec, nil
}

// Exists reports whether a record with the given id is present.
func (s *Store[T]) Exists(ctx context.Context, id string) (bool, error) {
	return s.backend.Exists(ctx, s.table, id)
}

// Create stores a new record and registers it in the list index.
// It fails with ErrConflict if the id is already present.
func (s *Store[T]) Create(ctx context.Context, rec T) (T, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return rec, fmt.Errorf("encode %s/%s: %w", s.table, rec.Key(), err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.Insert(ctx, s.table, rec.Key(), data); err != nil {
		return rec, err
	}
	return rec, nil
}

// Patch shallow-merges fields into the stored record and persists the result.
// Scalar fields are overwritten; array and object fields are replaced
// wholesale. Fails with ErrNotFound if the id is absent. The read-merge-write
// is atomic with respect to other writers of the same store.
func (s *Store[T]) Patch(ctx context.Context, id string, fields map[string]interface{}) (T, error) {
	var rec T
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.backend.Get(ctx, s.table, id)
	if err != nil {
		return rec, err
	}
	merged := map[string]interface{}{}
	if err := json.Unmarshal(data, &merged); err != nil {
		return rec, fmt.Errorf("decode %s/%s: %w", s.table, id, err)
	}
	for k, v := range fields {
		merged[k] = v
	}
	out, err := json.Marshal(merged)
	if err != nil {
		return rec, fmt.Errorf("encode %s/%s: %w", s.table, id, err)
	}
	if err := json.Unmarshal(out, &rec); err != nil {
		return rec, fmt.Errorf("merge %s/%s: %w", s.table, id, err)
	}
	if err := s.backend.Update(ctx, s.table, id, out); err != nil {
		return rec, err
	}
	return rec, nil
}

// EnsureSeed writes every seed record whose id is not already present, then
// marks the store as seeded. Subsequent calls are no-ops. Safe under
// concurrent first calls: at most one full seed pass runs its writes.
func (s *Store[T]) EnsureSeed(ctx context.Context, seed []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seeded {
		return nil
	}
	for _, rec := range seed {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode seed %s/%s: %w", s.table, rec.Key(), err)
		}
		if err := s.backend.Insert(ctx, s.table, rec.Key(), data); err != nil {
			if err == ErrConflict {
				continue
			}
			return err
		}
	}
	s.seeded = true
	return nil
}

// List returns up to limit records in insertion order, starting immediately
// after the position encoded in cursor. An empty cursor starts at the
// beginning. The returned Next cursor resumes after the last item; it is nil
// once the end has been reached.
func (s *Store[T]) List(ctx context.Context, cursor string, limit int) (Page[T], error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	var after int64
	if cursor != "" {
		c, err := DecodeCursor(cursor)
		if err != nil {
			return Page[T]{}, err
		}
		after = c.Seq
	}

	rows, err := s.backend.List(ctx, s.table, after, limit+1)
	if err != nil {
		return Page[T]{}, err
	}

	page := Page[T]{Items: make([]T, 0, len(rows))}
	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}
	for _, row := range rows {
		var rec T
		if err := json.Unmarshal(row.Data, &rec); err != nil {
			return Page[T]{}, fmt.Errorf("decode %s: %w", s.table, err)
		}
		page.Items = append(page.Items, rec)
	}
	if hasMore {
		last := rows[len(rows)-1]
		next := EncodeCursor(last.Seq, page.Items[len(page.Items)-1].Key())
		page.Next = &next
	}
	return page, nil
}
