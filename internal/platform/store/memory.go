package store

import (
	"context"
	"sync"
)

// MemoryBackend keeps every table in process memory. It is the default
// backend when no DATABASE_URL is configured, and the backend used by the
// test suites. Safe for concurrent use.
type MemoryBackend struct {
	mu     sync.RWMutex
	tables map[string]*memTable
}

type memTable struct {
	byID map[string][]byte
	// order holds (seq, id) pairs in insertion order. Record data is
	// resolved through byID at read time so listings observe patches.
	order []memRow
	seq   int64
}

type memRow struct {
	seq int64
	id  string
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{tables: make(map[string]*memTable)}
}

func (b *MemoryBackend) table(name string) *memTable {
	t, ok := b.tables[name]
	if !ok {
		t = &memTable{byID: make(map[string][]byte)}
		b.tables[name] = t
	}
	return t
}

func (b *MemoryBackend) Get(_ context.Context, table, id string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.tables[table]
	if !ok {
		return nil, ErrNotFound
	}
	data, ok := t.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (b *MemoryBackend) Exists(_ context.Context, table, id string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.tables[table]
	if !ok {
		return false, nil
	}
	_, ok = t.byID[id]
	return ok, nil
}

func (b *MemoryBackend) Insert(_ context.Context, table, id string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := b.table(table)
	if _, ok := t.byID[id]; ok {
		return ErrConflict
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	t.seq++
	t.byID[id] = stored
	t.order = append(t.order, memRow{seq: t.seq, id: id})
	return nil
}

func (b *MemoryBackend) Update(_ context.Context, table, id string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.tables[table]
	if !ok {
		return ErrNotFound
	}
	if _, ok := t.byID[id]; !ok {
		return ErrNotFound
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	t.byID[id] = stored
	return nil
}

func (b *MemoryBackend) List(_ context.Context, table string, afterSeq int64, limit int) ([]Row, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.tables[table]
	if !ok {
		return nil, nil
	}
	var rows []Row
	for _, r := range t.order {
		if r.seq <= afterSeq {
			continue
		}
		data := t.byID[r.id]
		out := make([]byte, len(data))
		copy(out, data)
		rows = append(rows, Row{Seq: r.seq, Data: out})
		if len(rows) == limit {
			break
		}
	}
	return rows, nil
}
