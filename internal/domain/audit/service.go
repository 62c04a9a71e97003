package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/drgsuite/drgsuite/internal/platform/store"
)

// Trail records and lists audit entries.
type Trail struct {
	store  *store.Store[Entry]
	logger zerolog.Logger
}

// NewTrail creates the audit trail over the given backend.
func NewTrail(backend store.Backend, logger zerolog.Logger) *Trail {
	return &Trail{
		store:  store.New[Entry](backend, Table),
		logger: logger.With().Str("component", "audit").Logger(),
	}
}

// Record appends one audit entry.
func (t *Trail) Record(ctx context.Context, actor, action, objectType, objectID string) error {
	entry := Entry{
		ID:         uuid.NewString(),
		Actor:      actor,
		Action:     action,
		ObjectType: objectType,
		ObjectID:   objectID,
		OccurredAt: time.Now().UTC(),
	}
	_, err := t.store.Create(ctx, entry)
	return err
}

// RecordBestEffort appends an entry and only logs the failure if the write
// fails. Used on error paths where an audit failure must never mask the
// original error.
func (t *Trail) RecordBestEffort(ctx context.Context, actor, action, objectType, objectID string) {
	if err := t.Record(ctx, actor, action, objectType, objectID); err != nil {
		t.logger.Error().Err(err).
			Str("action", action).
			Str("object_id", objectID).
			Msg("audit write failed")
	}
}

// List returns a page of audit entries in insertion order.
func (t *Trail) List(ctx context.Context, cursor string, limit int) (store.Page[Entry], error) {
	return t.store.List(ctx, cursor, limit)
}

// EnsureSeed loads the demo audit trail once per trail lifetime.
func (t *Trail) EnsureSeed(ctx context.Context) error {
	return t.store.EnsureSeed(ctx, SeedEntries())
}
