package audit

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/drgsuite/drgsuite/internal/platform/store"
)

func newTestTrail() *Trail {
	return NewTrail(store.NewMemoryBackend(), zerolog.Nop())
}

func TestRecord(t *testing.T) {
	trail := newTestTrail()
	ctx := context.Background()

	if err := trail.Record(ctx, "system", ActionNoteIngested, "coding_job", "job1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page, err := trail.List(ctx, "", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(page.Items))
	}
	entry := page.Items[0]
	if entry.ID == "" {
		t.Error("expected generated id")
	}
	if entry.Action != ActionNoteIngested || entry.ObjectID != "job1" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.OccurredAt.IsZero() {
		t.Error("expected occurred_at to be set")
	}
}

func TestRecord_InsertionOrder(t *testing.T) {
	trail := newTestTrail()
	ctx := context.Background()

	actions := []string{"first", "second", "third"}
	for _, a := range actions {
		trail.Record(ctx, "system", a, "thing", "t1")
	}

	page, _ := trail.List(ctx, "", 10)
	for i, a := range actions {
		if page.Items[i].Action != a {
			t.Errorf("position %d: expected %s, got %s", i, a, page.Items[i].Action)
		}
	}
}

func TestEnsureSeed(t *testing.T) {
	trail := newTestTrail()
	ctx := context.Background()

	if err := trail.EnsureSeed(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := trail.EnsureSeed(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page, _ := trail.List(ctx, "", 100)
	if len(page.Items) != 5 {
		t.Errorf("expected 5 seed entries, got %d", len(page.Items))
	}
}
