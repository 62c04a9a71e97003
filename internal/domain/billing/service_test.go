package billing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/drgsuite/drgsuite/internal/domain/audit"
	"github.com/drgsuite/drgsuite/internal/platform/store"
)

func newTestService(t *testing.T) (*Service, *audit.Trail) {
	t.Helper()
	backend := store.NewMemoryBackend()
	trail := audit.NewTrail(backend, zerolog.Nop())
	return NewService(backend, trail, zerolog.Nop()), trail
}

func TestListClaimsUnfiltered(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if err := svc.EnsureSeed(ctx); err != nil {
		t.Fatalf("EnsureSeed: %v", err)
	}

	page, err := svc.ListClaims(ctx, "", 4, "")
	if err != nil {
		t.Fatalf("ListClaims: %v", err)
	}
	if len(page.Items) != 4 {
		t.Fatalf("got %d claims, want 4", len(page.Items))
	}
	if page.Items[0].ID != "cl1" {
		t.Errorf("first claim = %s, want cl1", page.Items[0].ID)
	}
	if page.Next == nil {
		t.Fatal("expected next cursor")
	}

	// "all" behaves as no filter.
	all, err := svc.ListClaims(ctx, "", 100, "all")
	if err != nil {
		t.Fatalf("ListClaims all: %v", err)
	}
	if len(all.Items) != 10 {
		t.Errorf("got %d claims, want 10", len(all.Items))
	}
}

func TestListClaimsStatusFilter(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if err := svc.EnsureSeed(ctx); err != nil {
		t.Fatalf("EnsureSeed: %v", err)
	}

	page, err := svc.ListClaims(ctx, "", 10, ClaimDraft)
	if err != nil {
		t.Fatalf("ListClaims: %v", err)
	}
	if len(page.Items) != 3 {
		t.Fatalf("got %d DRAFT claims, want 3: %+v", len(page.Items), page.Items)
	}
	for _, c := range page.Items {
		if c.Status != ClaimDraft {
			t.Errorf("claim %s has status %s", c.ID, c.Status)
		}
	}

	// A small page over-fetches double; 4 claims scanned, one is approved.
	small, err := svc.ListClaims(ctx, "", 2, ClaimApproved)
	if err != nil {
		t.Fatalf("ListClaims: %v", err)
	}
	if len(small.Items) != 1 || small.Items[0].ID != "cl1" {
		t.Errorf("got %+v, want single cl1", small.Items)
	}
	if small.Next == nil {
		t.Error("expected cursor to continue the unfiltered scan")
	}
}

func TestListClaimsFilterTruncatesToLimit(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 1; i <= 6; i++ {
		_, err := svc.claims.Create(ctx, Claim{
			ID:          fmt.Sprintf("c%d", i),
			EncounterID: "e1",
			ClaimNumber: fmt.Sprintf("CLM-2025-%03d", i),
			Status:      ClaimDraft,
			Amount:      100,
		})
		if err != nil {
			t.Fatalf("create claim %d: %v", i, err)
		}
	}

	// Every claim in the doubled fetch window matches; the page must still
	// hold at most limit items.
	page, err := svc.ListClaims(ctx, "", 2, ClaimDraft)
	if err != nil {
		t.Fatalf("ListClaims: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("got %d claims, want 2: %+v", len(page.Items), page.Items)
	}
	if page.Items[0].ID != "c1" || page.Items[1].ID != "c2" {
		t.Errorf("got %s, %s; want c1, c2", page.Items[0].ID, page.Items[1].ID)
	}
	if page.Next == nil {
		t.Error("expected next cursor over the unfiltered scan")
	}
}

func TestReconcileBatchCapsAtTwo(t *testing.T) {
	svc, trail := newTestService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	for i := 1; i <= 5; i++ {
		_, err := svc.payments.Create(ctx, Payment{
			ID:         fmt.Sprintf("p%d", i),
			ClaimID:    fmt.Sprintf("cl%d", i),
			Amount:     100,
			Currency:   "SAR",
			ReceivedAt: now,
		})
		if err != nil {
			t.Fatalf("create payment %d: %v", i, err)
		}
	}

	result, err := svc.ReconcileBatch(ctx)
	if err != nil {
		t.Fatalf("ReconcileBatch: %v", err)
	}
	if result.Status != "completed" || result.ReconciledCount != 2 {
		t.Fatalf("result = %+v, want completed/2", result)
	}

	page, err := svc.ListPayments(ctx, "", 100)
	if err != nil {
		t.Fatalf("ListPayments: %v", err)
	}
	reconciled := 0
	for _, p := range page.Items {
		if p.Reconciled {
			reconciled++
		}
	}
	if reconciled != 2 {
		t.Errorf("%d payments reconciled, want 2", reconciled)
	}
	// Earliest unreconciled payments go first.
	if !page.Items[0].Reconciled || !page.Items[1].Reconciled {
		t.Errorf("expected p1 and p2 reconciled: %+v", page.Items[:2])
	}

	entries, err := trail.List(ctx, "", 100)
	if err != nil {
		t.Fatalf("list audit: %v", err)
	}
	if len(entries.Items) != 1 || entries.Items[0].Action != audit.ActionBatchReconciled {
		t.Fatalf("audit entries = %+v, want one %s", entries.Items, audit.ActionBatchReconciled)
	}
	if entries.Items[0].ObjectType != "system_job" {
		t.Errorf("object type = %q, want system_job", entries.Items[0].ObjectType)
	}
}

func TestReconcileBatchNothingToDo(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	result, err := svc.ReconcileBatch(ctx)
	if err != nil {
		t.Fatalf("ReconcileBatch: %v", err)
	}
	if result.ReconciledCount != 0 {
		t.Errorf("count = %d, want 0", result.ReconciledCount)
	}
}

func TestReconcileBatchSeedData(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if err := svc.EnsureSeed(ctx); err != nil {
		t.Fatalf("EnsureSeed: %v", err)
	}

	// Seed has 2 unreconciled payments (pay3, pay4); one run clears both.
	result, err := svc.ReconcileBatch(ctx)
	if err != nil {
		t.Fatalf("ReconcileBatch: %v", err)
	}
	if result.ReconciledCount != 2 {
		t.Fatalf("count = %d, want 2", result.ReconciledCount)
	}
	again, err := svc.ReconcileBatch(ctx)
	if err != nil {
		t.Fatalf("second ReconcileBatch: %v", err)
	}
	if again.ReconciledCount != 0 {
		t.Errorf("second run count = %d, want 0", again.ReconciledCount)
	}
}

func TestSeedSubmittedAtNullable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if err := svc.EnsureSeed(ctx); err != nil {
		t.Fatalf("EnsureSeed: %v", err)
	}

	draft, err := svc.GetClaim(ctx, "cl5")
	if err != nil {
		t.Fatalf("GetClaim: %v", err)
	}
	if draft.SubmittedAt != nil {
		t.Errorf("draft claim has submitted_at %v, want nil", draft.SubmittedAt)
	}
	sent, err := svc.GetClaim(ctx, "cl2")
	if err != nil {
		t.Fatalf("GetClaim: %v", err)
	}
	if sent.SubmittedAt == nil {
		t.Error("sent claim missing submitted_at")
	}
}
