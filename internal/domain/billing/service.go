package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/drgsuite/drgsuite/internal/domain/audit"
	"github.com/drgsuite/drgsuite/internal/platform/store"
)

const systemActor = "system"

// reconcileBatchSize caps how many payments a single batch run marks
// reconciled.
const reconcileBatchSize = 2

// ReconcileResult is the outcome of one batch reconciliation run.
type ReconcileResult struct {
	Status          string `json:"status"`
	ReconciledCount int    `json:"reconciled_count"`
}

// Service manages claims and payments.
type Service struct {
	claims   *store.Store[Claim]
	payments *store.Store[Payment]
	trail    *audit.Trail
	logger   zerolog.Logger
}

func NewService(backend store.Backend, trail *audit.Trail, logger zerolog.Logger) *Service {
	return &Service{
		claims:   store.New[Claim](backend, ClaimTable),
		payments: store.New[Payment](backend, PaymentTable),
		trail:    trail,
		logger:   logger.With().Str("component", "billing").Logger(),
	}
}

// ListClaims returns a page of claims, optionally narrowed to one status.
// When filtering it over-fetches by a factor of two, filters, then truncates
// to limit; the returned cursor still tracks the unfiltered scan position,
// so filtered pages may run short without being exhausted.
func (s *Service) ListClaims(ctx context.Context, cursor string, limit int, status string) (store.Page[Claim], error) {
	fetch := limit
	if status != "" && status != "all" {
		fetch = limit * 2
		if fetch > store.MaxLimit {
			fetch = store.MaxLimit
		}
	}
	page, err := s.claims.List(ctx, cursor, fetch)
	if err != nil {
		return store.Page[Claim]{}, err
	}
	if status == "" || status == "all" {
		return page, nil
	}
	filtered := make([]Claim, 0, len(page.Items))
	for _, c := range page.Items {
		if c.Status == status {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return store.Page[Claim]{Items: filtered, Next: page.Next}, nil
}

func (s *Service) GetClaim(ctx context.Context, id string) (Claim, error) {
	return s.claims.Get(ctx, id)
}

// ListPayments returns a page of payments in insertion order.
func (s *Service) ListPayments(ctx context.Context, cursor string, limit int) (store.Page[Payment], error) {
	return s.payments.List(ctx, cursor, limit)
}

// ReconcileBatch marks up to reconcileBatchSize unreconciled payments as
// reconciled, scanning the full payment set in insertion order, and records
// the run in the audit trail.
func (s *Service) ReconcileBatch(ctx context.Context) (ReconcileResult, error) {
	var unreconciled []Payment
	cursor := ""
	for {
		page, err := s.payments.List(ctx, cursor, store.MaxLimit)
		if err != nil {
			return ReconcileResult{}, err
		}
		for _, p := range page.Items {
			if !p.Reconciled {
				unreconciled = append(unreconciled, p)
			}
		}
		if page.Next == nil {
			break
		}
		cursor = *page.Next
	}

	count := 0
	for _, p := range unreconciled {
		if count == reconcileBatchSize {
			break
		}
		if _, err := s.payments.Patch(ctx, p.ID, map[string]interface{}{"reconciled": true}); err != nil {
			return ReconcileResult{}, err
		}
		count++
	}

	jobID := fmt.Sprintf("job_%d", time.Now().UnixMilli())
	if err := s.trail.Record(ctx, systemActor, audit.ActionBatchReconciled, "system_job", jobID); err != nil {
		return ReconcileResult{}, err
	}
	s.logger.Info().Int("reconciled", count).Str("job_id", jobID).Msg("batch reconciliation completed")
	return ReconcileResult{Status: "completed", ReconciledCount: count}, nil
}

// EnsureSeed loads the demo claims and payments once per service lifetime.
func (s *Service) EnsureSeed(ctx context.Context) error {
	if err := s.claims.EnsureSeed(ctx, SeedClaims()); err != nil {
		return err
	}
	return s.payments.EnsureSeed(ctx, SeedPayments())
}
