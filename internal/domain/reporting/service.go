// Package reporting computes the dashboard analytics summary from coding
// accuracy datapoints and claim outcomes.
package reporting

import (
	"context"
	"math"

	"github.com/drgsuite/drgsuite/internal/domain/audit"
	"github.com/drgsuite/drgsuite/internal/domain/billing"
	"github.com/drgsuite/drgsuite/internal/domain/coding"
	"github.com/drgsuite/drgsuite/internal/platform/store"
)

const systemActor = "system"

// ClaimStats aggregates claim dispositions for the dashboard.
type ClaimStats struct {
	Approved    int     `json:"approved"`
	Rejected    int     `json:"rejected"`
	TotalAmount float64 `json:"totalAmount"`
}

// Summary is the dashboard analytics payload.
type Summary struct {
	Accuracy   int        `json:"accuracy"`
	ClaimStats ClaimStats `json:"claimStats"`
}

// Service reads the analytics and claims collections to build summaries.
type Service struct {
	analytics *store.Store[coding.Analytics]
	claims    *store.Store[billing.Claim]
	trail     *audit.Trail
}

func NewService(backend store.Backend, trail *audit.Trail) *Service {
	return &Service{
		analytics: store.New[coding.Analytics](backend, coding.AnalyticsTable),
		claims:    store.New[billing.Claim](backend, billing.ClaimTable),
		trail:     trail,
	}
}

// Summarize walks both collections in full and returns the aggregate
// dashboard numbers. Each query is recorded in the audit trail.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	var (
		accuracySum int
		accuracyN   int
	)
	if err := forEachPage(ctx, s.analytics, func(a coding.Analytics) {
		accuracySum += a.Accuracy
		accuracyN++
	}); err != nil {
		return Summary{}, err
	}

	var stats ClaimStats
	if err := forEachPage(ctx, s.claims, func(c billing.Claim) {
		switch c.Status {
		case billing.ClaimApproved:
			stats.Approved++
		case billing.ClaimRejected:
			stats.Rejected++
		}
		stats.TotalAmount += c.Amount
	}); err != nil {
		return Summary{}, err
	}

	accuracy := 0
	if accuracyN > 0 {
		accuracy = int(math.Round(float64(accuracySum) / float64(accuracyN)))
	}

	if err := s.trail.Record(ctx, systemActor, audit.ActionAnalyticsQueried, "system", "dashboard"); err != nil {
		return Summary{}, err
	}

	return Summary{Accuracy: accuracy, ClaimStats: stats}, nil
}

func forEachPage[T store.Record](ctx context.Context, st *store.Store[T], fn func(T)) error {
	cursor := ""
	for {
		page, err := st.List(ctx, cursor, store.MaxLimit)
		if err != nil {
			return err
		}
		for _, item := range page.Items {
			fn(item)
		}
		if page.Next == nil {
			return nil
		}
		cursor = *page.Next
	}
}
