package cdi

import (
	"context"

	"github.com/drgsuite/drgsuite/internal/domain/audit"
	"github.com/drgsuite/drgsuite/internal/platform/store"
)

const applyActor = "user:mock_user"

// Service manages stored nudges and runs the draft-note analyzer.
type Service struct {
	nudges *store.Store[Nudge]
	trail  *audit.Trail
}

func NewService(backend store.Backend, trail *audit.Trail) *Service {
	return &Service{
		nudges: store.New[Nudge](backend, Table),
		trail:  trail,
	}
}

// List returns a page of nudges in insertion order.
func (s *Service) List(ctx context.Context, cursor string, limit int) (store.Page[Nudge], error) {
	return s.nudges.List(ctx, cursor, limit)
}

// Apply resolves a nudge and records who applied it. Applying an already
// resolved nudge is a no-op status-wise.
func (s *Service) Apply(ctx context.Context, id string) (Nudge, error) {
	nudge, err := s.nudges.Patch(ctx, id, map[string]interface{}{"status": StatusResolved})
	if err != nil {
		return Nudge{}, err
	}
	if err := s.trail.Record(ctx, applyActor, audit.ActionNudgeApplied, "nudge", id); err != nil {
		return Nudge{}, err
	}
	return nudge, nil
}

// AnalyzeDraft flags documentation gaps in a draft note.
func (s *Service) AnalyzeDraft(_ context.Context, note string) AnalyzeResult {
	return Analyze(note)
}

// EnsureSeed loads the demo nudges once per service lifetime.
func (s *Service) EnsureSeed(ctx context.Context) error {
	return s.nudges.EnsureSeed(ctx, SeedNudges())
}
