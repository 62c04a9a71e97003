package identity

import (
	"context"

	"github.com/drgsuite/drgsuite/internal/platform/store"
)

// Service exposes patient and encounter reads over their entity stores.
type Service struct {
	patients   *store.Store[Patient]
	encounters *store.Store[Encounter]
}

func NewService(backend store.Backend) *Service {
	return &Service{
		patients:   store.New[Patient](backend, PatientTable),
		encounters: store.New[Encounter](backend, EncounterTable),
	}
}

func (s *Service) GetPatient(ctx context.Context, id string) (Patient, error) {
	return s.patients.Get(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, cursor string, limit int) (store.Page[Patient], error) {
	return s.patients.List(ctx, cursor, limit)
}

func (s *Service) GetEncounter(ctx context.Context, id string) (Encounter, error) {
	return s.encounters.Get(ctx, id)
}

func (s *Service) ListEncounters(ctx context.Context, cursor string, limit int) (store.Page[Encounter], error) {
	return s.encounters.List(ctx, cursor, limit)
}

// FirstEncounterID returns the id of the first encounter in list order.
// The second return is false when no encounters exist.
func (s *Service) FirstEncounterID(ctx context.Context) (string, bool, error) {
	page, err := s.encounters.List(ctx, "", 1)
	if err != nil {
		return "", false, err
	}
	if len(page.Items) == 0 {
		return "", false, nil
	}
	return page.Items[0].ID, true, nil
}

// EnsureSeed loads the demo patients and encounters once per service
// lifetime.
func (s *Service) EnsureSeed(ctx context.Context) error {
	if err := s.patients.EnsureSeed(ctx, SeedPatients()); err != nil {
		return err
	}
	return s.encounters.EnsureSeed(ctx, SeedEncounters())
}
