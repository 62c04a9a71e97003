package coding

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/drgsuite/drgsuite/internal/domain/audit"
	"github.com/drgsuite/drgsuite/internal/platform/nphies"
	"github.com/drgsuite/drgsuite/internal/platform/store"
)

// EncounterFallbackID is used when no encounter exists to attach a job to.
// Referential integrity is advisory, so the sentinel keeps ingestion alive
// on an empty encounter store.
const EncounterFallbackID = "e_mock_fallback"

const (
	systemActor   = "system"
	reviewerActor = "user:coder@hospital.sa"
)

var (
	// ErrInvalidNote is returned for empty or whitespace-only notes.
	ErrInvalidNote = errors.New("clinical_note is required")
	// ErrIngestFailed is the generic failure surfaced when ingestion breaks
	// after validation. The original cause is logged, not exposed.
	ErrIngestFailed = errors.New("failed to ingest note")
)

// Classifier maps a note and flags to a coding result.
type Classifier interface {
	Classify(ctx context.Context, note string, opts Options) (Result, error)
}

// EncounterSource resolves the encounter a new job attaches to.
type EncounterSource interface {
	FirstEncounterID(ctx context.Context) (string, bool, error)
}

// Service orchestrates note ingestion and coding job transitions.
type Service struct {
	jobs       *store.Store[Job]
	analytics  *store.Store[Analytics]
	encounters EncounterSource
	trail      *audit.Trail
	engine     Classifier
	connector  nphies.Connector
	logger     zerolog.Logger
}

func NewService(backend store.Backend, encounters EncounterSource, trail *audit.Trail, engine Classifier, connector nphies.Connector, logger zerolog.Logger) *Service {
	return &Service{
		jobs:       store.New[Job](backend, JobTable),
		analytics:  store.New[Analytics](backend, AnalyticsTable),
		encounters: encounters,
		trail:      trail,
		engine:     engine,
		connector:  connector,
		logger:     logger.With().Str("component", "coding").Logger(),
	}
}

// IngestNote runs the full pipeline for one clinical note: classify,
// persist the coding job, emit its analytics datapoint, and write the audit
// entries. The three writes are not transactional; a failure partway leaves
// earlier writes committed.
func (s *Service) IngestNote(ctx context.Context, note string, opts Options) (Job, error) {
	jobID := uuid.NewString()

	if strings.TrimSpace(note) == "" {
		s.trail.RecordBestEffort(ctx, systemActor, audit.ActionIngestionFailed, "coding_job", jobID)
		return Job{}, ErrInvalidNote
	}

	result, err := s.engine.Classify(ctx, note, opts)
	if err != nil {
		if errors.Is(err, ErrEmptyNote) {
			s.trail.RecordBestEffort(ctx, systemActor, audit.ActionIngestionFailed, "coding_job", jobID)
			return Job{}, ErrInvalidNote
		}
		return Job{}, s.failIngest(ctx, jobID, err)
	}

	encounterID, ok, err := s.encounters.FirstEncounterID(ctx)
	if err != nil {
		return Job{}, s.failIngest(ctx, jobID, err)
	}
	if !ok {
		encounterID = EncounterFallbackID
	}

	now := time.Now().UTC()
	job := Job{
		ID:              jobID,
		EncounterID:     encounterID,
		SuggestedCodes:  result.Codes,
		Status:          result.Status,
		ConfidenceScore: result.ConfidenceScore,
		Phase:           result.Phase,
		CreatedAt:       now,
		SourceText:      note,
	}
	if _, err := s.jobs.Create(ctx, job); err != nil {
		return Job{}, s.failIngest(ctx, jobID, err)
	}

	datapoint := Analytics{
		ID:        uuid.NewString(),
		JobID:     job.ID,
		Accuracy:  int(math.Round(job.ConfidenceScore * 100)),
		Phase:     job.Phase,
		CreatedAt: now,
	}
	if _, err := s.analytics.Create(ctx, datapoint); err != nil {
		return Job{}, s.failIngest(ctx, jobID, err)
	}

	action := audit.ActionNoteIngested
	if opts.UseExternalNLP {
		action = audit.ActionNoteIngestedNLP
	}
	if err := s.trail.Record(ctx, systemActor, action, "coding_job", job.ID); err != nil {
		return Job{}, s.failIngest(ctx, jobID, err)
	}

	if job.Status == StatusSentToNphies {
		s.submitClaim(ctx, job)
		s.trail.RecordBestEffort(ctx, systemActor, audit.ActionClaimSubmitted, "coding_job", job.ID)
	}

	return job, nil
}

// submitClaim forwards an autonomous job to the claims platform.
// Best effort: submission problems are logged, never surfaced.
func (s *Service) submitClaim(ctx context.Context, job Job) {
	codes := make([]nphies.SubmittedCode, len(job.SuggestedCodes))
	for i, c := range job.SuggestedCodes {
		codes[i] = nphies.SubmittedCode{Code: c.Code, Desc: c.Desc, Confidence: c.Confidence}
	}
	result, err := s.connector.SubmitClaim(ctx, nphies.ClaimSubmission{
		ClaimNumber: job.ID,
		EncounterID: job.EncounterID,
		Codes:       codes,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("job_id", job.ID).Msg("nphies submission failed")
		return
	}
	s.logger.Info().Str("job_id", job.ID).Str("nphies_claim_id", result.NphiesClaimID).Msg("claim submitted")
}

func (s *Service) failIngest(ctx context.Context, jobID string, cause error) error {
	s.logger.Error().Err(cause).Str("job_id", jobID).Msg("ingest failed")
	s.trail.RecordBestEffort(ctx, systemActor, audit.ActionIngestionFailed, "coding_job", jobID)
	return ErrIngestFailed
}

// Accept marks a job's suggestions as accepted by a coder. The status moves
// to AUTO_DROP regardless of its prior value, so repeated calls are no-ops
// status-wise.
func (s *Service) Accept(ctx context.Context, id string) (Job, error) {
	job, err := s.jobs.Patch(ctx, id, map[string]interface{}{"status": StatusAutoDrop})
	if err != nil {
		return Job{}, err
	}
	if err := s.trail.Record(ctx, reviewerActor, audit.ActionCodingJobAccepted, "coding_job", id); err != nil {
		return Job{}, err
	}
	return job, nil
}

func (s *Service) GetJob(ctx context.Context, id string) (Job, error) {
	return s.jobs.Get(ctx, id)
}

func (s *Service) ListJobs(ctx context.Context, cursor string, limit int) (store.Page[Job], error) {
	return s.jobs.List(ctx, cursor, limit)
}

// ListAnalytics returns the accuracy datapoints in insertion order.
func (s *Service) ListAnalytics(ctx context.Context, cursor string, limit int) (store.Page[Analytics], error) {
	return s.analytics.List(ctx, cursor, limit)
}

// EnsureSeed loads the demo coding jobs and analytics once per service
// lifetime.
func (s *Service) EnsureSeed(ctx context.Context) error {
	if err := s.jobs.EnsureSeed(ctx, SeedJobs()); err != nil {
		return err
	}
	return s.analytics.EnsureSeed(ctx, SeedAnalytics())
}
