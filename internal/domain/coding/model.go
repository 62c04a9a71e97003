// Package coding implements the clinical coding pipeline: a rule-based
// classification engine that turns free-text notes into coded suggestions,
// and the ingestion orchestrator that persists the resulting coding jobs.
package coding

import "time"

// Store table names.
const (
	JobTable       = "coding_jobs"
	AnalyticsTable = "analytics_jobs"
)

// Coding job statuses.
const (
	StatusNeedsReview  = "NEEDS_REVIEW"
	StatusAutoDrop     = "AUTO_DROP"
	StatusSentToNphies = "SENT_TO_NPHIES"
	StatusRejected     = "REJECTED"
)

// Autonomy phases. CAC jobs go to a human coder, semi-autonomous jobs are
// auto-dropped pending spot checks, autonomous jobs are submitted directly.
const (
	PhaseCAC            = "CAC"
	PhaseSemiAutonomous = "SEMI_AUTONOMOUS"
	PhaseAutonomous     = "AUTONOMOUS"
)

// SuggestedCode is one coded diagnosis proposed for a note.
type SuggestedCode struct {
	Code       string  `json:"code"`
	Desc       string  `json:"desc"`
	Confidence float64 `json:"confidence"`
}

// Job is the unit of work produced by ingesting one clinical note.
// SuggestedCodes preserves match order and holds no duplicate codes;
// ConfidenceScore is the mean of their confidences rounded to 2 decimals.
type Job struct {
	ID              string          `json:"id"`
	EncounterID     string          `json:"encounter_id"`
	SuggestedCodes  []SuggestedCode `json:"suggested_codes"`
	Status          string          `json:"status"`
	ConfidenceScore float64         `json:"confidence_score"`
	Phase           string          `json:"phase"`
	CreatedAt       time.Time       `json:"created_at"`
	SourceText      string          `json:"source_text,omitempty"`
}

func (j Job) Key() string { return j.ID }

// Analytics is the accuracy datapoint emitted alongside each coding job.
// Accuracy is the job's confidence score as an integer percentage.
type Analytics struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	Accuracy  int       `json:"accuracy"`
	Phase     string    `json:"phase"`
	CreatedAt time.Time `json:"created_at"`
}

func (a Analytics) Key() string { return a.ID }
