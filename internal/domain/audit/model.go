// Package audit implements the append-only audit trail. Entries are written
// once and never mutated or deleted; listing follows insertion order.
package audit

import "time"

// Table is the audit trail's entity store table name.
const Table = "audit_logs"

// Entry is one audit trail record.
type Entry struct {
	ID         string    `json:"id"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	ObjectType string    `json:"object_type"`
	ObjectID   string    `json:"object_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Key returns the entry id.
func (e Entry) Key() string { return e.ID }

// Action tags written by the core pipelines.
const (
	ActionNoteIngested      = "note.ingested.keyword_fallback"
	ActionNoteIngestedNLP   = "note.ingested.nlp_integrated"
	ActionIngestionFailed   = "note.ingestion_failed"
	ActionClaimSubmitted    = "claim.submitted_to_nphies"
	ActionCodingJobAccepted = "coding_job.accepted"
	ActionNudgeApplied      = "nudge.applied"
	ActionBatchReconciled   = "payment.batch_reconciled"
	ActionAnalyticsQueried  = "analytics.queried"
)
