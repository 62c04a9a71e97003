// Package cdi implements clinical documentation integrity nudges: stored
// per-encounter prompts for physicians, plus a deterministic draft-note
// analyzer that flags documentation gaps before a note is saved.
package cdi

import "time"

// Table is the nudge collection name.
const Table = "nudges"

// Nudge severities.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Nudge lifecycle states.
const (
	StatusActive    = "active"
	StatusResolved  = "resolved"
	StatusDismissed = "dismissed"
)

// Nudge is a single documentation prompt attached to an encounter.
type Nudge struct {
	ID            string    `json:"id"`
	EncounterID   string    `json:"encounter_id"`
	Severity      string    `json:"severity"`
	Prompt        string    `json:"prompt"`
	SuggestedText string    `json:"suggested_text,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func (n Nudge) Key() string { return n.ID }
