// Package billing holds claims and payer payments, including the demo
// batch reconciliation job.
package billing

import "time"

const (
	ClaimTable   = "claims"
	PaymentTable = "payments"
)

// Claim lifecycle states. FC_3 is the payer's final "fully adjudicated,
// approved" disposition code.
const (
	ClaimDraft       = "DRAFT"
	ClaimSent        = "SENT"
	ClaimApproved    = "FC_3"
	ClaimRejected    = "REJECTED"
	ClaimNeedsReview = "NEEDS_REVIEW"
)

// Claim is one billed encounter.
type Claim struct {
	ID          string     `json:"id"`
	EncounterID string     `json:"encounter_id"`
	ClaimNumber string     `json:"claim_number"`
	Status      string     `json:"status"`
	SubmittedAt *time.Time `json:"submitted_at"`
	Amount      float64    `json:"amount"`
}

func (c Claim) Key() string { return c.ID }

// Payment is a remittance received against a claim.
type Payment struct {
	ID         string    `json:"id"`
	ClaimID    string    `json:"claim_id"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Reconciled bool      `json:"reconciled"`
	ReceivedAt time.Time `json:"received_at"`
}

func (p Payment) Key() string { return p.ID }
