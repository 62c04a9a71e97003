// Package nphies talks to the Saudi national claims platform. The real
// client handles OAuth 2.0 client-credentials authentication with token
// caching; the mock connector stands in for demo and test environments.
package nphies

import (
	"context"
	"fmt"
)

// ClaimSubmission is the minimal claim payload sent on submission.
type ClaimSubmission struct {
	ClaimNumber string            `json:"claimNumber"`
	EncounterID string            `json:"encounterId"`
	Codes       []SubmittedCode   `json:"codes"`
	Meta        map[string]string `json:"meta,omitempty"`
}

// SubmittedCode is one coded diagnosis on a submission.
type SubmittedCode struct {
	Code       string  `json:"code"`
	Desc       string  `json:"desc"`
	Confidence float64 `json:"confidence"`
}

// SubmissionResult is the platform's acknowledgement of a claim.
type SubmissionResult struct {
	Status        string `json:"status"`
	NphiesClaimID string `json:"nphiesClaimId"`
}

// Connector submits claims and checks their status.
type Connector interface {
	SubmitClaim(ctx context.Context, claim ClaimSubmission) (SubmissionResult, error)
	CheckClaimStatus(ctx context.Context, nphiesClaimID string) (string, error)
}

// MockConnector acknowledges every submission without any network traffic.
type MockConnector struct{}

// NewMockConnector returns a connector suitable for demo environments.
func NewMockConnector() *MockConnector { return &MockConnector{} }

func (m *MockConnector) SubmitClaim(_ context.Context, claim ClaimSubmission) (SubmissionResult, error) {
	return SubmissionResult{
		Status:        "SUBMITTED",
		NphiesClaimID: fmt.Sprintf("NPH-%s", claim.ClaimNumber),
	}, nil
}

func (m *MockConnector) CheckClaimStatus(_ context.Context, _ string) (string, error) {
	return "SUBMITTED", nil
}
