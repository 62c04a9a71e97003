package billing

import "time"

func ts(value string) *time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return &t
}

// SeedClaims returns the demo claim set.
func SeedClaims() []Claim {
	return []Claim{
		{ID: "cl1", EncounterID: "e1", ClaimNumber: "CLM-2024-001", Status: ClaimApproved, SubmittedAt: ts("2024-08-02T10:00:00Z"), Amount: 12500.50},
		{ID: "cl2", EncounterID: "e2", ClaimNumber: "CLM-2024-002", Status: ClaimSent, SubmittedAt: ts("2024-08-03T11:30:00Z"), Amount: 850.00},
		{ID: "cl3", EncounterID: "e3", ClaimNumber: "CLM-2024-003", Status: ClaimRejected, SubmittedAt: ts("2024-08-04T14:00:00Z"), Amount: 1200.75},
		{ID: "cl4", EncounterID: "e4", ClaimNumber: "CLM-2024-004", Status: ClaimNeedsReview, Amount: 25000.00},
		{ID: "cl5", EncounterID: "e5", ClaimNumber: "CLM-2024-005", Status: ClaimDraft, Amount: 18000.00},
		{ID: "cl6", EncounterID: "e1", ClaimNumber: "CLM-2024-006", Status: ClaimDraft, Amount: 9500.00},
		{ID: "cl7", EncounterID: "e2", ClaimNumber: "CLM-2024-007", Status: ClaimApproved, SubmittedAt: ts("2024-08-05T12:00:00Z"), Amount: 450.25},
		{ID: "cl8", EncounterID: "e3", ClaimNumber: "CLM-2024-008", Status: ClaimSent, SubmittedAt: ts("2024-08-06T15:00:00Z"), Amount: 1500.00},
		{ID: "cl9", EncounterID: "e4", ClaimNumber: "CLM-2024-009", Status: ClaimNeedsReview, Amount: 32000.00},
		{ID: "cl10", EncounterID: "e5", ClaimNumber: "CLM-2024-010", Status: ClaimDraft, Amount: 21000.00},
	}
}

// SeedPayments returns the demo payment set.
func SeedPayments() []Payment {
	now := time.Now().UTC()
	return []Payment{
		{ID: "pay1", ClaimID: "cl1", Amount: 12500.50, Currency: "SAR", Reconciled: true, ReceivedAt: now},
		{ID: "pay2", ClaimID: "cl7", Amount: 450.25, Currency: "SAR", Reconciled: true, ReceivedAt: now.Add(-24 * time.Hour)},
		{ID: "pay3", ClaimID: "cl2", Amount: 850.00, Currency: "SAR", Reconciled: false, ReceivedAt: now.Add(-48 * time.Hour)},
		{ID: "pay4", ClaimID: "cl8", Amount: 1500.00, Currency: "SAR", Reconciled: false, ReceivedAt: now.Add(-72 * time.Hour)},
	}
}
