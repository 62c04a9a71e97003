package cdi

import "time"

// SeedNudges returns the demo nudge set.
func SeedNudges() []Nudge {
	now := time.Now().UTC()
	return []Nudge{
		{ID: "n1", EncounterID: "e1", Severity: SeverityWarning, Prompt: "Specify the causative organism for 'pneumonia' if known.", Status: StatusActive, CreatedAt: now},
		{ID: "n2", EncounterID: "e4", Severity: SeverityCritical, Prompt: "Specify laterality (left, right) for the diagnosed 'fracture'.", Status: StatusActive, CreatedAt: now},
		{ID: "n3", EncounterID: "e5", Severity: SeverityInfo, Prompt: "Consider documenting if UTI is catheter-associated.", Status: StatusActive, CreatedAt: now},
		{ID: "n4", EncounterID: "e2", Severity: SeverityWarning, Prompt: "Specify type of Myocardial Infarction (e.g., STEMI, NSTEMI).", Status: StatusResolved, CreatedAt: now.Add(-24 * time.Hour)},
		{ID: "n5", EncounterID: "e3", Severity: SeverityWarning, Prompt: "Clarify if appendicitis is with or without perforation.", Status: StatusDismissed, CreatedAt: now.Add(-48 * time.Hour)},
	}
}
