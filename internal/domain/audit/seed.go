package audit

import "time"

// SeedEntries returns the demo audit trail. Timestamps are offsets from the
// current time so a freshly seeded trail reads as recent activity.
func SeedEntries() []Entry {
	now := time.Now().UTC()
	return []Entry{
		{ID: "al1", Actor: "system", Action: "claim.submitted", ObjectType: "claim", ObjectID: "cl2", OccurredAt: now},
		{ID: "al2", Actor: "user:coder@hospital.sa", Action: "coding_job.reviewed", ObjectType: "coding_job", ObjectID: "job1", OccurredAt: now.Add(-1 * time.Hour)},
		{ID: "al3", Actor: "system", Action: "nphies.token_refreshed", ObjectType: "integration", ObjectID: "nphies", OccurredAt: now.Add(-2 * time.Hour)},
		{ID: "al4", Actor: "system", Action: "claim.status_updated", ObjectType: "claim", ObjectID: "cl3", OccurredAt: now.Add(-3 * time.Hour)},
		{ID: "al5", Actor: "user:admin@solventum.sa", Action: "user.login", ObjectType: "user", ObjectID: "admin@solventum.sa", OccurredAt: now.Add(-4 * time.Hour)},
	}
}
