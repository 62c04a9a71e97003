package coding

import "time"

// SeedJobs returns the demo coding job backlog.
func SeedJobs() []Job {
	now := time.Now().UTC()
	return []Job{
		{ID: "job1", EncounterID: "e1", SuggestedCodes: []SuggestedCode{{Code: "J18.9", Desc: "Pneumonia, unspecified", Confidence: 0.85}}, Status: StatusNeedsReview, ConfidenceScore: 0.85, Phase: PhaseCAC, CreatedAt: now},
		{ID: "job2", EncounterID: "e2", SuggestedCodes: []SuggestedCode{{Code: "I21.9", Desc: "Acute MI, unspecified", Confidence: 0.99}}, Status: StatusSentToNphies, ConfidenceScore: 0.99, Phase: PhaseAutonomous, CreatedAt: now},
		{ID: "job3", EncounterID: "e3", SuggestedCodes: []SuggestedCode{{Code: "K37", Desc: "Unspecified appendicitis", Confidence: 0.92}}, Status: StatusAutoDrop, ConfidenceScore: 0.92, Phase: PhaseSemiAutonomous, CreatedAt: now},
		{ID: "job4", EncounterID: "e4", SuggestedCodes: []SuggestedCode{{Code: "S82.90XA", Desc: "Unspecified fracture of lower leg", Confidence: 0.78}}, Status: StatusNeedsReview, ConfidenceScore: 0.78, Phase: PhaseCAC, CreatedAt: now},
		{ID: "job5", EncounterID: "e5", SuggestedCodes: []SuggestedCode{{Code: "N39.0", Desc: "UTI, site not specified", Confidence: 0.81}}, Status: StatusNeedsReview, ConfidenceScore: 0.81, Phase: PhaseCAC, CreatedAt: now},
		{ID: "job6", EncounterID: "e1", SuggestedCodes: []SuggestedCode{}, Status: StatusNeedsReview, ConfidenceScore: 0, Phase: PhaseCAC, CreatedAt: now},
		{ID: "job7", EncounterID: "e2", SuggestedCodes: []SuggestedCode{{Code: "R05", Desc: "Cough", Confidence: 0.95}}, Status: StatusAutoDrop, ConfidenceScore: 0.95, Phase: PhaseSemiAutonomous, CreatedAt: now},
		{ID: "job8", EncounterID: "e3", SuggestedCodes: []SuggestedCode{{Code: "R50.9", Desc: "Fever, unspecified", Confidence: 0.98}}, Status: StatusAutoDrop, ConfidenceScore: 0.98, Phase: PhaseSemiAutonomous, CreatedAt: now},
		{ID: "job9", EncounterID: "e1", SuggestedCodes: []SuggestedCode{{Code: "E11.9", Desc: "Type 2 diabetes mellitus without complications", Confidence: 0.92}}, Status: StatusAutoDrop, ConfidenceScore: 0.92, Phase: PhaseSemiAutonomous, CreatedAt: now},
		{ID: "job10", EncounterID: "e2", SuggestedCodes: []SuggestedCode{{Code: "I10", Desc: "Essential hypertension", Confidence: 0.99}}, Status: StatusSentToNphies, ConfidenceScore: 0.99, Phase: PhaseAutonomous, CreatedAt: now},
		{ID: "job11", EncounterID: "e3", SuggestedCodes: []SuggestedCode{{Code: "K37", Desc: "Unspecified appendicitis", Confidence: 0.94}}, Status: StatusAutoDrop, ConfidenceScore: 0.94, Phase: PhaseSemiAutonomous, CreatedAt: now},
		{ID: "job12", EncounterID: "e4", SuggestedCodes: []SuggestedCode{{Code: "S82.90XA", Desc: "Unspecified fracture of lower leg, check laterality", Confidence: 0.75}}, Status: StatusNeedsReview, ConfidenceScore: 0.75, Phase: PhaseCAC, CreatedAt: now},
		{ID: "job13", EncounterID: "e5", SuggestedCodes: []SuggestedCode{{Code: "E11.9", Desc: "Type 2 diabetes mellitus without complications", Confidence: 0.88}, {Code: "I10", Desc: "Essential (primary) hypertension", Confidence: 0.91}}, Status: StatusAutoDrop, ConfidenceScore: 0.90, Phase: PhaseSemiAutonomous, CreatedAt: now},
		{ID: "job14", EncounterID: "e1", SuggestedCodes: []SuggestedCode{{Code: "J18.9", Desc: "Pneumonia, unspecified organism", Confidence: 0.82}}, Status: StatusNeedsReview, ConfidenceScore: 0.82, Phase: PhaseCAC, CreatedAt: now},
		{ID: "job15", EncounterID: "e2", SuggestedCodes: []SuggestedCode{{Code: "N39.0", Desc: "Urinary tract infection, site not specified", Confidence: 0.84}}, Status: StatusNeedsReview, ConfidenceScore: 0.84, Phase: PhaseCAC, CreatedAt: now},
	}
}

// SeedAnalytics returns the demo accuracy datapoints.
func SeedAnalytics() []Analytics {
	now := time.Now().UTC()
	return []Analytics{
		{ID: "a1", JobID: "job1", Accuracy: 85, Phase: PhaseCAC, CreatedAt: now},
		{ID: "a2", JobID: "job2", Accuracy: 99, Phase: PhaseAutonomous, CreatedAt: now},
		{ID: "a3", JobID: "job3", Accuracy: 92, Phase: PhaseSemiAutonomous, CreatedAt: now},
		{ID: "a4", JobID: "job4", Accuracy: 78, Phase: PhaseCAC, CreatedAt: now},
		{ID: "a5", JobID: "job5", Accuracy: 81, Phase: PhaseCAC, CreatedAt: now},
	}
}
