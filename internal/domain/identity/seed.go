package identity

import "time"

// SeedPatients returns the fixed demo patient roster.
func SeedPatients() []Patient {
	return []Patient{
		{ID: "p1", NationalID: "1012345678", GivenName: "Fatima", FamilyName: "Al-Fahad"},
		{ID: "p2", NationalID: "1023456789", GivenName: "Mohammed", FamilyName: "Al-Ghamdi"},
		{ID: "p3", NationalID: "1034567890", GivenName: "Aisha", FamilyName: "Al-Qahtani"},
		{ID: "p4", NationalID: "1045678901", GivenName: "Khaled", FamilyName: "Al-Mutairi"},
		{ID: "p5", NationalID: "1056789012", GivenName: "Noura", FamilyName: "Al-Dosari"},
	}
}

// SeedEncounters returns the fixed demo encounters, one per seed patient.
func SeedEncounters() []Encounter {
	return []Encounter{
		{ID: "e1", PatientID: "p1", EncounterType: EncounterInpatient, AdmissionDT: time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "e2", PatientID: "p2", EncounterType: EncounterOutpatient, AdmissionDT: time.Date(2024, 8, 2, 11, 30, 0, 0, time.UTC)},
		{ID: "e3", PatientID: "p3", EncounterType: EncounterED, AdmissionDT: time.Date(2024, 8, 3, 14, 0, 0, 0, time.UTC)},
		{ID: "e4", PatientID: "p4", EncounterType: EncounterInpatient, AdmissionDT: time.Date(2024, 8, 4, 9, 0, 0, 0, time.UTC)},
		{ID: "e5", PatientID: "p5", EncounterType: EncounterInpatient, AdmissionDT: time.Date(2024, 8, 5, 18, 0, 0, 0, time.UTC)},
	}
}
