// Package identity holds the patient and encounter records and their read
// API. Referential links from other records (claims, coding jobs, nudges)
// point at these ids but are advisory; no foreign-key constraint is enforced.
package identity

import "time"

// Store table names.
const (
	PatientTable   = "patients"
	EncounterTable = "encounters"
)

// Encounter types.
const (
	EncounterInpatient  = "INPATIENT"
	EncounterOutpatient = "OUTPATIENT"
	EncounterED         = "ED"
)

// Patient is a registered patient record.
type Patient struct {
	ID         string `json:"id"`
	NationalID string `json:"national_id"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

func (p Patient) Key() string { return p.ID }

// Encounter is one patient visit.
type Encounter struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patient_id"`
	EncounterType string    `json:"encounter_type"`
	AdmissionDT   time.Time `json:"admission_dt"`
	ClinicalNote  string    `json:"clinical_note,omitempty"`
	ProviderCR    string    `json:"provider_cr,omitempty"`
}

func (e Encounter) Key() string { return e.ID }
