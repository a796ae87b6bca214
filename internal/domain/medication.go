package domain

import (
	"slices"
	"time"
)

// MedicationEntry is a drug the user registered. Only its tags feed the safety gate.
type MedicationEntry struct {
	ID              string
	Name            string
	DrugID          string // reference catalog id, empty for manual entries
	Tags            []MedicationTag
	Dosage          string
	Frequency       string
	ConfirmedByUser bool
	AddedVia        MedicationSource
	CreatedAt       time.Time
}

func (m *MedicationEntry) HasTag(t MedicationTag) bool {
	return slices.Contains(m.Tags, t)
}

func (m *MedicationEntry) Validate() error {
	if m.Name == "" {
		return valueError("name", m.Name, "medication name is required")
	}
	for _, t := range m.Tags {
		if !t.Valid() {
			return enumError("medication_tag", string(t))
		}
	}
	return nil
}
