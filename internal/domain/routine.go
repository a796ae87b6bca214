package domain

import "slices"

// ExerciseSet is one movement inside a routine phase. Either Reps/Sets or
// DurationSec is set.
type ExerciseSet struct {
	NameKo      string `yaml:"name_ko" json:"name_ko"`
	Reps        int    `yaml:"reps,omitempty" json:"reps,omitempty"`
	Sets        int    `yaml:"sets,omitempty" json:"sets,omitempty"`
	DurationSec int    `yaml:"duration_sec,omitempty" json:"duration_sec,omitempty"`
	NoteKo      string `yaml:"note_ko,omitempty" json:"note_ko,omitempty"`
}

// RoutineTemplate is a reference-catalog entry keyed by (category, goal, level).
type RoutineTemplate struct {
	ID                   string          `yaml:"id" json:"id"`
	Category             Category        `yaml:"category" json:"category"`
	Goal                 Goal            `yaml:"goal" json:"goal"`
	Level                Level           `yaml:"level" json:"level"`
	Name                 string          `yaml:"name" json:"name"`
	NameKo               string          `yaml:"name_ko" json:"name_ko"`
	DescriptionKo        string          `yaml:"description_ko" json:"description_ko"`
	TotalDurationMin     int             `yaml:"total_duration_min" json:"total_duration_min"`
	Intensity            Intensity       `yaml:"intensity" json:"intensity"`
	Warmup               []ExerciseSet   `yaml:"warmup" json:"warmup"`
	Main                 []ExerciseSet   `yaml:"main" json:"main"`
	Cooldown             []ExerciseSet   `yaml:"cooldown" json:"cooldown"`
	ContraindicationTags []Disease       `yaml:"contraindications" json:"contraindications"`
	MedicationWarnings   []MedicationTag `yaml:"medication_warnings" json:"medication_warnings"`
}

func (r *RoutineTemplate) IsContraindicatedFor(d Disease) bool {
	return slices.Contains(r.ContraindicationTags, d)
}

func (r *RoutineTemplate) WarnsFor(t MedicationTag) bool {
	return slices.Contains(r.MedicationWarnings, t)
}

// Clone returns a deep copy so callers cannot mutate catalog data.
func (r RoutineTemplate) Clone() RoutineTemplate {
	r.Warmup = slices.Clone(r.Warmup)
	r.Main = slices.Clone(r.Main)
	r.Cooldown = slices.Clone(r.Cooldown)
	r.ContraindicationTags = slices.Clone(r.ContraindicationTags)
	r.MedicationWarnings = slices.Clone(r.MedicationWarnings)
	return r
}

// Validate checks the enumerated fields of a catalog entry.
func (r *RoutineTemplate) Validate() error {
	if r.ID == "" {
		return valueError("id", r.ID, "routine id is required")
	}
	if !r.Category.Valid() {
		return enumError("category", string(r.Category))
	}
	if !r.Goal.Valid() {
		return enumError("goal", string(r.Goal))
	}
	if !r.Level.Valid() {
		return enumError("level", string(r.Level))
	}
	if !r.Intensity.Valid() {
		return enumError("intensity", string(r.Intensity))
	}
	for _, d := range r.ContraindicationTags {
		if !d.Valid() {
			return enumError("contraindications", string(d))
		}
	}
	for _, t := range r.MedicationWarnings {
		if !t.Valid() {
			return enumError("medication_warnings", string(t))
		}
	}
	return nil
}
