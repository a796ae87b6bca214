package engine

import (
	"github.com/alexanderramin/antigravity/internal/catalog"
	"github.com/alexanderramin/antigravity/internal/domain"
)

// SwappedForSafety is appended to the adjustments when the downgrade is taken.
const SwappedForSafety = "Switched to a gentler routine for your safety."

// highRiskDiseases always pin the level to beginner.
var highRiskDiseases = []domain.Disease{
	domain.DiseaseHeartFailure,
	domain.DiseaseOsteoporosis,
	domain.DiseaseHypertension,
}

// InferLevel is deliberately conservative: without exercise history every
// profile starts at beginner.
func InferLevel(profile *domain.UserProfile) domain.Level {
	if profile.HasAnyDisease(highRiskDiseases...) {
		return domain.LevelBeginner
	}
	return domain.LevelBeginner
}

// ExerciseGoal maps a wellness goal onto the catalog's goal vocabulary.
func ExerciseGoal(g domain.Goal) domain.Goal {
	switch g {
	case domain.GoalWeightManagement, domain.GoalWeightGain:
		return domain.GoalMuscleGain
	default:
		return g
	}
}

type RoutineSelection struct {
	Routine domain.RoutineTemplate
	Safety  SafetyResult
	Swapped bool
}

// SelectRoutine never fails: it falls back through progressively looser
// lookups and, when the pick is unsafe, tries one gentler template.
func SelectRoutine(cat *catalog.Catalog, category domain.Category, profile *domain.UserProfile, meds []domain.MedicationEntry) RoutineSelection {
	level := InferLevel(profile)
	routine := resolveRoutine(cat, category, ExerciseGoal(profile.Goal), level)

	sel := RoutineSelection{
		Routine: routine,
		Safety:  EvaluateSafety(&routine, profile, meds),
	}
	if sel.Safety.Allowed {
		return sel
	}

	safer, ok := cat.Find(category, domain.GoalStressRelief, domain.LevelBeginner)
	if !ok {
		return sel
	}
	saferResult := EvaluateSafety(&safer, profile, meds)
	if saferResult.Allowed || len(saferResult.Warnings) < len(sel.Safety.Warnings) {
		saferResult.Adjustments = append(saferResult.Adjustments, SwappedForSafety)
		return RoutineSelection{Routine: safer, Safety: saferResult, Swapped: true}
	}
	return sel
}

func resolveRoutine(cat *catalog.Catalog, category domain.Category, goal domain.Goal, level domain.Level) domain.RoutineTemplate {
	if r, ok := cat.Find(category, goal, level); ok {
		return r
	}
	if r, ok := cat.Find(category, domain.GoalStressRelief, level); ok {
		return r
	}
	if r, ok := cat.FirstWhere(func(r *domain.RoutineTemplate) bool {
		return r.Category == category && r.Level == level
	}); ok {
		return r
	}
	if r, ok := cat.FirstWhere(func(r *domain.RoutineTemplate) bool {
		return r.Level == domain.LevelBeginner
	}); ok {
		return r
	}
	return cat.First()
}
