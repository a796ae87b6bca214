package engine

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/antigravity/internal/domain"
)

// SafetyResult is the gate's verdict on one routine. Only disease
// contraindications clear Allowed; medication findings are advisory.
type SafetyResult struct {
	Allowed     bool
	Warnings    []string
	Adjustments []string
}

type advice struct {
	warning    string
	adjustment string
}

var diseaseAdvice = map[domain.Disease]advice{
	domain.DiseaseHypertension: {
		"You have high blood pressure. Avoid breath-holding and maximum-effort moves.",
		"Keep breathing steady; never hold your breath.",
	},
	domain.DiseaseOsteoporosis: {
		"You have osteoporosis. Avoid jumping and twisting movements.",
		"Focus on balance and resistance-band exercises.",
	},
	domain.DiseaseHeartFailure: {
		"For your heart's sake, avoid high-intensity exercise.",
		"Warm up and cool down thoroughly, and rest between sets.",
	},
	domain.DiseaseDiabetes: {
		"You have diabetes. Avoid high-intensity exercise on an empty stomach.",
		"Have a light snack before exercising and watch for signs of low blood sugar.",
	},
	domain.DiseaseHyperthyroidism: {
		"You have hyperthyroidism. Avoid hot environments and high intensity.",
		"Exercise somewhere cool and keep an eye on your heart rate.",
	},
	domain.DiseaseHypothyroidism: {
		"You have hypothyroidism.",
		"Warm up thoroughly and raise the intensity gradually.",
	},
}

// genericDiseaseAdvice covers contraindicated diseases without a dedicated pair.
var genericDiseaseAdvice = advice{
	"This routine is not recommended for one of your health conditions.",
	"Lower the intensity and stop if you feel unwell.",
}

var medicationAdvice = map[domain.MedicationTag]advice{
	domain.MedDrowsiness: {
		"may cause drowsiness.",
		"Avoid intense exercise late in the day; train during daylight hours.",
	},
	domain.MedDehydrationRisk: {
		"can increase the risk of dehydration.",
		"Drink plenty of water before and after exercising.",
	},
	domain.MedOrthostaticDizziness: {
		"may cause dizziness when you change posture quickly.",
		"Get up slowly and avoid sudden changes of position.",
	},
	domain.MedBleedingRisk: {
		"raises bleeding risk.",
		"Avoid exercises with a risk of collisions or falls.",
	},
}

// EvaluateSafety checks a routine against the profile's diseases and every
// registered medication tag. All findings accumulate; nothing short-circuits.
func EvaluateSafety(routine *domain.RoutineTemplate, profile *domain.UserProfile, meds []domain.MedicationEntry) SafetyResult {
	res := SafetyResult{Allowed: true}

	for _, d := range profile.Diseases {
		if !routine.IsContraindicatedFor(d) {
			continue
		}
		res.Allowed = false
		a, ok := diseaseAdvice[d]
		if !ok {
			a = genericDiseaseAdvice
		}
		res.Warnings = append(res.Warnings, a.warning)
		res.Adjustments = append(res.Adjustments, a.adjustment)
	}

	// One finding per tag, in routine order, naming every drug that carries it.
	for _, tag := range routine.MedicationWarnings {
		names := medsWithTag(meds, tag)
		if len(names) == 0 {
			continue
		}
		a, ok := medicationAdvice[tag]
		if !ok {
			continue
		}
		res.Warnings = append(res.Warnings, fmt.Sprintf("Your medication (%s) %s", strings.Join(names, ", "), a.warning))
		res.Adjustments = append(res.Adjustments, a.adjustment)
	}
	return res
}

func medsWithTag(meds []domain.MedicationEntry, tag domain.MedicationTag) []string {
	var names []string
	for i := range meds {
		if meds[i].HasTag(tag) {
			names = append(names, meds[i].Name)
		}
	}
	return names
}
