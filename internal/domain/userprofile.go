package domain

import (
	"slices"
	"time"
)

// DefaultProfileID is the id of the single local user profile.
const DefaultProfileID = "default"

type SleepProfile struct {
	UsualBedtime  string // HH:MM, empty when unknown
	UsualWakeup   string // HH:MM, empty when unknown
	IsShiftWorker bool
}

// InBody holds body metrics. Height and weight are required; the rest are optional.
type InBody struct {
	HeightCm       float64
	WeightKg       float64
	MuscleMassKg   *float64
	FatMassKg      *float64
	BodyFatPercent *float64
	WaistCm        *float64
}

// UserProfile is the static health profile. The engine only reads it.
type UserProfile struct {
	ID           string
	Goal         Goal
	Diseases     []Disease
	SleepProfile SleepProfile
	InBody       InBody
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasDisease reports whether d is on the profile's disease list.
func (p *UserProfile) HasDisease(d Disease) bool {
	return slices.Contains(p.Diseases, d)
}

// HasAnyDisease reports whether any of ds is on the profile's disease list.
func (p *UserProfile) HasAnyDisease(ds ...Disease) bool {
	for _, d := range ds {
		if p.HasDisease(d) {
			return true
		}
	}
	return false
}

// Validate rejects malformed enumerations and metrics before they reach the engine.
func (p *UserProfile) Validate() error {
	if !p.Goal.Valid() {
		return enumError("goal", string(p.Goal))
	}
	for _, d := range p.Diseases {
		if !d.Valid() {
			return enumError("disease", string(d))
		}
	}
	if p.SleepProfile.UsualBedtime != "" {
		if _, err := ParseClock(p.SleepProfile.UsualBedtime); err != nil {
			return valueError("usual_bedtime", p.SleepProfile.UsualBedtime, "expected HH:MM")
		}
	}
	if p.SleepProfile.UsualWakeup != "" {
		if _, err := ParseClock(p.SleepProfile.UsualWakeup); err != nil {
			return valueError("usual_wakeup", p.SleepProfile.UsualWakeup, "expected HH:MM")
		}
	}
	if p.InBody.HeightCm < 0 || p.InBody.WeightKg < 0 {
		return valueError("in_body", "", "height and weight must not be negative")
	}
	return nil
}

// BMIClass buckets a body-mass index using the Asia-Pacific cutoffs.
type BMIClass string

const (
	BMIUnderweight BMIClass = "underweight"
	BMINormal      BMIClass = "normal"
	BMIOverweight  BMIClass = "overweight"
	BMIObese       BMIClass = "obese"
)

// BMI returns weight over height squared, height in metres. ok is false
// while either measurement is missing.
func (b InBody) BMI() (bmi float64, ok bool) {
	if b.HeightCm <= 0 || b.WeightKg <= 0 {
		return 0, false
	}
	m := b.HeightCm / 100
	return b.WeightKg / (m * m), true
}

func ClassifyBMI(bmi float64) BMIClass {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 23:
		return BMINormal
	case bmi < 25:
		return BMIOverweight
	default:
		return BMIObese
	}
}
