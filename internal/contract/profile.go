package contract

import "github.com/alexanderramin/antigravity/internal/domain"

// ProfileUpdate is a partial edit. Nil fields keep the stored value.
type ProfileUpdate struct {
	Goal          *domain.Goal
	Diseases      *[]domain.Disease
	UsualBedtime  *string
	UsualWakeup   *string
	IsShiftWorker *bool
	HeightCm      *float64
	WeightKg      *float64
}

// IsEmpty reports whether the update would change nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Goal == nil && u.Diseases == nil && u.UsualBedtime == nil &&
		u.UsualWakeup == nil && u.IsShiftWorker == nil && u.HeightCm == nil && u.WeightKg == nil
}
