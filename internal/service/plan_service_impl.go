package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/antigravity/internal/contract"
	"github.com/alexanderramin/antigravity/internal/db"
	"github.com/alexanderramin/antigravity/internal/domain"
	"github.com/alexanderramin/antigravity/internal/engine"
	"github.com/alexanderramin/antigravity/internal/repository"
)

type planService struct {
	engine   *engine.Engine
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewPlanService(eng *engine.Engine, uow db.UnitOfWork, observers ...UseCaseObserver) PlanService {
	return &planService{
		engine:   eng,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Today serves the stored snapshot for the requested date while it is valid,
// and otherwise regenerates and stores a new one. Reading inputs, generating
// and saving happen in one transaction so a concurrent check-in cannot slip
// between the read and the save.
func (s *planService) Today(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	startedAt := time.Now().UTC()
	date := req.ResolveDate()
	fields := map[string]any{
		"date":       date,
		"regenerate": req.Regenerate,
	}
	defer func() {
		if resp != nil {
			fields["reused"] = resp.Reused
			fields["category"] = string(resp.Plan.ExercisePlan.Category)
			fields["rule"] = resp.CategoryRule
		}
		observe(ctx, s.observer, "plan-today", startedAt, err, fields)
	}()

	if _, perr := time.Parse(domain.DateLayout, date); perr != nil {
		return nil, &contract.PlanError{
			Code:    contract.ErrInvalidInput,
			Message: fmt.Sprintf("date %q must be YYYY-MM-DD", date),
			Err:     perr,
		}
	}

	err = db.Scoped(ctx, s.uow, repository.NewStore, func(ctx context.Context, tx *repository.Store) error {
		in, err := loadPlanInput(ctx, tx, date)
		if err != nil {
			return err
		}

		if !req.Regenerate {
			stored, err := tx.Plans.GetByDate(ctx, date)
			switch {
			case err == nil && stored.IsValid() && stored.CheckInID == in.CheckIn.ID:
				resp = buildResponse(stored, in, true)
				return nil
			case err != nil && !errors.Is(err, repository.ErrNotFound):
				return internalError("loading stored plan", err)
			}
		}

		plan := s.engine.Generate(*in)
		if err := tx.Plans.Save(ctx, &plan); err != nil {
			return internalError("saving plan", err)
		}
		resp = buildResponse(&plan, in, false)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func loadPlanInput(ctx context.Context, tx *repository.Store, date string) (*engine.PlanInput, error) {
	profile, err := tx.Profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &contract.PlanError{
				Code:    contract.ErrProfileRequired,
				Message: "no profile yet; run `antigravity profile setup` first",
				Err:     err,
			}
		}
		return nil, internalError("loading profile", err)
	}

	checkIn, err := tx.CheckIns.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &contract.PlanError{
				Code:    contract.ErrCheckInRequired,
				Message: fmt.Sprintf("no check-in for %s; run `antigravity checkin` first", date),
				Err:     err,
			}
		}
		return nil, internalError("loading check-in", err)
	}

	meds, err := tx.Medications.List(ctx)
	if err != nil {
		return nil, internalError("loading medications", err)
	}
	meals, err := tx.Meals.ListByDate(ctx, date)
	if err != nil {
		return nil, internalError("loading meals", err)
	}

	in := &engine.PlanInput{
		Profile:     *profile,
		CheckIn:     *checkIn,
		Medications: make([]domain.MedicationEntry, 0, len(meds)),
		TodayMeals:  make([]domain.MealLog, 0, len(meals)),
	}
	for _, m := range meds {
		in.Medications = append(in.Medications, *m)
	}
	for _, m := range meals {
		in.TodayMeals = append(in.TodayMeals, *m)
	}
	if err := validatePlanInput(in); err != nil {
		return nil, &contract.PlanError{
			Code:    contract.ErrInvalidInput,
			Message: err.Error(),
			Err:     err,
		}
	}
	return in, nil
}

// validatePlanInput rejects stored records that no longer parse, so the
// engine never sees a value outside its enumerations.
func validatePlanInput(in *engine.PlanInput) error {
	if err := in.Profile.Validate(); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	if err := in.CheckIn.Validate(); err != nil {
		return fmt.Errorf("check-in: %w", err)
	}
	for i := range in.Medications {
		if err := in.Medications[i].Validate(); err != nil {
			return fmt.Errorf("medication %s: %w", in.Medications[i].Name, err)
		}
	}
	for i := range in.TodayMeals {
		if err := in.TodayMeals[i].Validate(); err != nil {
			return fmt.Errorf("meal %s: %w", in.TodayMeals[i].ID, err)
		}
	}
	return nil
}

func buildResponse(plan *domain.PlanOfDay, in *engine.PlanInput, reused bool) *contract.PlanResponse {
	_, rule := engine.MatchCategory(&in.CheckIn)
	return &contract.PlanResponse{
		Plan:         *plan,
		CategoryRule: rule,
		Reused:       reused,
		Facts:        plan.CoachFacts(&in.Profile, &in.CheckIn),
	}
}

func internalError(what string, err error) *contract.PlanError {
	return &contract.PlanError{
		Code:    contract.ErrInternalError,
		Message: what + ": " + err.Error(),
		Err:     err,
	}
}
