package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/antigravity/internal/contract"
	"github.com/alexanderramin/antigravity/internal/db"
	"github.com/alexanderramin/antigravity/internal/domain"
	"github.com/alexanderramin/antigravity/internal/repository"
)

type profileService struct {
	profiles repository.UserProfileRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewProfileService(profiles repository.UserProfileRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		profiles: profiles,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	return s.profiles.Get(ctx)
}

// Save replaces the profile and invalidates today's plan, which was derived
// from the previous profile.
func (s *profileService) Save(ctx context.Context, p *domain.UserProfile) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "save-profile", startedAt, err, map[string]any{"goal": string(p.Goal)})
	}()

	if err = p.Validate(); err != nil {
		return err
	}
	now := s.now()
	p.ID = domain.DefaultProfileID
	p.UpdatedAt = now.UTC()

	return db.Scoped(ctx, s.uow, repository.NewStore, func(ctx context.Context, tx *repository.Store) error {
		existing, err := tx.Profiles.Get(ctx)
		switch {
		case err == nil:
			p.CreatedAt = existing.CreatedAt
		case errors.Is(err, repository.ErrNotFound):
			p.CreatedAt = now.UTC()
		default:
			return err
		}

		if err := tx.Profiles.Upsert(ctx, p); err != nil {
			return err
		}
		return tx.InvalidatePlan(ctx, dayKey(now), now.UTC())
	})
}

// Update applies a partial edit on top of the stored profile.
func (s *profileService) Update(ctx context.Context, u contract.ProfileUpdate) (*domain.UserProfile, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	if u.IsEmpty() {
		return p, nil
	}

	if u.Goal != nil {
		p.Goal = *u.Goal
	}
	if u.Diseases != nil {
		p.Diseases = append([]domain.Disease(nil), (*u.Diseases)...)
	}
	p.SleepProfile.UsualBedtime = domain.CoalesceStr(deref(u.UsualBedtime), p.SleepProfile.UsualBedtime)
	p.SleepProfile.UsualWakeup = domain.CoalesceStr(deref(u.UsualWakeup), p.SleepProfile.UsualWakeup)
	p.SleepProfile.IsShiftWorker = domain.BoolFromPtrWithDefault(p.SleepProfile.IsShiftWorker, u.IsShiftWorker)
	p.InBody.HeightCm = domain.Float64FromPtrWithDefault(p.InBody.HeightCm, u.HeightCm)
	p.InBody.WeightKg = domain.Float64FromPtrWithDefault(p.InBody.WeightKg, u.WeightKg)

	if err := s.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
