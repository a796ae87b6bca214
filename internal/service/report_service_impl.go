package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/alexanderramin/antigravity/internal/contract"
	"github.com/alexanderramin/antigravity/internal/domain"
	"github.com/alexanderramin/antigravity/internal/repository"
)

const topTagLimit = 5

type reportService struct {
	meals    repository.MealLogRepo
	profiles repository.UserProfileRepo
	meds     repository.MedicationRepo
	observer UseCaseObserver
}

func NewReportService(meals repository.MealLogRepo, profiles repository.UserProfileRepo, meds repository.MedicationRepo, observers ...UseCaseObserver) ReportService {
	return &reportService{
		meals:    meals,
		profiles: profiles,
		meds:     meds,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Weekly summarizes the week ending on endDate. A missing profile leaves the
// goal and BMI empty rather than failing the report.
func (s *reportService) Weekly(ctx context.Context, endDate string) (r *contract.WeeklyReport, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{"end_date": endDate}
		if r != nil {
			fields["meals"] = r.TotalMeals
			fields["streak"] = r.Streak
		}
		observe(ctx, s.observer, "weekly-report", startedAt, err, fields)
	}()

	end, err := time.Parse(domain.DateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("report date %q: expected YYYY-MM-DD", endDate)
	}
	start := end.AddDate(0, 0, -(contract.ReportDays - 1))
	report := &contract.WeeklyReport{
		StartDate: dayKey(start),
		EndDate:   endDate,
		Days:      make([]contract.DayMeals, 0, contract.ReportDays),
	}

	meals, err := s.meals.ListBetween(ctx, report.StartDate, report.EndDate)
	if err != nil {
		return nil, fmt.Errorf("loading meals: %w", err)
	}
	perDay := make(map[string]int)
	tags := make(map[domain.MealTag]int)
	for _, m := range meals {
		perDay[m.Date]++
		for _, t := range m.Tags {
			tags[t]++
		}
	}
	for i := range contract.ReportDays {
		day := dayKey(start.AddDate(0, 0, i))
		report.Days = append(report.Days, contract.DayMeals{Date: day, Meals: perDay[day]})
		report.TotalMeals += perDay[day]
	}
	for i := len(report.Days) - 1; i >= 0 && report.Days[i].Meals > 0; i-- {
		report.Streak++
	}
	report.TopTags = topTags(tags, topTagLimit)

	meds, err := s.meds.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading medications: %w", err)
	}
	report.Medications = len(meds)

	profile, err := s.profiles.Get(ctx)
	switch {
	case err == nil:
		report.Goal = profile.Goal
		if bmi, ok := profile.InBody.BMI(); ok {
			report.BMI = &contract.BMIReading{
				Value: math.Round(bmi*10) / 10,
				Class: domain.ClassifyBMI(bmi),
			}
		}
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return report, nil
}

// topTags orders by count, then tag name so ties render stably.
func topTags(counts map[domain.MealTag]int, limit int) []contract.TagCount {
	out := make([]contract.TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, contract.TagCount{Tag: tag, Count: n})
	}
	slices.SortFunc(out, func(a, b contract.TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Tag, b.Tag)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
