package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/antigravity/internal/cli/formatter"
	"github.com/alexanderramin/antigravity/internal/domain"
)

// antigravityHuhTheme styles forms with the formatter palette.
func antigravityHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// Display order for form options.
var (
	goalOrder = []domain.Goal{
		domain.GoalWeightManagement, domain.GoalDiet, domain.GoalMuscleGain,
		domain.GoalWeightGain, domain.GoalStressRelief,
	}
	diseaseOrder = []domain.Disease{
		domain.DiseaseDiabetes, domain.DiseaseObesity, domain.DiseaseHypertension,
		domain.DiseaseHyperlipidemia, domain.DiseaseHeartFailure, domain.DiseaseOsteoporosis,
		domain.DiseaseHyperthyroidism, domain.DiseaseHypothyroidism,
	}
	moodOrder      = []domain.Mood{domain.MoodGreat, domain.MoodGood, domain.MoodNeutral, domain.MoodLow, domain.MoodStressed}
	stressOrder    = []domain.StressLevel{domain.StressLow, domain.StressMedium, domain.StressHigh}
	digestionOrder = []domain.Digestion{
		domain.DigestionNormal, domain.DigestionBloated, domain.DigestionDiarrhea, domain.DigestionConstipation,
	}
	sleepOrder    = []domain.SleepQuality{domain.SleepGood, domain.SleepFair, domain.SleepPoor}
	weatherOrder  = []domain.PerceivedWeather{domain.WeatherSunny, domain.WeatherCloudy, domain.WeatherRainy}
	tempOrder     = []domain.TemperatureFeel{domain.TempCold, domain.TempCool, domain.TempWarm, domain.TempHot}
	airOrder      = []domain.AirQuality{domain.AirFresh, domain.AirNormal, domain.AirStuffy}
	locationOrder = []domain.ActivityLocation{domain.LocationIndoor, domain.LocationOutdoor, domain.LocationBoth}
)

func options[T ~string](vals []T, label func(T) string) []huh.Option[T] {
	opts := make([]huh.Option[T], 0, len(vals))
	for _, v := range vals {
		opts = append(opts, huh.NewOption(label(v), v))
	}
	return opts
}

func plainLabel[T ~string](v T) string {
	return strings.ReplaceAll(string(v), "_", " ")
}

// skippable prepends a "skip" option that leaves an optional field empty.
func skippable[T ~string](vals []T) []huh.Option[T] {
	return append([]huh.Option[T]{huh.NewOption("skip", T(""))}, options(vals, plainLabel[T])...)
}

type profileAnswers struct {
	Goal      domain.Goal
	Diseases  []domain.Disease
	Bedtime   string
	Wakeup    string
	ShiftWork bool
	Height    string
	Weight    string
}

func newProfileAnswers(p *domain.UserProfile) *profileAnswers {
	a := &profileAnswers{Goal: domain.GoalWeightManagement}
	if p == nil {
		return a
	}
	a.Goal = p.Goal
	a.Diseases = append(a.Diseases, p.Diseases...)
	a.Bedtime = p.SleepProfile.UsualBedtime
	a.Wakeup = p.SleepProfile.UsualWakeup
	a.ShiftWork = p.SleepProfile.IsShiftWorker
	a.Height = formatMetric(p.InBody.HeightCm)
	a.Weight = formatMetric(p.InBody.WeightKg)
	return a
}

func (a *profileAnswers) toProfile() (*domain.UserProfile, error) {
	height, err := parseMetric("height", a.Height)
	if err != nil {
		return nil, err
	}
	weight, err := parseMetric("weight", a.Weight)
	if err != nil {
		return nil, err
	}
	return &domain.UserProfile{
		ID:       domain.DefaultProfileID,
		Goal:     a.Goal,
		Diseases: a.Diseases,
		SleepProfile: domain.SleepProfile{
			UsualBedtime:  strings.TrimSpace(a.Bedtime),
			UsualWakeup:   strings.TrimSpace(a.Wakeup),
			IsShiftWorker: a.ShiftWork,
		},
		InBody: domain.InBody{HeightCm: height, WeightKg: weight},
	}, nil
}

func profileSetupForm(a *profileAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Goal]().
				Title("What is your main goal?").
				Options(options(goalOrder, domain.Goal.Label)...).
				Value(&a.Goal),
			huh.NewMultiSelect[domain.Disease]().
				Title("Any conditions to plan around?").
				Description("Space to toggle, enter to continue").
				Options(options(diseaseOrder, plainLabel[domain.Disease])...).
				Value(&a.Diseases),
		),
		huh.NewGroup(
			clockInput("Usual bedtime (HH:MM, blank if unsure)", "23:30", &a.Bedtime),
			clockInput("Usual wake-up (HH:MM, blank if unsure)", "07:00", &a.Wakeup),
			huh.NewConfirm().
				Title("Do you work shifts?").
				Value(&a.ShiftWork),
		),
		huh.NewGroup(
			metricInput("Height (cm)", "170", &a.Height),
			metricInput("Weight (kg)", "65", &a.Weight),
		),
	).WithTheme(antigravityHuhTheme()).WithShowHelp(false)
}

type checkInAnswers struct {
	Mood         domain.Mood
	Stress       domain.StressLevel
	Digestion    domain.Digestion
	SleepQuality domain.SleepQuality
	Weather      domain.PerceivedWeather
	Temperature  domain.TemperatureFeel
	Air          domain.AirQuality
	Location     domain.ActivityLocation
}

func newCheckInAnswers() *checkInAnswers {
	return &checkInAnswers{
		Mood:        domain.MoodNeutral,
		Stress:      domain.StressMedium,
		Weather:     domain.WeatherCloudy,
		Temperature: domain.TempCool,
		Air:         domain.AirNormal,
		Location:    domain.LocationBoth,
	}
}

func (a *checkInAnswers) toCheckIn(date string) *domain.DailyCheckIn {
	return &domain.DailyCheckIn{
		Date:         date,
		Mood:         a.Mood,
		Stress:       a.Stress,
		Digestion:    a.Digestion,
		SleepQuality: a.SleepQuality,
		Environment: domain.EnvironmentReport{
			PerceivedWeather: a.Weather,
			TemperatureFeel:  a.Temperature,
			AirQuality:       a.Air,
			ActivityLocation: a.Location,
		},
	}
}

func checkInForm(a *checkInAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Mood]().Title("How do you feel?").
				Options(options(moodOrder, plainLabel[domain.Mood])...).Value(&a.Mood),
			huh.NewSelect[domain.StressLevel]().Title("Stress level").
				Options(options(stressOrder, plainLabel[domain.StressLevel])...).Value(&a.Stress),
			huh.NewSelect[domain.SleepQuality]().Title("How did you sleep?").
				Options(skippable(sleepOrder)...).Value(&a.SleepQuality),
			huh.NewSelect[domain.Digestion]().Title("Digestion").
				Options(skippable(digestionOrder)...).Value(&a.Digestion),
		),
		huh.NewGroup(
			huh.NewSelect[domain.PerceivedWeather]().Title("Weather outside").
				Options(options(weatherOrder, plainLabel[domain.PerceivedWeather])...).Value(&a.Weather),
			huh.NewSelect[domain.TemperatureFeel]().Title("It feels").
				Options(options(tempOrder, plainLabel[domain.TemperatureFeel])...).Value(&a.Temperature),
			huh.NewSelect[domain.AirQuality]().Title("Air feels").
				Options(options(airOrder, plainLabel[domain.AirQuality])...).Value(&a.Air),
			huh.NewSelect[domain.ActivityLocation]().Title("Where can you exercise?").
				Options(options(locationOrder, plainLabel[domain.ActivityLocation])...).Value(&a.Location),
		),
	).WithTheme(antigravityHuhTheme()).WithShowHelp(false)
}

func clockInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateOptionalClock)
}

func metricInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(func(s string) error {
			_, err := parseMetric(title, s)
			return err
		})
}

func validateOptionalClock(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(domain.ClockLayout, s); err != nil {
		return fmt.Errorf("use HH:MM format")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// parseMetric accepts blank as 0 and otherwise a non-negative number.
func parseMetric(name, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s: enter a non-negative number", strings.ToLower(name))
	}
	return v, nil
}

func formatMetric(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
