package domain

// CategoryInfo is display text for an exercise category.
type CategoryInfo struct {
	Label       string
	Description string
}

var CategoryLabels = map[Category]CategoryInfo{
	CategoryPH: {Label: "Purifying Home", Description: "Indoor workout that keeps you away from poor air."},
	CategorySO: {Label: "Sunlit Outdoor", Description: "Outdoor movement in daylight for vitamin D and mood."},
	CategoryMB: {Label: "Mood Boosting", Description: "Gentle rhythmic exercise to lift mood and ease stress."},
	CategoryTF: {Label: "Temperature Fit", Description: "A routine adapted to today's cold or heat."},
}

var LevelLabels = map[Level]string{
	LevelBeginner:     "Beginner",
	LevelIntermediate: "Intermediate",
	LevelAdvanced:     "Advanced",
}

var GoalLabels = map[Goal]string{
	GoalWeightManagement: "Weight management",
	GoalDiet:             "Diet",
	GoalMuscleGain:       "Muscle gain",
	GoalWeightGain:       "Weight gain",
	GoalStressRelief:     "Stress relief",
}

var ToppingLabels = map[Topping]string{
	ToppingAntiDust:  "anti-dust",
	ToppingImmune:    "immune",
	ToppingHydration: "hydration",
	ToppingMoodUp:    "mood-up",
}

// Label returns the display name, falling back to the raw code.
func (c Category) Label() string {
	if info, ok := CategoryLabels[c]; ok {
		return info.Label
	}
	return string(c)
}

func (l Level) Label() string {
	if s, ok := LevelLabels[l]; ok {
		return s
	}
	return string(l)
}

func (g Goal) Label() string {
	if s, ok := GoalLabels[g]; ok {
		return s
	}
	return string(g)
}
