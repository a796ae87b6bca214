package domain

// Goal is the user's overall wellness goal chosen at onboarding.
type Goal string

const (
	GoalWeightManagement Goal = "weight_management"
	GoalDiet             Goal = "diet"
	GoalMuscleGain       Goal = "muscle_gain"
	GoalWeightGain       Goal = "weight_gain"
	GoalStressRelief     Goal = "stress_relief"
)

// Disease is a chronic-condition tag on the profile. Routines list the
// diseases they are contraindicated for using the same values.
type Disease string

const (
	DiseaseDiabetes        Disease = "diabetes"
	DiseaseObesity         Disease = "obesity"
	DiseaseHypertension    Disease = "hypertension"
	DiseaseHyperlipidemia  Disease = "hyperlipidemia"
	DiseaseHeartFailure    Disease = "heart_failure"
	DiseaseOsteoporosis    Disease = "osteoporosis"
	DiseaseHyperthyroidism Disease = "hyperthyroidism"
	DiseaseHypothyroidism  Disease = "hypothyroidism"
)

type Mood string

const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodNeutral  Mood = "neutral"
	MoodLow      Mood = "low"
	MoodStressed Mood = "stressed"
)

type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

type Digestion string

const (
	DigestionNormal       Digestion = "normal"
	DigestionBloated      Digestion = "bloated"
	DigestionDiarrhea     Digestion = "diarrhea"
	DigestionConstipation Digestion = "constipation"
)

type SleepQuality string

const (
	SleepGood SleepQuality = "good"
	SleepFair SleepQuality = "fair"
	SleepPoor SleepQuality = "poor"
)

type PerceivedWeather string

const (
	WeatherSunny  PerceivedWeather = "sunny"
	WeatherCloudy PerceivedWeather = "cloudy"
	WeatherRainy  PerceivedWeather = "rainy"
)

type TemperatureFeel string

const (
	TempCold TemperatureFeel = "cold"
	TempCool TemperatureFeel = "cool"
	TempWarm TemperatureFeel = "warm"
	TempHot  TemperatureFeel = "hot"
)

type AirQuality string

const (
	AirFresh  AirQuality = "fresh"
	AirNormal AirQuality = "normal"
	AirStuffy AirQuality = "stuffy"
)

type ActivityLocation string

const (
	LocationIndoor  ActivityLocation = "indoor"
	LocationOutdoor ActivityLocation = "outdoor"
	LocationBoth    ActivityLocation = "both"
)

// AllowsOutdoor reports whether outdoor activity is possible at this location.
func (l ActivityLocation) AllowsOutdoor() bool {
	return l == LocationOutdoor || l == LocationBoth
}

// Category is the exercise-context bucket picked from environment and mood.
type Category string

const (
	CategoryPH Category = "PH" // purifying home: indoor, air-quality safe
	CategorySO Category = "SO" // sunlit outdoor
	CategoryMB Category = "MB" // mood boosting
	CategoryTF Category = "TF" // temperature fit
)

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTag describes a logged meal. The first group are analysis tags that
// drive next-meal corrections; the rest are food tags recorded for display.
type MealTag string

const (
	TagHighProtein MealTag = "high_protein"
	TagHighCarb    MealTag = "high_carb"
	TagHighFat     MealTag = "high_fat"
	TagHighSodium  MealTag = "high_sodium"
	TagLowVeggie   MealTag = "low_veggie"
	TagAlcohol     MealTag = "alcohol"
	TagDessert     MealTag = "dessert"

	FoodProtein    MealTag = "protein"
	FoodCarbs      MealTag = "carbs"
	FoodVegetables MealTag = "vegetables"
	FoodFruits     MealTag = "fruits"
	FoodDairy      MealTag = "dairy"
	FoodGrains     MealTag = "grains"
	FoodSeafood    MealTag = "seafood"
	FoodSoup       MealTag = "soup"
	FoodFried      MealTag = "fried"
	FoodSpicy      MealTag = "spicy"
	FoodSweet      MealTag = "sweet"
	FoodCaffeine   MealTag = "caffeine"
	FoodProcessed  MealTag = "processed"
)

// MedicationTag is a safety marker shared between medications and routines.
type MedicationTag string

const (
	MedDrowsiness           MedicationTag = "DROWSINESS_POSSIBLE"
	MedDehydrationRisk      MedicationTag = "DEHYDRATION_RISK_POSSIBLE"
	MedOrthostaticDizziness MedicationTag = "ORTHOSTATIC_DIZZINESS_POSSIBLE"
	MedBleedingRisk         MedicationTag = "BLEEDING_RISK_CAUTION"
)

// Topping is a non-exclusive environmental modifier attached to meals.
type Topping string

const (
	ToppingAntiDust  Topping = "anti_dust"
	ToppingImmune    Topping = "immune"
	ToppingHydration Topping = "hydration"
	ToppingMoodUp    Topping = "mood_up"
)

type MedicationSource string

const (
	SourceSearch MedicationSource = "search"
	SourceManual MedicationSource = "manual"
)

// Canonical value sets, used by Valid and the Parse helpers.
var (
	ValidGoals = map[Goal]bool{
		GoalWeightManagement: true, GoalDiet: true, GoalMuscleGain: true,
		GoalWeightGain: true, GoalStressRelief: true,
	}
	ValidDiseases = map[Disease]bool{
		DiseaseDiabetes: true, DiseaseObesity: true, DiseaseHypertension: true,
		DiseaseHyperlipidemia: true, DiseaseHeartFailure: true, DiseaseOsteoporosis: true,
		DiseaseHyperthyroidism: true, DiseaseHypothyroidism: true,
	}
	ValidMoods = map[Mood]bool{
		MoodGreat: true, MoodGood: true, MoodNeutral: true, MoodLow: true, MoodStressed: true,
	}
	ValidStressLevels = map[StressLevel]bool{StressLow: true, StressMedium: true, StressHigh: true}
	ValidDigestion    = map[Digestion]bool{
		DigestionNormal: true, DigestionBloated: true, DigestionDiarrhea: true, DigestionConstipation: true,
	}
	ValidSleepQualities = map[SleepQuality]bool{SleepGood: true, SleepFair: true, SleepPoor: true}
	ValidWeathers       = map[PerceivedWeather]bool{WeatherSunny: true, WeatherCloudy: true, WeatherRainy: true}
	ValidTemperatures   = map[TemperatureFeel]bool{TempCold: true, TempCool: true, TempWarm: true, TempHot: true}
	ValidAirQualities   = map[AirQuality]bool{AirFresh: true, AirNormal: true, AirStuffy: true}
	ValidLocations      = map[ActivityLocation]bool{LocationIndoor: true, LocationOutdoor: true, LocationBoth: true}
	ValidCategories     = map[Category]bool{CategoryPH: true, CategorySO: true, CategoryMB: true, CategoryTF: true}
	ValidLevels         = map[Level]bool{LevelBeginner: true, LevelIntermediate: true, LevelAdvanced: true}
	ValidIntensities    = map[Intensity]bool{IntensityLow: true, IntensityModerate: true, IntensityHigh: true}
	ValidMealTypes      = map[MealType]bool{MealBreakfast: true, MealLunch: true, MealDinner: true, MealSnack: true}
	ValidMealTags       = map[MealTag]bool{
		TagHighProtein: true, TagHighCarb: true, TagHighFat: true, TagHighSodium: true,
		TagLowVeggie: true, TagAlcohol: true, TagDessert: true,
		FoodProtein: true, FoodCarbs: true, FoodVegetables: true, FoodFruits: true,
		FoodDairy: true, FoodGrains: true, FoodSeafood: true, FoodSoup: true,
		FoodFried: true, FoodSpicy: true, FoodSweet: true, FoodCaffeine: true, FoodProcessed: true,
	}
	ValidMedicationTags = map[MedicationTag]bool{
		MedDrowsiness: true, MedDehydrationRisk: true, MedOrthostaticDizziness: true, MedBleedingRisk: true,
	}
)

func (g Goal) Valid() bool             { return ValidGoals[g] }
func (d Disease) Valid() bool          { return ValidDiseases[d] }
func (m Mood) Valid() bool             { return ValidMoods[m] }
func (s StressLevel) Valid() bool      { return ValidStressLevels[s] }
func (d Digestion) Valid() bool        { return ValidDigestion[d] }
func (s SleepQuality) Valid() bool     { return ValidSleepQualities[s] }
func (w PerceivedWeather) Valid() bool { return ValidWeathers[w] }
func (t TemperatureFeel) Valid() bool  { return ValidTemperatures[t] }
func (a AirQuality) Valid() bool       { return ValidAirQualities[a] }
func (l ActivityLocation) Valid() bool { return ValidLocations[l] }
func (c Category) Valid() bool         { return ValidCategories[c] }
func (l Level) Valid() bool            { return ValidLevels[l] }
func (i Intensity) Valid() bool        { return ValidIntensities[i] }
func (m MealType) Valid() bool         { return ValidMealTypes[m] }
func (t MealTag) Valid() bool          { return ValidMealTags[t] }
func (t MedicationTag) Valid() bool    { return ValidMedicationTags[t] }
