package engine

import (
	"slices"
	"strings"

	"github.com/alexanderramin/antigravity/internal/domain"
)

// DeriveToppings returns the environment toppings in fixed order. Any subset may apply.
func DeriveToppings(c *domain.DailyCheckIn) []domain.Topping {
	env := c.Environment
	var out []domain.Topping
	if env.AirQuality == domain.AirStuffy {
		out = append(out, domain.ToppingAntiDust)
	}
	if env.TemperatureFeel == domain.TempCold || env.PerceivedWeather == domain.WeatherRainy {
		out = append(out, domain.ToppingImmune)
	}
	if env.TemperatureFeel == domain.TempHot {
		out = append(out, domain.ToppingHydration)
	}
	if c.Stress == domain.StressHigh {
		out = append(out, domain.ToppingMoodUp)
	}
	return out
}

type mealTemplate struct {
	components []string
	reason     string
}

// mealSlots holds breakfast, lunch and dinner tables in that order.
// The empty goal key is the default row.
var mealSlots = [3]struct {
	mealType domain.MealType
	byGoal   map[domain.Goal]mealTemplate
}{
	{domain.MealBreakfast, map[domain.Goal]mealTemplate{
		domain.GoalDiet:             {[]string{"Whole-grain cereal", "Low-fat milk", "Fruit"}, "Complex carbs keep you full for longer."},
		domain.GoalMuscleGain:       {[]string{"2 eggs", "Whole-wheat toast", "Greek yogurt"}, "Start the day with the protein your muscles need."},
		domain.GoalWeightGain:       {[]string{"Oatmeal", "Nuts", "Banana", "Honey"}, "Plenty of healthy calories to build on."},
		domain.GoalStressRelief:     {[]string{"Avocado toast", "Egg", "Orange juice"}, "A nourishing breakfast for a good day."},
		domain.GoalWeightManagement: {[]string{"Multigrain rice", "Doenjang soup", "Steamed egg"}, "A measured, balanced breakfast that keeps energy steady."},
		"":                          {[]string{"Brown rice", "Doenjang soup", "Fried egg"}, "A balanced Korean breakfast to recharge."},
	}},
	{domain.MealLunch, map[domain.Goal]mealTemplate{
		domain.GoalDiet:             {[]string{"Chicken breast salad", "A slice of whole-wheat bread"}, "Protein and vegetables: filling but light."},
		domain.GoalMuscleGain:       {[]string{"Beef rice bowl", "Seaweed soup", "Vegetable side dishes"}, "Protein and iron to recover from training."},
		domain.GoalWeightGain:       {[]string{"Spicy stir-fried pork", "Rice", "Steamed egg", "Doenjang stew"}, "Enough calories and protein."},
		domain.GoalStressRelief:     {[]string{"Salmon poke", "Brown rice", "Avocado"}, "Rich in omega-3, which helps with stress."},
		domain.GoalWeightManagement: {[]string{"Bibimbap with half rice", "Clear vegetable soup"}, "Plenty of vegetables with a controlled portion of carbs."},
		"":                          {[]string{"Bibimbap", "Doenjang soup"}, "Vegetables and protein in one bowl."},
	}},
	{domain.MealDinner, map[domain.Goal]mealTemplate{
		domain.GoalDiet:             {[]string{"Tofu steak", "Roasted vegetables", "Half a bowl of brown rice"}, "A light dinner that still has enough protein."},
		domain.GoalMuscleGain:       {[]string{"Grilled Spanish mackerel", "Rice", "Seasoned spinach", "Braised tofu"}, "Protein for muscle recovery while you sleep."},
		domain.GoalWeightGain:       {[]string{"Pork belly", "Rice", "Doenjang stew", "Lettuce wraps"}, "Enjoy your food and fill up on calories."},
		domain.GoalStressRelief:     {[]string{"Grilled mackerel", "Brown rice", "Spinach salad", "Seaweed soup"}, "Magnesium and omega-3 for a calm evening."},
		domain.GoalWeightManagement: {[]string{"Grilled fish", "Half a bowl of multigrain rice", "Seasoned greens"}, "A lighter dinner that keeps the day's intake on track."},
		"":                          {[]string{"Grilled fish", "Rice", "Seasoned vegetables", "Soup"}, "A balanced dinner to close the day."},
	}},
}

// sugarSwaps rewrites breakfast components for diabetes. An empty value drops the component.
var sugarSwaps = map[string]string{
	"Honey":        "",
	"Orange juice": "Water",
}

const (
	diabetesNote     = "Sugars were reduced to help manage blood sugar."
	digestionNote    = "Eat slowly so it is easy to digest."
	hypertensionNote = "Go easy on the broth to cut down on sodium."
)

// toppingNotes are appended to every meal's reason, in topping order.
var toppingNotes = map[domain.Topping]string{
	domain.ToppingAntiDust:  "Drink plenty of water and add some seaweed to counter fine dust.",
	domain.ToppingImmune:    "Warm dishes and vitamin C-rich fruit support your immune system.",
	domain.ToppingHydration: "Staying hydrated matters in hot weather!",
	domain.ToppingMoodUp:    "Foods rich in omega-3 and magnesium can help steady your mood.",
}

func templateFor(slot int, goal domain.Goal) mealTemplate {
	if t, ok := mealSlots[slot].byGoal[goal]; ok {
		return t
	}
	return mealSlots[slot].byGoal[""]
}

func stripSugar(components []string) []string {
	out := make([]string, 0, len(components))
	for _, c := range components {
		swap, ok := sugarSwaps[c]
		switch {
		case !ok:
			out = append(out, c)
		case swap != "":
			out = append(out, swap)
		}
	}
	return out
}

// PlanMeals builds breakfast, lunch and dinner. Toppings change the prose,
// never the suggested dishes.
func PlanMeals(profile *domain.UserProfile, c *domain.DailyCheckIn) [3]domain.MealPlanItem {
	toppings := DeriveToppings(c)
	var plan [3]domain.MealPlanItem

	for i := range mealSlots {
		tmpl := templateFor(i, profile.Goal)
		components := slices.Clone(tmpl.components)
		notes := []string{tmpl.reason}

		switch mealSlots[i].mealType {
		case domain.MealBreakfast:
			if profile.HasDisease(domain.DiseaseDiabetes) {
				components = stripSugar(components)
				notes = append(notes, diabetesNote)
			}
		case domain.MealLunch:
			if c.Digestion == domain.DigestionBloated || c.Digestion == domain.DigestionConstipation {
				notes = append(notes, digestionNote)
			}
		case domain.MealDinner:
			if profile.HasDisease(domain.DiseaseHypertension) {
				notes = append(notes, hypertensionNote)
			}
		}
		for _, t := range toppings {
			notes = append(notes, toppingNotes[t])
		}

		plan[i] = domain.MealPlanItem{
			MealType:   mealSlots[i].mealType,
			Suggestion: strings.Join(components, " + "),
			Reason:     strings.Join(notes, " "),
			Toppings:   slices.Clone(toppings),
		}
	}
	return plan
}
