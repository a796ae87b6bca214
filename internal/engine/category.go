package engine

import "github.com/alexanderramin/antigravity/internal/domain"

// CategoryRule is one step of the category cascade. Pick is only consulted
// when Match returns true.
type CategoryRule struct {
	Name  string
	Match func(c *domain.DailyCheckIn) bool
	Pick  func(c *domain.DailyCheckIn) domain.Category
}

func always(cat domain.Category) func(*domain.DailyCheckIn) domain.Category {
	return func(*domain.DailyCheckIn) domain.Category { return cat }
}

// CategoryRules is the cascade in priority order. The first match wins.
// Air quality and hard location limits sit above mood and weather preferences.
var CategoryRules = []CategoryRule{
	{
		Name:  "stuffy_air",
		Match: func(c *domain.DailyCheckIn) bool { return c.Environment.AirQuality == domain.AirStuffy },
		Pick:  always(domain.CategoryPH),
	},
	{
		Name:  "indoor_only",
		Match: func(c *domain.DailyCheckIn) bool { return c.Environment.ActivityLocation == domain.LocationIndoor },
		Pick:  always(domain.CategoryPH),
	},
	{
		Name: "extreme_temperature",
		Match: func(c *domain.DailyCheckIn) bool {
			t := c.Environment.TemperatureFeel
			return t == domain.TempCold || t == domain.TempHot
		},
		Pick: func(c *domain.DailyCheckIn) domain.Category {
			env := c.Environment
			if env.ActivityLocation.AllowsOutdoor() &&
				env.PerceivedWeather == domain.WeatherSunny &&
				env.TemperatureFeel != domain.TempHot {
				return domain.CategorySO
			}
			return domain.CategoryTF
		},
	},
	{
		Name: "stress_or_gloomy",
		Match: func(c *domain.DailyCheckIn) bool {
			w := c.Environment.PerceivedWeather
			return c.Stress == domain.StressHigh || w == domain.WeatherCloudy || w == domain.WeatherRainy
		},
		Pick: always(domain.CategoryMB),
	},
	{
		Name: "sunny_outdoor",
		Match: func(c *domain.DailyCheckIn) bool {
			return c.Environment.PerceivedWeather == domain.WeatherSunny && c.Environment.ActivityLocation.AllowsOutdoor()
		},
		Pick: always(domain.CategorySO),
	},
	{
		Name:  "default",
		Match: func(*domain.DailyCheckIn) bool { return true },
		Pick:  always(domain.CategoryMB),
	},
}

// MatchCategory runs the cascade and also reports which rule decided.
func MatchCategory(c *domain.DailyCheckIn) (domain.Category, string) {
	for _, rule := range CategoryRules {
		if rule.Match(c) {
			return rule.Pick(c), rule.Name
		}
	}
	// unreachable: the last rule always matches
	return domain.CategoryMB, "default"
}

func SelectCategory(c *domain.DailyCheckIn) domain.Category {
	cat, _ := MatchCategory(c)
	return cat
}

// CategoryReason explains the category in terms of the facts that triggered it.
func CategoryReason(cat domain.Category, c *domain.DailyCheckIn) string {
	env := c.Environment
	switch cat {
	case domain.CategoryPH:
		if env.AirQuality == domain.AirStuffy {
			return "The air feels stuffy today, so an indoor workout is the safer choice."
		}
		return "Here is a routine you can do comfortably indoors."
	case domain.CategorySO:
		return "Clear skies today! Exercising in the sun gets you vitamin D and lifts your mood."
	case domain.CategoryMB:
		if c.Stress == domain.StressHigh {
			return "Your stress is high today, so this routine focuses on lifting your mood."
		}
		if env.PerceivedWeather == domain.WeatherRainy {
			return "It's a rainy day, but you can still move and feel good."
		}
		return "A mood-boosting routine for general wellbeing."
	case domain.CategoryTF:
		if env.TemperatureFeel == domain.TempHot {
			return "It's hot today. Keep the effort moderate and don't overdo it."
		}
		return "It's cold today, so warm up well and train somewhere warm."
	default:
		return "A routine matched to how you feel today."
	}
}
