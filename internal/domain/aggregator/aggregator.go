// Package aggregator turns a DailyLog into the totals, groupings and series
// shown on the dashboard. Functions never mutate their input and treat
// missing or empty data as zero.
package aggregator

import (
	"math"
	"slices"
	"time"

	"myetician/internal/domain/entity"

	"cloud.google.com/go/civil"
)

const (
	proteinShare      = 0.30
	carbohydrateShare = 0.40
	fatShare          = 0.30

	caloriesPerGramProtein      = 4.0
	caloriesPerGramCarbohydrate = 4.0
	caloriesPerGramFat          = 9.0

	// WeekLength is the number of points in a weekly series.
	WeekLength = 7
)

// Macros holds grams of each macronutrient.
type Macros struct {
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}

// MealGroup is the meals of one meal type with their calorie subtotal.
type MealGroup struct {
	Type     entity.MealType     `json:"type"`
	Meals    []*entity.MealEntry `json:"meals"`
	Calories float64             `json:"calories"`
}

// SeriesPoint is one day of a chart series.
type SeriesPoint struct {
	Date     civil.Date `json:"date"`
	Label    string     `json:"label"`
	Consumed float64    `json:"consumed"`
	Goal     float64    `json:"goal"`
}

// MealsForDate returns a copy of the meals logged on date, or an empty slice.
func MealsForDate(log entity.DailyLog, date civil.Date) []*entity.MealEntry {
	meals := log[date]
	if len(meals) == 0 {
		return []*entity.MealEntry{}
	}

	return slices.Clone(meals)
}

// TotalCalories sums the calories of meals.
func TotalCalories(meals []*entity.MealEntry) float64 {
	var total float64
	for _, m := range meals {
		total += m.Calories
	}

	return total
}

// TotalMacros sums the macronutrients of meals.
func TotalMacros(meals []*entity.MealEntry) Macros {
	var total Macros
	for _, m := range meals {
		total.Protein += m.Protein
		total.Carbohydrates += m.Carbohydrates
		total.Fat += m.Fat
	}

	return total
}

// MacroGoals splits a caloric goal 30/40/30 across protein, carbohydrate and
// fat and converts each share to grams.
func MacroGoals(caloricGoal float64) Macros {
	return Macros{
		Protein:       caloricGoal * proteinShare / caloriesPerGramProtein,
		Carbohydrates: caloricGoal * carbohydrateShare / caloriesPerGramCarbohydrate,
		Fat:           caloricGoal * fatShare / caloriesPerGramFat,
	}
}

// GroupByMealType buckets meals in MealGroupOrder. Untagged or unrecognised
// meals go to General. Empty groups are omitted.
func GroupByMealType(meals []*entity.MealEntry) []MealGroup {
	buckets := make(map[entity.MealType]*MealGroup, len(entity.MealGroupOrder))
	for _, m := range meals {
		key := m.MealType.Group()
		g, ok := buckets[key]
		if !ok {
			g = &MealGroup{Type: key}
			buckets[key] = g
		}
		g.Meals = append(g.Meals, m)
		g.Calories += m.Calories
	}

	groups := make([]MealGroup, 0, len(buckets))
	for _, t := range entity.MealGroupOrder {
		if g, ok := buckets[t]; ok {
			groups = append(groups, *g)
		}
	}

	return groups
}

// WeeklySeries returns seven points ending on endDate, oldest first.
func WeeklySeries(log entity.DailyLog, endDate civil.Date, goal float64) []SeriesPoint {
	points := make([]SeriesPoint, 0, WeekLength)
	for offset := WeekLength - 1; offset >= 0; offset-- {
		day := endDate.AddDays(-offset)
		points = append(points, SeriesPoint{
			Date:     day,
			Label:    WeekdayLabel(day),
			Consumed: TotalCalories(log[day]),
			Goal:     goal,
		})
	}

	return points
}

// WeekdayLabel returns the short English weekday name, e.g. "Mon".
func WeekdayLabel(d civil.Date) string {
	return d.In(time.UTC).Format("Mon")
}

// Remaining is what is left of goal after consumed, floored at zero.
func Remaining(goal, consumed float64) float64 {
	return math.Max(0, goal-consumed)
}
