package aggregator

import (
	"testing"

	"myetician/internal/domain/entity"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = civil.Date{Year: 2024, Month: 3, Day: 15} // Friday

func meal(name string, calories float64, mealType entity.MealType, date civil.Date) *entity.MealEntry {
	return &entity.MealEntry{
		Name:          name,
		Calories:      calories,
		Protein:       calories / 20,
		Carbohydrates: calories / 10,
		Fat:           calories / 40,
		MealType:      mealType,
		Date:          date,
	}
}

func TestMealsForDate(t *testing.T) {
	log := entity.NewDailyLog([]*entity.MealEntry{
		meal("Oats", 300, entity.MealBreakfast, day),
		meal("Soup", 200, entity.MealLunch, day),
	})

	got := MealsForDate(log, day)
	require.Len(t, got, 2)

	got[0] = nil
	assert.NotNil(t, log[day][0], "caller mutations must not reach the log")

	empty := MealsForDate(log, day.AddDays(1))
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestTotals_Empty(t *testing.T) {
	assert.Zero(t, TotalCalories(nil))
	assert.Equal(t, Macros{}, TotalMacros(nil))
	assert.Equal(t, Macros{}, TotalMacros([]*entity.MealEntry{}))
}

func TestTotals_SingleMeal(t *testing.T) {
	m := &entity.MealEntry{Calories: 450, Protein: 30, Carbohydrates: 40, Fat: 12}

	assert.Equal(t, 450.0, TotalCalories([]*entity.MealEntry{m}))
	assert.Equal(t, Macros{Protein: 30, Carbohydrates: 40, Fat: 12}, TotalMacros([]*entity.MealEntry{m}))
}

func TestTotals_OrderIndependent(t *testing.T) {
	a := meal("a", 120, "", day)
	b := meal("b", 480, "", day)
	c := meal("c", 250, "", day)

	forward := []*entity.MealEntry{a, b, c}
	reversed := []*entity.MealEntry{c, b, a}

	assert.Equal(t, TotalCalories(forward), TotalCalories(reversed))
	assert.InDelta(t, TotalMacros(forward).Protein, TotalMacros(reversed).Protein, 1e-9)
}

func TestMacroGoals(t *testing.T) {
	got := MacroGoals(2000)

	assert.InDelta(t, 150.0, got.Protein, 1e-9)
	assert.InDelta(t, 200.0, got.Carbohydrates, 1e-9)
	assert.InDelta(t, 66.666666, got.Fat, 1e-5)

	assert.Equal(t, Macros{}, MacroGoals(0))
}

func TestGroupByMealType(t *testing.T) {
	meals := []*entity.MealEntry{
		meal("Apple", 80, entity.MealSnack, day),
		meal("Leftovers", 300, "", day),
		meal("Eggs", 200, entity.MealBreakfast, day),
		meal("Mystery", 100, entity.MealType("Brunch"), day),
		meal("Toast", 150, entity.MealBreakfast, day),
	}

	groups := GroupByMealType(meals)

	require.Len(t, groups, 3)
	assert.Equal(t, entity.MealBreakfast, groups[0].Type)
	assert.Equal(t, 350.0, groups[0].Calories)
	assert.Equal(t, "Eggs", groups[0].Meals[0].Name)
	assert.Equal(t, "Toast", groups[0].Meals[1].Name)

	assert.Equal(t, entity.MealSnack, groups[1].Type)
	assert.Equal(t, 80.0, groups[1].Calories)

	assert.Equal(t, entity.MealGeneral, groups[2].Type)
	assert.Equal(t, 400.0, groups[2].Calories)
	assert.Len(t, groups[2].Meals, 2)
}

func TestGroupByMealType_Empty(t *testing.T) {
	assert.Empty(t, GroupByMealType(nil))
}

func TestWeeklySeries(t *testing.T) {
	log := entity.NewDailyLog([]*entity.MealEntry{
		meal("Dinner", 700, entity.MealDinner, day.AddDays(-2)),
		meal("Snack", 100, entity.MealSnack, day.AddDays(-2)),
		meal("Outside window", 999, "", day.AddDays(-7)),
	})

	series := WeeklySeries(log, day, 2200)

	require.Len(t, series, WeekLength)
	assert.Equal(t, day.AddDays(-6), series[0].Date)
	assert.Equal(t, day, series[6].Date)
	assert.Equal(t, "Sat", series[0].Label)
	assert.Equal(t, "Fri", series[6].Label)

	nonZero := 0
	for i, p := range series {
		assert.Equal(t, 2200.0, p.Goal)
		if p.Consumed != 0 {
			nonZero++
			assert.Equal(t, 4, i)
			assert.Equal(t, 800.0, p.Consumed)
		}
	}
	assert.Equal(t, 1, nonZero)
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 500.0, Remaining(2000, 1500))
	assert.Equal(t, 0.0, Remaining(2000, 2500))
	assert.Equal(t, 0.0, Remaining(0, 10))
}

func TestSummarizeDay_OverGoal(t *testing.T) {
	log := entity.NewDailyLog([]*entity.MealEntry{
		meal("Pizza", 1500, entity.MealDinner, day),
		meal("Cake", 1000, "", day),
	})

	summary := SummarizeDay(log, day, 2000)

	assert.Equal(t, 2500.0, summary.Consumed)
	assert.Equal(t, 0.0, summary.Remaining)
	assert.True(t, summary.OverGoal)
	assert.InDelta(t, 125.0, summary.PercentOfGoal, 1e-9)
	require.Len(t, summary.Groups, 2)
	assert.Equal(t, entity.MealDinner, summary.Groups[0].Type)
	assert.Equal(t, entity.MealGeneral, summary.Groups[1].Type)

	assert.InDelta(t, 125.0, summary.Macros.Consumed.Protein, 1e-9)
	assert.InDelta(t, 150.0, summary.Macros.Goal.Protein, 1e-9)
	assert.InDelta(t, 25.0, summary.Macros.Remaining.Protein, 1e-9)
	assert.InDelta(t, 0.0, summary.Macros.Remaining.Carbohydrates, 1e-9)
}

func TestSummarizeDay_NoGoal(t *testing.T) {
	summary := SummarizeDay(entity.DailyLog{}, day, 0)

	assert.Zero(t, summary.Consumed)
	assert.Zero(t, summary.PercentOfGoal)
	assert.False(t, summary.OverGoal)
	assert.Empty(t, summary.Meals)
	assert.Empty(t, summary.Groups)
}

func TestSummarizeRange(t *testing.T) {
	from := day.AddDays(-4)
	log := entity.NewDailyLog([]*entity.MealEntry{
		meal("a", 1900, "", from),
		meal("b", 2600, "", from.AddDays(1)),
		meal("c", 1000, "", from.AddDays(3)),
		meal("d", 1050, "", from.AddDays(4)),
		meal("outside", 5000, "", from.AddDays(5)),
	})

	summary := SummarizeRange(log, from, day, 2000)

	assert.Equal(t, 4, summary.DaysLogged)
	assert.Equal(t, 6550.0, summary.TotalCalories)
	assert.InDelta(t, 1637.5, summary.AverageCalories, 1e-9)
	require.NotNil(t, summary.HighestDay)
	require.NotNil(t, summary.LowestDay)
	assert.Equal(t, from.AddDays(1), summary.HighestDay.Date)
	assert.Equal(t, from.AddDays(3), summary.LowestDay.Date)
	assert.Equal(t, 1, summary.DaysOverGoal)
	assert.Equal(t, 1, summary.DaysWithinGoal)
	assert.InDelta(t, 25.0, summary.PercentWithinGoal, 1e-9)
	assert.Equal(t, Streak{Current: 2, Longest: 2}, summary.LoggingStreak)
}

func TestSummarizeRange_EmptyAndReversed(t *testing.T) {
	empty := SummarizeRange(entity.DailyLog{}, day.AddDays(-6), day, 2000)
	assert.Zero(t, empty.DaysLogged)
	assert.Nil(t, empty.HighestDay)
	assert.Empty(t, empty.Days)

	reversed := SummarizeRange(entity.DailyLog{}, day, day.AddDays(-1), 2000)
	assert.Zero(t, reversed.DaysLogged)
}
