package aggregator

import (
	"myetician/internal/domain/entity"

	"cloud.google.com/go/civil"
)

// withinGoalTolerance is how far a day's calories may sit from the goal and
// still count as on target.
const withinGoalTolerance = 0.10

// MacroProgress compares consumed macros to their goals.
type MacroProgress struct {
	Consumed  Macros `json:"consumed"`
	Goal      Macros `json:"goal"`
	Remaining Macros `json:"remaining"`
}

// DaySummary is everything the dashboard shows for one day.
type DaySummary struct {
	Date          civil.Date          `json:"date"`
	Meals         []*entity.MealEntry `json:"meals"`
	Groups        []MealGroup         `json:"groups"`
	Consumed      float64             `json:"consumed"`
	Goal          float64             `json:"goal"`
	Remaining     float64             `json:"remaining"`
	PercentOfGoal float64             `json:"percent_of_goal"`
	OverGoal      bool                `json:"over_goal"`
	Macros        MacroProgress       `json:"macros"`
}

// SummarizeDay builds the dashboard view of date against a caloric goal.
func SummarizeDay(log entity.DailyLog, date civil.Date, goal float64) DaySummary {
	meals := MealsForDate(log, date)
	consumed := TotalCalories(meals)
	macros := TotalMacros(meals)
	macroGoals := MacroGoals(goal)

	var percent float64
	if goal > 0 {
		percent = consumed / goal * 100
	}

	return DaySummary{
		Date:          date,
		Meals:         meals,
		Groups:        GroupByMealType(meals),
		Consumed:      consumed,
		Goal:          goal,
		Remaining:     Remaining(goal, consumed),
		PercentOfGoal: percent,
		OverGoal:      consumed > goal,
		Macros: MacroProgress{
			Consumed: macros,
			Goal:     macroGoals,
			Remaining: Macros{
				Protein:       Remaining(macroGoals.Protein, macros.Protein),
				Carbohydrates: Remaining(macroGoals.Carbohydrates, macros.Carbohydrates),
				Fat:           Remaining(macroGoals.Fat, macros.Fat),
			},
		},
	}
}

// DayTotal is the rollup of one logged day.
type DayTotal struct {
	Date     civil.Date `json:"date"`
	Calories float64    `json:"calories"`
	Macros   Macros     `json:"macros"`
	Meals    int        `json:"meals"`
}

// Streak counts consecutive days ending at the range end (Current) and the
// longest run anywhere in the range (Longest).
type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// RangeSummary reports intake over an inclusive date range.
type RangeSummary struct {
	From              civil.Date `json:"from"`
	To                civil.Date `json:"to"`
	Goal              float64    `json:"goal"`
	Days              []DayTotal `json:"days"`
	TotalCalories     float64    `json:"total_calories"`
	TotalMacros       Macros     `json:"total_macros"`
	DaysLogged        int        `json:"days_logged"`
	AverageCalories   float64    `json:"average_calories"`
	AverageMacros     Macros     `json:"average_macros"`
	HighestDay        *DayTotal  `json:"highest_day,omitempty"`
	LowestDay         *DayTotal  `json:"lowest_day,omitempty"`
	DaysOverGoal      int        `json:"days_over_goal"`
	DaysWithinGoal    int        `json:"days_within_goal"`
	PercentWithinGoal float64    `json:"percent_within_goal"`
	LoggingStreak     Streak     `json:"logging_streak"`
}

// SummarizeRange rolls up every logged day in [from, to]. Days without meals
// are excluded from averages and extremes but break the logging streak.
// A reversed range yields an empty summary.
func SummarizeRange(log entity.DailyLog, from, to civil.Date, goal float64) RangeSummary {
	summary := RangeSummary{
		From: from,
		To:   to,
		Goal: goal,
		Days: []DayTotal{},
	}

	run := 0
	for day := from; !day.After(to); day = day.AddDays(1) {
		meals := log[day]
		if len(meals) == 0 {
			run = 0

			continue
		}

		run++
		summary.LoggingStreak.Longest = max(summary.LoggingStreak.Longest, run)

		total := DayTotal{
			Date:     day,
			Calories: TotalCalories(meals),
			Macros:   TotalMacros(meals),
			Meals:    len(meals),
		}
		summary.Days = append(summary.Days, total)

		summary.TotalCalories += total.Calories
		summary.TotalMacros.Protein += total.Macros.Protein
		summary.TotalMacros.Carbohydrates += total.Macros.Carbohydrates
		summary.TotalMacros.Fat += total.Macros.Fat

		if goal > 0 {
			if total.Calories > goal {
				summary.DaysOverGoal++
			}
			if withinTolerance(total.Calories, goal) {
				summary.DaysWithinGoal++
			}
		}
	}
	summary.LoggingStreak.Current = run

	summary.DaysLogged = len(summary.Days)
	if summary.DaysLogged == 0 {
		return summary
	}

	n := float64(summary.DaysLogged)
	summary.AverageCalories = summary.TotalCalories / n
	summary.AverageMacros = Macros{
		Protein:       summary.TotalMacros.Protein / n,
		Carbohydrates: summary.TotalMacros.Carbohydrates / n,
		Fat:           summary.TotalMacros.Fat / n,
	}
	if goal > 0 {
		summary.PercentWithinGoal = float64(summary.DaysWithinGoal) / n * 100
	}
	summary.HighestDay, summary.LowestDay = extremeDays(summary.Days)

	return summary
}

// extremeDays picks the highest and lowest calorie days. Ties go to the
// earlier day.
func extremeDays(days []DayTotal) (highest, lowest *DayTotal) {
	for i := range days {
		if highest == nil || days[i].Calories > highest.Calories {
			highest = &days[i]
		}
		if lowest == nil || days[i].Calories < lowest.Calories {
			lowest = &days[i]
		}
	}

	return highest, lowest
}

func withinTolerance(actual, target float64) bool {
	return actual >= target*(1-withinGoalTolerance) && actual <= target*(1+withinGoalTolerance)
}
