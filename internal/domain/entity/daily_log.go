package entity

import (
	"slices"

	"cloud.google.com/go/civil"
)

// DailyLog maps a calendar date to the meals logged on it, in insertion order.
// It encodes to JSON as an object keyed by YYYY-MM-DD.
type DailyLog map[civil.Date][]*MealEntry

// NewDailyLog buckets meals by their log date. Meals keep the relative order
// they were given in.
func NewDailyLog(meals []*MealEntry) DailyLog {
	log := make(DailyLog)
	for _, m := range meals {
		log.Add(m)
	}

	return log
}

// Add appends a meal under its date.
func (l DailyLog) Add(meal *MealEntry) {
	l[meal.Date] = append(l[meal.Date], meal)
}

// Dates returns the keys in chronological order.
func (l DailyLog) Dates() []civil.Date {
	dates := make([]civil.Date, 0, len(l))
	for d := range l {
		dates = append(dates, d)
	}
	slices.SortFunc(dates, func(a, b civil.Date) int {
		return a.Compare(b)
	})

	return dates
}
