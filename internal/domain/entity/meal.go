package entity

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// MealType tags a meal with the part of the day it belongs to.
// The zero value means the meal is untagged.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
	// MealGeneral is a grouping label only; it is never stored on a meal.
	MealGeneral MealType = "General"
)

// MealGroupOrder is the fixed display order of meal groups.
var MealGroupOrder = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack, MealGeneral}

// IsValid reports whether t may be stored on a meal. Untagged is valid.
func (t MealType) IsValid() bool {
	switch t {
	case "", MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	default:
		return false
	}
}

// Group returns the bucket the meal is shown under.
func (t MealType) Group() MealType {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return t
	default:
		return MealGeneral
	}
}

// MealEntry is one logged meal. Entries are appended or deleted, never edited.
type MealEntry struct {
	ID            uuid.UUID  `json:"id"`
	UserID        string     `json:"user_id"`
	Name          string     `json:"name"`
	Calories      float64    `json:"calories"`
	Protein       float64    `json:"protein"`
	Carbohydrates float64    `json:"carbohydrates"`
	Fat           float64    `json:"fat"`
	MealType      MealType   `json:"meal_type,omitempty"`
	Date          civil.Date `json:"date"`
	CreatedAt     time.Time  `json:"created_at"`
}
