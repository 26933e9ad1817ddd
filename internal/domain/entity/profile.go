// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"cloud.google.com/go/civil"
)

// Gender selects the BMR equation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

// Goal is the direction the user wants their weight to move in.
type Goal string

const (
	GoalBuildMuscle    Goal = "Build muscle"
	GoalMaintainWeight Goal = "Maintain weight"
	GoalLoseWeight     Goal = "Lose weight"
)

func (g Goal) IsValid() bool {
	switch g {
	case GoalBuildMuscle, GoalMaintainWeight, GoalLoseWeight:
		return true
	default:
		return false
	}
}

// ActivityLevel is a coarse description of daily activity. Each level maps
// to exactly one TDEE multiplier.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "Sedentary"
	ActivityLightlyActive    ActivityLevel = "Lightly active"
	ActivityModeratelyActive ActivityLevel = "Moderately active"
	ActivityVeryActive       ActivityLevel = "Very active"
	ActivityExtremelyActive  ActivityLevel = "Extremely active"
)

var activityFactors = map[ActivityLevel]float64{
	ActivitySedentary:        1.2,
	ActivityLightlyActive:    1.375,
	ActivityModeratelyActive: 1.55,
	ActivityVeryActive:       1.725,
	ActivityExtremelyActive:  1.9,
}

// ActivityLevels lists the levels from least to most active.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLightlyActive,
	ActivityModeratelyActive,
	ActivityVeryActive,
	ActivityExtremelyActive,
}

func (a ActivityLevel) IsValid() bool {
	_, ok := activityFactors[a]

	return ok
}

// Factor returns the TDEE multiplier for the level, or 0 when the level is unknown.
func (a ActivityLevel) Factor() float64 {
	return activityFactors[a]
}

// IsActivityFactor reports whether f is one of the five supported multipliers.
func IsActivityFactor(f float64) bool {
	for _, v := range activityFactors {
		if v == f {
			return true
		}
	}

	return false
}

// HeightUnit is the unit a height value was entered in.
type HeightUnit string

const (
	HeightCentimeters HeightUnit = "cm"
	// HeightFeet values hold the total height in inches; the unit keeps the
	// label the client shows.
	HeightFeet HeightUnit = "ft"
)

func (u HeightUnit) IsValid() bool {
	return u == HeightCentimeters || u == HeightFeet
}

// WeightUnit is the unit a weight value was entered in.
type WeightUnit string

const (
	WeightKilograms WeightUnit = "kg"
	WeightPounds    WeightUnit = "lbs"
)

func (u WeightUnit) IsValid() bool {
	return u == WeightKilograms || u == WeightPounds
}

// Height is a measurement that always carries its unit.
type Height struct {
	Value float64    `json:"value"`
	Unit  HeightUnit `json:"unit"`
}

// Weight is a measurement that always carries its unit.
type Weight struct {
	Value float64    `json:"value"`
	Unit  WeightUnit `json:"unit"`
}

// GoalMetrics holds the values derived from a profile.
type GoalMetrics struct {
	Age         int     `json:"age"`
	BMR         float64 `json:"bmr"`
	TDEE        float64 `json:"tdee"`
	CaloricGoal float64 `json:"caloric_goal"`
}

// UserProfile is the biometric profile a user builds during onboarding.
// Metrics is derived and must be refreshed whenever another field changes.
type UserProfile struct {
	UserID           string        `json:"user_id"`
	FirstName        string        `json:"first_name"`
	Gender           Gender        `json:"gender"`
	DateOfBirth      civil.Date    `json:"date_of_birth"`
	Goal             Goal          `json:"goal"`
	ActivityLevel    ActivityLevel `json:"activity_level"`
	ActivityFactor   float64       `json:"activity_factor"`
	Height           Height        `json:"height"`
	CurrentWeight    Weight        `json:"current_weight"`
	GoalWeight       Weight        `json:"goal_weight"`
	IntensityPercent float64       `json:"intensity_percent"`
	Metrics          GoalMetrics   `json:"metrics"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
