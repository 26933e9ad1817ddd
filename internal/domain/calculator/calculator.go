// Package calculator derives age, BMR, TDEE and the daily caloric goal from a
// user profile. Every function is pure; "today" is always supplied by the caller.
package calculator

import (
	"fmt"
	"math"

	"myetician/internal/domain/entity"
	domainerrors "myetician/internal/domain/errors"

	"cloud.google.com/go/civil"
)

const (
	poundsToKilograms = 0.453592
	inchesToCm        = 2.54

	// MaxSurplus caps the daily surplus when building muscle.
	MaxSurplus = 500.0
	// MaxDeficit caps the daily deficit when losing weight.
	MaxDeficit = 750.0
	// MaxIntensityPercent is the highest accepted intensity.
	MaxIntensityPercent = 50.0
)

// BMRInput is everything the BMR equations need.
type BMRInput struct {
	Gender entity.Gender
	Weight entity.Weight
	Height entity.Height
	Age    int
}

// CalculateAge returns whole years between dob and today. The birthday itself
// counts as the day the age increments.
func CalculateAge(dob, today civil.Date) int {
	age := today.Year - dob.Year
	if today.Month < dob.Month || (today.Month == dob.Month && today.Day < dob.Day) {
		age--
	}

	return age
}

// WeightInKilograms normalizes a weight to kilograms.
func WeightInKilograms(w entity.Weight) (float64, error) {
	switch w.Unit {
	case entity.WeightKilograms:
		return w.Value, nil
	case entity.WeightPounds:
		return w.Value * poundsToKilograms, nil
	default:
		return 0, domainerrors.ErrInvalidUnit.WithDetails(fmt.Sprintf("weight unit %q", w.Unit))
	}
}

// HeightInCentimeters normalizes a height to centimeters. Values in the "ft"
// unit hold total inches.
func HeightInCentimeters(h entity.Height) (float64, error) {
	switch h.Unit {
	case entity.HeightCentimeters:
		return h.Value, nil
	case entity.HeightFeet:
		return h.Value * inchesToCm, nil
	default:
		return 0, domainerrors.ErrInvalidUnit.WithDetails(fmt.Sprintf("height unit %q", h.Unit))
	}
}

// CalculateBMR applies the revised Harris-Benedict equation.
func CalculateBMR(in BMRInput) (float64, error) {
	kg, err := WeightInKilograms(in.Weight)
	if err != nil {
		return 0, err
	}
	cm, err := HeightInCentimeters(in.Height)
	if err != nil {
		return 0, err
	}
	age := float64(in.Age)

	switch in.Gender {
	case entity.GenderMale:
		return 88.362 + 13.397*kg + 4.799*cm - 5.677*age, nil
	case entity.GenderFemale:
		return 447.593 + 9.247*kg + 3.098*cm - 4.330*age, nil
	default:
		return 0, domainerrors.ErrInvalidGender.WithDetails(fmt.Sprintf("gender %q", in.Gender))
	}
}

// CalculateTDEE scales a BMR by an activity factor.
func CalculateTDEE(bmr, activityFactor float64) (float64, error) {
	if !entity.IsActivityFactor(activityFactor) {
		return 0, domainerrors.ErrInvalidActivityFactor.WithDetails(fmt.Sprintf("factor %v", activityFactor))
	}

	return bmr * activityFactor, nil
}

// CalculateCaloricGoal turns a TDEE into a daily target. The intensity is a
// percentage of TDEE, capped at MaxSurplus or MaxDeficit.
func CalculateCaloricGoal(tdee float64, goal entity.Goal, intensityPercent float64) (float64, error) {
	if err := ValidateIntensity(intensityPercent); err != nil {
		return 0, err
	}

	change := tdee * (intensityPercent / 100)

	switch goal {
	case entity.GoalBuildMuscle:
		return tdee + math.Min(change, MaxSurplus), nil
	case entity.GoalLoseWeight:
		return tdee - math.Min(change, MaxDeficit), nil
	case entity.GoalMaintainWeight:
		return tdee, nil
	default:
		return 0, domainerrors.ErrInvalidGoal.WithDetails(fmt.Sprintf("goal %q", goal))
	}
}

// ValidateIntensity checks that an intensity is a whole percent in
// [0, MaxIntensityPercent].
func ValidateIntensity(intensityPercent float64) error {
	if math.IsNaN(intensityPercent) || intensityPercent < 0 || intensityPercent > MaxIntensityPercent ||
		intensityPercent != math.Trunc(intensityPercent) {
		return domainerrors.ErrInvalidIntensity.WithDetails(fmt.Sprintf("intensity %v", intensityPercent))
	}

	return nil
}
