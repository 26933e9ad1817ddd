package calculator

import (
	"fmt"

	"myetician/internal/domain/entity"
	domainerrors "myetician/internal/domain/errors"

	"cloud.google.com/go/civil"
)

// Validate checks the caller-supplied fields of a profile without computing anything.
func Validate(p *entity.UserProfile, today civil.Date) error {
	if !p.Gender.IsValid() {
		return domainerrors.ErrInvalidGender.WithDetails(fmt.Sprintf("gender %q", p.Gender))
	}
	if !p.Goal.IsValid() {
		return domainerrors.ErrInvalidGoal.WithDetails(fmt.Sprintf("goal %q", p.Goal))
	}
	if p.ActivityLevel != "" && !p.ActivityLevel.IsValid() {
		return domainerrors.ErrInvalidActivityLevel.WithDetails(fmt.Sprintf("activity level %q", p.ActivityLevel))
	}
	if !p.Height.Unit.IsValid() || !p.CurrentWeight.Unit.IsValid() || !p.GoalWeight.Unit.IsValid() {
		return domainerrors.ErrInvalidUnit
	}
	if p.Height.Value <= 0 || p.CurrentWeight.Value <= 0 || p.GoalWeight.Value <= 0 {
		return domainerrors.ErrInvalidMeasurement
	}
	if !p.DateOfBirth.IsValid() || !p.DateOfBirth.Before(today) {
		return domainerrors.ErrInvalidBirthDate.WithDetails(p.DateOfBirth.String())
	}

	return ValidateIntensity(p.IntensityPercent)
}

// Derive computes age, BMR, TDEE and caloric goal for a profile as of today.
// When the profile names an activity level, its factor takes precedence over
// ActivityFactor.
func Derive(p *entity.UserProfile, today civil.Date) (entity.GoalMetrics, error) {
	if err := Validate(p, today); err != nil {
		return entity.GoalMetrics{}, err
	}

	factor := p.ActivityFactor
	if p.ActivityLevel != "" {
		factor = p.ActivityLevel.Factor()
	}

	age := CalculateAge(p.DateOfBirth, today)

	bmr, err := CalculateBMR(BMRInput{
		Gender: p.Gender,
		Weight: p.CurrentWeight,
		Height: p.Height,
		Age:    age,
	})
	if err != nil {
		return entity.GoalMetrics{}, err
	}

	tdee, err := CalculateTDEE(bmr, factor)
	if err != nil {
		return entity.GoalMetrics{}, err
	}

	goal, err := CalculateCaloricGoal(tdee, p.Goal, p.IntensityPercent)
	if err != nil {
		return entity.GoalMetrics{}, err
	}

	return entity.GoalMetrics{
		Age:         age,
		BMR:         bmr,
		TDEE:        tdee,
		CaloricGoal: goal,
	}, nil
}

// Apply derives metrics and writes them, together with the effective
// activity factor, back onto the profile. The profile is left untouched on error.
func Apply(p *entity.UserProfile, today civil.Date) error {
	metrics, err := Derive(p, today)
	if err != nil {
		return err
	}

	if p.ActivityLevel != "" {
		p.ActivityFactor = p.ActivityLevel.Factor()
	}
	p.Metrics = metrics

	return nil
}
