package calculator

import (
	"testing"

	"myetician/internal/domain/entity"
	domainerrors "myetician/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile() *entity.UserProfile {
	return &entity.UserProfile{
		UserID:           "user-1",
		FirstName:        "Alex",
		Gender:           entity.GenderMale,
		DateOfBirth:      date(1994, 1, 10),
		Goal:             entity.GoalLoseWeight,
		ActivityLevel:    entity.ActivityModeratelyActive,
		Height:           entity.Height{Value: 180, Unit: entity.HeightCentimeters},
		CurrentWeight:    entity.Weight{Value: 80, Unit: entity.WeightKilograms},
		GoalWeight:       entity.Weight{Value: 75, Unit: entity.WeightKilograms},
		IntensityPercent: 20,
	}
}

func TestDerive(t *testing.T) {
	metrics, err := Derive(newProfile(), date(2024, 6, 1))
	require.NoError(t, err)

	assert.Equal(t, 30, metrics.Age)
	assert.InDelta(t, 1853.632, metrics.BMR, 1e-9)
	assert.InDelta(t, 1853.632*1.55, metrics.TDEE, 1e-9)
	assert.InDelta(t, 1853.632*1.55*0.8, metrics.CaloricGoal, 1e-9)
}

func TestDerive_Idempotent(t *testing.T) {
	p := newProfile()
	today := date(2024, 6, 1)

	first, err := Derive(p, today)
	require.NoError(t, err)
	second, err := Derive(p, today)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDerive_UsesActivityFactorWithoutLevel(t *testing.T) {
	p := newProfile()
	p.ActivityLevel = ""
	p.ActivityFactor = 1.2

	metrics, err := Derive(p, date(2024, 6, 1))
	require.NoError(t, err)
	assert.InDelta(t, 1853.632*1.2, metrics.TDEE, 1e-9)

	p.ActivityFactor = 1.3
	_, err = Derive(p, date(2024, 6, 1))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidActivityFactor)
}

func TestDerive_RejectsInvalidProfiles(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *entity.UserProfile)
		wantErr error
	}{
		{
			name:    "unknown gender",
			mutate:  func(p *entity.UserProfile) { p.Gender = "nonbinary" },
			wantErr: domainerrors.ErrInvalidGender,
		},
		{
			name:    "unknown goal",
			mutate:  func(p *entity.UserProfile) { p.Goal = "Get shredded" },
			wantErr: domainerrors.ErrInvalidGoal,
		},
		{
			name:    "unknown activity level",
			mutate:  func(p *entity.UserProfile) { p.ActivityLevel = "Athlete" },
			wantErr: domainerrors.ErrInvalidActivityLevel,
		},
		{
			name:    "unknown weight unit",
			mutate:  func(p *entity.UserProfile) { p.GoalWeight.Unit = "st" },
			wantErr: domainerrors.ErrInvalidUnit,
		},
		{
			name:    "zero height",
			mutate:  func(p *entity.UserProfile) { p.Height.Value = 0 },
			wantErr: domainerrors.ErrInvalidMeasurement,
		},
		{
			name:    "birth date in the future",
			mutate:  func(p *entity.UserProfile) { p.DateOfBirth = date(2030, 1, 1) },
			wantErr: domainerrors.ErrInvalidBirthDate,
		},
		{
			name:    "intensity above 50",
			mutate:  func(p *entity.UserProfile) { p.IntensityPercent = 75 },
			wantErr: domainerrors.ErrInvalidIntensity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProfile()
			tt.mutate(p)

			_, err := Derive(p, date(2024, 6, 1))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApply(t *testing.T) {
	p := newProfile()

	require.NoError(t, Apply(p, date(2024, 6, 1)))

	assert.Equal(t, 1.55, p.ActivityFactor)
	assert.Equal(t, 30, p.Metrics.Age)
	assert.Greater(t, p.Metrics.CaloricGoal, 0.0)
}

func TestApply_LeavesProfileOnError(t *testing.T) {
	p := newProfile()
	p.IntensityPercent = 60

	err := Apply(p, date(2024, 6, 1))

	require.Error(t, err)
	assert.Equal(t, entity.GoalMetrics{}, p.Metrics)
	assert.Zero(t, p.ActivityFactor)
}
