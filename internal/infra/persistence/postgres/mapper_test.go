package postgres

import (
	"testing"
	"time"

	"myetician/internal/domain/entity"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileMapping_RoundTrip(t *testing.T) {
	in := &entity.UserProfile{
		UserID:           "user-1",
		FirstName:        "Sam",
		Gender:           entity.GenderFemale,
		DateOfBirth:      civil.Date{Year: 1990, Month: 5, Day: 2},
		Goal:             entity.GoalBuildMuscle,
		ActivityLevel:    entity.ActivityVeryActive,
		ActivityFactor:   1.725,
		Height:           entity.Height{Value: 66, Unit: entity.HeightFeet},
		CurrentWeight:    entity.Weight{Value: 140, Unit: entity.WeightPounds},
		GoalWeight:       entity.Weight{Value: 150, Unit: entity.WeightPounds},
		IntensityPercent: 10,
		Metrics:          entity.GoalMetrics{Age: 34, BMR: 1400, TDEE: 2415, CaloricGoal: 2656.5},
	}

	m := fromProfileDomain(in)
	assert.Equal(t, "user-1", m.ID)
	assert.Equal(t, "ft", m.HeightUnit)
	assert.Equal(t, 34, m.Age)

	assert.Equal(t, in, toProfileDomain(m))
}

func TestMealMapping_UntaggedIsNull(t *testing.T) {
	in := &entity.MealEntry{
		ID:        uuid.New(),
		UserID:    "user-1",
		Name:      "Leftovers",
		Calories:  420,
		Date:      civil.Date{Year: 2024, Month: 3, Day: 15},
		CreatedAt: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
	}

	m := fromMealDomain(in)
	assert.Nil(t, m.MealType)
	assert.Equal(t, in, toMealDomain(m))

	in.MealType = entity.MealDinner
	m = fromMealDomain(in)
	require.NotNil(t, m.MealType)
	assert.Equal(t, "Dinner", *m.MealType)
	assert.Equal(t, in, toMealDomain(m))
}
