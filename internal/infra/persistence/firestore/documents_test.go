package firestore

import (
	"testing"
	"time"

	"myetician/internal/domain/entity"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileDoc_RoundTrip(t *testing.T) {
	in := &entity.UserProfile{
		UserID:           "uid-1",
		FirstName:        "Kai",
		Gender:           entity.GenderMale,
		DateOfBirth:      civil.Date{Year: 1988, Month: 11, Day: 30},
		Goal:             entity.GoalLoseWeight,
		ActivityLevel:    entity.ActivitySedentary,
		ActivityFactor:   1.2,
		Height:           entity.Height{Value: 182, Unit: entity.HeightCentimeters},
		CurrentWeight:    entity.Weight{Value: 95, Unit: entity.WeightKilograms},
		GoalWeight:       entity.Weight{Value: 85, Unit: entity.WeightKilograms},
		IntensityPercent: 25,
		Metrics:          entity.GoalMetrics{Age: 35, BMR: 1950, TDEE: 2340, CaloricGoal: 1755},
		CreatedAt:        time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
	}

	doc := fromProfileDomain(in)
	assert.Equal(t, "1988-11-30", doc.DateOfBirth)

	out, err := toProfileDomain("uid-1", doc)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestMealDoc_RoundTrip(t *testing.T) {
	in := &entity.MealEntry{
		ID:            uuid.New(),
		UserID:        "uid-1",
		Name:          "Burrito",
		Calories:      780,
		Protein:       35,
		Carbohydrates: 90,
		Fat:           28,
		MealType:      entity.MealLunch,
		Date:          civil.Date{Year: 2024, Month: 3, Day: 15},
		CreatedAt:     time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC),
	}

	doc := fromMealDomain(in)
	assert.Equal(t, "2024-03-15", doc.Date)

	out, err := toMealDomain("uid-1", in.ID.String(), doc)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestMealDoc_RejectsBadIDs(t *testing.T) {
	_, err := toMealDomain("uid-1", "not-a-uuid", &mealDoc{Date: "2024-03-15"})
	assert.Error(t, err)

	_, err = toMealDomain("uid-1", uuid.NewString(), &mealDoc{Date: "15/03/2024"})
	assert.Error(t, err)
}
