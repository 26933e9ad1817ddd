package entity

import (
	"encoding/json"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityLevel_Factor(t *testing.T) {
	tests := []struct {
		level ActivityLevel
		want  float64
	}{
		{ActivitySedentary, 1.2},
		{ActivityLightlyActive, 1.375},
		{ActivityModeratelyActive, 1.55},
		{ActivityVeryActive, 1.725},
		{ActivityExtremelyActive, 1.9},
		{ActivityLevel("Couch"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.Factor())
			assert.Equal(t, tt.want != 0, tt.level.IsValid())
		})
	}
}

func TestIsActivityFactor(t *testing.T) {
	assert.True(t, IsActivityFactor(1.55))
	assert.False(t, IsActivityFactor(1.5))
	assert.False(t, IsActivityFactor(0))
}

func TestMealType_Group(t *testing.T) {
	assert.Equal(t, MealLunch, MealLunch.Group())
	assert.Equal(t, MealGeneral, MealType("").Group())
	assert.Equal(t, MealGeneral, MealType("Brunch").Group())

	assert.True(t, MealType("").IsValid())
	assert.False(t, MealGeneral.IsValid())
	assert.False(t, MealType("Brunch").IsValid())
}

func TestDailyLog_JSONRoundTripKeepsISOKeys(t *testing.T) {
	day := civil.Date{Year: 2024, Month: 3, Day: 15}
	log := NewDailyLog([]*MealEntry{
		{Name: "Oats", Calories: 300, Date: day},
		{Name: "Soup", Calories: 200, Date: day},
	})

	data, err := json.Marshal(log)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"2024-03-15":[`)

	var decoded DailyLog
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded[day], 2)
	assert.Equal(t, "Oats", decoded[day][0].Name)
	assert.Equal(t, "Soup", decoded[day][1].Name)
}

func TestDailyLog_Dates(t *testing.T) {
	log := DailyLog{
		{Year: 2024, Month: 3, Day: 2}: nil,
		{Year: 2023, Month: 12, Day: 31}: nil,
		{Year: 2024, Month: 1, Day: 5}: nil,
	}

	assert.Equal(t, []civil.Date{
		{Year: 2023, Month: 12, Day: 31},
		{Year: 2024, Month: 1, Day: 5},
		{Year: 2024, Month: 3, Day: 2},
	}, log.Dates())
}
