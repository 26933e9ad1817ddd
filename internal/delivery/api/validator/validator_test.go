package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mealRequest struct {
	Name     string   `json:"name" validate:"required,max=10"`
	Calories *float64 `json:"calories" validate:"required,gte=0"`
	MealType string   `json:"meal_type" validate:"omitempty,oneof=Breakfast Lunch"`
	Date     string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Inner    struct {
		Value float64 `json:"value" validate:"gt=0"`
	} `json:"inner"`
}

func TestValidate(t *testing.T) {
	v := New()
	calories := 100.0

	valid := mealRequest{Name: "Toast", Calories: &calories, MealType: "Lunch", Date: "2024-03-15"}
	valid.Inner.Value = 1
	require.NoError(t, v.Validate(&valid))

	negative := -1.0
	invalid := mealRequest{Name: "", Calories: &negative, MealType: "Brunch", Date: "15/03/2024"}

	err := v.Validate(&invalid)
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"name":        "is required",
		"calories":    "must be at least 0",
		"meal_type":   "must be one of: Breakfast, Lunch",
		"date":        "must be a date formatted as YYYY-MM-DD",
		"inner.value": "must be greater than 0",
	}, FieldErrors(err))
}

func TestFieldErrors_NotValidation(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
