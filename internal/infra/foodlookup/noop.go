package foodlookup

import (
	"context"

	"myetician/internal/domain/entity"
	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/service"
)

// disabledLookup answers every call with ErrFoodLookupUnavailable.
type disabledLookup struct{}

// NewDisabled returns the lookup used when no model is configured.
func NewDisabled() service.FoodLookupService {
	return disabledLookup{}
}

func (disabledLookup) SearchFood(context.Context, string) ([]entity.FoodCandidate, error) {
	return nil, domainerrors.ErrFoodLookupUnavailable
}

func (disabledLookup) AnalyzeMealPhoto(context.Context, string) (*entity.PhotoAnalysis, error) {
	return nil, domainerrors.ErrFoodLookupUnavailable
}

func (disabledLookup) SuggestMeals(context.Context, []*entity.MealEntry, string) ([]entity.MealSuggestion, error) {
	return nil, domainerrors.ErrFoodLookupUnavailable
}
