package usecase

import (
	"context"

	"myetician/internal/domain/entity"
)

// FoodUsecase defines the interface for assisted meal entry.
type FoodUsecase interface {
	SearchFood(ctx context.Context, query string) ([]entity.FoodCandidate, error)
	// AnalyzeMealPhoto returns the estimate rounded to whole numbers.
	AnalyzeMealPhoto(ctx context.Context, dataURI string) (*entity.PhotoAnalysis, error)
	// SuggestMeals proposes meals from the user's recent log and stated preferences.
	SuggestMeals(ctx context.Context, userID, preferences string) ([]entity.MealSuggestion, error)
}
