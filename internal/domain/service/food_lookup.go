// Package service declares the collaborators the use cases depend on.
package service

import (
	"context"

	"myetician/internal/domain/entity"
)

// MinSearchQueryLength is the shortest query worth sending to a lookup.
const MinSearchQueryLength = 2

// MaxSearchResults caps the candidates returned by a food search.
const MaxSearchResults = 5

// FoodLookupService estimates nutrition for free text, photos and meal ideas.
type FoodLookupService interface {
	// SearchFood returns up to MaxSearchResults candidates for query.
	SearchFood(ctx context.Context, query string) ([]entity.FoodCandidate, error)

	// AnalyzeMealPhoto estimates nutrition for a photo given as a base64 data URI.
	AnalyzeMealPhoto(ctx context.Context, dataURI string) (*entity.PhotoAnalysis, error)

	// SuggestMeals proposes meals based on what the user ate recently.
	SuggestMeals(ctx context.Context, pastMeals []*entity.MealEntry, preferences string) ([]entity.MealSuggestion, error)
}
