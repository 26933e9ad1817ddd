package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "myetician/internal/delivery/context"
	"myetician/internal/domain/constants"
	"myetician/internal/domain/entity"
	"myetician/internal/domain/repository"
	"myetician/internal/domain/service"
	"myetician/internal/errors"
	"myetician/internal/usecase"

	"go.uber.org/fx"
)

// foodService implements the FoodUsecase interface.
type foodService struct {
	lookup   service.FoodLookupService
	mealRepo repository.MealRepository
	clock    service.Clock
	logger   *slog.Logger
}

// FoodServiceParams holds dependencies for FoodService, injected by Fx.
type FoodServiceParams struct {
	fx.In

	Lookup   service.FoodLookupService
	MealRepo repository.MealRepository
	Clock    service.Clock
	Logger   *slog.Logger
}

// NewFoodService is the constructor for foodService.
func NewFoodService(params FoodServiceParams) usecase.FoodUsecase {
	return &foodService{
		lookup:   params.Lookup,
		mealRepo: params.MealRepo,
		clock:    params.Clock,
		logger:   params.Logger,
	}
}

func (srv *foodService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchFood looks up candidates for a free-text query.
func (srv *foodService) SearchFood(ctx context.Context, query string) ([]entity.FoodCandidate, error) {
	srv.log(ctx).Debug("Searching food", slog.String("query", query))

	results, err := srv.lookup.SearchFood(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "food search failed")
	}
	if len(results) > service.MaxSearchResults {
		results = results[:service.MaxSearchResults]
	}
	if results == nil {
		results = []entity.FoodCandidate{}
	}

	return results, nil
}

// AnalyzeMealPhoto estimates the nutrition of a photographed meal and rounds
// every value to a whole number, ready to be logged.
func (srv *foodService) AnalyzeMealPhoto(ctx context.Context, dataURI string) (*entity.PhotoAnalysis, error) {
	analysis, err := srv.lookup.AnalyzeMealPhoto(ctx, dataURI)
	if err != nil {
		return nil, errors.Wrap(err, "photo analysis failed")
	}

	rounded := &entity.PhotoAnalysis{
		Calories:      roundNonNegative(analysis.Calories),
		Protein:       roundNonNegative(analysis.Protein),
		Carbohydrates: roundNonNegative(analysis.Carbohydrates),
		Fat:           roundNonNegative(analysis.Fat),
		Ingredients:   analysis.Ingredients,
	}
	if rounded.Ingredients == nil {
		rounded.Ingredients = []string{}
	}

	srv.log(ctx).Info("Meal photo analyzed",
		slog.Float64("calories", rounded.Calories),
		slog.Int("ingredients", len(rounded.Ingredients)),
	)

	return rounded, nil
}

// SuggestMeals sends the user's meals from the last week to the lookup.
func (srv *foodService) SuggestMeals(ctx context.Context, userID, preferences string) ([]entity.MealSuggestion, error) {
	today := srv.clock.Today()
	from := today.AddDays(-(constants.SuggestionLookbackDays - 1))

	dailyLog, err := srv.mealRepo.ListRange(ctx, userID, from, today)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read recent meals")
	}

	pastMeals := make([]*entity.MealEntry, 0)
	for _, date := range dailyLog.Dates() {
		pastMeals = append(pastMeals, dailyLog[date]...)
	}

	srv.log(ctx).Debug("Suggesting meals",
		slog.String("user_id", userID),
		slog.Int("past_meals", len(pastMeals)),
	)

	suggestions, err := srv.lookup.SuggestMeals(ctx, pastMeals, preferences)
	if err != nil {
		return nil, errors.Wrap(err, "meal suggestion failed")
	}
	if suggestions == nil {
		suggestions = []entity.MealSuggestion{}
	}

	return suggestions, nil
}

// roundNonNegative rounds to the nearest whole number; estimates below zero
// or not a number become zero.
func roundNonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}

	return math.Round(v)
}
