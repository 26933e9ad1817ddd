package usecase

import (
	"context"

	"myetician/internal/domain/aggregator"
	"myetician/internal/domain/entity"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// MealUsecase defines the interface for the meal log and the views built on it.
// A nil date means today in the configured calendar timezone.
type MealUsecase interface {
	LogMeal(ctx context.Context, userID string, input *LogMealInput) (*entity.MealEntry, error)
	DeleteMeal(ctx context.Context, userID string, mealID uuid.UUID) error
	ListMeals(ctx context.Context, userID string, date *civil.Date) ([]*entity.MealEntry, error)
	GetDailyLog(ctx context.Context, userID string, from, to civil.Date) (entity.DailyLog, error)
	GetDashboard(ctx context.Context, userID string, date *civil.Date) (*Dashboard, error)
	GetWeeklySummary(ctx context.Context, userID string, end *civil.Date) (*WeeklySummary, error)
	GetRangeSummary(ctx context.Context, userID string, from, to civil.Date) (*aggregator.RangeSummary, error)
}

// --- Input DTOs ---

// LogMealInput describes a meal to append to the log.
type LogMealInput struct {
	Name          string
	Calories      float64
	Protein       float64
	Carbohydrates float64
	Fat           float64
	MealType      entity.MealType
	Date          *civil.Date
}

// --- Output DTOs ---

// Dashboard is the day view together with the profile metrics behind its goal.
type Dashboard struct {
	Summary aggregator.DaySummary `json:"summary"`
	Metrics entity.GoalMetrics    `json:"metrics"`
}

// WeeklySummary is the seven-day chart ending at End.
type WeeklySummary struct {
	End    civil.Date               `json:"end"`
	Goal   float64                  `json:"goal"`
	Series []aggregator.SeriesPoint `json:"series"`
}
