package repository

import (
	"context"

	"myetician/internal/domain/entity"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMealNotFound is returned when a user owns no meal with the given ID.
var ErrMealNotFound = errors.New("meal not found")

// MealRepository is an append/delete-only meal log.
type MealRepository interface {
	// Append stores a new meal. It assigns ID and CreatedAt when they are zero.
	Append(ctx context.Context, meal *entity.MealEntry) error

	// Delete removes one of the user's meals or returns ErrMealNotFound.
	Delete(ctx context.Context, userID string, mealID uuid.UUID) error

	// ListByDate returns the user's meals logged on date, oldest first.
	ListByDate(ctx context.Context, userID string, date civil.Date) ([]*entity.MealEntry, error)

	// ListRange returns the user's meals logged in [from, to] keyed by date.
	ListRange(ctx context.Context, userID string, from, to civil.Date) (entity.DailyLog, error)
}
