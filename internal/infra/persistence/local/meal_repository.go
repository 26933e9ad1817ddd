package local

import (
	"context"
	"slices"
	"time"

	"myetician/internal/domain/entity"
	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/repository"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// mealRepository keeps one DailyLog document per user.
type mealRepository struct {
	store *Store
}

// NewMealRepository is the constructor for mealRepository.
func NewMealRepository(store *Store) repository.MealRepository {
	return &mealRepository{store: store}
}

func (repo *mealRepository) load(ctx context.Context, userID string) (entity.DailyLog, error) {
	log := make(entity.DailyLog)
	if _, err := repo.store.read(ctx, mealLogKey(userID), &log); err != nil {
		return nil, err
	}

	return log, nil
}

func (repo *mealRepository) Append(ctx context.Context, meal *entity.MealEntry) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if meal.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return domainerrors.ErrInternalError.WrapMessage("failed to generate meal ID")
		}
		meal.ID = id
	}
	if meal.CreatedAt.IsZero() {
		meal.CreatedAt = time.Now().UTC()
	}

	log, err := repo.load(ctx, meal.UserID)
	if err != nil {
		return err
	}
	log.Add(meal)

	return repo.store.write(ctx, mealLogKey(meal.UserID), log)
}

func (repo *mealRepository) Delete(ctx context.Context, userID string, mealID uuid.UUID) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	log, err := repo.load(ctx, userID)
	if err != nil {
		return err
	}

	for date, meals := range log {
		idx := slices.IndexFunc(meals, func(m *entity.MealEntry) bool {
			return m.ID == mealID
		})
		if idx < 0 {
			continue
		}

		remaining := slices.Delete(meals, idx, idx+1)
		if len(remaining) == 0 {
			delete(log, date)
		} else {
			log[date] = remaining
		}

		return repo.store.write(ctx, mealLogKey(userID), log)
	}

	return repository.ErrMealNotFound
}

func (repo *mealRepository) ListByDate(ctx context.Context, userID string, date civil.Date) ([]*entity.MealEntry, error) {
	log, err := repo.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	meals := log[date]
	if meals == nil {
		return []*entity.MealEntry{}, nil
	}

	return meals, nil
}

func (repo *mealRepository) ListRange(ctx context.Context, userID string, from, to civil.Date) (entity.DailyLog, error) {
	log, err := repo.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	for date := range log {
		if date.Before(from) || date.After(to) {
			delete(log, date)
		}
	}

	return log, nil
}
