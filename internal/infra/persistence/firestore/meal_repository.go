package firestore

import (
	"context"
	"slices"
	"time"

	"myetician/internal/domain/entity"
	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/repository"

	"cloud.google.com/go/civil"
	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type mealRepository struct {
	client *firestore.Client
}

// NewMealRepository is the constructor for mealRepository.
func NewMealRepository(client *firestore.Client) repository.MealRepository {
	return &mealRepository{client: client}
}

func (repo *mealRepository) Append(ctx context.Context, meal *entity.MealEntry) error {
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

	ref := mealCollection(repo.client, meal.UserID).Doc(meal.ID.String())
	if _, err := ref.Create(ctx, fromMealDomain(meal)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return domainerrors.ErrConflict.WrapMessage("meal already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append meal")
	}

	return nil
}

func (repo *mealRepository) Delete(ctx context.Context, userID string, mealID uuid.UUID) error {
	ref := mealCollection(repo.client, userID).Doc(mealID.String())
	if _, err := ref.Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrMealNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete meal")
	}

	return nil
}

func (repo *mealRepository) ListByDate(ctx context.Context, userID string, date civil.Date) ([]*entity.MealEntry, error) {
	query := mealCollection(repo.client, userID).Where("date", "==", date.String())

	return repo.query(ctx, userID, query)
}

func (repo *mealRepository) ListRange(ctx context.Context, userID string, from, to civil.Date) (entity.DailyLog, error) {
	query := mealCollection(repo.client, userID).
		Where("date", ">=", from.String()).
		Where("date", "<=", to.String())

	meals, err := repo.query(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	return entity.NewDailyLog(meals), nil
}

// query runs q and returns the meals oldest first. Sorting happens here so
// no composite index is needed.
func (repo *mealRepository) query(ctx context.Context, userID string, q firestore.Query) ([]*entity.MealEntry, error) {
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list meals")
	}

	meals := make([]*entity.MealEntry, 0, len(snaps))
	for _, snap := range snaps {
		var doc mealDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode meal")
		}

		meal, err := toMealDomain(userID, snap.Ref.ID, &doc)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode meal")
		}
		meals = append(meals, meal)
	}

	slices.SortStableFunc(meals, func(a, b *entity.MealEntry) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}

		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return meals, nil
}
