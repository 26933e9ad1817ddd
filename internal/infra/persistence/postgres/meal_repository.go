package postgres

import (
	"context"
	"time"

	"myetician/internal/domain/entity"
	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/repository"
	"myetician/internal/infra/persistence/model"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository is the constructor for mealRepository.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{
		db: db,
	}
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

	mealM := fromMealDomain(meal)
	if err := repo.db.WithContext(ctx).Create(mealM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("meal already exists")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidMeal.WrapMessage("meal rejected by storage constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append meal")
	}

	return nil
}

func (repo *mealRepository) Delete(ctx context.Context, userID string, mealID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&model.MealModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete meal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

func (repo *mealRepository) ListByDate(ctx context.Context, userID string, date civil.Date) ([]*entity.MealEntry, error) {
	var mealModels []*model.MealModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&mealModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list meals")
	}

	meals := make([]*entity.MealEntry, 0, len(mealModels))
	for _, m := range mealModels {
		meals = append(meals, toMealDomain(m))
	}

	return meals, nil
}

func (repo *mealRepository) ListRange(ctx context.Context, userID string, from, to civil.Date) (entity.DailyLog, error) {
	var mealModels []*model.MealModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC, created_at ASC").
		Find(&mealModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list meal log")
	}

	log := make(entity.DailyLog)
	for _, m := range mealModels {
		log.Add(toMealDomain(m))
	}

	return log, nil
}

func toMealDomain(m *model.MealModel) *entity.MealEntry {
	var mealType entity.MealType
	if m.MealType != nil {
		mealType = entity.MealType(*m.MealType)
	}

	return &entity.MealEntry{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Calories:      m.Calories,
		Protein:       m.Protein,
		Carbohydrates: m.Carbohydrates,
		Fat:           m.Fat,
		MealType:      mealType,
		Date:          m.Date,
		CreatedAt:     m.CreatedAt,
	}
}

func fromMealDomain(e *entity.MealEntry) *model.MealModel {
	var mealType *string
	if e.MealType != "" {
		s := string(e.MealType)
		mealType = &s
	}

	return &model.MealModel{
		ID:            e.ID,
		UserID:        e.UserID,
		Name:          e.Name,
		Calories:      e.Calories,
		Protein:       e.Protein,
		Carbohydrates: e.Carbohydrates,
		Fat:           e.Fat,
		MealType:      mealType,
		Date:          e.Date,
		CreatedAt:     e.CreatedAt,
	}
}
