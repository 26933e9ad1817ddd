package postgres

import (
	"context"

	"myetician/internal/domain/entity"
	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/repository"
	"myetician/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileColumns are overwritten on upsert; id and created_at are kept.
var profileColumns = []string{
	"user_first_name",
	"user_goal",
	"user_current_activity_level",
	"user_activity_factor_value",
	"user_gender",
	"user_dob",
	"user_age",
	"user_height",
	"user_height_unit",
	"user_current_weight",
	"user_current_weight_unit",
	"user_goal_weight",
	"user_goal_weight_unit",
	"user_caloric_goal_intensity_value",
	"user_calculated_bmr",
	"user_calculated_tdee",
	"user_caloric_goal",
	"updated_at",
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

func (repo *profileRepository) FindByUserID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

func (repo *profileRepository) Save(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(profileColumns),
		}).
		Create(profileM).Error
	if err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("profile rejected by storage constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save profile")
	}

	// Re-read so CreatedAt reflects the stored row rather than this call.
	stored, err := repo.FindByUserID(ctx, profile.UserID)
	if err != nil {
		return err
	}
	profile.CreatedAt = stored.CreatedAt
	profile.UpdatedAt = stored.UpdatedAt

	return nil
}

func toProfileDomain(m *model.ProfileModel) *entity.UserProfile {
	return &entity.UserProfile{
		UserID:           m.ID,
		FirstName:        m.FirstName,
		Gender:           entity.Gender(m.Gender),
		DateOfBirth:      m.DateOfBirth,
		Goal:             entity.Goal(m.Goal),
		ActivityLevel:    entity.ActivityLevel(m.ActivityLevel),
		ActivityFactor:   m.ActivityFactor,
		Height:           entity.Height{Value: m.Height, Unit: entity.HeightUnit(m.HeightUnit)},
		CurrentWeight:    entity.Weight{Value: m.CurrentWeight, Unit: entity.WeightUnit(m.CurrentWeightUnit)},
		GoalWeight:       entity.Weight{Value: m.GoalWeight, Unit: entity.WeightUnit(m.GoalWeightUnit)},
		IntensityPercent: m.CaloricGoalIntensity,
		Metrics: entity.GoalMetrics{
			Age:         m.Age,
			BMR:         m.CalculatedBMR,
			TDEE:        m.CalculatedTDEE,
			CaloricGoal: m.CaloricGoal,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromProfileDomain(p *entity.UserProfile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:                   p.UserID,
		FirstName:            p.FirstName,
		Goal:                 string(p.Goal),
		ActivityLevel:        string(p.ActivityLevel),
		ActivityFactor:       p.ActivityFactor,
		Gender:               string(p.Gender),
		DateOfBirth:          p.DateOfBirth,
		Age:                  p.Metrics.Age,
		Height:               p.Height.Value,
		HeightUnit:           string(p.Height.Unit),
		CurrentWeight:        p.CurrentWeight.Value,
		CurrentWeightUnit:    string(p.CurrentWeight.Unit),
		GoalWeight:           p.GoalWeight.Value,
		GoalWeightUnit:       string(p.GoalWeight.Unit),
		CaloricGoalIntensity: p.IntensityPercent,
		CalculatedBMR:        p.Metrics.BMR,
		CalculatedTDEE:       p.Metrics.TDEE,
		CaloricGoal:          p.Metrics.CaloricGoal,
	}
}
