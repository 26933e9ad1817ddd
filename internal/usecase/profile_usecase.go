// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"myetician/internal/domain/entity"

	"cloud.google.com/go/civil"
)

// ProfileUsecase defines the interface for onboarding and settings.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error)
	// SaveProfile creates or replaces the profile and derives its metrics.
	SaveProfile(ctx context.Context, userID string, input *ProfileInput) (*entity.UserProfile, error)
	// UpdateSettings changes some fields of an existing profile and re-derives its metrics.
	UpdateSettings(ctx context.Context, userID string, input *UpdateSettingsInput) (*entity.UserProfile, error)
	// PreviewGoal runs the goal calculation without storing anything.
	PreviewGoal(ctx context.Context, input *ProfileInput) (*entity.GoalMetrics, error)
}

// --- Input DTOs ---

// ProfileInput is everything onboarding collects.
type ProfileInput struct {
	FirstName        string
	Gender           entity.Gender
	DateOfBirth      civil.Date
	Goal             entity.Goal
	ActivityLevel    entity.ActivityLevel
	ActivityFactor   float64
	Height           entity.Height
	CurrentWeight    entity.Weight
	GoalWeight       entity.Weight
	IntensityPercent float64
}

// UpdateSettingsInput holds the fields a settings edit may change. Nil fields
// keep their stored value.
type UpdateSettingsInput struct {
	FirstName        *string
	Gender           *entity.Gender
	DateOfBirth      *civil.Date
	Goal             *entity.Goal
	ActivityLevel    *entity.ActivityLevel
	ActivityFactor   *float64
	Height           *entity.Height
	CurrentWeight    *entity.Weight
	GoalWeight       *entity.Weight
	IntensityPercent *float64
}
