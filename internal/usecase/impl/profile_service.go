// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "myetician/internal/delivery/context"
	"myetician/internal/domain/calculator"
	"myetician/internal/domain/entity"
	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/repository"
	"myetician/internal/domain/service"
	"myetician/internal/errors"
	"myetician/internal/usecase"

	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	publisher   service.EventPublisher
	clock       service.Clock
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Publisher   service.EventPublisher
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		publisher:   params.Publisher,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the stored profile.
func (srv *profileService) GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	srv.log(ctx).Debug("Getting profile", slog.String("user_id", userID))

	profile, err := findProfile(ctx, srv.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// SaveProfile validates the onboarding answers, derives the goal metrics and
// stores the result, replacing any previous profile.
func (srv *profileService) SaveProfile(ctx context.Context, userID string, input *usecase.ProfileInput) (*entity.UserProfile, error) {
	srv.log(ctx).Info("Saving profile", slog.String("user_id", userID))

	profile := profileFromInput(input)
	profile.UserID = userID

	if err := calculator.Apply(profile, srv.clock.Today()); err != nil {
		return nil, errors.Wrap(err, "invalid profile")
	}

	if err := srv.profileRepo.Save(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	srv.publishSaved(ctx, profile)

	return profile, nil
}

// UpdateSettings applies a partial edit to an existing profile. Metrics are
// always re-derived, so a changed weight or goal takes effect immediately.
func (srv *profileService) UpdateSettings(ctx context.Context, userID string, input *usecase.UpdateSettingsInput) (*entity.UserProfile, error) {
	srv.log(ctx).Info("Updating profile settings", slog.String("user_id", userID))

	profile, err := findProfile(ctx, srv.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	applySettings(profile, input)

	if err := calculator.Apply(profile, srv.clock.Today()); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}

	if err := srv.profileRepo.Save(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	srv.publishSaved(ctx, profile)

	return profile, nil
}

// PreviewGoal derives metrics for unsaved onboarding answers.
func (srv *profileService) PreviewGoal(ctx context.Context, input *usecase.ProfileInput) (*entity.GoalMetrics, error) {
	metrics, err := calculator.Derive(profileFromInput(input), srv.clock.Today())
	if err != nil {
		return nil, errors.Wrap(err, "invalid profile")
	}

	return &metrics, nil
}

func (srv *profileService) publishSaved(ctx context.Context, profile *entity.UserProfile) {
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.LogEvent{
		Type:        service.EventProfileSaved,
		UserID:      profile.UserID,
		CaloricGoal: profile.Metrics.CaloricGoal,
		OccurredAt:  srv.clock.Now(),
	})
}

// findProfile maps the repository sentinel to the domain error.
func findProfile(ctx context.Context, repo repository.ProfileRepository, userID string) (*entity.UserProfile, error) {
	profile, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

func profileFromInput(input *usecase.ProfileInput) *entity.UserProfile {
	return &entity.UserProfile{
		FirstName:        input.FirstName,
		Gender:           input.Gender,
		DateOfBirth:      input.DateOfBirth,
		Goal:             input.Goal,
		ActivityLevel:    input.ActivityLevel,
		ActivityFactor:   input.ActivityFactor,
		Height:           input.Height,
		CurrentWeight:    input.CurrentWeight,
		GoalWeight:       input.GoalWeight,
		IntensityPercent: input.IntensityPercent,
	}
}

func applySettings(profile *entity.UserProfile, input *usecase.UpdateSettingsInput) {
	if input.FirstName != nil {
		profile.FirstName = *input.FirstName
	}
	if input.Gender != nil {
		profile.Gender = *input.Gender
	}
	if input.DateOfBirth != nil {
		profile.DateOfBirth = *input.DateOfBirth
	}
	if input.Goal != nil {
		profile.Goal = *input.Goal
	}
	// An explicit factor without a level switches the profile to factor mode.
	if input.ActivityFactor != nil {
		profile.ActivityFactor = *input.ActivityFactor
		if input.ActivityLevel == nil {
			profile.ActivityLevel = ""
		}
	}
	if input.ActivityLevel != nil {
		profile.ActivityLevel = *input.ActivityLevel
	}
	if input.Height != nil {
		profile.Height = *input.Height
	}
	if input.CurrentWeight != nil {
		profile.CurrentWeight = *input.CurrentWeight
	}
	if input.GoalWeight != nil {
		profile.GoalWeight = *input.GoalWeight
	}
	if input.IntensityPercent != nil {
		profile.IntensityPercent = *input.IntensityPercent
	}
}
