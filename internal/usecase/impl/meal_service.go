package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	deliverycontext "myetician/internal/delivery/context"
	"myetician/internal/domain/aggregator"
	"myetician/internal/domain/constants"
	"myetician/internal/domain/entity"
	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/repository"
	"myetician/internal/domain/service"
	"myetician/internal/errors"
	"myetician/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// mealService implements the MealUsecase interface.
type mealService struct {
	mealRepo    repository.MealRepository
	profileRepo repository.ProfileRepository
	publisher   service.EventPublisher
	clock       service.Clock
	logger      *slog.Logger
}

// MealServiceParams holds dependencies for MealService, injected by Fx.
type MealServiceParams struct {
	fx.In

	MealRepo    repository.MealRepository
	ProfileRepo repository.ProfileRepository
	Publisher   service.EventPublisher
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewMealService is the constructor for mealService.
func NewMealService(params MealServiceParams) usecase.MealUsecase {
	return &mealService{
		mealRepo:    params.MealRepo,
		profileRepo: params.ProfileRepo,
		publisher:   params.Publisher,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *mealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// dateOrToday resolves an optional date against the service clock.
func (srv *mealService) dateOrToday(date *civil.Date) (civil.Date, error) {
	if date == nil {
		return srv.clock.Today(), nil
	}
	if !date.IsValid() {
		return civil.Date{}, domainerrors.ErrInvalidDateRange.WithDetails("invalid date " + date.String())
	}

	return *date, nil
}

// LogMeal validates and appends a meal. Without a date the meal is logged for today.
func (srv *mealService) LogMeal(ctx context.Context, userID string, input *usecase.LogMealInput) (*entity.MealEntry, error) {
	if err := validateMeal(input); err != nil {
		return nil, err
	}

	date, err := srv.dateOrToday(input.Date)
	if err != nil {
		return nil, err
	}

	meal := &entity.MealEntry{
		UserID:        userID,
		Name:          strings.TrimSpace(input.Name),
		Calories:      input.Calories,
		Protein:       input.Protein,
		Carbohydrates: input.Carbohydrates,
		Fat:           input.Fat,
		MealType:      input.MealType,
		Date:          date,
	}

	if err := srv.mealRepo.Append(ctx, meal); err != nil {
		return nil, errors.Wrap(err, "failed to log meal")
	}

	srv.log(ctx).Info("Meal logged",
		slog.String("user_id", userID),
		slog.String("meal_id", meal.ID.String()),
		slog.String("date", meal.Date.String()),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.LogEvent{
		Type:       service.EventMealLogged,
		UserID:     userID,
		MealID:     meal.ID.String(),
		Date:       meal.Date.String(),
		Calories:   meal.Calories,
		OccurredAt: srv.clock.Now(),
	})

	return meal, nil
}

// DeleteMeal removes one of the user's meals.
func (srv *mealService) DeleteMeal(ctx context.Context, userID string, mealID uuid.UUID) error {
	if err := srv.mealRepo.Delete(ctx, userID, mealID); err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return errors.Wrap(domainerrors.ErrMealNotFound, "meal not found")
		}

		return errors.Wrap(err, "failed to delete meal")
	}

	srv.log(ctx).Info("Meal deleted",
		slog.String("user_id", userID),
		slog.String("meal_id", mealID.String()),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.LogEvent{
		Type:       service.EventMealDeleted,
		UserID:     userID,
		MealID:     mealID.String(),
		OccurredAt: srv.clock.Now(),
	})

	return nil
}

// ListMeals returns the meals logged on a date in insertion order.
func (srv *mealService) ListMeals(ctx context.Context, userID string, date *civil.Date) ([]*entity.MealEntry, error) {
	day, err := srv.dateOrToday(date)
	if err != nil {
		return nil, err
	}

	meals, err := srv.mealRepo.ListByDate(ctx, userID, day)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meals")
	}
	if meals == nil {
		meals = []*entity.MealEntry{}
	}

	return meals, nil
}

// GetDailyLog returns the log snapshot for an inclusive range.
func (srv *mealService) GetDailyLog(ctx context.Context, userID string, from, to civil.Date) (entity.DailyLog, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	dailyLog, err := srv.mealRepo.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read meal log")
	}
	if dailyLog == nil {
		dailyLog = entity.DailyLog{}
	}

	return dailyLog, nil
}

// GetDashboard summarizes one day against the user's caloric goal.
func (srv *mealService) GetDashboard(ctx context.Context, userID string, date *civil.Date) (*usecase.Dashboard, error) {
	day, err := srv.dateOrToday(date)
	if err != nil {
		return nil, err
	}

	profile, err := findProfile(ctx, srv.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	meals, err := srv.mealRepo.ListByDate(ctx, userID, day)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meals")
	}

	dailyLog := entity.NewDailyLog(meals)

	return &usecase.Dashboard{
		Summary: aggregator.SummarizeDay(dailyLog, day, profile.Metrics.CaloricGoal),
		Metrics: profile.Metrics,
	}, nil
}

// GetWeeklySummary returns the seven-day series ending at end.
func (srv *mealService) GetWeeklySummary(ctx context.Context, userID string, end *civil.Date) (*usecase.WeeklySummary, error) {
	endDate, err := srv.dateOrToday(end)
	if err != nil {
		return nil, err
	}

	profile, err := findProfile(ctx, srv.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	dailyLog, err := srv.mealRepo.ListRange(ctx, userID, endDate.AddDays(-(aggregator.WeekLength - 1)), endDate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read meal log")
	}

	goal := profile.Metrics.CaloricGoal

	return &usecase.WeeklySummary{
		End:    endDate,
		Goal:   goal,
		Series: aggregator.WeeklySeries(dailyLog, endDate, goal),
	}, nil
}

// GetRangeSummary reports intake statistics over an inclusive range.
func (srv *mealService) GetRangeSummary(ctx context.Context, userID string, from, to civil.Date) (*aggregator.RangeSummary, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	profile, err := findProfile(ctx, srv.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	dailyLog, err := srv.mealRepo.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read meal log")
	}

	summary := aggregator.SummarizeRange(dailyLog, from, to, profile.Metrics.CaloricGoal)

	return &summary, nil
}

func validateMeal(input *usecase.LogMealInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrInvalidMeal.WithDetails("name is required")
	}

	values := []struct {
		field string
		value float64
	}{
		{"calories", input.Calories},
		{"protein", input.Protein},
		{"carbohydrates", input.Carbohydrates},
		{"fat", input.Fat},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) || v.value < 0 {
			return domainerrors.ErrInvalidMeal.WithDetails(fmt.Sprintf("%s must be a non-negative number", v.field))
		}
	}

	if !input.MealType.IsValid() {
		return domainerrors.ErrInvalidMealType.WithDetails(fmt.Sprintf("meal type %q", input.MealType))
	}

	return nil
}

func validateRange(from, to civil.Date) error {
	if !from.IsValid() || !to.IsValid() {
		return domainerrors.ErrInvalidDateRange.WithDetails("from and to must be valid dates")
	}
	if to.Before(from) {
		return domainerrors.ErrInvalidDateRange.WithDetails("from must not be after to")
	}
	if to.DaysSince(from)+1 > constants.MaxLogRangeDays {
		return domainerrors.ErrInvalidDateRange.WithDetails(fmt.Sprintf("range exceeds %d days", constants.MaxLogRangeDays))
	}

	return nil
}
