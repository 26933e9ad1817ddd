package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "myetician/internal/delivery/context"
	"myetician/internal/domain/entity"
	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/repository"
	"myetician/internal/domain/service"
	"myetician/internal/errors"
	"myetician/internal/usecase"

	"cloud.google.com/go/civil"
	"go.uber.org/fx"
)

// goalAlertService implements the GoalAlertUsecase interface.
type goalAlertService struct {
	mealRepo    repository.MealRepository
	profileRepo repository.ProfileRepository
	notifier    service.Notifier
	logger      *slog.Logger
}

// GoalAlertServiceParams holds dependencies for GoalAlertService, injected by Fx.
type GoalAlertServiceParams struct {
	fx.In

	MealRepo    repository.MealRepository
	ProfileRepo repository.ProfileRepository
	Notifier    service.Notifier
	Logger      *slog.Logger
}

// NewGoalAlertService is the constructor for goalAlertService.
func NewGoalAlertService(params GoalAlertServiceParams) usecase.GoalAlertUsecase {
	return &goalAlertService{
		mealRepo:    params.MealRepo,
		profileRepo: params.ProfileRepo,
		notifier:    params.Notifier,
		logger:      params.Logger,
	}
}

// HandleLogEvent compares the day's total just before and just after the
// logged meal, in log order. Only the meal that crosses the goal alerts, so a
// redelivered event or a later meal on the same day never alerts twice.
func (srv *goalAlertService) HandleLogEvent(ctx context.Context, event *service.LogEvent) (bool, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if event.Type != service.EventMealLogged {
		logger.Debug("Ignoring log event", slog.String("type", string(event.Type)))

		return false, nil
	}

	date, err := civil.ParseDate(event.Date)
	if err != nil {
		return false, domainerrors.ErrInvalidDateRange.WithDetails("event date " + strconv.Quote(event.Date))
	}

	profile, err := findProfile(ctx, srv.profileRepo, event.UserID)
	if err != nil {
		return false, err
	}

	goal := profile.Metrics.CaloricGoal
	if goal <= 0 {
		return false, nil
	}

	meals, err := srv.mealRepo.ListByDate(ctx, event.UserID, date)
	if err != nil {
		return false, errors.Wrap(err, "failed to list meals")
	}

	var (
		before float64
		logged *entity.MealEntry
	)
	for _, meal := range meals {
		if meal.ID.String() == event.MealID {
			logged = meal

			break
		}
		before += meal.Calories
	}
	// The meal was deleted before the event arrived.
	if logged == nil {
		return false, nil
	}

	after := before + logged.Calories
	if before > goal || after <= goal {
		return false, nil
	}

	notification := &service.Notification{
		Title: "Daily goal reached",
		Body:  fmt.Sprintf("You have logged %.0f of your %.0f kcal goal for %s.", after, goal, date),
		Data: map[string]string{
			"type":     "goal.exceeded",
			"date":     date.String(),
			"goal":     strconv.FormatFloat(goal, 'f', 0, 64),
			"consumed": strconv.FormatFloat(after, 'f', 0, 64),
		},
	}
	if err := srv.notifier.NotifyUser(ctx, event.UserID, notification); err != nil {
		return false, errors.Wrap(err, "failed to send goal alert")
	}

	logger.Info("Goal alert sent",
		slog.String("user_id", event.UserID),
		slog.String("date", date.String()),
		slog.Float64("goal", goal),
		slog.Float64("consumed", after),
	)

	return true, nil
}
