package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"myetician/internal/domain/entity"
	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/repository"
	"myetician/internal/domain/service"
	"myetician/internal/errors"
	mockRepo "myetician/internal/mocks/repository"
	mockService "myetician/internal/mocks/service"
	"myetician/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// goalAlertFixtures holds all test dependencies for goal alert tests.
type goalAlertFixtures struct {
	service     usecase.GoalAlertUsecase
	mealRepo    *mockRepo.MockMealRepository
	profileRepo *mockRepo.MockProfileRepository
	notifier    *mockService.MockNotifier
}

func createTestGoalAlertService(t *testing.T) goalAlertFixtures {
	mealRepo := mockRepo.NewMockMealRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	notifier := mockService.NewMockNotifier(t)

	return goalAlertFixtures{
		service: NewGoalAlertService(GoalAlertServiceParams{
			MealRepo:    mealRepo,
			ProfileRepo: profileRepo,
			Notifier:    notifier,
			Logger:      discardLogger(),
		}),
		mealRepo:    mealRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
	}
}

func mealLoggedEvent(meal *entity.MealEntry) *service.LogEvent {
	return &service.LogEvent{
		Type:     service.EventMealLogged,
		UserID:   meal.UserID,
		MealID:   meal.ID.String(),
		Date:     meal.Date.String(),
		Calories: meal.Calories,
	}
}

func TestGoalAlertService_AlertsWhenMealCrossesGoal(t *testing.T) {
	fx := createTestGoalAlertService(t)
	ctx := context.Background()
	day := date(2024, time.June, 1)

	breakfast := loggedMeal("Oatmeal", 600, entity.MealBreakfast, day)
	lunch := loggedMeal("Burrito", 900, entity.MealLunch, day)
	dinner := loggedMeal("Pasta", 700, entity.MealDinner, day)

	fx.profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(storedProfile(2000), nil)
	fx.mealRepo.EXPECT().ListByDate(ctx, "user-1", day).Return([]*entity.MealEntry{breakfast, lunch, dinner}, nil)
	fx.notifier.EXPECT().
		NotifyUser(ctx, "user-1", mock.MatchedBy(func(n *service.Notification) bool {
			return n.Title == "Daily goal reached" &&
				n.Data["date"] == "2024-06-01" &&
				n.Data["goal"] == "2000" &&
				n.Data["consumed"] == "2200"
		})).
		Return(nil)

	sent, err := fx.service.HandleLogEvent(ctx, mealLoggedEvent(dinner))

	require.NoError(t, err)
	assert.True(t, sent)
}

func TestGoalAlertService_ReportsTotalAtCrossingMeal(t *testing.T) {
	fx := createTestGoalAlertService(t)
	ctx := context.Background()
	day := date(2024, time.June, 1)

	breakfast := loggedMeal("Pancakes", 1200, entity.MealBreakfast, day)
	lunch := loggedMeal("Burger", 1000, entity.MealLunch, day)
	snack := loggedMeal("Apple", 300, entity.MealSnack, day)

	fx.profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(storedProfile(2000), nil)
	fx.mealRepo.EXPECT().ListByDate(ctx, "user-1", day).Return([]*entity.MealEntry{breakfast, lunch, snack}, nil)
	fx.notifier.EXPECT().
		NotifyUser(ctx, "user-1", mock.MatchedBy(func(n *service.Notification) bool {
			return n.Data["consumed"] == "2200" &&
				strings.Contains(n.Body, "logged 2200 of your 2000 kcal")
		})).
		Return(nil)

	sent, err := fx.service.HandleLogEvent(ctx, mealLoggedEvent(lunch))

	require.NoError(t, err)
	assert.True(t, sent)
}

func TestGoalAlertService_NoAlert(t *testing.T) {
	day := date(2024, time.June, 1)
	breakfast := loggedMeal("Oatmeal", 600, entity.MealBreakfast, day)
	lunch := loggedMeal("Burrito", 1500, entity.MealLunch, day)
	dinner := loggedMeal("Pasta", 700, entity.MealDinner, day)

	tests := []struct {
		name  string
		meals []*entity.MealEntry
		event *service.LogEvent
	}{
		{
			name:  "still under goal",
			meals: []*entity.MealEntry{breakfast},
			event: mealLoggedEvent(breakfast),
		},
		{
			name:  "already over before this meal",
			meals: []*entity.MealEntry{breakfast, lunch, dinner},
			event: mealLoggedEvent(dinner),
		},
		{
			name:  "meal deleted before delivery",
			meals: []*entity.MealEntry{breakfast},
			event: mealLoggedEvent(dinner),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestGoalAlertService(t)
			ctx := context.Background()

			fx.profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(storedProfile(2000), nil)
			fx.mealRepo.EXPECT().ListByDate(ctx, "user-1", day).Return(tt.meals, nil)

			sent, err := fx.service.HandleLogEvent(ctx, tt.event)

			require.NoError(t, err)
			assert.False(t, sent)
		})
	}
}

func TestGoalAlertService_ExactlyAtGoalDoesNotAlert(t *testing.T) {
	fx := createTestGoalAlertService(t)
	ctx := context.Background()
	day := date(2024, time.June, 1)
	meal := loggedMeal("Feast", 2000, entity.MealDinner, day)

	fx.profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(storedProfile(2000), nil)
	fx.mealRepo.EXPECT().ListByDate(ctx, "user-1", day).Return([]*entity.MealEntry{meal}, nil)

	sent, err := fx.service.HandleLogEvent(ctx, mealLoggedEvent(meal))

	require.NoError(t, err)
	assert.False(t, sent)
}

func TestGoalAlertService_IgnoresOtherEvents(t *testing.T) {
	fx := createTestGoalAlertService(t)

	for _, eventType := range []service.LogEventType{service.EventMealDeleted, service.EventProfileSaved} {
		sent, err := fx.service.HandleLogEvent(context.Background(), &service.LogEvent{Type: eventType, UserID: "user-1"})
		require.NoError(t, err)
		assert.False(t, sent)
	}
}

func TestGoalAlertService_Errors(t *testing.T) {
	day := date(2024, time.June, 1)
	meal := loggedMeal("Pasta", 700, entity.MealDinner, day)

	t.Run("bad date", func(t *testing.T) {
		fx := createTestGoalAlertService(t)
		event := mealLoggedEvent(meal)
		event.Date = "yesterday"

		_, err := fx.service.HandleLogEvent(context.Background(), event)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidDateRange))
	})

	t.Run("no profile", func(t *testing.T) {
		fx := createTestGoalAlertService(t)
		ctx := context.Background()
		fx.profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, repository.ErrProfileNotFound)

		_, err := fx.service.HandleLogEvent(ctx, mealLoggedEvent(meal))
		assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	})

	t.Run("notifier failure", func(t *testing.T) {
		fx := createTestGoalAlertService(t)
		ctx := context.Background()
		fx.profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(storedProfile(500), nil)
		fx.mealRepo.EXPECT().ListByDate(ctx, "user-1", day).Return([]*entity.MealEntry{meal}, nil)
		fx.notifier.EXPECT().NotifyUser(ctx, "user-1", mock.Anything).
			Return(domainerrors.ErrNotificationFailed.WithDetails("unavailable"))

		sent, err := fx.service.HandleLogEvent(ctx, mealLoggedEvent(meal))
		assert.False(t, sent)
		assert.True(t, errors.Is(err, domainerrors.ErrNotificationFailed))
	})
}
