package impl

import (
	"context"
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

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mealServiceFixtures holds all test dependencies for meal service tests.
type mealServiceFixtures struct {
	service     usecase.MealUsecase
	mealRepo    *mockRepo.MockMealRepository
	profileRepo *mockRepo.MockProfileRepository
	publisher   *mockService.MockEventPublisher
}

func createTestMealService(t *testing.T) mealServiceFixtures {
	mealRepo := mockRepo.NewMockMealRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	return mealServiceFixtures{
		service: NewMealService(MealServiceParams{
			MealRepo:    mealRepo,
			ProfileRepo: profileRepo,
			Publisher:   publisher,
			Clock:       newTestClock(t),
			Logger:      discardLogger(),
		}),
		mealRepo:    mealRepo,
		profileRepo: profileRepo,
		publisher:   publisher,
	}
}

func storedProfile(goal float64) *entity.UserProfile {
	return &entity.UserProfile{
		UserID:  "user-1",
		Metrics: entity.GoalMetrics{Age: 30, BMR: 1800, TDEE: 2500, CaloricGoal: goal},
	}
}

func loggedMeal(name string, calories float64, mealType entity.MealType, day civil.Date) *entity.MealEntry {
	return &entity.MealEntry{
		ID:       uuid.New(),
		UserID:   "user-1",
		Name:     name,
		Calories: calories,
		Protein:  calories * 0.3 / 4,
		MealType: mealType,
		Date:     day,
	}
}

func TestMealService_LogMeal_DefaultsToToday(t *testing.T) {
	fx := createTestMealService(t)
	ctx := context.Background()
	mealID := uuid.New()

	fx.mealRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.MealEntry")).
		Run(func(_ context.Context, meal *entity.MealEntry) {
			meal.ID = mealID
		}).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.LogEvent) bool {
			return e.Type == service.EventMealLogged &&
				e.MealID == mealID.String() &&
				e.Date == "2024-06-01" &&
				e.Calories == 420 &&
				e.OccurredAt.Equal(testNow)
		})).
		Return(nil)

	meal, err := fx.service.LogMeal(ctx, "user-1", &usecase.LogMealInput{
		Name:     "  Oatmeal ",
		Calories: 420,
		Protein:  12,
		MealType: entity.MealBreakfast,
	})
	require.NoError(t, err)

	assert.Equal(t, mealID, meal.ID)
	assert.Equal(t, "Oatmeal", meal.Name)
	assert.Equal(t, "user-1", meal.UserID)
	assert.Equal(t, testToday, meal.Date)
}

func TestMealService_LogMeal_ExplicitDateAndUntagged(t *testing.T) {
	fx := createTestMealService(t)
	ctx := context.Background()
	day := date(2024, time.March, 15)

	fx.mealRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(m *entity.MealEntry) bool {
			return m.Date == day && m.MealType == ""
		})).
		Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

	_, err := fx.service.LogMeal(ctx, "user-1", &usecase.LogMealInput{Name: "Apple", Calories: 95, Date: &day})
	assert.NoError(t, err)
}

func TestMealService_LogMeal_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.LogMealInput
		want  error
	}{
		{name: "missing name", input: usecase.LogMealInput{Name: " ", Calories: 10}, want: domainerrors.ErrInvalidMeal},
		{name: "negative calories", input: usecase.LogMealInput{Name: "Toast", Calories: -1}, want: domainerrors.ErrInvalidMeal},
		{name: "negative fat", input: usecase.LogMealInput{Name: "Toast", Calories: 80, Fat: -0.5}, want: domainerrors.ErrInvalidMeal},
		{name: "general is not storable", input: usecase.LogMealInput{Name: "Toast", MealType: entity.MealGeneral}, want: domainerrors.ErrInvalidMealType},
		{name: "unknown type", input: usecase.LogMealInput{Name: "Toast", MealType: "Brunch"}, want: domainerrors.ErrInvalidMealType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMealService(t)

			_, err := fx.service.LogMeal(context.Background(), "user-1", &tt.input)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestMealService_LogMeal_InvalidDate(t *testing.T) {
	fx := createTestMealService(t)
	bad := civil.Date{Year: 2024, Month: time.February, Day: 30}

	_, err := fx.service.LogMeal(context.Background(), "user-1", &usecase.LogMealInput{Name: "Toast", Date: &bad})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDateRange))
}

func TestMealService_DeleteMeal(t *testing.T) {
	fx := createTestMealService(t)
	ctx := context.Background()
	mealID := uuid.New()

	fx.mealRepo.EXPECT().Delete(ctx, "user-1", mealID).Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.LogEvent) bool {
			return e.Type == service.EventMealDeleted && e.MealID == mealID.String()
		})).
		Return(nil)

	assert.NoError(t, fx.service.DeleteMeal(ctx, "user-1", mealID))
}

func TestMealService_DeleteMeal_NotFound(t *testing.T) {
	fx := createTestMealService(t)
	ctx := context.Background()
	mealID := uuid.New()

	fx.mealRepo.EXPECT().Delete(ctx, "user-1", mealID).Return(repository.ErrMealNotFound)

	err := fx.service.DeleteMeal(ctx, "user-1", mealID)
	assert.True(t, errors.Is(err, domainerrors.ErrMealNotFound))
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestMealService_ListMeals_EmptyDay(t *testing.T) {
	fx := createTestMealService(t)
	ctx := context.Background()

	fx.mealRepo.EXPECT().ListByDate(ctx, "user-1", testToday).Return(nil, nil)

	meals, err := fx.service.ListMeals(ctx, "user-1", nil)
	require.NoError(t, err)
	assert.NotNil(t, meals)
	assert.Empty(t, meals)
}

func TestMealService_GetDailyLog_RangeValidation(t *testing.T) {
	fx := createTestMealService(t)
	ctx := context.Background()

	_, err := fx.service.GetDailyLog(ctx, "user-1", date(2024, time.March, 2), date(2024, time.March, 1))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDateRange))

	_, err = fx.service.GetDailyLog(ctx, "user-1", date(2023, time.January, 1), date(2024, time.January, 2))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDateRange))

	from, to := date(2024, time.January, 1), date(2024, time.December, 31)
	fx.mealRepo.EXPECT().ListRange(ctx, "user-1", from, to).Return(nil, nil)

	dailyLog, err := fx.service.GetDailyLog(ctx, "user-1", from, to)
	require.NoError(t, err)
	assert.NotNil(t, dailyLog)
}

func TestMealService_GetDashboard(t *testing.T) {
	fx := createTestMealService(t)
	ctx := context.Background()
	day := date(2024, time.March, 15)

	meals := []*entity.MealEntry{
		loggedMeal("Eggs", 300, entity.MealBreakfast, day),
		loggedMeal("Burrito", 900, entity.MealLunch, day),
		loggedMeal("Pizza", 1300, "", day),
	}

	fx.profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(storedProfile(2000), nil)
	fx.mealRepo.EXPECT().ListByDate(ctx, "user-1", day).Return(meals, nil)

	dashboard, err := fx.service.GetDashboard(ctx, "user-1", &day)
	require.NoError(t, err)

	summary := dashboard.Summary
	assert.Equal(t, day, summary.Date)
	assert.InDelta(t, 2500.0, summary.Consumed, 1e-9)
	assert.InDelta(t, 0.0, summary.Remaining, 1e-9)
	assert.True(t, summary.OverGoal)
	require.Len(t, summary.Groups, 3)
	assert.Equal(t, entity.MealGeneral, summary.Groups[2].Type)
	assert.InDelta(t, 2000.0, dashboard.Metrics.CaloricGoal, 1e-9)
}

func TestMealService_GetDashboard_NoProfile(t *testing.T) {
	fx := createTestMealService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetDashboard(ctx, "user-1", nil)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestMealService_GetWeeklySummary(t *testing.T) {
	fx := createTestMealService(t)
	ctx := context.Background()
	end := date(2024, time.March, 15)
	dailyLog := entity.NewDailyLog([]*entity.MealEntry{
		loggedMeal("Salad", 450, entity.MealLunch, date(2024, time.March, 13)),
	})

	fx.profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(storedProfile(2200), nil)
	fx.mealRepo.EXPECT().ListRange(ctx, "user-1", date(2024, time.March, 9), end).Return(dailyLog, nil)

	weekly, err := fx.service.GetWeeklySummary(ctx, "user-1", &end)
	require.NoError(t, err)

	require.Len(t, weekly.Series, 7)
	assert.Equal(t, "Sat", weekly.Series[0].Label)
	assert.Equal(t, "Fri", weekly.Series[6].Label)
	for i, point := range weekly.Series {
		assert.InDelta(t, 2200.0, point.Goal, 1e-9)
		if i == 4 {
			assert.InDelta(t, 450.0, point.Consumed, 1e-9)
		} else {
			assert.Zero(t, point.Consumed)
		}
	}
}

func TestMealService_GetRangeSummary(t *testing.T) {
	fx := createTestMealService(t)
	ctx := context.Background()
	from, to := date(2024, time.March, 11), date(2024, time.March, 15)
	dailyLog := entity.NewDailyLog([]*entity.MealEntry{
		loggedMeal("Bowl", 2000, entity.MealDinner, date(2024, time.March, 14)),
		loggedMeal("Bowl", 2600, entity.MealDinner, date(2024, time.March, 15)),
	})

	fx.profileRepo.EXPECT().FindByUserID(ctx, "user-1").Return(storedProfile(2000), nil)
	fx.mealRepo.EXPECT().ListRange(ctx, "user-1", from, to).Return(dailyLog, nil)

	summary, err := fx.service.GetRangeSummary(ctx, "user-1", from, to)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.DaysLogged)
	assert.InDelta(t, 2300.0, summary.AverageCalories, 1e-9)
	assert.Equal(t, 1, summary.DaysOverGoal)
	assert.Equal(t, 1, summary.DaysWithinGoal)
	assert.Equal(t, 2, summary.LoggingStreak.Current)
}
