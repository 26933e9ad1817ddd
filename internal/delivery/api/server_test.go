package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"myetician/config"
	apimiddleware "myetician/internal/delivery/api/middleware"
	"myetician/internal/delivery/api/response"
	"myetician/internal/delivery/api/router"
	"myetician/internal/delivery/api/router/handler"
	deliverycontext "myetician/internal/delivery/context"
	"myetician/internal/domain/entity"
	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/service"
	"myetician/internal/errors"
	mockService "myetician/internal/mocks/service"
	mockUsecase "myetician/internal/mocks/usecase"
	"myetician/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testUserID = "user-123"
	testToken  = "valid-token"
)

type serverFixtures struct {
	echo      *echo.Echo
	verifier  *mockService.MockIdentityVerifier
	reporter  *mockService.MockErrorReporter
	profileUC *mockUsecase.MockProfileUsecase
	mealUC    *mockUsecase.MockMealUsecase
	foodUC    *mockUsecase.MockFoodUsecase
}

// envelope decodes both success and error responses.
type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func createTestServer(t *testing.T, authProvider string) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.Auth.Provider = authProvider

	f := serverFixtures{
		verifier:  mockService.NewMockIdentityVerifier(t),
		reporter:  mockService.NewMockErrorReporter(t),
		profileUC: mockUsecase.NewMockProfileUsecase(t),
		mealUC:    mockUsecase.NewMockMealUsecase(t),
		foodUC:    mockUsecase.NewMockFoodUsecase(t),
	}

	errorMiddleware := apimiddleware.NewErrorMiddleware(apimiddleware.ErrorMiddlewareParams{
		Logger:   logger,
		Reporter: f.reporter,
	})
	f.echo = newEcho(cfg, logger, errorMiddleware)

	router.NewRouter(router.RouterParams{
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: f.profileUC, Logger: logger}),
		MealHandler:    handler.NewMealHandler(handler.MealHandlerParams{MealUC: f.mealUC, Logger: logger}),
		FoodHandler:    handler.NewFoodHandler(handler.FoodHandlerParams{FoodUC: f.foodUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			Verifier: f.verifier,
			Config:   cfg,
			Logger:   logger,
		}),
	}).RegisterRoutes(f.echo)

	return f
}

func (f serverFixtures) expectValidToken() {
	f.verifier.EXPECT().Verify(mock.Anything, testToken).Return(&service.Identity{UserID: testUserID}, nil)
}

func (f serverFixtures) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func TestHealthCheck(t *testing.T) {
	f := createTestServer(t, config.AuthFirebase)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.JSONEq(t, `{"data":{"status":"ok"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestAuthentication(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		f := createTestServer(t, config.AuthFirebase)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		rec := httptest.NewRecorder()
		f.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
	})

	t.Run("not a bearer token", func(t *testing.T) {
		f := createTestServer(t, config.AuthFirebase)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic abc")
		rec := httptest.NewRecorder()
		f.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})

	t.Run("rejected token", func(t *testing.T) {
		f := createTestServer(t, config.AuthFirebase)
		f.verifier.EXPECT().Verify(mock.Anything, testToken).Return(nil, errors.New("expired"))

		rec, env := f.do(t, http.MethodGet, "/api/v1/profile", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
	})

	t.Run("none provider accepts requests without a header", func(t *testing.T) {
		f := createTestServer(t, config.AuthNone)
		f.verifier.EXPECT().Verify(mock.Anything, "").Return(&service.Identity{UserID: "local"}, nil)
		f.profileUC.EXPECT().GetProfile(mock.Anything, "local").Return(&entity.UserProfile{UserID: "local"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		rec := httptest.NewRecorder()
		f.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSaveProfile(t *testing.T) {
	f := createTestServer(t, config.AuthFirebase)
	f.expectValidToken()

	body := `{
		"first_name": "Ana",
		"gender": "female",
		"date_of_birth": "1990-04-12",
		"goal": "Lose weight",
		"activity_level": "Lightly active",
		"height": {"value": 65, "unit": "ft"},
		"current_weight": {"value": 150, "unit": "lbs"},
		"goal_weight": {"value": 140, "unit": "lbs"},
		"intensity_percent": 15
	}`

	f.profileUC.EXPECT().
		SaveProfile(mock.Anything, testUserID, mock.MatchedBy(func(in *usecase.ProfileInput) bool {
			return in.FirstName == "Ana" &&
				in.DateOfBirth == civil.Date{Year: 1990, Month: time.April, Day: 12} &&
				in.Height == entity.Height{Value: 65, Unit: entity.HeightFeet} &&
				in.GoalWeight == entity.Weight{Value: 140, Unit: entity.WeightPounds} &&
				in.ActivityLevel == entity.ActivityLightlyActive
		})).
		Return(&entity.UserProfile{UserID: testUserID, FirstName: "Ana"}, nil)

	rec, env := f.do(t, http.MethodPut, "/api/v1/profile", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"first_name":"Ana"`)
}

func TestSaveProfile_ValidationFailed(t *testing.T) {
	f := createTestServer(t, config.AuthFirebase)
	f.expectValidToken()

	body := `{"gender": "female", "date_of_birth": "12/04/1990", "goal": "Lose weight",
		"height": {"value": 0, "unit": "cm"}, "current_weight": {"value": 60, "unit": "kg"},
		"goal_weight": {"value": 55, "unit": "kg"}, "intensity_percent": 80}`

	rec, env := f.do(t, http.MethodPut, "/api/v1/profile", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	details, ok := env.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "first_name")
	assert.Contains(t, details, "date_of_birth")
	assert.Contains(t, details, "height.value")
	assert.Contains(t, details, "intensity_percent")
}

func TestUpdateSettings_OnlySentFields(t *testing.T) {
	f := createTestServer(t, config.AuthFirebase)
	f.expectValidToken()

	f.profileUC.EXPECT().
		UpdateSettings(mock.Anything, testUserID, mock.MatchedBy(func(in *usecase.UpdateSettingsInput) bool {
			return in.CurrentWeight != nil && *in.CurrentWeight == entity.Weight{Value: 78, Unit: entity.WeightKilograms} &&
				in.FirstName == nil && in.Goal == nil && in.Height == nil
		})).
		Return(&entity.UserProfile{UserID: testUserID}, nil)

	rec, _ := f.do(t, http.MethodPatch, "/api/v1/profile", `{"current_weight": {"value": 78, "unit": "kg"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPreviewGoal_DomainError(t *testing.T) {
	f := createTestServer(t, config.AuthFirebase)
	f.expectValidToken()

	f.profileUC.EXPECT().PreviewGoal(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidGender.WithDetails(`unsupported gender "other"`), "invalid profile"))

	body := `{"gender": "other", "date_of_birth": "1990-04-12", "goal": "Maintain weight",
		"activity_factor": 1.2, "height": {"value": 170, "unit": "cm"},
		"current_weight": {"value": 60, "unit": "kg"}, "goal_weight": {"value": 60, "unit": "kg"}}`
	rec, env := f.do(t, http.MethodPost, "/api/v1/goals/preview", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_GENDER", env.Error.Code)
	assert.Equal(t, `unsupported gender "other"`, env.Error.Details)
}

func TestLogMeal(t *testing.T) {
	f := createTestServer(t, config.AuthFirebase)
	f.expectValidToken()

	mealID := uuid.New()
	f.mealUC.EXPECT().
		LogMeal(mock.Anything, testUserID, mock.MatchedBy(func(in *usecase.LogMealInput) bool {
			return in.Name == "Oatmeal" && in.Calories == 300 && in.MealType == entity.MealBreakfast &&
				in.Date != nil && *in.Date == civil.Date{Year: 2024, Month: time.March, Day: 15}
		})).
		Return(&entity.MealEntry{ID: mealID, UserID: testUserID, Name: "Oatmeal", Calories: 300}, nil)

	body := `{"name": "Oatmeal", "calories": 300, "protein": 10, "carbohydrates": 54, "fat": 5,
		"meal_type": "Breakfast", "date": "2024-03-15"}`
	rec, env := f.do(t, http.MethodPost, "/api/v1/meals", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), mealID.String())
}

func TestLogMeal_ValidationFailed(t *testing.T) {
	f := createTestServer(t, config.AuthFirebase)
	f.expectValidToken()

	rec, env := f.do(t, http.MethodPost, "/api/v1/meals", `{"calories": -5, "meal_type": "Brunch"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]any{
		"name":      "is required",
		"calories":  "must be at least 0",
		"meal_type": "must be one of: Breakfast, Lunch, Dinner, Snack",
	}, env.Error.Details)
}

func TestDeleteMeal(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := createTestServer(t, config.AuthFirebase)
		f.expectValidToken()

		rec, env := f.do(t, http.MethodDelete, "/api/v1/meals/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", env.Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		f := createTestServer(t, config.AuthFirebase)
		f.expectValidToken()

		mealID := uuid.New()
		f.mealUC.EXPECT().DeleteMeal(mock.Anything, testUserID, mealID).
			Return(errors.Wrap(domainerrors.ErrMealNotFound, "meal not found"))

		rec, env := f.do(t, http.MethodDelete, "/api/v1/meals/"+mealID.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "MEAL_NOT_FOUND", env.Error.Code)
	})
}

func TestListMeals_DefaultsToToday(t *testing.T) {
	f := createTestServer(t, config.AuthFirebase)
	f.expectValidToken()

	f.mealUC.EXPECT().ListMeals(mock.Anything, testUserID, (*civil.Date)(nil)).Return([]*entity.MealEntry{}, nil)

	rec, env := f.do(t, http.MethodGet, "/api/v1/meals", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestGetDailyLog_InvalidDates(t *testing.T) {
	f := createTestServer(t, config.AuthFirebase)
	f.expectValidToken()

	rec, env := f.do(t, http.MethodGet, "/api/v1/log?from=2024-13-01&to=2024-06-01", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_DATE", env.Error.Code)
}

func TestGetRangeSummary_PassesDates(t *testing.T) {
	f := createTestServer(t, config.AuthFirebase)
	f.expectValidToken()

	from := civil.Date{Year: 2024, Month: time.May, Day: 1}
	to := civil.Date{Year: 2024, Month: time.May, Day: 31}
	f.mealUC.EXPECT().GetRangeSummary(mock.Anything, testUserID, from, to).
		Return(nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found"))

	rec, env := f.do(t, http.MethodGet, "/api/v1/summary/range?from=2024-05-01&to=2024-05-31", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROFILE_NOT_FOUND", env.Error.Code)
}

func TestUnexpectedErrorIsReported(t *testing.T) {
	f := createTestServer(t, config.AuthFirebase)
	f.expectValidToken()

	f.mealUC.EXPECT().GetDashboard(mock.Anything, testUserID, (*civil.Date)(nil)).
		Return(nil, errors.New("connection reset"))
	f.reporter.EXPECT().Report(mock.Anything, mock.Anything).Once()

	rec, env := f.do(t, http.MethodGet, "/api/v1/dashboard", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestFoodRoutes(t *testing.T) {
	t.Run("search", func(t *testing.T) {
		f := createTestServer(t, config.AuthFirebase)
		f.expectValidToken()

		f.foodUC.EXPECT().SearchFood(mock.Anything, "greek yogurt").
			Return([]entity.FoodCandidate{{Name: "Greek yogurt", Calories: 100}}, nil)

		rec, env := f.do(t, http.MethodGet, "/api/v1/foods/search?q=greek+yogurt", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), "Greek yogurt")
	})

	t.Run("photo requires an image", func(t *testing.T) {
		f := createTestServer(t, config.AuthFirebase)
		f.expectValidToken()

		rec, env := f.do(t, http.MethodPost, "/api/v1/foods/analyze-photo", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("lookup unavailable", func(t *testing.T) {
		f := createTestServer(t, config.AuthFirebase)
		f.expectValidToken()

		f.foodUC.EXPECT().SuggestMeals(mock.Anything, testUserID, "vegetarian").
			Return(nil, domainerrors.ErrFoodLookupUnavailable)
		f.reporter.EXPECT().Report(mock.Anything, mock.Anything).Once()

		rec, env := f.do(t, http.MethodPost, "/api/v1/foods/suggestions", `{"preferences": "vegetarian"}`)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "FOOD_LOOKUP_UNAVAILABLE", env.Error.Code)
	})
}
