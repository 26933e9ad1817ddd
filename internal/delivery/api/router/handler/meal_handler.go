package handler

import (
	"log/slog"
	"net/http"

	"myetician/internal/delivery/api/middleware"
	"myetician/internal/delivery/api/response"
	"myetician/internal/domain/entity"
	"myetician/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MealHandlerParams holds dependencies for MealHandler, injected by Fx.
type MealHandlerParams struct {
	fx.In

	MealUC usecase.MealUsecase
	Logger *slog.Logger
}

// MealHandler serves the meal log and the views derived from it.
type MealHandler struct {
	mealUC usecase.MealUsecase
	logger *slog.Logger
}

// NewMealHandler is the constructor for MealHandler
func NewMealHandler(params MealHandlerParams) *MealHandler {
	return &MealHandler{
		mealUC: params.MealUC,
		logger: params.Logger,
	}
}

// LogMealRequest represents the request body for logging a meal
type LogMealRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Calories      float64 `json:"calories" validate:"gte=0"`
	Protein       float64 `json:"protein" validate:"gte=0"`
	Carbohydrates float64 `json:"carbohydrates" validate:"gte=0"`
	Fat           float64 `json:"fat" validate:"gte=0"`
	MealType      string  `json:"meal_type" validate:"omitempty,oneof=Breakfast Lunch Dinner Snack"`
	Date          string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *LogMealRequest) toInput() *usecase.LogMealInput {
	input := &usecase.LogMealInput{
		Name:          r.Name,
		Calories:      r.Calories,
		Protein:       r.Protein,
		Carbohydrates: r.Carbohydrates,
		Fat:           r.Fat,
		MealType:      entity.MealType(r.MealType),
	}
	if d, err := civil.ParseDate(r.Date); err == nil {
		input.Date = &d
	}

	return input
}

// LogMeal appends a meal to the caller's log.
func (h *MealHandler) LogMeal(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req LogMealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	meal, err := h.mealUC.LogMeal(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, meal)
}

// DeleteMeal removes one meal from the caller's log.
func (h *MealHandler) DeleteMeal(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal ID")
	}

	if err := h.mealUC.DeleteMeal(c.Request().Context(), userID, mealID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Meal deleted successfully"})
}

// ListMeals returns the meals of one day, today by default.
func (h *MealHandler) ListMeals(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	date, err := dateQuery(c, "date")
	if err != nil {
		return invalidDate(c, "date")
	}

	meals, err := h.mealUC.ListMeals(c.Request().Context(), userID, date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, meals)
}

// GetDailyLog returns the caller's meals keyed by date.
func (h *MealHandler) GetDailyLog(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	from, to, ok := dateRangeQuery(c)
	if !ok {
		return invalidDate(c, "from", "to")
	}

	log, err := h.mealUC.GetDailyLog(c.Request().Context(), userID, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, log)
}

// GetDashboard returns the day view with the caller's caloric goal.
func (h *MealHandler) GetDashboard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	date, err := dateQuery(c, "date")
	if err != nil {
		return invalidDate(c, "date")
	}

	dashboard, err := h.mealUC.GetDashboard(c.Request().Context(), userID, date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

// GetWeeklySummary returns the seven-day calorie chart ending at end.
func (h *MealHandler) GetWeeklySummary(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	end, err := dateQuery(c, "end")
	if err != nil {
		return invalidDate(c, "end")
	}

	summary, err := h.mealUC.GetWeeklySummary(c.Request().Context(), userID, end)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// GetRangeSummary returns totals, averages and goal adherence over a range.
func (h *MealHandler) GetRangeSummary(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	from, to, ok := dateRangeQuery(c)
	if !ok {
		return invalidDate(c, "from", "to")
	}

	summary, err := h.mealUC.GetRangeSummary(c.Request().Context(), userID, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// dateQuery parses an ISO calendar date query parameter. An absent
// parameter yields nil.
func dateQuery(c echo.Context, name string) (*civil.Date, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	d, err := civil.ParseDate(raw)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// dateRangeQuery parses the required from and to parameters.
func dateRangeQuery(c echo.Context) (from, to civil.Date, ok bool) {
	f, errFrom := dateQuery(c, "from")
	t, errTo := dateQuery(c, "to")
	if errFrom != nil || errTo != nil || f == nil || t == nil {
		return civil.Date{}, civil.Date{}, false
	}

	return *f, *t, true
}

func invalidDate(c echo.Context, params ...string) error {
	details := make(map[string]string, len(params))
	for _, p := range params {
		details[p] = "must be a date formatted as YYYY-MM-DD"
	}

	return response.BadRequestWithDetails(c, "INVALID_DATE", "Dates must be formatted as YYYY-MM-DD", details)
}
