package handler

import (
	"log/slog"
	"net/http"

	"myetician/internal/delivery/api/middleware"
	"myetician/internal/delivery/api/response"
	"myetician/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FoodHandlerParams holds dependencies for FoodHandler, injected by Fx.
type FoodHandlerParams struct {
	fx.In

	FoodUC usecase.FoodUsecase
	Logger *slog.Logger
}

// FoodHandler serves assisted meal entry.
type FoodHandler struct {
	foodUC usecase.FoodUsecase
	logger *slog.Logger
}

// NewFoodHandler is the constructor for FoodHandler
func NewFoodHandler(params FoodHandlerParams) *FoodHandler {
	return &FoodHandler{
		foodUC: params.FoodUC,
		logger: params.Logger,
	}
}

// AnalyzePhotoRequest carries a meal photo as a base64 data URI.
type AnalyzePhotoRequest struct {
	Image string `json:"image" validate:"required"`
}

// SuggestMealsRequest carries free-text dietary preferences.
type SuggestMealsRequest struct {
	Preferences string `json:"preferences" validate:"max=500"`
}

// SearchFood returns up to five foods matching q.
func (h *FoodHandler) SearchFood(c echo.Context) error {
	results, err := h.foodUC.SearchFood(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results)
}

// AnalyzeMealPhoto estimates the nutrition of a photographed meal.
func (h *FoodHandler) AnalyzeMealPhoto(c echo.Context) error {
	var req AnalyzePhotoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid photo input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	analysis, err := h.foodUC.AnalyzeMealPhoto(c.Request().Context(), req.Image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, analysis)
}

// SuggestMeals proposes meals based on the caller's recent log.
func (h *FoodHandler) SuggestMeals(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SuggestMealsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid suggestion input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	suggestions, err := h.foodUC.SuggestMeals(c.Request().Context(), userID, req.Preferences)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, suggestions)
}
