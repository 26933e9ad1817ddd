package handler

import (
	"log/slog"
	"net/http"

	"myetician/internal/delivery/api/middleware"
	"myetician/internal/delivery/api/response"
	"myetician/internal/domain/entity"
	"myetician/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves onboarding, settings and the goal preview.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// HeightRequest is a height with its unit. Feet values are total inches.
type HeightRequest struct {
	Value float64 `json:"value" validate:"gt=0"`
	Unit  string  `json:"unit" validate:"required"`
}

// WeightRequest is a weight with its unit.
type WeightRequest struct {
	Value float64 `json:"value" validate:"gt=0"`
	Unit  string  `json:"unit" validate:"required"`
}

// GoalPreviewRequest carries the answers the goal calculation needs.
type GoalPreviewRequest struct {
	Gender           string        `json:"gender" validate:"required"`
	DateOfBirth      string        `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Goal             string        `json:"goal" validate:"required"`
	ActivityLevel    string        `json:"activity_level"`
	ActivityFactor   float64       `json:"activity_factor" validate:"gte=0"`
	Height           HeightRequest `json:"height"`
	CurrentWeight    WeightRequest `json:"current_weight"`
	GoalWeight       WeightRequest `json:"goal_weight"`
	IntensityPercent float64       `json:"intensity_percent" validate:"gte=0,lte=50"`
}

// SaveProfileRequest is the full onboarding form.
type SaveProfileRequest struct {
	FirstName        string        `json:"first_name" validate:"required,max=100"`
	Gender           string        `json:"gender" validate:"required"`
	DateOfBirth      string        `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Goal             string        `json:"goal" validate:"required"`
	ActivityLevel    string        `json:"activity_level"`
	ActivityFactor   float64       `json:"activity_factor" validate:"gte=0"`
	Height           HeightRequest `json:"height"`
	CurrentWeight    WeightRequest `json:"current_weight"`
	GoalWeight       WeightRequest `json:"goal_weight"`
	IntensityPercent float64       `json:"intensity_percent" validate:"gte=0,lte=50"`
}

// UpdateSettingsRequest is a partial settings edit. Omitted fields are kept.
type UpdateSettingsRequest struct {
	FirstName        *string        `json:"first_name" validate:"omitnil,min=1,max=100"`
	Gender           *string        `json:"gender"`
	DateOfBirth      *string        `json:"date_of_birth" validate:"omitnil,datetime=2006-01-02"`
	Goal             *string        `json:"goal"`
	ActivityLevel    *string        `json:"activity_level"`
	ActivityFactor   *float64       `json:"activity_factor" validate:"omitnil,gt=0"`
	Height           *HeightRequest `json:"height" validate:"omitnil"`
	CurrentWeight    *WeightRequest `json:"current_weight" validate:"omitnil"`
	GoalWeight       *WeightRequest `json:"goal_weight" validate:"omitnil"`
	IntensityPercent *float64       `json:"intensity_percent" validate:"omitnil,gte=0,lte=50"`
}

func (r HeightRequest) toEntity() entity.Height {
	return entity.Height{Value: r.Value, Unit: entity.HeightUnit(r.Unit)}
}

func (r WeightRequest) toEntity() entity.Weight {
	return entity.Weight{Value: r.Value, Unit: entity.WeightUnit(r.Unit)}
}

// toInput assumes the request passed validation, so the date parses.
func (r *GoalPreviewRequest) toInput() *usecase.ProfileInput {
	dob, _ := civil.ParseDate(r.DateOfBirth)

	return &usecase.ProfileInput{
		Gender:           entity.Gender(r.Gender),
		DateOfBirth:      dob,
		Goal:             entity.Goal(r.Goal),
		ActivityLevel:    entity.ActivityLevel(r.ActivityLevel),
		ActivityFactor:   r.ActivityFactor,
		Height:           r.Height.toEntity(),
		CurrentWeight:    r.CurrentWeight.toEntity(),
		GoalWeight:       r.GoalWeight.toEntity(),
		IntensityPercent: r.IntensityPercent,
	}
}

func (r *SaveProfileRequest) toInput() *usecase.ProfileInput {
	preview := GoalPreviewRequest{
		Gender:           r.Gender,
		DateOfBirth:      r.DateOfBirth,
		Goal:             r.Goal,
		ActivityLevel:    r.ActivityLevel,
		ActivityFactor:   r.ActivityFactor,
		Height:           r.Height,
		CurrentWeight:    r.CurrentWeight,
		GoalWeight:       r.GoalWeight,
		IntensityPercent: r.IntensityPercent,
	}
	input := preview.toInput()
	input.FirstName = r.FirstName

	return input
}

func (r *UpdateSettingsRequest) toInput() *usecase.UpdateSettingsInput {
	input := &usecase.UpdateSettingsInput{
		FirstName:        r.FirstName,
		ActivityFactor:   r.ActivityFactor,
		IntensityPercent: r.IntensityPercent,
	}
	if r.Gender != nil {
		gender := entity.Gender(*r.Gender)
		input.Gender = &gender
	}
	if r.DateOfBirth != nil {
		dob, _ := civil.ParseDate(*r.DateOfBirth)
		input.DateOfBirth = &dob
	}
	if r.Goal != nil {
		goal := entity.Goal(*r.Goal)
		input.Goal = &goal
	}
	if r.ActivityLevel != nil {
		level := entity.ActivityLevel(*r.ActivityLevel)
		input.ActivityLevel = &level
	}
	if r.Height != nil {
		height := r.Height.toEntity()
		input.Height = &height
	}
	if r.CurrentWeight != nil {
		weight := r.CurrentWeight.toEntity()
		input.CurrentWeight = &weight
	}
	if r.GoalWeight != nil {
		weight := r.GoalWeight.toEntity()
		input.GoalWeight = &weight
	}

	return input
}

// GetProfile returns the caller's profile and its derived metrics.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// SaveProfile handles onboarding. It replaces any existing profile.
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SaveProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profileUC.SaveProfile(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateSettings handles a partial settings edit.
func (h *ProfileHandler) UpdateSettings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profileUC.UpdateSettings(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// PreviewGoal runs the goal calculation without saving anything.
func (h *ProfileHandler) PreviewGoal(c echo.Context) error {
	var req GoalPreviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	metrics, err := h.profileUC.PreviewGoal(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, metrics)
}
