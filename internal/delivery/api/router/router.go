// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"myetician/internal/delivery/api/middleware"
	"myetician/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler *handler.ProfileHandler
	MealHandler    *handler.MealHandler
	FoodHandler    *handler.FoodHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler *handler.ProfileHandler
	mealHandler    *handler.MealHandler
	foodHandler    *handler.FoodHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler: params.ProfileHandler,
		mealHandler:    params.MealHandler,
		foodHandler:    params.FoodHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.POST("/goals/preview", r.profileHandler.PreviewGoal)

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.SaveProfile)
		profileGroup.PATCH("", r.profileHandler.UpdateSettings)
	}

	mealsGroup := apiV1.Group("/meals")
	{
		mealsGroup.POST("", r.mealHandler.LogMeal)
		mealsGroup.GET("", r.mealHandler.ListMeals)
		mealsGroup.DELETE("/:id", r.mealHandler.DeleteMeal)
	}

	apiV1.GET("/log", r.mealHandler.GetDailyLog)
	apiV1.GET("/dashboard", r.mealHandler.GetDashboard)

	summaryGroup := apiV1.Group("/summary")
	{
		summaryGroup.GET("/weekly", r.mealHandler.GetWeeklySummary)
		summaryGroup.GET("/range", r.mealHandler.GetRangeSummary)
	}

	foodsGroup := apiV1.Group("/foods")
	{
		foodsGroup.GET("/search", r.foodHandler.SearchFood)
		foodsGroup.POST("/analyze-photo", r.foodHandler.AnalyzeMealPhoto)
		foodsGroup.POST("/suggestions", r.foodHandler.SuggestMeals)
	}
}
