package errors

import (
	"net/http"

	"myetician/internal/errors"
)

// AppError is an error that knows how it should be surfaced to a client.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Optional detail, dropped for 5xx responses
}

// BaseError is the default AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying the given detail. The copy still
// matches the original under errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same business code, so detailed copies
// compare equal to the catalogue entry they came from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

var (
	// Profile
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile has not been set up yet",
		"",
	)

	ErrInvalidGender = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GENDER",
		"Gender must be one of: male, female",
		"",
	)

	ErrInvalidGoal = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GOAL",
		"Goal must be one of: Build muscle, Maintain weight, Lose weight",
		"",
	)

	ErrInvalidActivityLevel = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACTIVITY_LEVEL",
		"Activity level is not recognised",
		"",
	)

	ErrInvalidActivityFactor = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACTIVITY_FACTOR",
		"Activity factor must be one of 1.2, 1.375, 1.55, 1.725, 1.9",
		"",
	)

	ErrInvalidUnit = NewBaseError(
		http.StatusBadRequest,
		"INVALID_UNIT",
		"Unsupported measurement unit",
		"",
	)

	ErrInvalidIntensity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INTENSITY",
		"Intensity must be a whole percent between 0 and 50",
		"",
	)

	ErrInvalidMeasurement = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MEASUREMENT",
		"Height and weight must be greater than zero",
		"",
	)

	ErrInvalidBirthDate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BIRTH_DATE",
		"Date of birth must be a valid date in the past",
		"",
	)

	// Meal log
	ErrMealNotFound = NewBaseError(
		http.StatusNotFound,
		"MEAL_NOT_FOUND",
		"Meal not found",
		"",
	)

	ErrInvalidMeal = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MEAL",
		"Meal needs a name and non-negative nutrition values",
		"",
	)

	ErrInvalidMealType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MEAL_TYPE",
		"Meal type must be one of: Breakfast, Lunch, Dinner, Snack",
		"",
	)

	ErrInvalidDateRange = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE_RANGE",
		"Date range is invalid",
		"",
	)

	// Food lookup
	ErrFoodLookupUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"FOOD_LOOKUP_UNAVAILABLE",
		"Food lookup is not configured",
		"",
	)

	ErrFoodLookupFailed = NewBaseError(
		http.StatusBadGateway,
		"FOOD_LOOKUP_FAILED",
		"Food lookup failed, please try again later",
		"",
	)

	ErrInvalidPhoto = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHOTO",
		"Photo must be a base64 data URI",
		"",
	)

	// Notifications
	ErrNotificationFailed = NewBaseError(
		http.StatusBadGateway,
		"NOTIFICATION_FAILED",
		"Notification could not be delivered",
		"",
	)

	// Authentication
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid credentials",
		"",
	)

	// General
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError reports a storage backend failure.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Storage operation failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
