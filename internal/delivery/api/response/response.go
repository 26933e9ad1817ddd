// Package response writes the JSON envelopes returned by the API.
package response

import (
	"net/http"

	deliverycontext "myetician/internal/delivery/context"
	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse is the {data, meta} envelope.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the {error, meta} envelope.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo describes a failed request.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g. "PROFILE_NOT_FOUND"
	Message string `json:"message"`           // User-facing message
	Details any    `json:"details,omitempty"` // Field errors or context, 4xx only
}

// MetaInfo is attached to every response.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// exposesDetails reports whether details may reach the client. Server and
// auth failures never echo internals back.
func exposesDetails(statusCode int) bool {
	return statusCode < http.StatusInternalServerError &&
		statusCode != http.StatusUnauthorized &&
		statusCode != http.StatusForbidden
}

// Success writes data in the success envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes the error envelope.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	info := &ErrorInfo{Code: errorCode, Message: message}
	if exposesDetails(statusCode) {
		info.Details = details
	}

	return c.JSON(statusCode, ErrorResponse{Error: info, Meta: meta(c)})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError answers a body that could not be decoded into the request DTO.
func BindingError(c echo.Context, errorCode string, message string) error {
	return BadRequest(c, errorCode, message)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes client-facing domain errors. Server-side domain
// errors and anything unrecognised go back to the central error handler,
// which logs and reports them.
func HandleAppError(c echo.Context, err error) error {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok || appErr.HTTPCode() >= http.StatusInternalServerError {
		return errors.WithStack(err)
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
