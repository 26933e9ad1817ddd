package middleware

import (
	"log/slog"
	"strings"

	"myetician/config"
	"myetician/internal/delivery/api/response"
	deliverycontext "myetician/internal/delivery/context"
	"myetician/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.IdentityVerifier
	Config   *config.Config
	Logger   *slog.Logger
}

// AuthMiddleware resolves the caller of every API request.
type AuthMiddleware struct {
	verifier      service.IdentityVerifier
	tokenRequired bool
	logger        *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	provider := params.Config.Auth.Provider

	return &AuthMiddleware{
		verifier:      params.Verifier,
		tokenRequired: provider != config.AuthNone && provider != "",
		logger:        params.Logger,
	}
}

// Authenticate verifies the bearer token and stores the user ID on the
// context. With the none provider the header is optional.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)

		var token string
		if authHeader != "" {
			token = strings.TrimPrefix(authHeader, "Bearer ")
			if token == authHeader || token == "" {
				return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
			}
		} else if m.tokenRequired {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.Verify(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetUserID(c, identity.UserID)

		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			c.SetRequest(c.Request().WithContext(
				deliverycontext.WithLogger(c.Request().Context(), logger.With(slog.String("user_id", identity.UserID))),
			))
		}

		return next(c)
	}
}

// GetUserID returns the user ID set by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	return deliverycontext.GetUserID(c)
}
