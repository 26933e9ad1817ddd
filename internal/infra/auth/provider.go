// Package auth verifies bearer tokens issued by the configured identity provider.
package auth

import (
	"context"

	"myetician/config"
	"myetician/internal/domain/service"
	"myetician/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	App    *firebase.App `optional:"true"`
}

// NewIdentityVerifier returns the verifier for auth.provider.
func NewIdentityVerifier(ctx context.Context, params Params) (service.IdentityVerifier, error) {
	cfg := params.Config.Auth

	switch cfg.Provider {
	case config.AuthFirebase:
		if params.App == nil {
			return nil, errors.New("firebase auth requires a Firebase app")
		}

		return NewFirebaseVerifier(ctx, params.App)
	case config.AuthSupabase:
		return NewSupabaseVerifier(cfg.Supabase.JWTSecret, cfg.Supabase.Audience, cfg.Supabase.Issuer)
	case config.AuthNone, "":
		return NewLocalVerifier(), nil
	default:
		return nil, errors.Errorf("unknown auth provider %q", cfg.Provider)
	}
}
