package auth

import (
	"context"

	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/service"
	"myetician/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// supabaseClaims are the claims Supabase puts in its access tokens.
type supabaseClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type supabaseVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewSupabaseVerifier verifies HS256 access tokens signed with the project's JWT secret.
// Audience and issuer are only checked when set.
func NewSupabaseVerifier(secret, audience, issuer string) (service.IdentityVerifier, error) {
	if secret == "" {
		return nil, errors.New("supabase jwt secret must be provided")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	return &supabaseVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
	}, nil
}

func (v *supabaseVerifier) Verify(_ context.Context, token string) (*service.Identity, error) {
	claims := &supabaseClaims{}

	parsed, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
	}
	if claims.Subject == "" {
		return nil, domainerrors.ErrUnauthorized.WithDetails("token has no subject")
	}

	return &service.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}
