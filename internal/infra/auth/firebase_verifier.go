package auth

import (
	"context"

	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/service"
	"myetician/internal/errors"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
)

type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier verifies Firebase Authentication ID tokens.
func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (service.IdentityVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) Verify(ctx context.Context, token string) (*service.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
	}

	identity := &service.Identity{UserID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}
