package service

import "context"

// Identity is the verified caller of a request.
type Identity struct {
	UserID string
	Email  string
}

// IdentityVerifier turns a bearer token issued by the identity provider into
// an Identity.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
