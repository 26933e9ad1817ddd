// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"myetician/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when the user has not onboarded yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository stores one profile per user.
type ProfileRepository interface {
	// FindByUserID returns the user's profile or ErrProfileNotFound.
	FindByUserID(ctx context.Context, userID string) (*entity.UserProfile, error)

	// Save creates or replaces the user's profile. CreatedAt is kept from the
	// stored copy when one exists; UpdatedAt is set by the store.
	Save(ctx context.Context, profile *entity.UserProfile) error
}
