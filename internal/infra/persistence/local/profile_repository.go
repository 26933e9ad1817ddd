package local

import (
	"context"
	"time"

	"myetician/internal/domain/entity"
	"myetician/internal/domain/repository"
)

type profileRepository struct {
	store *Store
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(store *Store) repository.ProfileRepository {
	return &profileRepository{store: store}
}

func (repo *profileRepository) FindByUserID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var profile entity.UserProfile

	found, err := repo.store.read(ctx, profileKey(userID), &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrProfileNotFound
	}

	return &profile, nil
}

func (repo *profileRepository) Save(ctx context.Context, profile *entity.UserProfile) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	now := time.Now().UTC()

	var existing entity.UserProfile
	found, err := repo.store.read(ctx, profileKey(profile.UserID), &existing)
	if err != nil {
		return err
	}

	profile.CreatedAt = now
	if found {
		profile.CreatedAt = existing.CreatedAt
	}
	profile.UpdatedAt = now

	return repo.store.write(ctx, profileKey(profile.UserID), profile)
}
