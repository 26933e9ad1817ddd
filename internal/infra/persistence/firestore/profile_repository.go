package firestore

import (
	"context"
	"time"

	"myetician/internal/domain/entity"
	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type profileRepository struct {
	client *firestore.Client
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

func (repo *profileRepository) FindByUserID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	snap, err := userDoc(repo.client, userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read profile")
	}

	var doc profileDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode profile")
	}

	profile, err := toProfileDomain(userID, &doc)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode profile")
	}

	return profile, nil
}

// Save keeps CreatedAt from the stored document inside a transaction so two
// concurrent onboardings cannot both claim to be first.
func (repo *profileRepository) Save(ctx context.Context, profile *entity.UserProfile) error {
	ref := userDoc(repo.client, profile.UserID)
	now := time.Now().UTC()

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		createdAt := now

		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if err == nil && snap.Exists() {
			var existing profileDoc
			if err := snap.DataTo(&existing); err != nil {
				return err
			}
			createdAt = existing.CreatedAt
		}

		profile.CreatedAt = createdAt
		profile.UpdatedAt = now

		return tx.Set(ref, fromProfileDomain(profile))
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save profile")
	}

	return nil
}
