// Package persistence selects the storage backend named in the config and
// exposes its repositories.
package persistence

import (
	"context"
	"log/slog"

	"myetician/config"
	"myetician/internal/domain/repository"
	"myetician/internal/errors"
	firestorestore "myetician/internal/infra/persistence/firestore"
	"myetician/internal/infra/persistence/local"
	"myetician/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// Repositories are the backend's implementations of the repository interfaces.
type Repositories struct {
	fx.Out

	Profiles repository.ProfileRepository
	Meals    repository.MealRepository
}

// New builds only the configured backend so unused backends never open connections.
func New(ctx context.Context, params Params) (Repositories, error) {
	backend := params.Config.Storage.Backend
	params.Logger.Info("Initializing storage backend", slog.String("backend", backend))

	switch backend {
	case config.StoragePostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Profiles: postgres.NewProfileRepository(db),
			Meals:    postgres.NewMealRepository(db),
		}, nil

	case config.StorageFirestore:
		client, err := firestorestore.New(ctx, firestorestore.Params{
			Lifecycle: params.Lifecycle,
			App:       params.App,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Profiles: firestorestore.NewProfileRepository(client),
			Meals:    firestorestore.NewMealRepository(client),
		}, nil

	case config.StorageLocal:
		store, err := local.New(local.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Profiles: local.NewProfileRepository(store),
			Meals:    local.NewMealRepository(store),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage backend %q", backend)
	}
}
