package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"myetician/config"
	"myetician/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_LocalBackend(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{}
	cfg.Storage.Backend = config.StorageLocal
	cfg.Storage.BucketURL = "mem://"

	repos, err := New(context.Background(), Params{
		Lifecycle: lc,
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	require.NotNil(t, repos.Profiles)
	require.NotNil(t, repos.Meals)

	lc.RequireStart()
	defer lc.RequireStop()

	_, err = repos.Profiles.FindByUserID(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestNew_FirestoreWithoutApp(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Backend = config.StorageFirestore

	_, err := New(context.Background(), Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}

func TestNew_UnknownBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Backend = "cassandra"

	_, err := New(context.Background(), Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}
