// Package local keeps profiles and meal logs as JSON documents in a blob
// bucket. It is the single-user, no-database mode: a file:// bucket on a
// laptop or mem:// in tests. Writes are serialized through one mutex.
package local

import (
	"context"
	"encoding/json"
	"sync"

	"myetician/config"
	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/lifecycle"
	"myetician/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const (
	profilePrefix = "myetician_user_data/"
	mealLogPrefix = "myetician_meal_log/"
)

// Store is the document store shared by the local repositories.
type Store struct {
	bucket *blob.Bucket
	mu     sync.Mutex
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", params.Config.Storage.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewStore(bucket), nil
}

// NewStore wraps an already opened bucket.
func NewStore(bucket *blob.Bucket) *Store {
	return &Store{bucket: bucket}
}

// read decodes the document at key into v. It reports false when the key does not exist.
func (s *Store) read(ctx context.Context, key string, v any) (bool, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return false, nil
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to read "+key)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "corrupt document "+key)
	}

	return true, nil
}

func (s *Store) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to write "+key)
	}

	return nil
}

func profileKey(userID string) string {
	return profilePrefix + userID + ".json"
}

func mealLogKey(userID string) string {
	return mealLogPrefix + userID + ".json"
}
