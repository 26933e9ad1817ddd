// Package firestore stores profiles and meals in Cloud Firestore:
// users/{uid} holds the profile and users/{uid}/meals/{mealID} the log.
package firestore

import (
	"context"
	"log/slog"

	"myetician/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

const (
	usersCollection = "users"
	mealsCollection = "meals"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	App    *firebase.App
	Logger *slog.Logger
}

// New opens a Firestore client from the Firebase app and closes it on shutdown.
func New(ctx context.Context, params Params) (*firestore.Client, error) {
	if params.App == nil {
		return nil, errors.New("firestore backend requires a Firebase app")
	}

	client, err := params.App.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

func userDoc(client *firestore.Client, userID string) *firestore.DocumentRef {
	return client.Collection(usersCollection).Doc(userID)
}

func mealCollection(client *firestore.Client, userID string) *firestore.CollectionRef {
	return userDoc(client, userID).Collection(mealsCollection)
}
