package notification

import (
	"context"
	"log/slog"

	"myetician/config"
	"myetician/internal/domain/service"
	"myetician/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

type noopNotifier struct {
	logger *slog.Logger
}

// New returns the notifier for notification.provider. A missing section or
// the none provider only logs what would have been sent.
func New(ctx context.Context, params Params) (service.Notifier, error) {
	cfg := params.Config.Notification
	if cfg == nil || cfg.Provider == "" || cfg.Provider == config.NotificationNone {
		params.Logger.Info("Notifications disabled")

		return &noopNotifier{logger: params.Logger}, nil
	}

	switch cfg.Provider {
	case config.NotificationFCM:
		if params.App == nil {
			return nil, errors.New("fcm notifications require a Firebase app")
		}

		return NewFCMNotifier(ctx, params.App, cfg.TopicPrefix, params.Logger)
	default:
		return nil, errors.Errorf("unknown notification provider %q", cfg.Provider)
	}
}

func (n *noopNotifier) NotifyUser(_ context.Context, userID string, notification *service.Notification) error {
	n.logger.Debug("Notification skipped",
		slog.String("user_id", userID),
		slog.String("title", notification.Title),
	)

	return nil
}
