// Package notification delivers goal alerts to user devices.
package notification

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/service"
	"myetician/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// messageSender is the part of messaging.Client the notifier uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type fcmNotifier struct {
	sender      messageSender
	topicPrefix string
	logger      *slog.Logger
}

// NewFCMNotifier sends notifications to a per-user FCM topic. Clients
// subscribe each signed-in device to TopicFor(prefix, userID).
func NewFCMNotifier(ctx context.Context, app *firebase.App, topicPrefix string, logger *slog.Logger) (service.Notifier, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFCMNotifier(client, topicPrefix, logger), nil
}

func newFCMNotifier(sender messageSender, topicPrefix string, logger *slog.Logger) *fcmNotifier {
	return &fcmNotifier{
		sender:      sender,
		topicPrefix: topicPrefix,
		logger:      logger,
	}
}

// NotifyUser sends one message to the user's topic.
func (n *fcmNotifier) NotifyUser(ctx context.Context, userID string, notification *service.Notification) error {
	topic := TopicFor(n.topicPrefix, userID)

	messageID, err := n.sender.Send(ctx, &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: notification.Data,
	})
	if err != nil {
		return domainerrors.ErrNotificationFailed.WithDetails(err.Error())
	}

	n.logger.Debug("Notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}

// TopicFor returns the FCM topic for a user. Characters FCM does not allow in
// topic names are replaced with underscores.
func TopicFor(prefix, userID string) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(userID))
	b.WriteString(prefix)

	for _, r := range userID {
		if isTopicRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	return b.String()
}

func isTopicRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_', r == '.', r == '~', r == '%':
		return true
	default:
		return false
	}
}
