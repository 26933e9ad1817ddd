package impl

import (
	"context"
	"log/slog"

	deliverycontext "myetician/internal/delivery/context"
	"myetician/internal/domain/service"
)

// publishEvent stamps the request ID onto event and publishes it. Failures
// are logged and swallowed; the change they describe is already stored.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.LogEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish log event",
			slog.String("type", string(event.Type)),
			slog.String("user_id", event.UserID),
			slog.Any("error", err),
		)
	}
}
