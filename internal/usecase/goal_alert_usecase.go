package usecase

import (
	"context"

	"myetician/internal/domain/service"
)

// GoalAlertUsecase reacts to meal log events delivered to the worker.
type GoalAlertUsecase interface {
	// HandleLogEvent notifies the user when the logged meal took its day over
	// the caloric goal. It reports whether a notification was sent.
	HandleLogEvent(ctx context.Context, event *service.LogEvent) (bool, error)
}
