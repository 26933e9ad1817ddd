package service

import (
	"context"
	"time"
)

// LogEventType names what happened to a user's data.
type LogEventType string

const (
	EventMealLogged   LogEventType = "meal.logged"
	EventMealDeleted  LogEventType = "meal.deleted"
	EventProfileSaved LogEventType = "profile.saved"
)

// LogEvent is published after a change to a profile or meal log.
type LogEvent struct {
	RequestID   string       `json:"request_id,omitempty"` // For distributed tracing
	Type        LogEventType `json:"type"`
	UserID      string       `json:"user_id"`
	MealID      string       `json:"meal_id,omitempty"`
	Date        string       `json:"date,omitempty"`
	Calories    float64      `json:"calories,omitempty"`
	CaloricGoal float64      `json:"caloric_goal,omitempty"`
	OccurredAt  time.Time    `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an event to downstream consumers.
	Publish(ctx context.Context, event *LogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
