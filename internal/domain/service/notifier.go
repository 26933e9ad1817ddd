package service

import "context"

// Notification is a push message shown on a user's devices.
type Notification struct {
	Title string
	Body  string
	Data  map[string]string
}

// Notifier delivers notifications to every device a user has signed in on.
type Notifier interface {
	NotifyUser(ctx context.Context, userID string, notification *Notification) error
}
