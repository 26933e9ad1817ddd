package service

import (
	"time"

	"cloud.google.com/go/civil"
)

// Clock supplies "now" and the current calendar date in the service's timezone.
type Clock interface {
	Now() time.Time
	Today() civil.Date
}
