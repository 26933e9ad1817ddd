// Package clock provides the wall clock pinned to the configured calendar timezone.
package clock

import (
	"time"

	"myetician/config"
	"myetician/internal/domain/service"

	"cloud.google.com/go/civil"
)

type zonedClock struct {
	loc *time.Location
	now func() time.Time
}

// New returns a clock in the configured calendar timezone.
func New(cfg *config.Config) service.Clock {
	return NewInLocation(cfg.Location(), time.Now)
}

// NewInLocation returns a clock reading now in loc.
func NewInLocation(loc *time.Location, now func() time.Time) service.Clock {
	return &zonedClock{loc: loc, now: now}
}

func (c *zonedClock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *zonedClock) Today() civil.Date {
	return civil.DateOf(c.Now())
}
