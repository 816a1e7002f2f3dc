// Package clock provides the wall-clock calendar used for expiry decisions.
package clock

import (
	"time"

	"warranty/config"
	"warranty/internal/domain/expiry"
	"warranty/internal/domain/service"

	"github.com/pkg/errors"
)

type calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar creates a Calendar for the configured reminder time zone,
// falling back to the host's local zone.
func NewCalendar(cfg *config.Config) (service.Calendar, error) {
	loc := time.Local
	if cfg.Reminder != nil && cfg.Reminder.Timezone != "" {
		var err error
		if loc, err = time.LoadLocation(cfg.Reminder.Timezone); err != nil {
			return nil, errors.Wrapf(err, "invalid reminder timezone %q", cfg.Reminder.Timezone)
		}
	}

	return NewFixedZoneCalendar(loc, time.Now), nil
}

// NewFixedZoneCalendar creates a Calendar reading now in loc.
func NewFixedZoneCalendar(loc *time.Location, now func() time.Time) service.Calendar {
	return &calendar{loc: loc, now: now}
}

// Today returns the current date in the calendar's zone.
func (c *calendar) Today() time.Time {
	return expiry.Today(c.now(), c.loc)
}
