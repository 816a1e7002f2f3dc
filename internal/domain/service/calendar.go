package service

import "time"

// Calendar reports the current date in the time zone the business runs in.
type Calendar interface {
	// Today returns the current date at UTC midnight.
	Today() time.Time
}
