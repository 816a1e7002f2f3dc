// Package expiry computes warranty expiry dates and classifies the coverage
// status of a warranty. Every function is pure: callers pass "today" in.
package expiry

import (
	"strings"
	"time"

	"warranty/internal/domain/entity"
)

const (
	isoLayout     = "2006-01-02"
	displayLayout = "02/01/2006"

	// sentinelYear marks dates that stand for "no expiry".
	sentinelYear = 9000

	textNotApplicable = "N/A"
	textInvalidDate   = "Invalid Date"
	textNoExpiry      = "Does not expire"
)

// NeverExpires is the reference date reported for warranties without any expiring coverage.
var NeverExpires = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// ParseDate reads an ISO calendar date (YYYY-MM-DD). RFC 3339 timestamps are
// accepted and truncated to their date. Blank or malformed input reports false.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(isoLayout, s); err == nil {
		return t, true
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Midnight(t), true
	}

	return time.Time{}, false
}

// Midnight returns the calendar date of t, as read in t's location, at 00:00 UTC.
// Compare its result only with other Midnight values.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the calendar date of now as seen in loc, at midnight.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc != nil {
		now = now.In(loc)
	}

	return Midnight(now)
}

// AddPeriod adds period units to start. Months and years move by calendar
// month and clamp to the last valid day of the target month. Unknown units are
// treated as years. The sign of period is not checked.
func AddPeriod(start time.Time, period int, unit entity.PeriodUnit) time.Time {
	switch unit {
	case entity.UnitDays:
		return start.AddDate(0, 0, period)
	case entity.UnitWeeks:
		return start.AddDate(0, 0, period*7)
	case entity.UnitMonths:
		return addMonths(start, period)
	default:
		return addMonths(start, period*12)
	}
}

func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(firstOfTarget); d > last {
		d = last
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(firstOfMonth time.Time) int {
	return firstOfMonth.AddDate(0, 1, -1).Day()
}

// CalculateExpiryDate returns start plus period units. It reports false when
// start is blank or does not parse.
func CalculateExpiryDate(start string, period int, unit entity.PeriodUnit) (time.Time, bool) {
	t, ok := ParseDate(start)
	if !ok {
		return time.Time{}, false
	}

	return AddPeriod(t, period, unit), true
}

// ProductExpiry returns the expiry date of a single product.
func ProductExpiry(p entity.Product) (time.Time, bool) {
	return CalculateExpiryDate(p.PurchaseDate, p.ProductWarrantyPeriod.Int(), p.ProductWarrantyUnit)
}

// InstallationExpiry returns the installation warranty expiry, if the warranty covers an installation.
func InstallationExpiry(w *entity.Warranty) (time.Time, bool) {
	if !w.ServicesProvided.Install {
		return time.Time{}, false
	}

	return CalculateExpiryDate(w.InstallDate, w.InstallationWarrantyPeriod.Int(), w.InstallationWarrantyUnit)
}

// EarliestProductExpiry returns the soonest expiry among products whose dates parse.
func EarliestProductExpiry(products []entity.Product) (time.Time, bool) {
	var (
		earliest time.Time
		found    bool
	)
	for _, p := range products {
		exp, ok := ProductExpiry(p)
		if !ok {
			continue
		}
		if !found || exp.Before(earliest) {
			earliest = exp
			found = true
		}
	}

	return earliest, found
}

// FormatDate renders t as DD/MM/YYYY. A nil date is "N/A" and dates past the
// sentinel year read "Does not expire".
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return textNotApplicable
	}
	if t.Year() > sentinelYear {
		return textNoExpiry
	}

	return t.Format(displayLayout)
}

// FormatDateString parses s and renders it like FormatDate. Unparseable input
// renders as "Invalid Date".
func FormatDateString(s string) string {
	if strings.TrimSpace(s) == "" {
		return textNotApplicable
	}

	t, ok := ParseDate(s)
	if !ok {
		return textInvalidDate
	}

	return FormatDate(&t)
}
