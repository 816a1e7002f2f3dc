package expiry

import (
	"time"

	"warranty/internal/domain/entity"
)

// LookaheadDays is the inclusive window, counted from today, in which a
// warranty is reported as expiring soon.
const LookaheadDays = 30

// CoverageExpiries collects the expiry of every coverage that can lapse:
// products with a positive period and, when installed, an installation with a
// positive period. Zero-period coverage never expires and contributes nothing.
func CoverageExpiries(w *entity.Warranty) []time.Time {
	expiries := make([]time.Time, 0, len(w.Products)+1)
	for _, p := range w.Products {
		if p.ProductWarrantyPeriod <= 0 {
			continue
		}
		if exp, ok := ProductExpiry(p); ok {
			expiries = append(expiries, exp)
		}
	}

	if w.InstallationWarrantyPeriod > 0 {
		if exp, ok := InstallationExpiry(w); ok {
			expiries = append(expiries, exp)
		}
	}

	return expiries
}

// Classify aggregates the warranty's coverage into one status. The latest
// expiry is the reference: the record stays covered until everything
// protecting it has lapsed. today is normalized to midnight before comparing.
func Classify(w *entity.Warranty, today time.Time) entity.StatusInfo {
	expiries := CoverageExpiries(w)
	if len(expiries) == 0 {
		return newStatusInfo(entity.StatusActive, NeverExpires)
	}

	latest := expiries[0]
	for _, exp := range expiries[1:] {
		if exp.After(latest) {
			latest = exp
		}
	}

	return newStatusInfo(statusFor(Midnight(latest), Midnight(today)), latest)
}

func statusFor(reference, today time.Time) entity.WarrantyStatus {
	switch {
	case reference.Before(today):
		return entity.StatusExpired
	case !reference.After(today.AddDate(0, 0, LookaheadDays)):
		return entity.StatusExpiringSoon
	default:
		return entity.StatusActive
	}
}

func newStatusInfo(status entity.WarrantyStatus, expiresOn time.Time) entity.StatusInfo {
	return entity.StatusInfo{
		Status:    status,
		Color:     status.Color(),
		ExpiresOn: expiresOn,
	}
}

// DaysRemaining is the signed number of days from today to the reference date.
// It is zero for warranties that never expire.
func DaysRemaining(info entity.StatusInfo, today time.Time) int {
	if info.ExpiresOn.Year() > sentinelYear {
		return 0
	}

	return int(Midnight(info.ExpiresOn).Sub(Midnight(today)).Hours() / 24)
}
