// Package entity contains the core business objects of the project.
package entity

import "time"

// WarrantyStatus is the aggregated coverage state of a warranty.
type WarrantyStatus string

const (
	// StatusActive means coverage lasts beyond the lookahead window, or never expires.
	StatusActive WarrantyStatus = "active"
	// StatusExpiringSoon means the last coverage ends within the lookahead window.
	StatusExpiringSoon WarrantyStatus = "expiring_soon"
	// StatusExpired means every coverage has lapsed.
	StatusExpired WarrantyStatus = "expired"
)

// String returns the string representation of the WarrantyStatus.
func (s WarrantyStatus) String() string {
	return string(s)
}

// IsValid checks if the WarrantyStatus is a known value.
func (s WarrantyStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusExpiringSoon, StatusExpired:
		return true
	default:
		return false
	}
}

// Label returns the display text of the status.
func (s WarrantyStatus) Label() string {
	switch s {
	case StatusExpiringSoon:
		return "Expiring Soon"
	case StatusExpired:
		return "Expired"
	default:
		return "Active"
	}
}

// Color returns the display color token of the status.
func (s WarrantyStatus) Color() string {
	switch s {
	case StatusExpiringSoon:
		return "orange"
	case StatusExpired:
		return "red"
	default:
		return "green"
	}
}

// StatusInfo is the classifier result for one warranty.
type StatusInfo struct {
	Status    WarrantyStatus // Aggregated status.
	Color     string         // Display color token for Status.
	ExpiresOn time.Time      // Latest relevant expiry, or the never-expires sentinel.
}
