// Package entity contains the core business objects of the project.
package entity

import "strings"

// PeriodUnit is the unit a warranty period is expressed in.
type PeriodUnit string

const (
	// UnitDays counts the period in calendar days.
	UnitDays PeriodUnit = "days"
	// UnitWeeks counts the period in blocks of seven days.
	UnitWeeks PeriodUnit = "weeks"
	// UnitMonths counts the period in calendar months.
	UnitMonths PeriodUnit = "months"
	// UnitYears counts the period in calendar years.
	UnitYears PeriodUnit = "years"
)

// DefaultPeriodUnit is assumed when a stored record carries no unit.
const DefaultPeriodUnit = UnitMonths

// String returns the string representation of the PeriodUnit.
func (u PeriodUnit) String() string {
	return string(u)
}

// IsValid checks if the PeriodUnit is a known value.
func (u PeriodUnit) IsValid() bool {
	switch u {
	case UnitDays, UnitWeeks, UnitMonths, UnitYears:
		return true
	default:
		return false
	}
}

// Singular returns the unit word for a period of exactly one ("month").
func (u PeriodUnit) Singular() string {
	return strings.TrimSuffix(string(u), "s")
}

// OrDefault returns the unit, or DefaultPeriodUnit when it is empty.
func (u PeriodUnit) OrDefault() PeriodUnit {
	if u == "" {
		return DefaultPeriodUnit
	}

	return u
}
