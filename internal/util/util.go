// Package util holds small formatting helpers for log fields.
package util

import (
	"strconv"
	"time"
)

const sizeUnits = "KMGTPE"

// FormatBytes renders a byte count with a binary unit: 512 B, 1.5 KB, 2.0 MB.
func FormatBytes(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	value := float64(n)
	unit := -1
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	return strconv.FormatFloat(value, 'f', 1, 64) + " " + string(sizeUnits[unit]) + "B"
}

// FormatDuration renders d rounded to the second in its two largest units:
// 45s, 2m30s, 1h30m.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	switch {
	case d < time.Minute:
		return strconv.Itoa(int(d/time.Second)) + "s"
	case d < time.Hour:
		return strconv.Itoa(int(d/time.Minute)) + "m" + strconv.Itoa(int(d%time.Minute/time.Second)) + "s"
	default:
		return strconv.Itoa(int(d/time.Hour)) + "h" + strconv.Itoa(int(d%time.Hour/time.Minute)) + "m"
	}
}
