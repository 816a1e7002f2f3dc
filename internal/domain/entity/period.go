// Package entity contains the core business objects of the project.
package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Period is a non-negative warranty length. Stored records written by older
// form versions may hold it as a string, a number or null, so decoding is lenient.
type Period int

// Int returns the period as an int.
func (p Period) Int() int {
	return int(p)
}

// UnmarshalJSON accepts numbers, numeric strings and null. Anything that does
// not parse, and any negative value, reads as zero.
func (p *Period) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = 0

		return nil
	}

	var text string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	} else {
		text = string(data)
	}

	*p = ParsePeriod(text)

	return nil
}

// ParsePeriod reads a period from free text, returning zero when it is not a
// non-negative number. Fractions are truncated.
func ParsePeriod(text string) Period {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	if n, err := strconv.Atoi(text); err == nil {
		return clampPeriod(n)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || f > math.MaxInt32 {
		return 0
	}

	return clampPeriod(int(f))
}

func clampPeriod(n int) Period {
	if n < 0 {
		return 0
	}

	return Period(n)
}
