package migration

import (
	"encoding/json"
	"strconv"
	"strings"
)

// looseString accepts any JSON scalar. Older records stored ids and postcodes
// as numbers.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch t := v.(type) {
	case string:
		*s = looseString(t)
	case float64:
		*s = looseString(strconv.FormatFloat(t, 'f', -1, 64))
	case bool:
		*s = looseString(strconv.FormatBool(t))
	default:
		*s = ""
	}

	return nil
}

func (s looseString) String() string {
	return string(s)
}

// looseBool reads JSON truthiness: true, non-zero numbers and "true" strings.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch t := v.(type) {
	case bool:
		*b = looseBool(t)
	case float64:
		*b = t != 0
	case string:
		*b = looseBool(strings.EqualFold(strings.TrimSpace(t), "true"))
	default:
		*b = false
	}

	return nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))

	return trimmed == "" || trimmed == "null"
}

// truthyString reports whether raw is a non-empty JSON string or a non-zero number.
func truthyString(raw json.RawMessage) bool {
	var s looseString
	if err := json.Unmarshal(raw, &s); err != nil {
		return false
	}

	return strings.TrimSpace(s.String()) != "" && s != "0"
}
