// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"strings"
)

// BuildingType describes where an installation took place.
type BuildingType string

const (
	// BuildingHome indicates a residential building.
	BuildingHome BuildingType = "home"
	// BuildingOffice indicates an office building.
	BuildingOffice BuildingType = "office"
	// BuildingOthers indicates a free-form building type kept in OtherBuildingType.
	BuildingOthers BuildingType = "others"

	// buildingResidential is the value older records used for BuildingHome.
	buildingResidential BuildingType = "residential"
)

// String returns the string representation of the BuildingType.
func (b BuildingType) String() string {
	return string(b)
}

// IsValid checks if the BuildingType is a current value.
func (b BuildingType) IsValid() bool {
	switch b {
	case BuildingHome, BuildingOffice, BuildingOthers:
		return true
	default:
		return false
	}
}

// Normalize maps legacy spellings onto current values.
func (b BuildingType) Normalize() BuildingType {
	normalized := BuildingType(strings.ToLower(strings.TrimSpace(string(b))))
	if normalized == buildingResidential {
		return BuildingHome
	}

	return normalized
}

// UnmarshalJSON reads the building type and folds legacy values.
func (b *BuildingType) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*b = ""

		return nil
	}
	*b = BuildingType(*raw).Normalize()

	return nil
}

// Label returns the display name of the building, falling back to other for BuildingOthers.
func (b BuildingType) Label(other string) string {
	switch b.Normalize() {
	case BuildingHome:
		return "Home"
	case BuildingOffice:
		return "Office"
	case BuildingOthers:
		if other = strings.TrimSpace(other); other != "" {
			return other
		}

		return "Others"
	default:
		return ""
	}
}
