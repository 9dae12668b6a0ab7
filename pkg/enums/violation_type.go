package enums

import "fmt"

// ViolationType classifies a rental incident.
type ViolationType string

const (
	ViolationTypeLateReturn  ViolationType = "LATERETURN"
	ViolationTypeDamage      ViolationType = "DAMAGE"
	ViolationTypeCleanliness ViolationType = "CLEANLINESS"
	ViolationTypeOther       ViolationType = "OTHER"
)

var validViolationTypes = []ViolationType{
	ViolationTypeLateReturn,
	ViolationTypeDamage,
	ViolationTypeCleanliness,
	ViolationTypeOther,
}

// String implements fmt.Stringer.
func (v ViolationType) String() string {
	return string(v)
}

// IsValid reports whether the value is a known ViolationType.
func (v ViolationType) IsValid() bool {
	for _, candidate := range validViolationTypes {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseViolationType converts raw input into a ViolationType.
func ParseViolationType(value string) (ViolationType, error) {
	for _, candidate := range validViolationTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid violation type %q", value)
}

// CoerceViolationType decodes a stored token leniently, mapping unknown
// values to the first declared member.
func CoerceViolationType(value string) ViolationType {
	if parsed, err := ParseViolationType(value); err == nil {
		return parsed
	}
	return validViolationTypes[0]
}
