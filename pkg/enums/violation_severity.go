package enums

import "fmt"

// ViolationSeverity grades how serious a rental incident is.
type ViolationSeverity string

const (
	ViolationSeverityLow      ViolationSeverity = "LOW"
	ViolationSeverityMedium   ViolationSeverity = "MEDIUM"
	ViolationSeverityHigh     ViolationSeverity = "HIGH"
	ViolationSeverityCritical ViolationSeverity = "CRITICAL"
)

var validViolationSeverities = []ViolationSeverity{
	ViolationSeverityLow,
	ViolationSeverityMedium,
	ViolationSeverityHigh,
	ViolationSeverityCritical,
}

// String implements fmt.Stringer.
func (v ViolationSeverity) String() string {
	return string(v)
}

// IsValid reports whether the value is a known ViolationSeverity.
func (v ViolationSeverity) IsValid() bool {
	for _, candidate := range validViolationSeverities {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseViolationSeverity converts raw input into a ViolationSeverity.
func ParseViolationSeverity(value string) (ViolationSeverity, error) {
	for _, candidate := range validViolationSeverities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid violation severity %q", value)
}

// CoerceViolationSeverity decodes a stored token leniently, mapping unknown
// values to the first declared member.
func CoerceViolationSeverity(value string) ViolationSeverity {
	if parsed, err := ParseViolationSeverity(value); err == nil {
		return parsed
	}
	return validViolationSeverities[0]
}
