package enums

import "fmt"

// ViolationStatus tracks the review lifecycle of an incident report.
type ViolationStatus string

const (
	ViolationStatusOpen        ViolationStatus = "OPEN"
	ViolationStatusUnderReview ViolationStatus = "UNDERREVIEW"
	ViolationStatusResolved    ViolationStatus = "RESOLVED"
	ViolationStatusDismissed   ViolationStatus = "DISMISSED"
)

var validViolationStatuses = []ViolationStatus{
	ViolationStatusOpen,
	ViolationStatusUnderReview,
	ViolationStatusResolved,
	ViolationStatusDismissed,
}

// String implements fmt.Stringer.
func (v ViolationStatus) String() string {
	return string(v)
}

// IsValid reports whether the value is a known ViolationStatus.
func (v ViolationStatus) IsValid() bool {
	for _, candidate := range validViolationStatuses {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseViolationStatus converts raw input into a ViolationStatus.
func ParseViolationStatus(value string) (ViolationStatus, error) {
	for _, candidate := range validViolationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid violation status %q", value)
}

// CoerceViolationStatus decodes a stored token leniently, mapping unknown
// values to the first declared member.
func CoerceViolationStatus(value string) ViolationStatus {
	if parsed, err := ParseViolationStatus(value); err == nil {
		return parsed
	}
	return validViolationStatuses[0]
}
