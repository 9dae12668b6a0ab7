package enums

import "fmt"

// TransmissionType identifies a vehicle's gearbox.
type TransmissionType string

const (
	TransmissionTypeManual    TransmissionType = "MANUAL"
	TransmissionTypeAutomatic TransmissionType = "AUTOMATIC"
)

var validTransmissionTypes = []TransmissionType{
	TransmissionTypeManual,
	TransmissionTypeAutomatic,
}

// String implements fmt.Stringer.
func (t TransmissionType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TransmissionType.
func (t TransmissionType) IsValid() bool {
	for _, candidate := range validTransmissionTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTransmissionType converts raw input into a TransmissionType.
func ParseTransmissionType(value string) (TransmissionType, error) {
	for _, candidate := range validTransmissionTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transmission type %q", value)
}

// CoerceTransmissionType decodes a stored token leniently, mapping unknown
// values to the first declared member.
func CoerceTransmissionType(value string) TransmissionType {
	if parsed, err := ParseTransmissionType(value); err == nil {
		return parsed
	}
	return validTransmissionTypes[0]
}
