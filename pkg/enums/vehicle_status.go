package enums

import "fmt"

// VehicleStatus tracks whether a fleet unit can be rented out.
type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "ACTIVE"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
	VehicleStatusRetired     VehicleStatus = "RETIRED"
)

var validVehicleStatuses = []VehicleStatus{
	VehicleStatusActive,
	VehicleStatusMaintenance,
	VehicleStatusRetired,
}

// String implements fmt.Stringer.
func (v VehicleStatus) String() string {
	return string(v)
}

// IsValid reports whether the value is a known VehicleStatus.
func (v VehicleStatus) IsValid() bool {
	for _, candidate := range validVehicleStatuses {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseVehicleStatus converts raw input into a VehicleStatus.
func ParseVehicleStatus(value string) (VehicleStatus, error) {
	for _, candidate := range validVehicleStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid vehicle status %q", value)
}

// CoerceVehicleStatus decodes a stored token leniently, mapping unknown
// values to the first declared member.
func CoerceVehicleStatus(value string) VehicleStatus {
	if parsed, err := ParseVehicleStatus(value); err == nil {
		return parsed
	}
	return validVehicleStatuses[0]
}
