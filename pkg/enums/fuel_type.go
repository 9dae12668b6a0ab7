package enums

import "fmt"

// FuelType identifies a vehicle's powertrain fuel.
type FuelType string

const (
	FuelTypeGasoline FuelType = "GASOLINE"
	FuelTypeDiesel   FuelType = "DIESEL"
	FuelTypeHybrid   FuelType = "HYBRID"
	FuelTypeElectric FuelType = "ELECTRIC"
)

var validFuelTypes = []FuelType{
	FuelTypeGasoline,
	FuelTypeDiesel,
	FuelTypeHybrid,
	FuelTypeElectric,
}

// String implements fmt.Stringer.
func (f FuelType) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FuelType.
func (f FuelType) IsValid() bool {
	for _, candidate := range validFuelTypes {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFuelType converts raw input into a FuelType.
func ParseFuelType(value string) (FuelType, error) {
	for _, candidate := range validFuelTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid fuel type %q", value)
}

// CoerceFuelType decodes a stored token leniently, mapping unknown values
// to the first declared member.
func CoerceFuelType(value string) FuelType {
	if parsed, err := ParseFuelType(value); err == nil {
		return parsed
	}
	return validFuelTypes[0]
}
