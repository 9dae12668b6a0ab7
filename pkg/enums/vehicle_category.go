package enums

import "fmt"

// VehicleCategory classifies a fleet unit by body class.
type VehicleCategory string

const (
	VehicleCategoryEconomy VehicleCategory = "ECONOMY"
	VehicleCategoryCompact VehicleCategory = "COMPACT"
	VehicleCategoryMidsize VehicleCategory = "MIDSIZE"
	VehicleCategorySUV     VehicleCategory = "SUV"
	VehicleCategoryLuxury  VehicleCategory = "LUXURY"
	VehicleCategoryVan     VehicleCategory = "VAN"
	VehicleCategoryTruck   VehicleCategory = "TRUCK"
)

var validVehicleCategories = []VehicleCategory{
	VehicleCategoryEconomy,
	VehicleCategoryCompact,
	VehicleCategoryMidsize,
	VehicleCategorySUV,
	VehicleCategoryLuxury,
	VehicleCategoryVan,
	VehicleCategoryTruck,
}

// String implements fmt.Stringer.
func (v VehicleCategory) String() string {
	return string(v)
}

// IsValid reports whether the value is a known VehicleCategory.
func (v VehicleCategory) IsValid() bool {
	for _, candidate := range validVehicleCategories {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseVehicleCategory converts raw input into a VehicleCategory.
func ParseVehicleCategory(value string) (VehicleCategory, error) {
	for _, candidate := range validVehicleCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid vehicle category %q", value)
}

// CoerceVehicleCategory decodes a stored token leniently, mapping unknown
// values to the first declared member. Used on row reads only.
func CoerceVehicleCategory(value string) VehicleCategory {
	if parsed, err := ParseVehicleCategory(value); err == nil {
		return parsed
	}
	return validVehicleCategories[0]
}
