package enums

import "fmt"

// ReservationStatus tracks the lifecycle of a booking.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
)

var validReservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusCancelled,
	ReservationStatusCompleted,
}

// BlockingReservationStatuses are the statuses that hold a vehicle against
// overlapping bookings.
var BlockingReservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
}

// String implements fmt.Stringer.
func (r ReservationStatus) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ReservationStatus.
func (r ReservationStatus) IsValid() bool {
	for _, candidate := range validReservationStatuses {
		if candidate == r {
			return true
		}
	}
	return false
}

// Blocks reports whether a reservation in this status holds the vehicle.
func (r ReservationStatus) Blocks() bool {
	for _, candidate := range BlockingReservationStatuses {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseReservationStatus converts raw input into a ReservationStatus.
func ParseReservationStatus(value string) (ReservationStatus, error) {
	for _, candidate := range validReservationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid reservation status %q", value)
}

// CoerceReservationStatus decodes a stored token leniently, mapping unknown
// values to the first declared member.
func CoerceReservationStatus(value string) ReservationStatus {
	if parsed, err := ParseReservationStatus(value); err == nil {
		return parsed
	}
	return validReservationStatuses[0]
}
