package enums

import "testing"

func TestParseVehicleCategory(t *testing.T) {
	for _, candidate := range validVehicleCategories {
		parsed, err := ParseVehicleCategory(candidate.String())
		if err != nil {
			t.Fatalf("ParseVehicleCategory(%q) returned error: %v", candidate, err)
		}
		if parsed != candidate {
			t.Fatalf("ParseVehicleCategory(%q) = %q", candidate, parsed)
		}
	}

	if _, err := ParseVehicleCategory("economy"); err == nil {
		t.Fatal("expected lower-case token to be rejected")
	}
	if _, err := ParseVehicleCategory(""); err == nil {
		t.Fatal("expected empty token to be rejected")
	}
}

func TestCoerceMapsUnknownToFirstMember(t *testing.T) {
	if got := CoerceVehicleCategory("HOVERCRAFT"); got != VehicleCategoryEconomy {
		t.Fatalf("CoerceVehicleCategory unknown = %q, want %q", got, VehicleCategoryEconomy)
	}
	if got := CoerceReservationStatus(""); got != ReservationStatusPending {
		t.Fatalf("CoerceReservationStatus empty = %q, want %q", got, ReservationStatusPending)
	}
	if got := CoerceViolationStatus("UNDERREVIEW"); got != ViolationStatusUnderReview {
		t.Fatalf("CoerceViolationStatus known token = %q", got)
	}
}

func TestReservationStatusBlocks(t *testing.T) {
	cases := map[ReservationStatus]bool{
		ReservationStatusPending:   true,
		ReservationStatusConfirmed: true,
		ReservationStatusCancelled: false,
		ReservationStatusCompleted: false,
	}
	for status, want := range cases {
		if got := status.Blocks(); got != want {
			t.Fatalf("%s.Blocks() = %v, want %v", status, got, want)
		}
	}
}

func TestIsValid(t *testing.T) {
	if !ViolationTypeLateReturn.IsValid() {
		t.Fatal("LATERETURN should be valid")
	}
	if ViolationType("LATE_RETURN").IsValid() {
		t.Fatal("underscored token should not be valid")
	}
	if !AppThemeSystem.IsValid() {
		t.Fatal("SYSTEM theme should be valid")
	}
}
