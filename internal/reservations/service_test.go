package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	vehicle "github.com/roverent/roverent-backend/internal/vehicles"
	"github.com/roverent/roverent-backend/pkg/cache"
	"github.com/roverent/roverent-backend/pkg/config"
	"github.com/roverent/roverent-backend/pkg/db"
	"github.com/roverent/roverent-backend/pkg/enums"
	pkgerrors "github.com/roverent/roverent-backend/pkg/errors"
)

func newTestService(t *testing.T, client *db.Client) (Service, *cache.Memory) {
	t.Helper()
	store := cache.NewMemory()
	svc, err := NewService(ServiceParams{
		Repo:     NewRepository(client.DB()),
		DB:       client,
		Evictor:  store,
		EvictKey: "vehicles:list",
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, store
}

func day(d int) time.Time {
	return time.Date(2026, 6, d, 10, 0, 0, 0, time.UTC)
}

func TestCreateReservation(t *testing.T) {
	client := openTestClient(t)
	svc, store := newTestService(t, client)

	user := mustCreateTestUser(t, client, "renter@example.com")
	vehicle := mustCreateTestVehicle(t, client, "RVR-100", enums.VehicleStatusActive)
	store.Set("vehicles:list", "warm", time.Minute)

	created, err := svc.Create(context.Background(), CreateReservationInput{
		UserID:    user.ID,
		VehicleID: vehicle.ID,
		StartDate: day(1),
		EndDate:   day(4),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.Status != enums.ReservationStatusPending.String() {
		t.Fatalf("new bookings start pending, got %q", created.Status)
	}
	// 3 days at 50/day.
	if !created.TotalCost.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected total 150, got %s", created.TotalCost)
	}
	if _, warm := store.Get("vehicles:list"); warm {
		t.Fatal("booking writes must evict the vehicle list cache")
	}
}

func TestCreateReservationOverlapConflict(t *testing.T) {
	client := openTestClient(t)
	svc, _ := newTestService(t, client)

	user := mustCreateTestUser(t, client, "renter@example.com")
	vehicle := mustCreateTestVehicle(t, client, "RVR-100", enums.VehicleStatusActive)

	if _, err := svc.Create(context.Background(), CreateReservationInput{
		UserID:    user.ID,
		VehicleID: vehicle.ID,
		StartDate: day(1),
		EndDate:   day(4),
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	overlapping := []struct {
		name       string
		start, end time.Time
	}{
		{"inside", day(2), day(3)},
		{"straddles start", time.Date(2026, 5, 30, 10, 0, 0, 0, time.UTC), day(2)},
		{"straddles end", day(3), day(6)},
		{"covers", time.Date(2026, 5, 30, 10, 0, 0, 0, time.UTC), day(6)},
		{"identical", day(1), day(4)},
	}
	for _, tc := range overlapping {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), CreateReservationInput{
				UserID:    user.ID,
				VehicleID: vehicle.ID,
				StartDate: tc.start,
				EndDate:   tc.end,
			})
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeConflict {
				t.Fatalf("expected conflict, got %v", err)
			}
			if typed.Message() != vehicleUnavailableMessage {
				t.Fatalf("unexpected conflict message %q", typed.Message())
			}
		})
	}
}

func TestCreateReservationBackToBackAllowed(t *testing.T) {
	client := openTestClient(t)
	svc, _ := newTestService(t, client)

	user := mustCreateTestUser(t, client, "renter@example.com")
	vehicle := mustCreateTestVehicle(t, client, "RVR-100", enums.VehicleStatusActive)

	if _, err := svc.Create(context.Background(), CreateReservationInput{
		UserID:    user.ID,
		VehicleID: vehicle.ID,
		StartDate: day(1),
		EndDate:   day(4),
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// End boundary is exclusive, so a booking starting at day(4) fits.
	if _, err := svc.Create(context.Background(), CreateReservationInput{
		UserID:    user.ID,
		VehicleID: vehicle.ID,
		StartDate: day(4),
		EndDate:   day(6),
	}); err != nil {
		t.Fatalf("back-to-back booking should succeed: %v", err)
	}
}

func TestCreateReservationAfterCancelReleasesDates(t *testing.T) {
	client := openTestClient(t)
	svc, _ := newTestService(t, client)

	user := mustCreateTestUser(t, client, "renter@example.com")
	vehicle := mustCreateTestVehicle(t, client, "RVR-100", enums.VehicleStatusActive)

	first, err := svc.Create(context.Background(), CreateReservationInput{
		UserID:    user.ID,
		VehicleID: vehicle.ID,
		StartDate: day(1),
		EndDate:   day(4),
	})
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}

	if _, err := svc.Cancel(context.Background(), first.ID, "change of plans"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := svc.Create(context.Background(), CreateReservationInput{
		UserID:    user.ID,
		VehicleID: vehicle.ID,
		StartDate: day(1),
		EndDate:   day(4),
	}); err != nil {
		t.Fatalf("cancelled booking must not block the dates: %v", err)
	}
}

func TestCreateReservationValidation(t *testing.T) {
	client := openTestClient(t)
	svc, _ := newTestService(t, client)

	user := mustCreateTestUser(t, client, "renter@example.com")
	vehicle := mustCreateTestVehicle(t, client, "RVR-100", enums.VehicleStatusActive)

	cases := []struct {
		name  string
		input CreateReservationInput
		code  pkgerrors.Code
	}{
		{"inverted dates", CreateReservationInput{UserID: user.ID, VehicleID: vehicle.ID, StartDate: day(4), EndDate: day(1)}, pkgerrors.CodeValidation},
		{"empty interval", CreateReservationInput{UserID: user.ID, VehicleID: vehicle.ID, StartDate: day(1), EndDate: day(1)}, pkgerrors.CodeValidation},
		{"missing user", CreateReservationInput{VehicleID: vehicle.ID, StartDate: day(1), EndDate: day(2)}, pkgerrors.CodeValidation},
		{"missing vehicle", CreateReservationInput{UserID: user.ID, StartDate: day(1), EndDate: day(2)}, pkgerrors.CodeValidation},
		{"unknown vehicle", CreateReservationInput{UserID: user.ID, VehicleID: 999, StartDate: day(1), EndDate: day(2)}, pkgerrors.CodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != tc.code {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestCreateReservationInactiveVehicle(t *testing.T) {
	client := openTestClient(t)
	svc, _ := newTestService(t, client)

	user := mustCreateTestUser(t, client, "renter@example.com")
	vehicle := mustCreateTestVehicle(t, client, "RVR-100", enums.VehicleStatusMaintenance)

	_, err := svc.Create(context.Background(), CreateReservationInput{
		UserID:    user.ID,
		VehicleID: vehicle.ID,
		StartDate: day(1),
		EndDate:   day(2),
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict for inactive vehicle, got %v", err)
	}
	if typed.Message() != vehicleUnavailableMessage {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestReservationLifecycle(t *testing.T) {
	client := openTestClient(t)
	svc, _ := newTestService(t, client)

	user := mustCreateTestUser(t, client, "renter@example.com")
	vehicle := mustCreateTestVehicle(t, client, "RVR-100", enums.VehicleStatusActive)

	created, err := svc.Create(context.Background(), CreateReservationInput{
		UserID:    user.ID,
		VehicleID: vehicle.ID,
		StartDate: day(1),
		EndDate:   day(4),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	confirmed, err := svc.Confirm(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != enums.ReservationStatusConfirmed.String() {
		t.Fatalf("expected confirmed, got %q", confirmed.Status)
	}

	// Confirming twice is a conflict.
	if _, err := svc.Confirm(context.Background(), created.ID); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict on double confirm, got %v", err)
	}

	completed, err := svc.Complete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.Status != enums.ReservationStatusCompleted.String() {
		t.Fatalf("expected completed, got %q", completed.Status)
	}
}

func TestCancelIsUnconditional(t *testing.T) {
	client := openTestClient(t)
	svc, _ := newTestService(t, client)

	user := mustCreateTestUser(t, client, "renter@example.com")
	vehicle := mustCreateTestVehicle(t, client, "RVR-100", enums.VehicleStatusActive)

	created, err := svc.Create(context.Background(), CreateReservationInput{
		UserID:    user.ID,
		VehicleID: vehicle.ID,
		StartDate: day(1),
		EndDate:   day(4),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Confirm(context.Background(), created.ID); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if _, err := svc.Complete(context.Background(), created.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// Cancel succeeds even from completed.
	before := time.Now().UTC()
	cancelled, err := svc.Cancel(context.Background(), created.ID, "  returned early  ")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != enums.ReservationStatusCancelled.String() {
		t.Fatalf("expected cancelled, got %q", cancelled.Status)
	}
	if cancelled.CancelledAt == nil {
		t.Fatal("expected cancelled_at stamp")
	}
	if cancelled.CancelledAt.Before(before.Add(-time.Minute)) {
		t.Fatalf("cancelled_at not recent: %v", cancelled.CancelledAt)
	}
	if cancelled.CancellationReason == nil || *cancelled.CancellationReason != "returned early" {
		t.Fatalf("expected trimmed reason, got %v", cancelled.CancellationReason)
	}

	// Cancelling again without a reason still succeeds and drops the old one.
	again, err := svc.Cancel(context.Background(), created.ID, "")
	if err != nil {
		t.Fatalf("second cancel: %v", err)
	}
	if again.CancellationReason != nil {
		t.Fatalf("expected reason cleared, got %v", again.CancellationReason)
	}
}

func TestListByUser(t *testing.T) {
	client := openTestClient(t)
	svc, _ := newTestService(t, client)

	alice := mustCreateTestUser(t, client, "alice@example.com")
	bob := mustCreateTestUser(t, client, "bob@example.com")
	vehicle := mustCreateTestVehicle(t, client, "RVR-100", enums.VehicleStatusActive)

	if _, err := svc.Create(context.Background(), CreateReservationInput{
		UserID: alice.ID, VehicleID: vehicle.ID, StartDate: day(1), EndDate: day(2),
	}); err != nil {
		t.Fatalf("alice booking: %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateReservationInput{
		UserID: bob.ID, VehicleID: vehicle.ID, StartDate: day(2), EndDate: day(3),
	}); err != nil {
		t.Fatalf("bob booking: %v", err)
	}

	mine, err := svc.ListByUser(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != alice.ID {
		t.Fatalf("expected only alice's booking, got %+v", mine)
	}
	if mine[0].VehicleMake == "" {
		t.Fatal("expected vehicle summary on listing")
	}
}

func TestBookingCostChargesStartedDays(t *testing.T) {
	rate := decimal.NewFromInt(50)

	if got := bookingCost(rate, day(1), day(4)); !got.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("3 full days should cost 150, got %s", got)
	}
	// 36 hours rounds up to 2 days.
	if got := bookingCost(rate, day(1), day(2).Add(12*time.Hour)); !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("36h should cost 100, got %s", got)
	}
	// Sub-day bookings charge one day.
	if got := bookingCost(rate, day(1), day(1).Add(2*time.Hour)); !got.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("2h should cost 50, got %s", got)
	}
}

func TestIsVehicleAvailable(t *testing.T) {
	client := openTestClient(t)
	svc, _ := newTestService(t, client)

	user := mustCreateTestUser(t, client, "renter@example.com")
	vehicle := mustCreateTestVehicle(t, client, "RVR-100", enums.VehicleStatusActive)

	free, err := svc.IsVehicleAvailable(context.Background(), vehicle.ID, day(1), day(3))
	if err != nil || !free {
		t.Fatalf("expected free window, got %v %v", free, err)
	}

	if _, err := svc.Create(context.Background(), CreateReservationInput{
		UserID: user.ID, VehicleID: vehicle.ID, StartDate: day(1), EndDate: day(3),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	free, err = svc.IsVehicleAvailable(context.Background(), vehicle.ID, day(2), day(4))
	if err != nil || free {
		t.Fatalf("overlapping window must be unavailable, got %v %v", free, err)
	}
	// The exclusive end boundary stays bookable.
	free, err = svc.IsVehicleAvailable(context.Background(), vehicle.ID, day(3), day(5))
	if err != nil || !free {
		t.Fatalf("back-to-back window must be available, got %v %v", free, err)
	}

	if _, err := svc.IsVehicleAvailable(context.Background(), vehicle.ID, day(4), day(4)); pkgerrors.As(err) == nil {
		t.Fatal("empty window must be rejected")
	}

	all, err := svc.ListAll(context.Background())
	if err != nil || len(all) != 1 {
		t.Fatalf("expected one booking overall, got %d %v", len(all), err)
	}
}

func TestReserveCancelAvailabilityScenario(t *testing.T) {
	client := openTestClient(t)
	svc, store := newTestService(t, client)

	fleet, err := vehicle.NewService(vehicle.ServiceParams{
		Repo:        vehicle.NewRepository(client.DB()),
		Cache:       store,
		CacheConfig: config.CacheConfig{VehicleListTTL: time.Minute},
	})
	if err != nil {
		t.Fatalf("build vehicle service: %v", err)
	}

	user := mustCreateTestUser(t, client, "renter@example.com")
	car := mustCreateTestVehicle(t, client, "RVR-100", enums.VehicleStatusActive)

	listed, err := fleet.ListAvailable(context.Background(), day(1), day(4))
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != car.ID {
		t.Fatalf("expected the vehicle to start available, got %v", listed)
	}

	booked, err := svc.Create(context.Background(), CreateReservationInput{
		UserID:    user.ID,
		VehicleID: car.ID,
		StartDate: day(1),
		EndDate:   day(4),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	listed, err = fleet.ListAvailable(context.Background(), day(2), day(3))
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("booked vehicle must drop out of availability, got %v", listed)
	}

	if _, err := svc.Cancel(context.Background(), booked.ID, "trip called off"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	listed, err = fleet.ListAvailable(context.Background(), day(2), day(3))
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	if len(listed) != 1 {
		t.Fatal("cancelled booking must release the dates")
	}
}
