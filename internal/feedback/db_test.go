package feedback

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roverent/roverent-backend/pkg/config"
	"github.com/roverent/roverent-backend/pkg/db"
	"github.com/roverent/roverent-backend/pkg/db/models"
	"github.com/roverent/roverent-backend/pkg/enums"
)

var testDDL = []string{
	`CREATE TABLE users (
        id              INTEGER PRIMARY KEY AUTOINCREMENT,
        email           TEXT NOT NULL UNIQUE,
        password_hash   TEXT NOT NULL,
        first_name      TEXT NOT NULL,
        last_name       TEXT NOT NULL,
        phone           TEXT,
        license_number  TEXT,
        is_active       BOOLEAN NOT NULL DEFAULT TRUE,
        last_login_at   DATETIME,
        created_at      DATETIME,
        updated_at      DATETIME
    );`,
	`CREATE TABLE vehicles (
        id              INTEGER PRIMARY KEY AUTOINCREMENT,
        vin             TEXT,
        make            TEXT NOT NULL,
        model           TEXT NOT NULL,
        year            INTEGER NOT NULL,
        license_plate   TEXT NOT NULL UNIQUE,
        category        TEXT NOT NULL,
        transmission    TEXT NOT NULL,
        fuel_type       TEXT NOT NULL,
        seats           INTEGER NOT NULL,
        doors           INTEGER NOT NULL,
        color           TEXT,
        description     TEXT,
        daily_rate      NUMERIC NOT NULL,
        status          TEXT NOT NULL,
        branch_id       INTEGER,
        created_at      DATETIME,
        updated_at      DATETIME
    );`,
	`CREATE TABLE reservations (
        id            INTEGER PRIMARY KEY AUTOINCREMENT,
        user_id       INTEGER NOT NULL,
        vehicle_id    INTEGER NOT NULL,
        start_date    DATETIME NOT NULL,
        end_date      DATETIME NOT NULL,
        status        TEXT NOT NULL,
        total_cost    NUMERIC NOT NULL,
        notes         TEXT,
        cancelled_at  DATETIME,
        cancellation_reason TEXT,
        created_at    DATETIME,
        updated_at    DATETIME
    );`,
	`CREATE TABLE feedback (
        id              INTEGER PRIMARY KEY AUTOINCREMENT,
        reservation_id  INTEGER,
        user_id         INTEGER NOT NULL,
        rating          INTEGER NOT NULL,
        comment         TEXT,
        created_at      DATETIME,
        updated_at      DATETIME
    );`,
	`CREATE UNIQUE INDEX idx_feedback_reservation_id
        ON feedback (reservation_id) WHERE reservation_id IS NOT NULL;`,
}

func openTestClient(t *testing.T) *db.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	client, err := db.New(context.Background(), config.DBConfig{Driver: "sqlite", DSN: dsn}, nil)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	for _, ddl := range testDDL {
		if err := client.Exec(context.Background(), ddl).Error; err != nil {
			t.Fatalf("apply test schema: %v", err)
		}
	}
	return client
}

func mustCreateTestUser(t *testing.T, client *db.Client, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "hash",
		FirstName:    "Feedback",
		LastName:     "Tester",
		IsActive:     true,
	}
	if err := client.DB().Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func mustCreateTestVehicle(t *testing.T, client *db.Client, plate string) *models.Vehicle {
	t.Helper()
	vehicle := &models.Vehicle{
		Make:         "Honda",
		Model:        "Civic",
		Year:         2021,
		LicensePlate: plate,
		Category:     enums.VehicleCategoryCompact,
		Transmission: enums.TransmissionTypeManual,
		FuelType:     enums.FuelTypeGasoline,
		Seats:        5,
		Doors:        4,
		DailyRate:    decimal.NewFromInt(45),
		Status:       enums.VehicleStatusActive,
	}
	if err := client.DB().Create(vehicle).Error; err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	return vehicle
}

func mustCreateTestReservation(t *testing.T, client *db.Client, userID, vehicleID int64, status enums.ReservationStatus) *models.Reservation {
	t.Helper()
	start := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)
	reservation := &models.Reservation{
		UserID:    userID,
		VehicleID: vehicleID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 2),
		Status:    status,
		TotalCost: decimal.NewFromInt(90),
	}
	if err := client.DB().Create(reservation).Error; err != nil {
		t.Fatalf("create reservation: %v", err)
	}
	return reservation
}
