package reservation

import (
	"context"
	"fmt"
	"strings"
	"testing"

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

func mustCreateTestVehicle(t *testing.T, client *db.Client, plate string, status enums.VehicleStatus) *models.Vehicle {
	t.Helper()
	vehicle := &models.Vehicle{
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2022,
		LicensePlate: plate,
		Category:     enums.VehicleCategoryCompact,
		Transmission: enums.TransmissionTypeAutomatic,
		FuelType:     enums.FuelTypeHybrid,
		Seats:        5,
		Doors:        4,
		DailyRate:    decimal.NewFromInt(50),
		Status:       status,
	}
	if err := client.DB().Create(vehicle).Error; err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	return vehicle
}

func mustCreateTestUser(t *testing.T, client *db.Client, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "hash",
		FirstName:    "Repo",
		LastName:     "Tester",
		IsActive:     true,
	}
	if err := client.DB().Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}
