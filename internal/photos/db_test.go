package photo

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
	`CREATE TABLE branches (
        id          INTEGER PRIMARY KEY AUTOINCREMENT,
        name        TEXT NOT NULL UNIQUE,
        address     TEXT NOT NULL,
        city        TEXT NOT NULL,
        phone       TEXT,
        is_active   BOOLEAN NOT NULL DEFAULT TRUE,
        created_at  DATETIME,
        updated_at  DATETIME
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
	`CREATE TABLE vehicle_photos (
        id          INTEGER PRIMARY KEY AUTOINCREMENT,
        vehicle_id  INTEGER NOT NULL,
        url         TEXT NOT NULL,
        caption     TEXT,
        is_primary  BOOLEAN NOT NULL DEFAULT FALSE,
        sort_order  INTEGER NOT NULL DEFAULT 0,
        created_at  DATETIME
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

func mustCreateTestVehicle(t *testing.T, client *db.Client, plate string) *models.Vehicle {
	t.Helper()
	vehicle := &models.Vehicle{
		Make:         "Mazda",
		Model:        "3",
		Year:         2023,
		LicensePlate: plate,
		Category:     enums.VehicleCategoryMidsize,
		Transmission: enums.TransmissionTypeAutomatic,
		FuelType:     enums.FuelTypeGasoline,
		Seats:        5,
		Doors:        4,
		DailyRate:    decimal.NewFromInt(55),
		Status:       enums.VehicleStatusActive,
	}
	if err := client.DB().Create(vehicle).Error; err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	return vehicle
}
