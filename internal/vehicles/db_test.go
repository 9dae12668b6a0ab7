package vehicle

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
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

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	for _, ddl := range testDDL {
		if err := conn.Exec(ddl).Error; err != nil {
			t.Fatalf("apply test schema: %v", err)
		}
	}
	return conn
}
