package database

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestConstraintErrors(t *testing.T) {
	db, err := New(Config{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("INSERT INTO users (username, password) VALUES ('alice', 'x')"); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	_, err = db.Exec("INSERT INTO users (username, password) VALUES ('alice', 'y')")
	if !IsUniqueViolation(err) {
		t.Errorf("Expected a unique violation, got %v", err)
	}
	if IsCheckViolation(err) {
		t.Error("Unique violation misreported as check violation")
	}

	_, err = db.Exec("INSERT INTO transactions (type, category, amount, date) VALUES ('gift', 'x', 1, '2024-01-01')")
	if !IsCheckViolation(err) {
		t.Errorf("Expected a check violation, got %v", err)
	}

	if IsUniqueViolation(errors.New("UNIQUE constraint failed")) {
		t.Error("Plain errors must not match")
	}
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	if _, err := New(Config{Driver: "oracle"}); err == nil {
		t.Error("Expected an error for an unsupported driver")
	}
}

func TestSchemaIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 2; i++ {
		db, err := New(Config{Driver: DriverSQLite, Path: path})
		if err != nil {
			t.Fatalf("open %d failed: %v", i, err)
		}
		db.Close()
	}
}
