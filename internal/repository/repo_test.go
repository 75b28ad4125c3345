package repository

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stlscore/pitchchart/internal/db"
)

func setTempHome(t *testing.T) {
	t.Helper()

	home := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home) // For Windows
}

// openTestDB opens and migrates a fresh database under a temp home
// directory, so tests exercise the real schema.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	setTempHome(t)

	database, err := db.OpenAndMigrate()
	if err != nil {
		t.Fatalf("OpenAndMigrate: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return database
}
