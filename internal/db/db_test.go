package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestMigrationFilesSortsSQLOnly(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.sql", "001_a.sql", "README.md", "003_c.SQL"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "004_dir.sql"), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := MigrationFiles(dir)
	if err != nil {
		t.Fatalf("migration files: %v", err)
	}
	want := []string{"001_a.sql", "002_b.sql", "003_c.SQL"}
	if len(files) != len(want) {
		t.Fatalf("expected %v, got %v", want, files)
	}
	for idx := range want {
		if files[idx] != want[idx] {
			t.Fatalf("expected %v, got %v", want, files)
		}
	}
}

func TestMigrationFilesMissingDir(t *testing.T) {
	if _, err := MigrationFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := Connect(ctx, databaseURL)
	if err != nil {
		t.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	dir := filepath.Join("..", "..", "migrations")
	if _, err := RunMigrations(ctx, pool, dir); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	applied, err := RunMigrations(ctx, pool, dir)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if len(applied) != 0 {
		t.Fatalf("second run must apply nothing, applied %v", applied)
	}

	pending, err := PendingMigrations(ctx, pool, dir)
	if err != nil {
		t.Fatalf("pending migrations: %v", err)
	}
	if pending != 0 {
		t.Fatalf("expected no pending migrations, got %d", pending)
	}
}
