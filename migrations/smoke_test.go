package migrations_test

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"sort"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fairbuddy/go-fairbuddy/migrations"
)

func TestMigrationsApplyToSQLite(t *testing.T) {
	t.Parallel()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	ctx := context.Background()
	for _, fsys := range migrations.Filesystems() {
		if err := applyFilesystem(ctx, db, fsys); err != nil {
			t.Fatalf("failed to apply migrations: %v", err)
		}
	}

	for _, table := range []string{"settings", "career_fairs", "checklist_items", "companies", "images"} {
		var name string
		query := "SELECT name FROM sqlite_master WHERE type='table' AND name=?"
		if err := db.QueryRowContext(ctx, query, table).Scan(&name); err != nil {
			t.Fatalf("failed to verify %s table: %v", table, err)
		}
		if name != table {
			t.Fatalf("expected %s table, got %q", table, name)
		}
	}

	var idx string
	query := "SELECT name FROM sqlite_master WHERE type='index' AND name='idx_career_fairs_date'"
	if err := db.QueryRowContext(ctx, query).Scan(&idx); err != nil {
		t.Fatalf("failed to verify date index: %v", err)
	}

	if err := migrations.ValidateSchema(ctx, db, "sqlite"); err != nil {
		t.Fatalf("schema validation failed: %v", err)
	}
}

func TestValidateSchemaReportsMissingTables(t *testing.T) {
	t.Parallel()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.ValidateSchema(context.Background(), db, "sqlite")
	if err == nil {
		t.Fatal("expected validation error on empty database")
	}
	var verr *migrations.SchemaValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected SchemaValidationError, got %T", err)
	}
	if len(verr.MissingTables) != 5 {
		t.Fatalf("expected 5 missing tables, got %v", verr.MissingTables)
	}
}

func applyFilesystem(ctx context.Context, db *sql.DB, filesystem fs.FS) error {
	entries, err := fs.Glob(filesystem, "sqlite/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(entries)
	for _, entry := range entries {
		sqlBytes, err := fs.ReadFile(filesystem, entry)
		if err != nil {
			return err
		}
		statements := splitStatements(string(sqlBytes))
		for _, stmt := range statements {
			if strings.TrimSpace(stmt) == "" {
				continue
			}
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitStatements(sql string) []string {
	parts := strings.Split(sql, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
