package schema

import (
	"context"
	"strings"
	"testing"
)

func TestEnsureDatabaseRejectsBadIdentifiers(t *testing.T) {
	for _, name := range []string{
		"",
		"wedding-planner",
		"db name",
		"db;DROP TABLE users",
		"1starts_with_digit",
	} {
		err := EnsureDatabase(context.Background(), "pgx", "postgres://ignored", name)
		if err == nil {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}

func TestTableStatementsCoverAllTables(t *testing.T) {
	if len(tableStatements) != 5 {
		t.Fatalf("expected 5 table statements, got %d", len(tableStatements))
	}
	for _, stmt := range tableStatements {
		if !strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS") {
			t.Errorf("statement is not idempotent: %s", stmt)
		}
	}
}
