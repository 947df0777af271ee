package repository_test

import (
	"context"
	"testing"

	"github.com/gyver-dev/wedding-planner/internal/db"
	"github.com/gyver-dev/wedding-planner/internal/testutil"
)

func newTestGateway(t *testing.T) *db.DB {
	t.Helper()
	return testutil.OpenMemoryGateway(t)
}

func countRows(t *testing.T, gw *db.DB, table string) int {
	t.Helper()
	var n int
	if err := gw.QueryRow(context.Background(), `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
