package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gyver-dev/wedding-planner/internal/db"
	"github.com/gyver-dev/wedding-planner/internal/routes"
	"github.com/gyver-dev/wedding-planner/internal/testutil"
)

// newTestServer wires the real router against an in-memory SQLite database
// carrying the application schema, so requests run the full handler →
// repository → gateway path.
func newTestServer(t *testing.T) (*gin.Engine, *db.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gw := testutil.OpenMemoryGateway(t)

	r := gin.New()
	routes.RegisterRoutes(r, gw)
	return r, gw
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func countRows(t *testing.T, gw *db.DB, table string) int {
	t.Helper()
	var n int
	if err := gw.QueryRow(context.Background(), `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func registerUser(t *testing.T, r *gin.Engine, email string) int64 {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/adduser", gin.H{
		"email":     email,
		"full_name": "Test User",
		"password":  "secret-pw",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", email, w.Code, w.Body.String())
	}
	var resp struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, w, &resp)
	return resp.ID
}
