package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gyver-dev/wedding-planner/internal/models"
)

func addService(t *testing.T, r *gin.Engine, subcategories string) int64 {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/addservice", gin.H{
		"title":         "Venue decoration",
		"description":   "Flowers and lighting",
		"userId":        1,
		"userEmail":     "owner@example.com",
		"subcategories": subcategories,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add service: status %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		ServiceID int64 `json:"serviceId"`
	}
	decodeBody(t, w, &resp)
	if resp.ServiceID == 0 {
		t.Fatalf("expected serviceId in response, got %s", w.Body.String())
	}
	return resp.ServiceID
}

func TestAddServiceAndFetch(t *testing.T) {
	r, _ := newTestServer(t)

	addService(t, r, `[{"name":"A","price":10.00,"shortDescription":"x"}]`)

	w := doJSON(t, r, http.MethodGet, "/services", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	// price renders with two fraction digits on the wire
	if !strings.Contains(w.Body.String(), `"price":"10.00"`) {
		t.Fatalf("expected price rendered as \"10.00\", body %s", w.Body.String())
	}

	var services []models.Service
	decodeBody(t, w, &services)
	if len(services) != 1 {
		t.Fatalf("expected 1 service, got %d", len(services))
	}
	if len(services[0].Subcategories) != 1 {
		t.Fatalf("expected 1 subcategory, got %d", len(services[0].Subcategories))
	}
	sub := services[0].Subcategories[0]
	if sub.Name != "A" || sub.ShortDescription != "x" || !sub.Price.Equal(mustDecimal(t, "10")) {
		t.Fatalf("unexpected subcategory: %+v", sub)
	}
}

func TestAddServiceInvalidSubcategoriesJSON(t *testing.T) {
	r, gw := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/addservice", gin.H{
		"title":         "Venue decoration",
		"description":   "Flowers",
		"userId":        1,
		"userEmail":     "owner@example.com",
		"subcategories": "this is not json",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	if countRows(t, gw, "services") != 0 {
		t.Fatal("no service row may exist after a rejected payload")
	}
	if countRows(t, gw, "subcategories") != 0 {
		t.Fatal("no subcategory row may exist after a rejected payload")
	}
}

func TestAddServiceSubcategoriesNotArray(t *testing.T) {
	r, gw := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/addservice", gin.H{
		"title":         "Venue decoration",
		"description":   "Flowers",
		"userId":        1,
		"userEmail":     "owner@example.com",
		"subcategories": `{"name":"A","price":10.00,"shortDescription":"x"}`,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Code string `json:"error_code"`
	}
	decodeBody(t, w, &resp)
	if resp.Code != "subcategories_not_array" {
		t.Fatalf("unexpected error code %q", resp.Code)
	}
	if countRows(t, gw, "services") != 0 {
		t.Fatal("no service row may exist after a rejected payload")
	}
}

func TestListServicesByUser(t *testing.T) {
	r, _ := newTestServer(t)

	addService(t, r, `[]`)
	w := doJSON(t, r, http.MethodPost, "/addservice", gin.H{
		"title":         "Catering",
		"description":   "Buffet",
		"userId":        2,
		"userEmail":     "other@example.com",
		"subcategories": `[]`,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add second service: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/services/2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	var services []models.Service
	decodeBody(t, w, &services)
	if len(services) != 1 || services[0].Title != "Catering" {
		t.Fatalf("unexpected services: %s", w.Body.String())
	}
}

func TestUpdateServiceReplacesSubcategorySet(t *testing.T) {
	r, gw := newTestServer(t)

	id := addService(t, r, `[{"name":"old","price":1,"shortDescription":"a"}]`)

	body := gin.H{
		"title":         "Venue decoration deluxe",
		"description":   "More flowers",
		"subcategories": `[{"name":"new-1","price":5,"shortDescription":"d"},{"name":"new-2","price":6,"shortDescription":"e"}]`,
	}
	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/service/%d", id), body)
		if w.Code != http.StatusOK {
			t.Fatalf("update #%d: status %d, body %s", i+1, w.Code, w.Body.String())
		}
		if n := countRows(t, gw, "subcategories"); n != 2 {
			t.Fatalf("update #%d: expected exactly 2 subcategory rows, got %d", i+1, n)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/services", nil)
	var services []models.Service
	decodeBody(t, w, &services)
	if services[0].Title != "Venue decoration deluxe" {
		t.Fatalf("title not updated: %+v", services[0])
	}
}

func TestUpdateServiceInvalidSubcategories(t *testing.T) {
	r, gw := newTestServer(t)

	id := addService(t, r, `[{"name":"keep","price":1,"shortDescription":"a"}]`)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/service/%d", id), gin.H{
		"title":         "New title",
		"description":   "New description",
		"subcategories": "broken",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	// rejected update leaves the old set alone
	if n := countRows(t, gw, "subcategories"); n != 1 {
		t.Fatalf("expected 1 subcategory row, got %d", n)
	}
}

func TestDeleteServiceCascades(t *testing.T) {
	r, gw := newTestServer(t)

	userID := registerUser(t, r, "owner@example.com")
	id := addService(t, r, `[{"name":"A","price":10,"shortDescription":"x"}]`)

	w := doJSON(t, r, http.MethodPost, "/addbooking", gin.H{
		"serviceId":       id,
		"subcategoryName": "A",
		"userId":          userID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add booking: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/service/%d", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status %d, body %s", w.Code, w.Body.String())
	}

	if countRows(t, gw, "services") != 0 || countRows(t, gw, "subcategories") != 0 {
		t.Fatal("service and subcategories must be gone")
	}
	if countRows(t, gw, "bookings") != 0 {
		t.Fatal("bookings referencing the service must cascade")
	}
	if countRows(t, gw, "users") != 1 {
		t.Fatal("owning user row must survive")
	}
}
