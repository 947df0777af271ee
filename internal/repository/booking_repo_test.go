package repository_test

import (
	"context"
	"testing"

	"github.com/gyver-dev/wedding-planner/internal/repository"
)

func TestBookingRepoInsert(t *testing.T) {
	gw := newTestGateway(t)
	users := repository.NewUserRepo(gw)
	services := repository.NewServiceRepo(gw)
	bookings := repository.NewBookingRepo(gw)
	ctx := context.Background()

	u, err := users.Insert(ctx, repository.CreateUserParams{
		Email: "guest@example.com", FullName: "Guest", PasswordHash: "h",
	})
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	serviceID := seedService(t, services)

	b, err := bookings.Insert(ctx, repository.CreateBookingParams{
		ServiceID:       serviceID,
		SubcategoryName: "Gold package",
		UserID:          u.ID,
	})
	if err != nil {
		t.Fatalf("insert booking: %v", err)
	}
	if b.ID == 0 {
		t.Fatal("expected non-zero id")
	}
	if b.SubcategoryName != "Gold package" || b.ServiceID != serviceID || b.UserID != u.ID {
		t.Fatalf("unexpected booking: %+v", b)
	}
	if b.CreatedAt.IsZero() {
		t.Fatal("expected a creation timestamp")
	}
}

func TestRequestRepoInsert(t *testing.T) {
	gw := newTestGateway(t)
	users := repository.NewUserRepo(gw)
	requests := repository.NewRequestRepo(gw)
	ctx := context.Background()

	u, err := users.Insert(ctx, repository.CreateUserParams{
		Email: "asker@example.com", FullName: "Asker", PasswordHash: "h",
	})
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}

	r, err := requests.Insert(ctx, repository.CreateRequestParams{
		Name:    "Asker",
		Email:   "asker@example.com",
		Phone:   "555-0101",
		Message: "Do you cover outdoor weddings?",
		UserID:  u.ID,
	})
	if err != nil {
		t.Fatalf("insert request: %v", err)
	}
	if r.ID == 0 {
		t.Fatal("expected non-zero id")
	}
	if r.Message != "Do you cover outdoor weddings?" {
		t.Fatalf("unexpected request: %+v", r)
	}
}
