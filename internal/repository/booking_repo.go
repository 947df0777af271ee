package repository

import (
	"context"
	"time"

	"github.com/gyver-dev/wedding-planner/internal/db"
	"github.com/gyver-dev/wedding-planner/internal/models"
)

// BookingRepository is append-only: bookings are created and never touched
// again through the API.
type BookingRepository interface {
	Insert(ctx context.Context, params CreateBookingParams) (*models.Booking, error)
}

type CreateBookingParams struct {
	ServiceID       int64
	SubcategoryName string
	UserID          int64
}

type bookingRepo struct {
	gw *db.DB
}

func NewBookingRepo(gw *db.DB) BookingRepository {
	return &bookingRepo{gw: gw}
}

const sqlInsertBooking = `
	INSERT INTO bookings (service_id, subcategory_name, user_id, created_at)
	VALUES ($1, $2, $3, $4)
	RETURNING id`

func (r *bookingRepo) Insert(ctx context.Context, params CreateBookingParams) (*models.Booking, error) {
	b := &models.Booking{
		ServiceID:       params.ServiceID,
		SubcategoryName: params.SubcategoryName,
		UserID:          params.UserID,
		CreatedAt:       time.Now().UTC(),
	}
	row := r.gw.QueryRow(ctx, sqlInsertBooking,
		params.ServiceID, params.SubcategoryName, params.UserID, b.CreatedAt)
	if err := row.Scan(&b.ID); err != nil {
		return nil, err
	}
	return b, nil
}

var _ BookingRepository = (*bookingRepo)(nil)
