package repository

import (
	"context"
	"time"

	"github.com/gyver-dev/wedding-planner/internal/db"
	"github.com/gyver-dev/wedding-planner/internal/models"
)

// RequestRepository is append-only, like bookings.
type RequestRepository interface {
	Insert(ctx context.Context, params CreateRequestParams) (*models.Request, error)
}

type CreateRequestParams struct {
	Name    string
	Email   string
	Phone   string
	Message string
	UserID  int64
}

type requestRepo struct {
	gw *db.DB
}

func NewRequestRepo(gw *db.DB) RequestRepository {
	return &requestRepo{gw: gw}
}

const sqlInsertRequest = `
	INSERT INTO requests (name, email, phone, message, user_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id`

func (r *requestRepo) Insert(ctx context.Context, params CreateRequestParams) (*models.Request, error) {
	req := &models.Request{
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		Message:   params.Message,
		UserID:    params.UserID,
		CreatedAt: time.Now().UTC(),
	}
	row := r.gw.QueryRow(ctx, sqlInsertRequest,
		params.Name, params.Email, params.Phone, params.Message, params.UserID, req.CreatedAt)
	if err := row.Scan(&req.ID); err != nil {
		return nil, err
	}
	return req, nil
}

var _ RequestRepository = (*requestRepo)(nil)
