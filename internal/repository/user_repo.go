package repository

import (
	"context"
	"database/sql"

	"github.com/gyver-dev/wedding-planner/internal/db"
	"github.com/gyver-dev/wedding-planner/internal/models"
)

// UserRepository covers the two user operations the API needs: accounts are
// created on registration and read back on login, never updated or deleted.
type UserRepository interface {
	Insert(ctx context.Context, params CreateUserParams) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// CreateUserParams carries the registration fields. PasswordHash must already
// be hashed; this layer never sees a plaintext password.
type CreateUserParams struct {
	Email         string
	FullName      string
	ContactNumber string
	Address       string
	PasswordHash  string
}

type userRepo struct {
	gw *db.DB
}

func NewUserRepo(gw *db.DB) UserRepository {
	return &userRepo{gw: gw}
}

const (
	sqlInsertUser = `
		INSERT INTO users (email, full_name, contact_number, address, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, role`

	sqlGetUserByEmail = `
		SELECT id, email, full_name, contact_number, address, password, role
		FROM   users
		WHERE  email = $1
		LIMIT  1`
)

func (r *userRepo) Insert(ctx context.Context, params CreateUserParams) (*models.User, error) {
	u := &models.User{
		Email:         params.Email,
		FullName:      params.FullName,
		ContactNumber: params.ContactNumber,
		Address:       params.Address,
		PasswordHash:  params.PasswordHash,
	}
	row := r.gw.QueryRow(ctx, sqlInsertUser,
		params.Email, params.FullName, params.ContactNumber, params.Address, params.PasswordHash)
	if err := row.Scan(&u.ID, &u.Role); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u := &models.User{}
	var contact, address sql.NullString
	row := r.gw.QueryRow(ctx, sqlGetUserByEmail, email)
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &contact, &address, &u.PasswordHash, &u.Role); err != nil {
		return nil, err
	}
	u.ContactNumber = contact.String
	u.Address = address.String
	return u, nil
}

var _ UserRepository = (*userRepo)(nil)
