package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gyver-dev/wedding-planner/internal/db"
	"github.com/gyver-dev/wedding-planner/internal/models"
)

// ServiceRepository manages services together with their subcategory batch.
// Subcategories never exist on their own; creation, update and deletion of a
// service always touch both tables inside one transaction so a concurrent
// reader cannot observe a service with a half-replaced subcategory set.
type ServiceRepository interface {
	Create(ctx context.Context, params CreateServiceParams) (int64, error)
	ListAll(ctx context.Context) ([]*models.Service, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Service, error)
	Update(ctx context.Context, serviceID string, params UpdateServiceParams) error
	Delete(ctx context.Context, serviceID string) error
}

type CreateServiceParams struct {
	Title         string
	Description   string
	UserID        int64
	UserEmail     string
	Subcategories []models.SubcategoryInput
}

// UpdateServiceParams replaces the service row and its whole subcategory set;
// there is no partial or diff update.
type UpdateServiceParams struct {
	Title         string
	Description   string
	Subcategories []models.SubcategoryInput
}

type serviceRepo struct {
	gw *db.DB
}

func NewServiceRepo(gw *db.DB) ServiceRepository {
	return &serviceRepo{gw: gw}
}

const (
	sqlInsertService = `
		INSERT INTO services (title, description, user_id, user_email, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	sqlInsertSubcategory = `
		INSERT INTO subcategories (service_id, name, price, short_description)
		VALUES ($1, $2, $3, $4)`

	sqlListServices = `
		SELECT id, title, description, user_id, user_email, created_at
		FROM   services
		ORDER  BY id`

	sqlListServicesByUser = `
		SELECT id, title, description, user_id, user_email, created_at
		FROM   services
		WHERE  user_id = $1
		ORDER  BY id`

	sqlListSubcategories = `
		SELECT id, service_id, name, price, short_description
		FROM   subcategories
		WHERE  service_id = $1
		ORDER  BY id`

	sqlUpdateService = `
		UPDATE services
		SET    title = $1, description = $2
		WHERE  id = $3`

	sqlDeleteSubcategories = `
		DELETE FROM subcategories WHERE service_id = $1`

	sqlDeleteService = `
		DELETE FROM services WHERE id = $1`
)

func (r *serviceRepo) Create(ctx context.Context, params CreateServiceParams) (int64, error) {
	var serviceID int64
	err := r.gw.ExecTx(ctx, func(tx *db.Tx) error {
		row := tx.QueryRow(ctx, sqlInsertService,
			params.Title, params.Description, params.UserID, params.UserEmail, time.Now().UTC())
		if err := row.Scan(&serviceID); err != nil {
			return err
		}
		return insertSubcategories(ctx, tx, serviceID, params.Subcategories)
	})
	if err != nil {
		return 0, err
	}
	return serviceID, nil
}

func (r *serviceRepo) ListAll(ctx context.Context) ([]*models.Service, error) {
	return r.list(ctx, sqlListServices)
}

// ListByUser filters by the owning user. The id arrives as a path segment and
// is handed to the database as-is; a non-numeric value surfaces as a query
// error, same as the system this replaces.
func (r *serviceRepo) ListByUser(ctx context.Context, userID string) ([]*models.Service, error) {
	return r.list(ctx, sqlListServicesByUser, userID)
}

func (r *serviceRepo) list(ctx context.Context, query string, args ...any) ([]*models.Service, error) {
	rows, err := r.gw.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []*models.Service{}
	for rows.Next() {
		s := &models.Service{}
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.UserID, &s.UserEmail, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository/service: scan: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, s := range services {
		subs, err := r.listSubcategories(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Subcategories = subs
	}
	return services, nil
}

func (r *serviceRepo) listSubcategories(ctx context.Context, serviceID int64) ([]models.Subcategory, error) {
	rows, err := r.gw.Query(ctx, sqlListSubcategories, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []models.Subcategory{}
	for rows.Next() {
		var sc models.Subcategory
		if err := rows.Scan(&sc.ID, &sc.ServiceID, &sc.Name, &sc.Price, &sc.ShortDescription); err != nil {
			return nil, fmt.Errorf("repository/service: scan subcategory: %w", err)
		}
		subs = append(subs, sc)
	}
	return subs, rows.Err()
}

func (r *serviceRepo) Update(ctx context.Context, serviceID string, params UpdateServiceParams) error {
	return r.gw.ExecTx(ctx, func(tx *db.Tx) error {
		if _, err := tx.Exec(ctx, sqlUpdateService, params.Title, params.Description, serviceID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sqlDeleteSubcategories, serviceID); err != nil {
			return err
		}
		return insertSubcategories(ctx, tx, serviceID, params.Subcategories)
	})
}

func (r *serviceRepo) Delete(ctx context.Context, serviceID string) error {
	return r.gw.ExecTx(ctx, func(tx *db.Tx) error {
		if _, err := tx.Exec(ctx, sqlDeleteSubcategories, serviceID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, sqlDeleteService, serviceID)
		return err
	})
}

// insertSubcategories writes one row per input under serviceID. The id may
// be an int64 or the raw path string on the update path; either way it is
// bound as a parameter and coerced by the database.
func insertSubcategories(ctx context.Context, tx *db.Tx, serviceID any, subs []models.SubcategoryInput) error {
	for _, sub := range subs {
		if _, err := tx.Exec(ctx, sqlInsertSubcategory, serviceID, sub.Name, sub.Price, sub.ShortDescription); err != nil {
			return err
		}
	}
	return nil
}

var _ ServiceRepository = (*serviceRepo)(nil)
