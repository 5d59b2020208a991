package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/pkg/apperror"
)

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	query := `
		INSERT INTO customers (
			id, name, phone, email, id_number, address, date_registered,
			is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	customer.ID = uuid.New()
	customer.DateRegistered = time.Now()
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		customer.ID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.IDNumber,
		customer.Address,
		customer.DateRegistered,
		customer.IsActive,
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	return translateError(err, "customer", customer.ID.String())
}

func (r *customerRepository) Get(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	query := `
		SELECT id, name, phone, email, id_number, address, date_registered,
			   is_active, created_at, updated_at
		FROM customers
		WHERE id = $1
	`
	var customer model.Customer
	if err := r.db.GetContext(ctx, &customer, query, id); err != nil {
		return nil, translateError(err, "customer", id.String())
	}
	return &customer, nil
}

// Update never touches date_registered; it is immutable once set.
func (r *customerRepository) Update(ctx context.Context, customer *model.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, phone = $2, email = $3, id_number = $4, address = $5,
			is_active = $6, updated_at = $7
		WHERE id = $8
	`
	customer.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.IDNumber,
		customer.Address,
		customer.IsActive,
		customer.UpdatedAt,
		customer.ID,
	)
	if err != nil {
		return translateError(err, "customer", customer.ID.String())
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err, "customer", customer.ID.String())
	}
	if rows == 0 {
		return apperror.NotFound("customer", customer.ID.String())
	}
	return nil
}

// Delete cascades to the customer's vehicles, service requests, parking
// records and payments through the schema's referential actions.
func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return translateError(err, "customer", id.String())
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err, "customer", id.String())
	}
	if rows == 0 {
		return apperror.NotFound("customer", id.String())
	}
	return nil
}

func (r *customerRepository) List(ctx context.Context) ([]*model.Customer, error) {
	query := `
		SELECT id, name, phone, email, id_number, address, date_registered,
			   is_active, created_at, updated_at
		FROM customers
		ORDER BY name ASC
	`
	var customers []*model.Customer
	if err := r.db.SelectContext(ctx, &customers, query); err != nil {
		return nil, translateError(err, "customer", "")
	}
	return customers, nil
}

func (r *customerRepository) CountVehicles(ctx context.Context, customerID uuid.UUID) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM vehicles WHERE customer_id = $1`, customerID); err != nil {
		return 0, translateError(err, "customer", customerID.String())
	}
	return count, nil
}

func (r *customerRepository) TotalCompletedPayments(ctx context.Context, customerID uuid.UUID) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0) FROM payments
		WHERE customer_id = $1 AND status = 'completed'
	`
	var total float64
	if err := r.db.GetContext(ctx, &total, query, customerID); err != nil {
		return 0, translateError(err, "customer", customerID.String())
	}
	return total, nil
}
