package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/pkg/apperror"
)

const paymentColumns = `id, customer_id, service_request_id, parking_id, amount,
			   payment_method, status, transaction_ref, payment_date, notes,
			   created_at, updated_at`

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	query := `
		INSERT INTO payments (
			id, customer_id, service_request_id, parking_id, amount,
			payment_method, status, transaction_ref, payment_date, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	payment.ID = uuid.New()
	payment.PaymentDate = time.Now()
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.CustomerID,
		payment.ServiceRequestID,
		payment.ParkingID,
		payment.Amount,
		payment.PaymentMethod,
		payment.Status,
		payment.TransactionRef,
		payment.PaymentDate,
		payment.Notes,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	return translateError(err, "payment", payment.ID.String())
}

func (r *paymentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	var payment model.Payment
	if err := r.db.GetContext(ctx, &payment, query, id); err != nil {
		return nil, translateError(err, "payment", id.String())
	}
	return &payment, nil
}

// GetForUpdate locks the row for the duration of the transaction so
// concurrent confirmations against the same payment serialize.
func (r *paymentRepository) GetForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 FOR UPDATE`

	var payment model.Payment
	if err := tx.GetContext(ctx, &payment, query, id); err != nil {
		return nil, translateError(err, "payment", id.String())
	}
	return &payment, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *model.Payment) error {
	return r.update(ctx, r.db, payment)
}

func (r *paymentRepository) UpdateTx(ctx context.Context, tx *sqlx.Tx, payment *model.Payment) error {
	return r.update(ctx, tx, payment)
}

func (r *paymentRepository) update(ctx context.Context, execer sqlx.ExtContext, payment *model.Payment) error {
	query := `
		UPDATE payments
		SET service_request_id = $1, parking_id = $2, amount = $3,
			payment_method = $4, status = $5, transaction_ref = $6,
			notes = $7, updated_at = $8
		WHERE id = $9
	`
	payment.UpdatedAt = time.Now()

	result, err := execer.ExecContext(ctx, query,
		payment.ServiceRequestID,
		payment.ParkingID,
		payment.Amount,
		payment.PaymentMethod,
		payment.Status,
		payment.TransactionRef,
		payment.Notes,
		payment.UpdatedAt,
		payment.ID,
	)
	if err != nil {
		return translateError(err, "payment", payment.ID.String())
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err, "payment", payment.ID.String())
	}
	if rows == 0 {
		return apperror.NotFound("payment", payment.ID.String())
	}
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return translateError(err, "payment", id.String())
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err, "payment", id.String())
	}
	if rows == 0 {
		return apperror.NotFound("payment", id.String())
	}
	return nil
}

func (r *paymentRepository) List(ctx context.Context, filters *model.PaymentFilters) ([]*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE 1=1`
	args := []interface{}{}
	argCount := 1

	if filters != nil {
		if filters.CustomerID != uuid.Nil {
			query += fmt.Sprintf(" AND customer_id = $%d", argCount)
			args = append(args, filters.CustomerID)
			argCount++
		}
		if filters.Status != "" {
			query += fmt.Sprintf(" AND status = $%d", argCount)
			args = append(args, filters.Status)
			argCount++
		}
	}

	query += " ORDER BY payment_date DESC"

	var payments []*model.Payment
	if err := r.db.SelectContext(ctx, &payments, query, args...); err != nil {
		return nil, translateError(err, "payment", "")
	}
	return payments, nil
}

// RevenueBetween sums completed payments whose payment_date falls in
// [from, to).
func (r *paymentRepository) RevenueBetween(ctx context.Context, from, to time.Time) (float64, int, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0) AS total, COUNT(*) AS transactions
		FROM payments
		WHERE status = 'completed' AND payment_date >= $1 AND payment_date < $2
	`
	var revenue struct {
		Total        float64 `db:"total"`
		Transactions int     `db:"transactions"`
	}
	if err := r.db.GetContext(ctx, &revenue, query, from, to); err != nil {
		return 0, 0, translateError(err, "payment", "")
	}
	return revenue.Total, revenue.Transactions, nil
}
