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

const serviceRequestColumns = `id, vehicle_id, customer_id, attendant_id, service_type_id,
			   request_date, start_time, completion_time, status, notes,
			   created_at, updated_at`

func (r *serviceRequestRepository) Create(ctx context.Context, request *model.ServiceRequest) error {
	query := `
		INSERT INTO service_requests (
			id, vehicle_id, customer_id, attendant_id, service_type_id,
			request_date, start_time, completion_time, status, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	request.ID = uuid.New()
	request.RequestDate = time.Now()
	request.CreatedAt = time.Now()
	request.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		request.ID,
		request.VehicleID,
		request.CustomerID,
		request.AttendantID,
		request.ServiceTypeID,
		request.RequestDate,
		request.StartTime,
		request.CompletionTime,
		request.Status,
		request.Notes,
		request.CreatedAt,
		request.UpdatedAt,
	)
	return translateError(err, "service request", request.ID.String())
}

func (r *serviceRequestRepository) Get(ctx context.Context, id uuid.UUID) (*model.ServiceRequest, error) {
	query := `SELECT ` + serviceRequestColumns + ` FROM service_requests WHERE id = $1`

	var request model.ServiceRequest
	if err := r.db.GetContext(ctx, &request, query, id); err != nil {
		return nil, translateError(err, "service request", id.String())
	}
	return &request, nil
}

// GetForUpdate locks the row for the duration of the transaction so
// concurrent transitions against the same record serialize.
func (r *serviceRequestRepository) GetForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*model.ServiceRequest, error) {
	query := `SELECT ` + serviceRequestColumns + ` FROM service_requests WHERE id = $1 FOR UPDATE`

	var request model.ServiceRequest
	if err := tx.GetContext(ctx, &request, query, id); err != nil {
		return nil, translateError(err, "service request", id.String())
	}
	return &request, nil
}

func (r *serviceRequestRepository) Update(ctx context.Context, request *model.ServiceRequest) error {
	return r.update(ctx, r.db, request)
}

func (r *serviceRequestRepository) UpdateTx(ctx context.Context, tx *sqlx.Tx, request *model.ServiceRequest) error {
	return r.update(ctx, tx, request)
}

func (r *serviceRequestRepository) update(ctx context.Context, execer sqlx.ExtContext, request *model.ServiceRequest) error {
	query := `
		UPDATE service_requests
		SET attendant_id = $1, start_time = $2, completion_time = $3,
			status = $4, notes = $5, updated_at = $6
		WHERE id = $7
	`
	request.UpdatedAt = time.Now()

	result, err := execer.ExecContext(ctx, query,
		request.AttendantID,
		request.StartTime,
		request.CompletionTime,
		request.Status,
		request.Notes,
		request.UpdatedAt,
		request.ID,
	)
	if err != nil {
		return translateError(err, "service request", request.ID.String())
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err, "service request", request.ID.String())
	}
	if rows == 0 {
		return apperror.NotFound("service request", request.ID.String())
	}
	return nil
}

func (r *serviceRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM service_requests WHERE id = $1`, id)
	if err != nil {
		return translateError(err, "service request", id.String())
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err, "service request", id.String())
	}
	if rows == 0 {
		return apperror.NotFound("service request", id.String())
	}
	return nil
}

func (r *serviceRequestRepository) List(ctx context.Context, filters *model.ServiceRequestFilters) ([]*model.ServiceRequest, error) {
	query := `SELECT ` + serviceRequestColumns + ` FROM service_requests WHERE 1=1`
	args := []interface{}{}
	argCount := 1

	if filters != nil {
		if filters.CustomerID != uuid.Nil {
			query += fmt.Sprintf(" AND customer_id = $%d", argCount)
			args = append(args, filters.CustomerID)
			argCount++
		}
		if filters.VehicleID != uuid.Nil {
			query += fmt.Sprintf(" AND vehicle_id = $%d", argCount)
			args = append(args, filters.VehicleID)
			argCount++
		}
		if filters.AttendantID != uuid.Nil {
			query += fmt.Sprintf(" AND attendant_id = $%d", argCount)
			args = append(args, filters.AttendantID)
			argCount++
		}
		if filters.Status != "" {
			query += fmt.Sprintf(" AND status = $%d", argCount)
			args = append(args, filters.Status)
			argCount++
		}
	}

	query += " ORDER BY request_date DESC"

	var requests []*model.ServiceRequest
	if err := r.db.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, translateError(err, "service request", "")
	}
	return requests, nil
}

func (r *serviceRequestRepository) ListRecentByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*model.ServiceRequest, error) {
	query := `SELECT ` + serviceRequestColumns + ` FROM service_requests
		WHERE customer_id = $1
		ORDER BY request_date DESC
		LIMIT $2`

	var requests []*model.ServiceRequest
	if err := r.db.SelectContext(ctx, &requests, query, customerID, limit); err != nil {
		return nil, translateError(err, "service request", "")
	}
	return requests, nil
}
