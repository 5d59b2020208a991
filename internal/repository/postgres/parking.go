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

const parkingColumns = `id, vehicle_id, customer_id, attendant_id, check_in_time,
			   check_out_time, status, parking_fee, notes, created_at, updated_at`

func (r *parkingRepository) Create(ctx context.Context, parking *model.Parking) error {
	query := `
		INSERT INTO parking_records (
			id, vehicle_id, customer_id, attendant_id, check_in_time,
			check_out_time, status, parking_fee, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	parking.ID = uuid.New()
	parking.CheckInTime = time.Now()
	parking.CreatedAt = time.Now()
	parking.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		parking.ID,
		parking.VehicleID,
		parking.CustomerID,
		parking.AttendantID,
		parking.CheckInTime,
		parking.CheckOutTime,
		parking.Status,
		parking.ParkingFee,
		parking.Notes,
		parking.CreatedAt,
		parking.UpdatedAt,
	)
	return translateError(err, "parking record", parking.ID.String())
}

func (r *parkingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Parking, error) {
	query := `SELECT ` + parkingColumns + ` FROM parking_records WHERE id = $1`

	var parking model.Parking
	if err := r.db.GetContext(ctx, &parking, query, id); err != nil {
		return nil, translateError(err, "parking record", id.String())
	}
	return &parking, nil
}

// GetForUpdate locks the row for the duration of the transaction so
// concurrent check-outs against the same record serialize.
func (r *parkingRepository) GetForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*model.Parking, error) {
	query := `SELECT ` + parkingColumns + ` FROM parking_records WHERE id = $1 FOR UPDATE`

	var parking model.Parking
	if err := tx.GetContext(ctx, &parking, query, id); err != nil {
		return nil, translateError(err, "parking record", id.String())
	}
	return &parking, nil
}

func (r *parkingRepository) Update(ctx context.Context, parking *model.Parking) error {
	return r.update(ctx, r.db, parking)
}

func (r *parkingRepository) UpdateTx(ctx context.Context, tx *sqlx.Tx, parking *model.Parking) error {
	return r.update(ctx, tx, parking)
}

func (r *parkingRepository) update(ctx context.Context, execer sqlx.ExtContext, parking *model.Parking) error {
	query := `
		UPDATE parking_records
		SET attendant_id = $1, check_out_time = $2, status = $3,
			parking_fee = $4, notes = $5, updated_at = $6
		WHERE id = $7
	`
	parking.UpdatedAt = time.Now()

	result, err := execer.ExecContext(ctx, query,
		parking.AttendantID,
		parking.CheckOutTime,
		parking.Status,
		parking.ParkingFee,
		parking.Notes,
		parking.UpdatedAt,
		parking.ID,
	)
	if err != nil {
		return translateError(err, "parking record", parking.ID.String())
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err, "parking record", parking.ID.String())
	}
	if rows == 0 {
		return apperror.NotFound("parking record", parking.ID.String())
	}
	return nil
}

func (r *parkingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM parking_records WHERE id = $1`, id)
	if err != nil {
		return translateError(err, "parking record", id.String())
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err, "parking record", id.String())
	}
	if rows == 0 {
		return apperror.NotFound("parking record", id.String())
	}
	return nil
}

func (r *parkingRepository) List(ctx context.Context, filters *model.ParkingFilters) ([]*model.Parking, error) {
	query := `SELECT ` + parkingColumns + ` FROM parking_records WHERE 1=1`
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

	query += " ORDER BY check_in_time DESC"

	var records []*model.Parking
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, translateError(err, "parking record", "")
	}
	return records, nil
}

func (r *parkingRepository) ListRecentByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*model.Parking, error) {
	query := `SELECT ` + parkingColumns + ` FROM parking_records
		WHERE customer_id = $1
		ORDER BY check_in_time DESC
		LIMIT $2`

	var records []*model.Parking
	if err := r.db.SelectContext(ctx, &records, query, customerID, limit); err != nil {
		return nil, translateError(err, "parking record", "")
	}
	return records, nil
}

// DurationStats aggregates completed sessions with a recorded check-out.
// The average is hours; COALESCE keeps the empty set at zero.
func (r *parkingRepository) DurationStats(ctx context.Context) (int, float64, error) {
	query := `
		SELECT COUNT(*) AS total,
			   COALESCE(AVG(EXTRACT(EPOCH FROM (check_out_time - check_in_time)) / 3600.0), 0) AS avg_hours
		FROM parking_records
		WHERE status = 'completed' AND check_out_time IS NOT NULL
	`
	var stats struct {
		Total    int     `db:"total"`
		AvgHours float64 `db:"avg_hours"`
	}
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return 0, 0, translateError(err, "parking record", "")
	}
	return stats.Total, stats.AvgHours, nil
}
