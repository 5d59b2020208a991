package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/pkg/apperror"
)

func (r *vehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	query := `
		INSERT INTO vehicles (
			id, customer_id, plate_number, vehicle_type, color, make, model,
			year, vin, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	vehicle.ID = uuid.New()
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		vehicle.ID,
		vehicle.CustomerID,
		vehicle.PlateNumber,
		vehicle.VehicleType,
		vehicle.Color,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.VIN,
		vehicle.IsActive,
		vehicle.CreatedAt,
		vehicle.UpdatedAt,
	)
	return translateError(err, "vehicle", vehicle.ID.String())
}

func (r *vehicleRepository) Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	query := `
		SELECT id, customer_id, plate_number, vehicle_type, color, make, model,
			   year, vin, is_active, created_at, updated_at
		FROM vehicles
		WHERE id = $1
	`
	var vehicle model.Vehicle
	if err := r.db.GetContext(ctx, &vehicle, query, id); err != nil {
		return nil, translateError(err, "vehicle", id.String())
	}
	return &vehicle, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	query := `
		UPDATE vehicles
		SET plate_number = $1, vehicle_type = $2, color = $3, make = $4,
			model = $5, year = $6, vin = $7, is_active = $8, updated_at = $9
		WHERE id = $10
	`
	vehicle.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		vehicle.PlateNumber,
		vehicle.VehicleType,
		vehicle.Color,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.VIN,
		vehicle.IsActive,
		vehicle.UpdatedAt,
		vehicle.ID,
	)
	if err != nil {
		return translateError(err, "vehicle", vehicle.ID.String())
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err, "vehicle", vehicle.ID.String())
	}
	if rows == 0 {
		return apperror.NotFound("vehicle", vehicle.ID.String())
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return translateError(err, "vehicle", id.String())
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err, "vehicle", id.String())
	}
	if rows == 0 {
		return apperror.NotFound("vehicle", id.String())
	}
	return nil
}

func (r *vehicleRepository) List(ctx context.Context, customerID uuid.UUID) ([]*model.Vehicle, error) {
	query := `
		SELECT id, customer_id, plate_number, vehicle_type, color, make, model,
			   year, vin, is_active, created_at, updated_at
		FROM vehicles
	`
	args := []interface{}{}
	if customerID != uuid.Nil {
		query += ` WHERE customer_id = $1`
		args = append(args, customerID)
	}
	query += ` ORDER BY plate_number ASC`

	var vehicles []*model.Vehicle
	if err := r.db.SelectContext(ctx, &vehicles, query, args...); err != nil {
		return nil, translateError(err, "vehicle", "")
	}
	return vehicles, nil
}
