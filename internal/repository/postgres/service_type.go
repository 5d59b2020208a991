package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/pkg/apperror"
)

func (r *serviceTypeRepository) Create(ctx context.Context, serviceType *model.ServiceType) error {
	query := `
		INSERT INTO service_types (
			id, name, description, base_price, estimated_time_minutes,
			is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	serviceType.ID = uuid.New()
	serviceType.CreatedAt = time.Now()
	serviceType.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		serviceType.ID,
		serviceType.Name,
		serviceType.Description,
		serviceType.BasePrice,
		serviceType.EstimatedTimeMinutes,
		serviceType.IsActive,
		serviceType.CreatedAt,
		serviceType.UpdatedAt,
	)
	return translateError(err, "service type", serviceType.ID.String())
}

func (r *serviceTypeRepository) Get(ctx context.Context, id uuid.UUID) (*model.ServiceType, error) {
	query := `
		SELECT id, name, description, base_price, estimated_time_minutes,
			   is_active, created_at, updated_at
		FROM service_types
		WHERE id = $1
	`
	var serviceType model.ServiceType
	if err := r.db.GetContext(ctx, &serviceType, query, id); err != nil {
		return nil, translateError(err, "service type", id.String())
	}
	return &serviceType, nil
}

func (r *serviceTypeRepository) Update(ctx context.Context, serviceType *model.ServiceType) error {
	query := `
		UPDATE service_types
		SET name = $1, description = $2, base_price = $3,
			estimated_time_minutes = $4, is_active = $5, updated_at = $6
		WHERE id = $7
	`
	serviceType.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		serviceType.Name,
		serviceType.Description,
		serviceType.BasePrice,
		serviceType.EstimatedTimeMinutes,
		serviceType.IsActive,
		serviceType.UpdatedAt,
		serviceType.ID,
	)
	if err != nil {
		return translateError(err, "service type", serviceType.ID.String())
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err, "service type", serviceType.ID.String())
	}
	if rows == 0 {
		return apperror.NotFound("service type", serviceType.ID.String())
	}
	return nil
}

// Delete is blocked by the schema while any service request references the
// type; the foreign key violation surfaces as a Conflict.
func (r *serviceTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM service_types WHERE id = $1`, id)
	if err != nil {
		return translateError(err, "service type", id.String())
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err, "service type", id.String())
	}
	if rows == 0 {
		return apperror.NotFound("service type", id.String())
	}
	return nil
}

func (r *serviceTypeRepository) List(ctx context.Context, activeOnly bool) ([]*model.ServiceType, error) {
	query := `
		SELECT id, name, description, base_price, estimated_time_minutes,
			   is_active, created_at, updated_at
		FROM service_types
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	var serviceTypes []*model.ServiceType
	if err := r.db.SelectContext(ctx, &serviceTypes, query); err != nil {
		return nil, translateError(err, "service type", "")
	}
	return serviceTypes, nil
}
