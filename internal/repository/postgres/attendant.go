package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/pkg/apperror"
)

func (r *attendantRepository) Create(ctx context.Context, attendant *model.Attendant) error {
	query := `
		INSERT INTO attendants (
			id, name, phone, email, id_number, hire_date, is_active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	attendant.ID = uuid.New()
	attendant.HireDate = time.Now()
	attendant.CreatedAt = time.Now()
	attendant.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		attendant.ID,
		attendant.Name,
		attendant.Phone,
		attendant.Email,
		attendant.IDNumber,
		attendant.HireDate,
		attendant.IsActive,
		attendant.CreatedAt,
		attendant.UpdatedAt,
	)
	return translateError(err, "attendant", attendant.ID.String())
}

func (r *attendantRepository) Get(ctx context.Context, id uuid.UUID) (*model.Attendant, error) {
	query := `
		SELECT id, name, phone, email, id_number, hire_date, is_active,
			   created_at, updated_at
		FROM attendants
		WHERE id = $1
	`
	var attendant model.Attendant
	if err := r.db.GetContext(ctx, &attendant, query, id); err != nil {
		return nil, translateError(err, "attendant", id.String())
	}
	return &attendant, nil
}

// Update never touches hire_date; it is immutable once set.
func (r *attendantRepository) Update(ctx context.Context, attendant *model.Attendant) error {
	query := `
		UPDATE attendants
		SET name = $1, phone = $2, email = $3, id_number = $4,
			is_active = $5, updated_at = $6
		WHERE id = $7
	`
	attendant.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		attendant.Name,
		attendant.Phone,
		attendant.Email,
		attendant.IDNumber,
		attendant.IsActive,
		attendant.UpdatedAt,
		attendant.ID,
	)
	if err != nil {
		return translateError(err, "attendant", attendant.ID.String())
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err, "attendant", attendant.ID.String())
	}
	if rows == 0 {
		return apperror.NotFound("attendant", attendant.ID.String())
	}
	return nil
}

func (r *attendantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM attendants WHERE id = $1`, id)
	if err != nil {
		return translateError(err, "attendant", id.String())
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return translateError(err, "attendant", id.String())
	}
	if rows == 0 {
		return apperror.NotFound("attendant", id.String())
	}
	return nil
}

func (r *attendantRepository) List(ctx context.Context) ([]*model.Attendant, error) {
	query := `
		SELECT id, name, phone, email, id_number, hire_date, is_active,
			   created_at, updated_at
		FROM attendants
		ORDER BY name ASC
	`
	var attendants []*model.Attendant
	if err := r.db.SelectContext(ctx, &attendants, query); err != nil {
		return nil, translateError(err, "attendant", "")
	}
	return attendants, nil
}

func (r *attendantRepository) CountCompletedServices(ctx context.Context, attendantID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*) FROM service_requests
		WHERE attendant_id = $1 AND status = 'completed'
	`
	var count int
	if err := r.db.GetContext(ctx, &count, query, attendantID); err != nil {
		return 0, translateError(err, "attendant", attendantID.String())
	}
	return count, nil
}

func (r *attendantRepository) CountParkingHandled(ctx context.Context, attendantID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM parking_records WHERE attendant_id = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, attendantID); err != nil {
		return 0, translateError(err, "attendant", attendantID.String())
	}
	return count, nil
}
