package parking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/internal/repository"
	"github.com/jkimaro/washpark-api/pkg/apperror"
)

// Service owns the parking session lifecycle: active -> completed, nothing
// else. Check-out is the only transition and runs as one transaction.
type Service struct {
	repo   repository.ParkingRepository
	outbox repository.OutboxRepository
}

func NewService(repo repository.ParkingRepository, outbox repository.OutboxRepository) *Service {
	return &Service{repo: repo, outbox: outbox}
}

// CheckIn opens a new active parking session. The check-in timestamp is set
// by the store at creation and never changes.
func (s *Service) CheckIn(ctx context.Context, req *model.CreateParkingRequest) (*model.Parking, error) {
	parking := &model.Parking{
		VehicleID:   req.VehicleID,
		CustomerID:  req.CustomerID,
		AttendantID: req.AttendantID,
		Status:      model.ParkingStatusActive,
		ParkingFee:  0,
		Notes:       req.Notes,
	}

	if err := s.repo.Create(ctx, parking); err != nil {
		return nil, fmt.Errorf("failed to create parking record: %w", err)
	}
	return parking, nil
}

func (s *Service) GetParking(ctx context.Context, id uuid.UUID) (*model.Parking, error) {
	parking, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get parking record: %w", err)
	}
	return parking, nil
}

func (s *Service) ListParking(ctx context.Context, filters *model.ParkingFilters) ([]*model.Parking, error) {
	records, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list parking records: %w", err)
	}
	return records, nil
}

// ListActive returns the currently parked vehicles.
func (s *Service) ListActive(ctx context.Context) ([]*model.Parking, error) {
	return s.ListParking(ctx, &model.ParkingFilters{Status: model.ParkingStatusActive})
}

// UpdateParking applies the mutable fields only. Status, check-out time and
// fee move through the check-out transition.
func (s *Service) UpdateParking(ctx context.Context, id uuid.UUID, req *model.UpdateParkingRequest) (*model.Parking, error) {
	parking, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get parking record: %w", err)
	}

	if req.AttendantID != nil {
		parking.AttendantID = req.AttendantID
	}
	if req.Notes != nil {
		parking.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, parking); err != nil {
		return nil, fmt.Errorf("failed to update parking record: %w", err)
	}
	return parking, nil
}

func (s *Service) DeleteParking(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete parking record: %w", err)
	}
	return nil
}

// CheckOut closes an active session: stamps the check-out time and, when the
// fee is still the zero default and the caller supplies one, records it.
// A second check-out of the same record is rejected.
func (s *Service) CheckOut(ctx context.Context, id uuid.UUID, fee *float64) (*model.Parking, error) {
	if fee != nil && *fee < 0 {
		return nil, apperror.Validation("parking fee must not be negative")
	}

	var updated *model.Parking

	err := s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		parking, err := s.repo.GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if parking.Status != model.ParkingStatusActive {
			return apperror.InvalidTransition("parking record", id.String(),
				string(parking.Status), string(model.ParkingStatusCompleted))
		}

		now := time.Now()
		parking.Status = model.ParkingStatusCompleted
		parking.CheckOutTime = &now
		if parking.ParkingFee == 0 && fee != nil {
			parking.ParkingFee = *fee
		}

		if err := s.repo.UpdateTx(ctx, tx, parking); err != nil {
			return err
		}

		updated = parking
		return s.emit(ctx, tx, model.EventParkingCheckedOut, parking)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("parking_id", id.String()).
		Float64("parking_fee", updated.ParkingFee).
		Msg("vehicle checked out")
	return updated, nil
}

func (s *Service) emit(ctx context.Context, tx *sqlx.Tx, eventType string, parking *model.Parking) error {
	payload, err := json.Marshal(parking)
	if err != nil {
		return fmt.Errorf("failed to encode event payload: %w", err)
	}
	return s.outbox.CreateTx(ctx, tx, &model.OutboxEvent{
		EventType: eventType,
		Payload:   payload,
	})
}
