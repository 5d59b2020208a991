package servicerequest

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

// Service owns the service request lifecycle: pending -> in_progress ->
// completed, with cancellation allowed from the two non-terminal states.
// Every transition runs as one transaction: lock the row, check the guard,
// mutate, record the outbox event.
type Service struct {
	repo   repository.ServiceRequestRepository
	outbox repository.OutboxRepository
}

func NewService(repo repository.ServiceRequestRepository, outbox repository.OutboxRepository) *Service {
	return &Service{repo: repo, outbox: outbox}
}

func (s *Service) CreateServiceRequest(ctx context.Context, req *model.CreateServiceRequestRequest) (*model.ServiceRequest, error) {
	request := &model.ServiceRequest{
		VehicleID:     req.VehicleID,
		CustomerID:    req.CustomerID,
		AttendantID:   req.AttendantID,
		ServiceTypeID: req.ServiceTypeID,
		Status:        model.ServiceStatusPending,
		Notes:         req.Notes,
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create service request: %w", err)
	}
	return request, nil
}

func (s *Service) GetServiceRequest(ctx context.Context, id uuid.UUID) (*model.ServiceRequest, error) {
	request, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get service request: %w", err)
	}
	return request, nil
}

func (s *Service) ListServiceRequests(ctx context.Context, filters *model.ServiceRequestFilters) ([]*model.ServiceRequest, error) {
	requests, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list service requests: %w", err)
	}
	return requests, nil
}

// ListPending returns all service requests still waiting to be started.
func (s *Service) ListPending(ctx context.Context) ([]*model.ServiceRequest, error) {
	return s.ListServiceRequests(ctx, &model.ServiceRequestFilters{Status: model.ServiceStatusPending})
}

// UpdateServiceRequest applies the mutable fields only. Status, start and
// completion times move exclusively through transitions.
func (s *Service) UpdateServiceRequest(ctx context.Context, id uuid.UUID, req *model.UpdateServiceRequestRequest) (*model.ServiceRequest, error) {
	request, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get service request: %w", err)
	}

	if req.AttendantID != nil {
		request.AttendantID = req.AttendantID
	}
	if req.Notes != nil {
		request.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update service request: %w", err)
	}
	return request, nil
}

func (s *Service) DeleteServiceRequest(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete service request: %w", err)
	}
	return nil
}

// StartService moves a pending request to in_progress and stamps the start
// time. The acting attendant is assigned only when the caller supplies one
// and the request has none yet.
func (s *Service) StartService(ctx context.Context, id uuid.UUID, attendantID *uuid.UUID) (*model.ServiceRequest, error) {
	var updated *model.ServiceRequest

	err := s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		request, err := s.repo.GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if request.Status != model.ServiceStatusPending {
			return apperror.InvalidTransition("service request", id.String(),
				string(request.Status), string(model.ServiceStatusInProgress))
		}

		now := time.Now()
		request.Status = model.ServiceStatusInProgress
		request.StartTime = &now
		if request.AttendantID == nil && attendantID != nil {
			request.AttendantID = attendantID
		}

		if err := s.repo.UpdateTx(ctx, tx, request); err != nil {
			return err
		}

		updated = request
		return s.emit(ctx, tx, model.EventServiceStarted, request)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("service_request_id", id.String()).Msg("service started")
	return updated, nil
}

// CompleteService accepts pending or in_progress requests and stamps the
// completion time.
func (s *Service) CompleteService(ctx context.Context, id uuid.UUID) (*model.ServiceRequest, error) {
	var updated *model.ServiceRequest

	err := s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		request, err := s.repo.GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if request.Status != model.ServiceStatusPending && request.Status != model.ServiceStatusInProgress {
			return apperror.InvalidTransition("service request", id.String(),
				string(request.Status), string(model.ServiceStatusCompleted))
		}

		now := time.Now()
		request.Status = model.ServiceStatusCompleted
		request.CompletionTime = &now

		if err := s.repo.UpdateTx(ctx, tx, request); err != nil {
			return err
		}

		updated = request
		return s.emit(ctx, tx, model.EventServiceCompleted, request)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("service_request_id", id.String()).Msg("service completed")
	return updated, nil
}

// CancelService is allowed from pending and in_progress only.
func (s *Service) CancelService(ctx context.Context, id uuid.UUID) (*model.ServiceRequest, error) {
	var updated *model.ServiceRequest

	err := s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		request, err := s.repo.GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if request.Status.Terminal() {
			return apperror.InvalidTransition("service request", id.String(),
				string(request.Status), string(model.ServiceStatusCancelled))
		}

		request.Status = model.ServiceStatusCancelled

		if err := s.repo.UpdateTx(ctx, tx, request); err != nil {
			return err
		}

		updated = request
		return s.emit(ctx, tx, model.EventServiceCancelled, request)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("service_request_id", id.String()).Msg("service cancelled")
	return updated, nil
}

func (s *Service) emit(ctx context.Context, tx *sqlx.Tx, eventType string, request *model.ServiceRequest) error {
	payload, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to encode event payload: %w", err)
	}
	return s.outbox.CreateTx(ctx, tx, &model.OutboxEvent{
		EventType: eventType,
		Payload:   payload,
	})
}
