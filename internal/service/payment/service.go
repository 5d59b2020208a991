package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/internal/repository"
	"github.com/jkimaro/washpark-api/pkg/apperror"
)

// Service owns payments and their linkage to the record they settle. A
// payment may reference a service request or a parking record, never both;
// the schema does not enforce that, so the service does.
type Service struct {
	repo   repository.PaymentRepository
	outbox repository.OutboxRepository
}

func NewService(repo repository.PaymentRepository, outbox repository.OutboxRepository) *Service {
	return &Service{repo: repo, outbox: outbox}
}

func (s *Service) CreatePayment(ctx context.Context, req *model.CreatePaymentRequest) (*model.Payment, error) {
	if req.ServiceRequestID != nil && req.ParkingID != nil {
		return nil, apperror.ConflictingLinkage("")
	}
	if req.Amount < 0 {
		return nil, apperror.Validation("amount must not be negative")
	}

	payment := &model.Payment{
		CustomerID:       req.CustomerID,
		ServiceRequestID: req.ServiceRequestID,
		ParkingID:        req.ParkingID,
		Amount:           req.Amount,
		PaymentMethod:    req.PaymentMethod,
		Status:           model.PaymentStatusPending,
		TransactionRef:   req.TransactionRef,
		Notes:            req.Notes,
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return payment, nil
}

func (s *Service) GetPayment(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	payment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return payment, nil
}

func (s *Service) ListPayments(ctx context.Context, filters *model.PaymentFilters) ([]*model.Payment, error) {
	payments, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// UpdatePayment applies mutable fields. Linkage mutual exclusion is
// re-checked against the resulting record, and status changes must follow
// the payment state machine. The row is locked for the duration so the
// guard and the write are indivisible.
func (s *Service) UpdatePayment(ctx context.Context, id uuid.UUID, req *model.UpdatePaymentRequest) (*model.Payment, error) {
	if req.Status != nil && !req.Status.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown payment status %q", *req.Status))
	}
	if req.Amount != nil && *req.Amount < 0 {
		return nil, apperror.Validation("amount must not be negative")
	}

	var updated *model.Payment

	err := s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		payment, err := s.repo.GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if req.ServiceRequestID != nil {
			payment.ServiceRequestID = req.ServiceRequestID
		}
		if req.ParkingID != nil {
			payment.ParkingID = req.ParkingID
		}
		if payment.ServiceRequestID != nil && payment.ParkingID != nil {
			return apperror.ConflictingLinkage(id.String())
		}

		if req.Amount != nil {
			payment.Amount = *req.Amount
		}
		if req.PaymentMethod != nil {
			payment.PaymentMethod = *req.PaymentMethod
		}
		if req.Status != nil && *req.Status != payment.Status {
			if !payment.Status.CanTransitionTo(*req.Status) {
				return apperror.InvalidTransition("payment", id.String(),
					string(payment.Status), string(*req.Status))
			}
			payment.Status = *req.Status
		}
		if req.Notes != nil {
			payment.Notes = *req.Notes
		}

		if err := s.repo.UpdateTx(ctx, tx, payment); err != nil {
			return err
		}

		updated = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeletePayment(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}

// ConfirmPayment moves a pending payment to completed, recording the
// transaction reference when one is supplied. Reference uniqueness is
// enforced by the store; a collision surfaces as DuplicateReference.
func (s *Service) ConfirmPayment(ctx context.Context, id uuid.UUID, transactionRef *string) (*model.Payment, error) {
	var updated *model.Payment

	err := s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		payment, err := s.repo.GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if payment.Status != model.PaymentStatusPending {
			return apperror.InvalidTransition("payment", id.String(),
				string(payment.Status), string(model.PaymentStatusCompleted))
		}

		payment.Status = model.PaymentStatusCompleted
		if transactionRef != nil {
			payment.TransactionRef = transactionRef
		}

		if err := s.repo.UpdateTx(ctx, tx, payment); err != nil {
			return err
		}

		updated = payment
		return s.emit(ctx, tx, model.EventPaymentConfirmed, payment)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("payment_id", id.String()).
		Float64("amount", updated.Amount).
		Msg("payment confirmed")
	return updated, nil
}

func (s *Service) emit(ctx context.Context, tx *sqlx.Tx, eventType string, payment *model.Payment) error {
	payload, err := json.Marshal(payment)
	if err != nil {
		return fmt.Errorf("failed to encode event payload: %w", err)
	}
	return s.outbox.CreateTx(ctx, tx, &model.OutboxEvent{
		EventType: eventType,
		Payload:   payload,
	})
}
