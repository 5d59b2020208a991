package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodMobile       PaymentMethod = "mobile"
	PaymentMethodCheque       PaymentMethod = "cheque"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMobile,
		PaymentMethodCheque, PaymentMethodBankTransfer:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted,
		PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// CanTransitionTo reports whether the payment state machine allows moving
// from s to target: pending -> {completed, failed}, completed -> refunded.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	switch s {
	case PaymentStatusPending:
		return target == PaymentStatusCompleted || target == PaymentStatusFailed
	case PaymentStatusCompleted:
		return target == PaymentStatusRefunded
	}
	return false
}

// Payment settles at most one of a service request or a parking record.
// When the backing record is deleted the reference is cleared and the
// payment survives.
type Payment struct {
	Base
	CustomerID       uuid.UUID     `db:"customer_id" json:"customer_id"`
	ServiceRequestID *uuid.UUID    `db:"service_request_id" json:"service_request_id,omitempty"`
	ParkingID        *uuid.UUID    `db:"parking_id" json:"parking_id,omitempty"`
	Amount           float64       `db:"amount" json:"amount"`
	PaymentMethod    PaymentMethod `db:"payment_method" json:"payment_method"`
	Status           PaymentStatus `db:"status" json:"status"`
	TransactionRef   *string       `db:"transaction_ref" json:"transaction_ref,omitempty"`
	PaymentDate      time.Time     `db:"payment_date" json:"payment_date"`
	Notes            string        `db:"notes" json:"notes,omitempty"`
}

type CreatePaymentRequest struct {
	CustomerID       uuid.UUID     `json:"customer_id" binding:"required"`
	ServiceRequestID *uuid.UUID    `json:"service_request_id"`
	ParkingID        *uuid.UUID    `json:"parking_id"`
	Amount           float64       `json:"amount" binding:"gte=0"`
	PaymentMethod    PaymentMethod `json:"payment_method" binding:"required,payment_method"`
	TransactionRef   *string       `json:"transaction_ref" binding:"omitempty,max=100"`
	Notes            string        `json:"notes" binding:"max=1000"`
}

type UpdatePaymentRequest struct {
	ServiceRequestID *uuid.UUID     `json:"service_request_id"`
	ParkingID        *uuid.UUID     `json:"parking_id"`
	Amount           *float64       `json:"amount" binding:"omitempty,gte=0"`
	PaymentMethod    *PaymentMethod `json:"payment_method" binding:"omitempty,payment_method"`
	Status           *PaymentStatus `json:"status"`
	Notes            *string        `json:"notes" binding:"omitempty,max=1000"`
}

// ConfirmPaymentRequest is the payload for the confirm transition.
type ConfirmPaymentRequest struct {
	TransactionRef *string `json:"transaction_ref" binding:"omitempty,max=100"`
}

type PaymentFilters struct {
	CustomerID uuid.UUID
	Status     PaymentStatus
}

// RevenueReport is the rollup of completed payments over a time window.
type RevenueReport struct {
	Period       string  `json:"period"`
	TotalRevenue float64 `json:"total_revenue"`
	Transactions int     `json:"transactions"`
}
