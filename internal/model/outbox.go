package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type OutboxStatus string

const (
	OutboxStatusPending   OutboxStatus = "pending"
	OutboxStatusProcessed OutboxStatus = "processed"
	OutboxStatusFailed    OutboxStatus = "failed"
)

// Event types emitted by the transition engine.
const (
	EventServiceStarted   = "service_request.started"
	EventServiceCompleted = "service_request.completed"
	EventServiceCancelled = "service_request.cancelled"
	EventParkingCheckedOut = "parking.checked_out"
	EventPaymentConfirmed  = "payment.confirmed"
)

// OutboxEvent is written in the same transaction as the record change it
// describes and published asynchronously by the outbox processor.
type OutboxEvent struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	EventType   string          `db:"event_type" json:"event_type"`
	Payload     json.RawMessage `db:"payload" json:"payload"`
	Status      OutboxStatus    `db:"status" json:"status"`
	LastError   *string         `db:"last_error" json:"last_error,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	ProcessedAt *time.Time      `db:"processed_at" json:"processed_at,omitempty"`
}
