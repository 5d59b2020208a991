package model

import (
	"time"

	"github.com/google/uuid"
)

type ServiceStatus string

const (
	ServiceStatusPending    ServiceStatus = "pending"
	ServiceStatusInProgress ServiceStatus = "in_progress"
	ServiceStatusCompleted  ServiceStatus = "completed"
	ServiceStatusCancelled  ServiceStatus = "cancelled"
)

func (s ServiceStatus) Valid() bool {
	switch s {
	case ServiceStatusPending, ServiceStatusInProgress,
		ServiceStatusCompleted, ServiceStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s ServiceStatus) Terminal() bool {
	return s == ServiceStatusCompleted || s == ServiceStatusCancelled
}

// ServiceRequest is one wash job for a vehicle. StartTime is set only on
// entering in_progress, CompletionTime only on entering completed.
type ServiceRequest struct {
	Base
	VehicleID      uuid.UUID     `db:"vehicle_id" json:"vehicle_id"`
	CustomerID     uuid.UUID     `db:"customer_id" json:"customer_id"`
	AttendantID    *uuid.UUID    `db:"attendant_id" json:"attendant_id,omitempty"`
	ServiceTypeID  uuid.UUID     `db:"service_type_id" json:"service_type_id"`
	RequestDate    time.Time     `db:"request_date" json:"request_date"`
	StartTime      *time.Time    `db:"start_time" json:"start_time,omitempty"`
	CompletionTime *time.Time    `db:"completion_time" json:"completion_time,omitempty"`
	Status         ServiceStatus `db:"status" json:"status"`
	Notes          string        `db:"notes" json:"notes,omitempty"`
}

type CreateServiceRequestRequest struct {
	VehicleID     uuid.UUID  `json:"vehicle_id" binding:"required"`
	CustomerID    uuid.UUID  `json:"customer_id" binding:"required"`
	ServiceTypeID uuid.UUID  `json:"service_type_id" binding:"required"`
	AttendantID   *uuid.UUID `json:"attendant_id"`
	Notes         string     `json:"notes" binding:"max=1000"`
}

type UpdateServiceRequestRequest struct {
	AttendantID *uuid.UUID `json:"attendant_id"`
	Notes       *string    `json:"notes" binding:"omitempty,max=1000"`
}

// StartServiceRequest is the payload for the start transition. The acting
// attendant is assigned only when the request has none yet.
type StartServiceRequest struct {
	AttendantID *uuid.UUID `json:"attendant_id"`
}

type ServiceRequestFilters struct {
	CustomerID  uuid.UUID
	VehicleID   uuid.UUID
	AttendantID uuid.UUID
	Status      ServiceStatus
}
