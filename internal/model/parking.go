package model

import (
	"time"

	"github.com/google/uuid"
)

type ParkingStatus string

const (
	ParkingStatusActive    ParkingStatus = "active"
	ParkingStatusCompleted ParkingStatus = "completed"
)

func (s ParkingStatus) Valid() bool {
	return s == ParkingStatusActive || s == ParkingStatusCompleted
}

// Parking is one parking session. CheckOutTime is set only on leaving
// active; the fee defaults to zero until check-out supplies one.
type Parking struct {
	Base
	VehicleID    uuid.UUID     `db:"vehicle_id" json:"vehicle_id"`
	CustomerID   uuid.UUID     `db:"customer_id" json:"customer_id"`
	AttendantID  *uuid.UUID    `db:"attendant_id" json:"attendant_id,omitempty"`
	CheckInTime  time.Time     `db:"check_in_time" json:"check_in_time"`
	CheckOutTime *time.Time    `db:"check_out_time" json:"check_out_time,omitempty"`
	Status       ParkingStatus `db:"status" json:"status"`
	ParkingFee   float64       `db:"parking_fee" json:"parking_fee"`
	Notes        string        `db:"notes" json:"notes,omitempty"`
}

type CreateParkingRequest struct {
	VehicleID   uuid.UUID  `json:"vehicle_id" binding:"required"`
	CustomerID  uuid.UUID  `json:"customer_id" binding:"required"`
	AttendantID *uuid.UUID `json:"attendant_id"`
	Notes       string     `json:"notes" binding:"max=1000"`
}

type UpdateParkingRequest struct {
	AttendantID *uuid.UUID `json:"attendant_id"`
	Notes       *string    `json:"notes" binding:"omitempty,max=1000"`
}

// CheckOutRequest is the payload for the parking check-out transition.
type CheckOutRequest struct {
	ParkingFee *float64 `json:"parking_fee" binding:"omitempty,gte=0"`
}

type ParkingFilters struct {
	CustomerID  uuid.UUID
	VehicleID   uuid.UUID
	AttendantID uuid.UUID
	Status      ParkingStatus
}

// ParkingDurationStats is the rollup over completed parking sessions.
type ParkingDurationStats struct {
	TotalVehiclesParked  int     `json:"total_vehicles_parked"`
	AverageDurationHours float64 `json:"average_duration_hours"`
}
