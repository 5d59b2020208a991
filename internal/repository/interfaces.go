package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jkimaro/washpark-api/internal/model"
)

// All repository interfaces in one file
type (
	AttendantRepository interface {
		Create(ctx context.Context, attendant *model.Attendant) error
		Get(ctx context.Context, id uuid.UUID) (*model.Attendant, error)
		Update(ctx context.Context, attendant *model.Attendant) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Attendant, error)
		CountCompletedServices(ctx context.Context, attendantID uuid.UUID) (int, error)
		CountParkingHandled(ctx context.Context, attendantID uuid.UUID) (int, error)
	}

	CustomerRepository interface {
		Create(ctx context.Context, customer *model.Customer) error
		Get(ctx context.Context, id uuid.UUID) (*model.Customer, error)
		Update(ctx context.Context, customer *model.Customer) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Customer, error)
		CountVehicles(ctx context.Context, customerID uuid.UUID) (int, error)
		TotalCompletedPayments(ctx context.Context, customerID uuid.UUID) (float64, error)
	}

	VehicleRepository interface {
		Create(ctx context.Context, vehicle *model.Vehicle) error
		Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
		Update(ctx context.Context, vehicle *model.Vehicle) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, customerID uuid.UUID) ([]*model.Vehicle, error)
	}

	ServiceTypeRepository interface {
		Create(ctx context.Context, serviceType *model.ServiceType) error
		Get(ctx context.Context, id uuid.UUID) (*model.ServiceType, error)
		Update(ctx context.Context, serviceType *model.ServiceType) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, activeOnly bool) ([]*model.ServiceType, error)
	}

	// ServiceRequestRepository exposes tx-aware variants so the transition
	// engine can lock, guard and mutate a row as one unit.
	ServiceRequestRepository interface {
		Create(ctx context.Context, request *model.ServiceRequest) error
		Get(ctx context.Context, id uuid.UUID) (*model.ServiceRequest, error)
		Update(ctx context.Context, request *model.ServiceRequest) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filters *model.ServiceRequestFilters) ([]*model.ServiceRequest, error)
		ListRecentByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*model.ServiceRequest, error)
		WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error
		GetForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*model.ServiceRequest, error)
		UpdateTx(ctx context.Context, tx *sqlx.Tx, request *model.ServiceRequest) error
	}

	ParkingRepository interface {
		Create(ctx context.Context, parking *model.Parking) error
		Get(ctx context.Context, id uuid.UUID) (*model.Parking, error)
		Update(ctx context.Context, parking *model.Parking) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filters *model.ParkingFilters) ([]*model.Parking, error)
		ListRecentByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*model.Parking, error)
		DurationStats(ctx context.Context) (count int, avgHours float64, err error)
		WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error
		GetForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*model.Parking, error)
		UpdateTx(ctx context.Context, tx *sqlx.Tx, parking *model.Parking) error
	}

	PaymentRepository interface {
		Create(ctx context.Context, payment *model.Payment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Payment, error)
		Update(ctx context.Context, payment *model.Payment) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filters *model.PaymentFilters) ([]*model.Payment, error)
		RevenueBetween(ctx context.Context, from, to time.Time) (total float64, count int, err error)
		WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error
		GetForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*model.Payment, error)
		UpdateTx(ctx context.Context, tx *sqlx.Tx, payment *model.Payment) error
	}

	OutboxRepository interface {
		CreateTx(ctx context.Context, tx *sqlx.Tx, event *model.OutboxEvent) error
		GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, lastError *string) error
	}
)
