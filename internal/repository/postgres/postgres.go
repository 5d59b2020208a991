package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/jkimaro/washpark-api/internal/repository"
)

type attendantRepository struct {
	BaseRepository
}

type customerRepository struct {
	BaseRepository
}

type vehicleRepository struct {
	BaseRepository
}

type serviceTypeRepository struct {
	BaseRepository
}

type serviceRequestRepository struct {
	BaseRepository
}

type parkingRepository struct {
	BaseRepository
}

type paymentRepository struct {
	BaseRepository
}

type outboxRepository struct {
	BaseRepository
}

func NewAttendantRepository(db *sqlx.DB) repository.AttendantRepository {
	return &attendantRepository{NewBaseRepository(db)}
}

func NewCustomerRepository(db *sqlx.DB) repository.CustomerRepository {
	return &customerRepository{NewBaseRepository(db)}
}

func NewVehicleRepository(db *sqlx.DB) repository.VehicleRepository {
	return &vehicleRepository{NewBaseRepository(db)}
}

func NewServiceTypeRepository(db *sqlx.DB) repository.ServiceTypeRepository {
	return &serviceTypeRepository{NewBaseRepository(db)}
}

func NewServiceRequestRepository(db *sqlx.DB) repository.ServiceRequestRepository {
	return &serviceRequestRepository{NewBaseRepository(db)}
}

func NewParkingRepository(db *sqlx.DB) repository.ParkingRepository {
	return &parkingRepository{NewBaseRepository(db)}
}

func NewPaymentRepository(db *sqlx.DB) repository.PaymentRepository {
	return &paymentRepository{NewBaseRepository(db)}
}

func NewOutboxRepository(db *sqlx.DB) repository.OutboxRepository {
	return &outboxRepository{NewBaseRepository(db)}
}
