package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/internal/repository"
	"github.com/jkimaro/washpark-api/pkg/apperror"
)

// Stubs embed the repository interfaces so only the methods a report
// actually touches need implementations.

type stubAttendantRepo struct {
	repository.AttendantRepository
	attendant      *model.Attendant
	completed      int
	parkingHandled int
}

func (s *stubAttendantRepo) Get(ctx context.Context, id uuid.UUID) (*model.Attendant, error) {
	if s.attendant == nil {
		return nil, apperror.NotFound("attendant", id.String())
	}
	return s.attendant, nil
}

func (s *stubAttendantRepo) CountCompletedServices(ctx context.Context, id uuid.UUID) (int, error) {
	return s.completed, nil
}

func (s *stubAttendantRepo) CountParkingHandled(ctx context.Context, id uuid.UUID) (int, error) {
	return s.parkingHandled, nil
}

type stubCustomerRepo struct {
	repository.CustomerRepository
	customer   *model.Customer
	vehicles   int
	totalSpent float64
}

func (s *stubCustomerRepo) Get(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	if s.customer == nil {
		return nil, apperror.NotFound("customer", id.String())
	}
	return s.customer, nil
}

func (s *stubCustomerRepo) CountVehicles(ctx context.Context, id uuid.UUID) (int, error) {
	return s.vehicles, nil
}

func (s *stubCustomerRepo) TotalCompletedPayments(ctx context.Context, id uuid.UUID) (float64, error) {
	return s.totalSpent, nil
}

type stubServiceRequestRepo struct {
	repository.ServiceRequestRepository
	recent []*model.ServiceRequest
}

func (s *stubServiceRequestRepo) ListRecentByCustomer(ctx context.Context, id uuid.UUID, limit int) ([]*model.ServiceRequest, error) {
	if len(s.recent) > limit {
		return s.recent[:limit], nil
	}
	return s.recent, nil
}

type stubParkingRepo struct {
	repository.ParkingRepository
	recent   []*model.Parking
	count    int
	avgHours float64
}

func (s *stubParkingRepo) ListRecentByCustomer(ctx context.Context, id uuid.UUID, limit int) ([]*model.Parking, error) {
	if len(s.recent) > limit {
		return s.recent[:limit], nil
	}
	return s.recent, nil
}

func (s *stubParkingRepo) DurationStats(ctx context.Context) (int, float64, error) {
	return s.count, s.avgHours, nil
}

type stubPaymentRepo struct {
	repository.PaymentRepository
	total float64
	count int
	from  time.Time
	to    time.Time
}

func (s *stubPaymentRepo) RevenueBetween(ctx context.Context, from, to time.Time) (float64, int, error) {
	s.from = from
	s.to = to
	return s.total, s.count, nil
}

func TestAttendantPerformance(t *testing.T) {
	attendant := &model.Attendant{Name: "Asha"}
	svc := NewService(
		&stubAttendantRepo{attendant: attendant, completed: 12, parkingHandled: 7},
		&stubCustomerRepo{}, &stubServiceRequestRepo{}, &stubParkingRepo{}, &stubPaymentRepo{},
	)

	perf, err := svc.AttendantPerformance(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, attendant, perf.Attendant)
	assert.Equal(t, 12, perf.ServicesCompleted)
	assert.Equal(t, 7, perf.ParkingHandled)
}

func TestAttendantPerformanceNotFound(t *testing.T) {
	svc := NewService(
		&stubAttendantRepo{},
		&stubCustomerRepo{}, &stubServiceRequestRepo{}, &stubParkingRepo{}, &stubPaymentRepo{},
	)

	_, err := svc.AttendantPerformance(context.Background(), uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestCustomerSummary(t *testing.T) {
	customer := &model.Customer{Name: "Jane"}
	recent := make([]*model.ServiceRequest, 8)
	for i := range recent {
		recent[i] = &model.ServiceRequest{}
	}

	svc := NewService(
		&stubAttendantRepo{},
		&stubCustomerRepo{customer: customer, vehicles: 2, totalSpent: 48000},
		&stubServiceRequestRepo{recent: recent},
		&stubParkingRepo{recent: []*model.Parking{{}, {}}},
		&stubPaymentRepo{},
	)

	summary, err := svc.CustomerSummary(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, customer, summary.Customer)
	assert.Equal(t, 2, summary.VehiclesCount)
	assert.Equal(t, 48000.0, summary.TotalSpent)
	assert.Len(t, summary.RecentServices, 5)
	assert.Len(t, summary.RecentParking, 2)
}

func TestParkingDurationStats(t *testing.T) {
	svc := NewService(
		&stubAttendantRepo{}, &stubCustomerRepo{}, &stubServiceRequestRepo{},
		&stubParkingRepo{count: 3, avgHours: 2.0},
		&stubPaymentRepo{},
	)

	stats, err := svc.ParkingDurationStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalVehiclesParked)
	assert.Equal(t, 2.0, stats.AverageDurationHours)
}

func TestParkingDurationStatsEmpty(t *testing.T) {
	svc := NewService(
		&stubAttendantRepo{}, &stubCustomerRepo{}, &stubServiceRequestRepo{},
		&stubParkingRepo{},
		&stubPaymentRepo{},
	)

	stats, err := svc.ParkingDurationStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVehiclesParked)
	assert.Zero(t, stats.AverageDurationHours)
}

func TestParkingDurationStatsRounding(t *testing.T) {
	svc := NewService(
		&stubAttendantRepo{}, &stubCustomerRepo{}, &stubServiceRequestRepo{},
		&stubParkingRepo{count: 7, avgHours: 1.23456},
		&stubPaymentRepo{},
	)

	stats, err := svc.ParkingDurationStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.23, stats.AverageDurationHours)
}

func TestDailyRevenue(t *testing.T) {
	payments := &stubPaymentRepo{total: 12500, count: 4}
	svc := NewService(
		&stubAttendantRepo{}, &stubCustomerRepo{}, &stubServiceRequestRepo{},
		&stubParkingRepo{}, payments,
	)

	date := time.Date(2025, time.March, 14, 15, 30, 0, 0, time.UTC)
	revenue, err := svc.DailyRevenue(context.Background(), date)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-14", revenue.Period)
	assert.Equal(t, 12500.0, revenue.TotalRevenue)
	assert.Equal(t, 4, revenue.Transactions)

	// The window covers exactly the calendar day.
	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), payments.from)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), payments.to)
}

func TestMonthlyRevenue(t *testing.T) {
	payments := &stubPaymentRepo{total: 250000, count: 31}
	svc := NewService(
		&stubAttendantRepo{}, &stubCustomerRepo{}, &stubServiceRequestRepo{},
		&stubParkingRepo{}, payments,
	)

	reference := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	revenue, err := svc.MonthlyRevenue(context.Background(), reference)
	require.NoError(t, err)

	assert.Equal(t, "March 2025", revenue.Period)
	assert.Equal(t, 250000.0, revenue.TotalRevenue)
	assert.Equal(t, 31, revenue.Transactions)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), payments.from)
}
