package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/internal/repository"
)

const recentRecordLimit = 5

// Service computes read-only rollups over the store. Nothing here mutates.
type Service struct {
	attendantRepo repository.AttendantRepository
	customerRepo  repository.CustomerRepository
	serviceRepo   repository.ServiceRequestRepository
	parkingRepo   repository.ParkingRepository
	paymentRepo   repository.PaymentRepository
}

func NewService(
	attendantRepo repository.AttendantRepository,
	customerRepo repository.CustomerRepository,
	serviceRepo repository.ServiceRequestRepository,
	parkingRepo repository.ParkingRepository,
	paymentRepo repository.PaymentRepository,
) *Service {
	return &Service{
		attendantRepo: attendantRepo,
		customerRepo:  customerRepo,
		serviceRepo:   serviceRepo,
		parkingRepo:   parkingRepo,
		paymentRepo:   paymentRepo,
	}
}

// AttendantPerformance counts the attendant's completed service requests and
// every parking record they handled, regardless of status.
func (s *Service) AttendantPerformance(ctx context.Context, attendantID uuid.UUID) (*model.AttendantPerformance, error) {
	attendant, err := s.attendantRepo.Get(ctx, attendantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendant: %w", err)
	}

	completed, err := s.attendantRepo.CountCompletedServices(ctx, attendantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed services: %w", err)
	}

	parkingHandled, err := s.attendantRepo.CountParkingHandled(ctx, attendantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count parking handled: %w", err)
	}

	return &model.AttendantPerformance{
		Attendant:         attendant,
		ServicesCompleted: completed,
		ParkingHandled:    parkingHandled,
	}, nil
}

// CustomerSummary collects the customer's vehicle count, total completed
// spend, and the five most recent service requests and parking records.
func (s *Service) CustomerSummary(ctx context.Context, customerID uuid.UUID) (*model.CustomerSummary, error) {
	customer, err := s.customerRepo.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	vehicles, err := s.customerRepo.CountVehicles(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count vehicles: %w", err)
	}

	totalSpent, err := s.customerRepo.TotalCompletedPayments(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to total payments: %w", err)
	}

	recentServices, err := s.serviceRepo.ListRecentByCustomer(ctx, customerID, recentRecordLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent services: %w", err)
	}

	recentParking, err := s.parkingRepo.ListRecentByCustomer(ctx, customerID, recentRecordLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent parking: %w", err)
	}

	return &model.CustomerSummary{
		Customer:       customer,
		VehiclesCount:  vehicles,
		TotalSpent:     totalSpent,
		RecentServices: recentServices,
		RecentParking:  recentParking,
	}, nil
}

// ParkingDurationStats averages (check_out - check_in) in hours over
// completed sessions, rounded to two decimals. Zero sessions yield a zero
// average, not a division error.
func (s *Service) ParkingDurationStats(ctx context.Context) (*model.ParkingDurationStats, error) {
	count, avgHours, err := s.parkingRepo.DurationStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute duration stats: %w", err)
	}

	return &model.ParkingDurationStats{
		TotalVehiclesParked:  count,
		AverageDurationHours: roundHours(avgHours),
	}, nil
}

// DailyRevenue sums completed payments whose payment date falls on the
// given calendar day.
func (s *Service) DailyRevenue(ctx context.Context, date time.Time) (*model.RevenueReport, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	total, count, err := s.paymentRepo.RevenueBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to compute daily revenue: %w", err)
	}

	return &model.RevenueReport{
		Period:       dayStart.Format("2006-01-02"),
		TotalRevenue: total,
		Transactions: count,
	}, nil
}

// MonthlyRevenue sums completed payments from the first day of the month
// containing the reference date through the query time.
func (s *Service) MonthlyRevenue(ctx context.Context, reference time.Time) (*model.RevenueReport, error) {
	monthStart := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())

	total, count, err := s.paymentRepo.RevenueBetween(ctx, monthStart, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly revenue: %w", err)
	}

	return &model.RevenueReport{
		Period:       monthStart.Format("January 2006"),
		TotalRevenue: total,
		Transactions: count,
	}, nil
}

func roundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}
