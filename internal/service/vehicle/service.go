package vehicle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/internal/repository"
	"github.com/jkimaro/washpark-api/pkg/apperror"
)

type Service struct {
	repo        repository.VehicleRepository
	serviceRepo repository.ServiceRequestRepository
}

func NewService(repo repository.VehicleRepository, serviceRepo repository.ServiceRequestRepository) *Service {
	return &Service{repo: repo, serviceRepo: serviceRepo}
}

func (s *Service) CreateVehicle(ctx context.Context, req *model.CreateVehicleRequest) (*model.Vehicle, error) {
	if !req.VehicleType.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown vehicle type %q", req.VehicleType))
	}
	if !req.Color.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown vehicle color %q", req.Color))
	}

	vehicle := &model.Vehicle{
		CustomerID:  req.CustomerID,
		PlateNumber: req.PlateNumber,
		VehicleType: req.VehicleType,
		Color:       req.Color,
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		VIN:         req.VIN,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *Service) GetVehicle(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *Service) UpdateVehicle(ctx context.Context, id uuid.UUID, req *model.UpdateVehicleRequest) (*model.Vehicle, error) {
	vehicle, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if req.PlateNumber != nil {
		vehicle.PlateNumber = *req.PlateNumber
	}
	if req.VehicleType != nil {
		if !req.VehicleType.Valid() {
			return nil, apperror.Validation(fmt.Sprintf("unknown vehicle type %q", *req.VehicleType))
		}
		vehicle.VehicleType = *req.VehicleType
	}
	if req.Color != nil {
		if !req.Color.Valid() {
			return nil, apperror.Validation(fmt.Sprintf("unknown vehicle color %q", *req.Color))
		}
		vehicle.Color = *req.Color
	}
	if req.Make != nil {
		vehicle.Make = *req.Make
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.VIN != nil {
		vehicle.VIN = req.VIN
	}
	if req.IsActive != nil {
		vehicle.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *Service) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}

func (s *Service) ListVehicles(ctx context.Context, customerID uuid.UUID) ([]*model.Vehicle, error) {
	vehicles, err := s.repo.List(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

// ServiceHistory returns the vehicle together with all its service requests.
func (s *Service) ServiceHistory(ctx context.Context, id uuid.UUID) (*model.VehicleServiceHistory, error) {
	vehicle, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	services, err := s.serviceRepo.List(ctx, &model.ServiceRequestFilters{VehicleID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle services: %w", err)
	}

	return &model.VehicleServiceHistory{
		Vehicle:  vehicle,
		Services: services,
	}, nil
}
