package servicetype

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/internal/repository"
	"github.com/jkimaro/washpark-api/pkg/apperror"
)

type Service struct {
	repo repository.ServiceTypeRepository
}

func NewService(repo repository.ServiceTypeRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateServiceType(ctx context.Context, req *model.CreateServiceTypeRequest) (*model.ServiceType, error) {
	if req.BasePrice < 0 {
		return nil, apperror.Validation("base price must not be negative")
	}

	serviceType := &model.ServiceType{
		Name:                 req.Name,
		Description:          req.Description,
		BasePrice:            req.BasePrice,
		EstimatedTimeMinutes: req.EstimatedTimeMinutes,
		IsActive:             true,
	}

	if err := s.repo.Create(ctx, serviceType); err != nil {
		return nil, fmt.Errorf("failed to create service type: %w", err)
	}
	return serviceType, nil
}

func (s *Service) GetServiceType(ctx context.Context, id uuid.UUID) (*model.ServiceType, error) {
	serviceType, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get service type: %w", err)
	}
	return serviceType, nil
}

func (s *Service) UpdateServiceType(ctx context.Context, id uuid.UUID, req *model.UpdateServiceTypeRequest) (*model.ServiceType, error) {
	serviceType, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get service type: %w", err)
	}

	if req.Name != nil {
		serviceType.Name = *req.Name
	}
	if req.Description != nil {
		serviceType.Description = *req.Description
	}
	if req.BasePrice != nil {
		if *req.BasePrice < 0 {
			return nil, apperror.Validation("base price must not be negative")
		}
		serviceType.BasePrice = *req.BasePrice
	}
	if req.EstimatedTimeMinutes != nil {
		serviceType.EstimatedTimeMinutes = *req.EstimatedTimeMinutes
	}
	if req.IsActive != nil {
		serviceType.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, serviceType); err != nil {
		return nil, fmt.Errorf("failed to update service type: %w", err)
	}
	return serviceType, nil
}

// DeleteServiceType fails with a conflict while any service request still
// references the type.
func (s *Service) DeleteServiceType(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete service type: %w", err)
	}
	return nil
}

func (s *Service) ListServiceTypes(ctx context.Context, activeOnly bool) ([]*model.ServiceType, error) {
	serviceTypes, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list service types: %w", err)
	}
	return serviceTypes, nil
}
