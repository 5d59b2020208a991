package attendant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jkimaro/washpark-api/internal/model"
	"github.com/jkimaro/washpark-api/internal/repository"
)

type Service struct {
	repo repository.AttendantRepository
}

func NewService(repo repository.AttendantRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateAttendant(ctx context.Context, req *model.CreateAttendantRequest) (*model.Attendant, error) {
	attendant := &model.Attendant{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		IDNumber: req.IDNumber,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, attendant); err != nil {
		return nil, fmt.Errorf("failed to create attendant: %w", err)
	}
	return attendant, nil
}

func (s *Service) GetAttendant(ctx context.Context, id uuid.UUID) (*model.Attendant, error) {
	attendant, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendant: %w", err)
	}
	return attendant, nil
}

func (s *Service) UpdateAttendant(ctx context.Context, id uuid.UUID, req *model.UpdateAttendantRequest) (*model.Attendant, error) {
	attendant, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendant: %w", err)
	}

	if req.Name != nil {
		attendant.Name = *req.Name
	}
	if req.Phone != nil {
		attendant.Phone = *req.Phone
	}
	if req.Email != nil {
		attendant.Email = *req.Email
	}
	if req.IDNumber != nil {
		attendant.IDNumber = *req.IDNumber
	}
	if req.IsActive != nil {
		attendant.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, attendant); err != nil {
		return nil, fmt.Errorf("failed to update attendant: %w", err)
	}
	return attendant, nil
}

// DeleteAttendant removes the staff record. Service requests and parking
// records they handled survive with the reference cleared by the schema.
func (s *Service) DeleteAttendant(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attendant: %w", err)
	}
	return nil
}

func (s *Service) ListAttendants(ctx context.Context) ([]*model.Attendant, error) {
	attendants, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendants: %w", err)
	}
	return attendants, nil
}
