package service

import (
	"context"
	"fmt"

	"tally-service/internal/models"
	"tally-service/internal/repository"
	"tally-service/pkg/response"
)

// ConfigService manages the district/position configuration aggregates. Reads
// serve every role's selectors; writes are superadmin-only (enforced at the
// route level).
type ConfigService struct {
	config repository.ConfigRepository
}

func NewConfigService(config repository.ConfigRepository) *ConfigService {
	return &ConfigService{config: config}
}

func (s *ConfigService) ListDistricts(ctx context.Context) ([]*models.District, error) {
	return s.config.ListDistricts(ctx)
}

func (s *ConfigService) CreateDistrict(ctx context.Context, req models.DistrictRequest) (*models.District, error) {
	district := &models.District{Name: req.Name, Subunits: req.Subunits}
	if err := s.config.CreateDistrict(ctx, district); err != nil {
		return nil, fmt.Errorf("%w: create district: %v", response.ErrInternal, err)
	}
	return district, nil
}

// UpdateDistrict replaces the whole aggregate: name and subunit tree move
// together so selectors never observe a half-edited hierarchy.
func (s *ConfigService) UpdateDistrict(ctx context.Context, id uint, req models.DistrictRequest) (*models.District, error) {
	district, err := s.config.FindDistrict(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: district %d", response.ErrNotFound, id)
	}
	district.Name = req.Name
	district.Subunits = req.Subunits
	if err := s.config.UpdateDistrict(ctx, district); err != nil {
		return nil, fmt.Errorf("%w: update district: %v", response.ErrInternal, err)
	}
	return district, nil
}

func (s *ConfigService) DeleteDistrict(ctx context.Context, id uint) error {
	if _, err := s.config.FindDistrict(ctx, id); err != nil {
		return fmt.Errorf("%w: district %d", response.ErrNotFound, id)
	}
	if err := s.config.DeleteDistrict(ctx, id); err != nil {
		return fmt.Errorf("%w: delete district: %v", response.ErrInternal, err)
	}
	return nil
}

func (s *ConfigService) ListPositions(ctx context.Context) ([]*models.Position, error) {
	return s.config.ListPositions(ctx)
}

func (s *ConfigService) CreatePosition(ctx context.Context, req models.PositionRequest) (*models.Position, error) {
	position := &models.Position{Name: req.Name}
	if err := s.config.CreatePosition(ctx, position); err != nil {
		return nil, fmt.Errorf("%w: create position: %v", response.ErrInternal, err)
	}
	return position, nil
}

func (s *ConfigService) UpdatePosition(ctx context.Context, id uint, req models.PositionRequest) (*models.Position, error) {
	position, err := s.config.FindPosition(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: position %d", response.ErrNotFound, id)
	}
	position.Name = req.Name
	if err := s.config.UpdatePosition(ctx, position); err != nil {
		return nil, fmt.Errorf("%w: update position: %v", response.ErrInternal, err)
	}
	return position, nil
}

func (s *ConfigService) DeletePosition(ctx context.Context, id uint) error {
	if _, err := s.config.FindPosition(ctx, id); err != nil {
		return fmt.Errorf("%w: position %d", response.ErrNotFound, id)
	}
	if err := s.config.DeletePosition(ctx, id); err != nil {
		return fmt.Errorf("%w: delete position: %v", response.ErrInternal, err)
	}
	return nil
}
