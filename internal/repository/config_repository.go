package repository

import (
	"context"

	"tally-service/internal/models"

	"gorm.io/gorm"
)

// ConfigRepository owns the district/position configuration aggregates.
type ConfigRepository interface {
	ListDistricts(ctx context.Context) ([]*models.District, error)
	FindDistrict(ctx context.Context, id uint) (*models.District, error)
	CreateDistrict(ctx context.Context, district *models.District) error
	UpdateDistrict(ctx context.Context, district *models.District) error
	DeleteDistrict(ctx context.Context, id uint) error

	ListPositions(ctx context.Context) ([]*models.Position, error)
	FindPosition(ctx context.Context, id uint) (*models.Position, error)
	CreatePosition(ctx context.Context, position *models.Position) error
	UpdatePosition(ctx context.Context, position *models.Position) error
	DeletePosition(ctx context.Context, id uint) error
}

type configRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{db: db}
}

func (r *configRepository) ListDistricts(ctx context.Context) ([]*models.District, error) {
	var districts []*models.District
	if err := r.db.WithContext(ctx).Order("name").Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

func (r *configRepository) FindDistrict(ctx context.Context, id uint) (*models.District, error) {
	var district models.District
	if err := r.db.WithContext(ctx).First(&district, id).Error; err != nil {
		return nil, err
	}
	return &district, nil
}

func (r *configRepository) CreateDistrict(ctx context.Context, district *models.District) error {
	return r.db.WithContext(ctx).Create(district).Error
}

func (r *configRepository) UpdateDistrict(ctx context.Context, district *models.District) error {
	return r.db.WithContext(ctx).Save(district).Error
}

func (r *configRepository) DeleteDistrict(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.District{}, id).Error
}

func (r *configRepository) ListPositions(ctx context.Context) ([]*models.Position, error) {
	var positions []*models.Position
	if err := r.db.WithContext(ctx).Order("name").Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

func (r *configRepository) FindPosition(ctx context.Context, id uint) (*models.Position, error) {
	var position models.Position
	if err := r.db.WithContext(ctx).First(&position, id).Error; err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *configRepository) CreatePosition(ctx context.Context, position *models.Position) error {
	return r.db.WithContext(ctx).Create(position).Error
}

func (r *configRepository) UpdatePosition(ctx context.Context, position *models.Position) error {
	return r.db.WithContext(ctx).Save(position).Error
}

func (r *configRepository) DeletePosition(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Position{}, id).Error
}
