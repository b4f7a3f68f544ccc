package repository

import (
	"context"

	"tally-service/internal/models"

	"gorm.io/gorm"
)

// IncidentRepository owns the append-only incident log. Resolve is the only
// mutation and is conditional on the incident still being open.
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	FindByID(ctx context.Context, id uint) (*models.Incident, error)
	List(ctx context.Context) ([]*models.Incident, error)
	Resolve(ctx context.Context, id uint) (bool, error)
}

type incidentRepository struct {
	db *gorm.DB
}

func NewIncidentRepository(db *gorm.DB) IncidentRepository {
	return &incidentRepository{db: db}
}

func (r *incidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	return r.db.WithContext(ctx).Create(incident).Error
}

func (r *incidentRepository) FindByID(ctx context.Context, id uint) (*models.Incident, error) {
	var incident models.Incident
	if err := r.db.WithContext(ctx).First(&incident, id).Error; err != nil {
		return nil, err
	}
	return &incident, nil
}

func (r *incidentRepository) List(ctx context.Context) ([]*models.Incident, error) {
	var incidents []*models.Incident
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&incidents).Error; err != nil {
		return nil, err
	}
	return incidents, nil
}

func (r *incidentRepository) Resolve(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Incident{}).
		Where("id = ? AND status = ?", id, models.IncidentOpen).
		Update("status", models.IncidentResolved)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
