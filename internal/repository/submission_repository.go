package repository

import (
	"context"

	"tally-service/internal/models"

	"gorm.io/gorm"
)

// SubmissionRepository owns the append-only tally records. The only mutation
// is UpdateStatus, which is conditional on the record still being pending so
// two reviewers cannot both win a race.
type SubmissionRepository interface {
	Create(ctx context.Context, submissions []*models.Submission) error
	FindByID(ctx context.Context, id uint) (*models.Submission, error)
	List(ctx context.Context, filter models.SubmissionFilter) ([]*models.Submission, error)
	UpdateStatus(ctx context.Context, id uint, status string, validated bool) (bool, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submissions []*models.Submission) error {
	return r.db.WithContext(ctx).Create(submissions).Error
}

func (r *submissionRepository) FindByID(ctx context.Context, id uint) (*models.Submission, error) {
	var submission models.Submission
	if err := r.db.WithContext(ctx).First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) List(ctx context.Context, filter models.SubmissionFilter) ([]*models.Submission, error) {
	q := r.db.WithContext(ctx).Model(&models.Submission{})
	if filter.Position != "" {
		q = q.Where("position = ?", filter.Position)
	}
	if filter.District != "" {
		q = q.Where("district = ?", filter.District)
	}
	if filter.Subcounty != "" {
		q = q.Where("subcounty = ?", filter.Subcounty)
	}
	if filter.Parish != "" {
		q = q.Where("parish = ?", filter.Parish)
	}
	if filter.Village != "" {
		q = q.Where("village = ?", filter.Village)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.AgentID != "" {
		q = q.Where("agent_id = ?", filter.AgentID)
	}

	var submissions []*models.Submission
	if err := q.Order("created_at").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// UpdateStatus transitions a pending submission to its terminal status. The
// WHERE clause makes the transition first-writer-wins; the boolean result is
// false when another reviewer already decided.
func (r *submissionRepository) UpdateStatus(ctx context.Context, id uint, status string, validated bool) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{"status": status, "validated": validated})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
