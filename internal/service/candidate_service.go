package service

import (
	"context"
	"fmt"

	"tally-service/internal/models"
	"tally-service/internal/repository"
	"tally-service/pkg/response"
)

type CandidateService struct {
	candidates repository.CandidateRepository
}

func NewCandidateService(candidates repository.CandidateRepository) *CandidateService {
	return &CandidateService{candidates: candidates}
}

func (s *CandidateService) Create(ctx context.Context, req models.CandidateRequest) (*models.Candidate, error) {
	candidate := &models.Candidate{
		Name:     req.Name,
		Position: req.Position,
		District: req.District,
	}
	if err := s.candidates.Create(ctx, candidate); err != nil {
		return nil, fmt.Errorf("%w: create candidate: %v", response.ErrInternal, err)
	}
	return candidate, nil
}

// ListByScope serves the entry form's candidate selector for one
// (position, district) pair; List serves the admin roster.
func (s *CandidateService) ListByScope(ctx context.Context, position, district string) ([]*models.Candidate, error) {
	if position == "" || district == "" {
		return nil, fmt.Errorf("%w: position and district are required", response.ErrInvalidArgument)
	}
	return s.candidates.ListByScope(ctx, position, district)
}

func (s *CandidateService) List(ctx context.Context) ([]*models.Candidate, error) {
	return s.candidates.List(ctx)
}

func (s *CandidateService) Update(ctx context.Context, id uint, req models.CandidateRequest) (*models.Candidate, error) {
	candidate, err := s.candidates.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: candidate %d", response.ErrNotFound, id)
	}
	candidate.Name = req.Name
	candidate.Position = req.Position
	candidate.District = req.District
	if err := s.candidates.Update(ctx, candidate); err != nil {
		return nil, fmt.Errorf("%w: update candidate: %v", response.ErrInternal, err)
	}
	return candidate, nil
}

// Delete removes a candidate. Submissions pointing at it are left in place;
// the aggregation engine drops them from totals instead of erroring.
func (s *CandidateService) Delete(ctx context.Context, id uint) error {
	if _, err := s.candidates.FindByID(ctx, id); err != nil {
		return fmt.Errorf("%w: candidate %d", response.ErrNotFound, id)
	}
	if err := s.candidates.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: delete candidate: %v", response.ErrInternal, err)
	}
	return nil
}
