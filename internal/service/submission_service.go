package service

import (
	"context"
	"fmt"

	"tally-service/internal/events"
	"tally-service/internal/models"
	"tally-service/internal/repository"
	"tally-service/pkg/response"
)

type SubmissionService struct {
	submissions repository.SubmissionRepository
	publisher   events.Publisher
}

func NewSubmissionService(submissions repository.SubmissionRepository, publisher events.Publisher) *SubmissionService {
	return &SubmissionService{submissions: submissions, publisher: publisher}
}

// Reconciles reports whether a tally's arithmetic holds: accredited voters
// must equal votes cast plus spoiled ballots, exactly. The result is computed
// on every read and never stored; it flags the record for human review but
// blocks nothing.
func Reconciles(s *models.Submission) bool {
	return s.Accredited == s.VotesCast+s.Spoiled
}

// Record validates and persists one tally entry. Missing or negative numeric
// fields are rejected before any write. In the per-candidate variant one
// pending row is written per candidate; the tally-only variant writes a
// single row with no candidate. Either way the operation is purely additive.
func (s *SubmissionService) Record(ctx context.Context, agent *models.User, req models.SubmissionRequest) ([]*models.Submission, error) {
	if req.Accredited == nil || req.VotesCast == nil || req.Spoiled == nil {
		return nil, fmt.Errorf("%w: accredited, votesCast and spoiled are required", response.ErrInvalidArgument)
	}
	if *req.Accredited < 0 || *req.VotesCast < 0 || *req.Spoiled < 0 {
		return nil, fmt.Errorf("%w: all fields must be non-negative numbers", response.ErrInvalidArgument)
	}

	base := models.Submission{
		AgentID:    agent.ID,
		Position:   req.Position,
		District:   req.District,
		Subcounty:  req.Subcounty,
		Parish:     req.Parish,
		Village:    req.Village,
		Accredited: *req.Accredited,
		VotesCast:  *req.VotesCast,
		Spoiled:    *req.Spoiled,
		Status:     models.StatusPending,
		DRFormURL:  req.DRFormURL,
	}

	var rows []*models.Submission
	if len(req.Candidates) == 0 {
		row := base
		rows = append(rows, &row)
	} else {
		for _, entry := range req.Candidates {
			if entry.Votes == nil {
				return nil, fmt.Errorf("%w: candidate %d is missing a vote count", response.ErrInvalidArgument, entry.CandidateID)
			}
			if *entry.Votes < 0 {
				return nil, fmt.Errorf("%w: vote counts must be non-negative", response.ErrInvalidArgument)
			}
			row := base
			candidateID := entry.CandidateID
			row.CandidateID = &candidateID
			row.Votes = *entry.Votes
			rows = append(rows, &row)
		}
	}

	if err := s.submissions.Create(ctx, rows); err != nil {
		// Transient store failures are recoverable: the caller keeps the
		// entered data and retries.
		return nil, fmt.Errorf("%w: save submission: %v", response.ErrInternal, err)
	}

	for _, row := range rows {
		s.publish(ctx, models.EventSubmissionCreated, row)
	}
	return rows, nil
}

// List returns submissions for the viewer. Agents are pinned to their own
// records with a query predicate, not client-side filtering, so no foreign
// record ever leaves the store for them.
func (s *SubmissionService) List(ctx context.Context, viewer *models.User, filter models.SubmissionFilter) ([]*models.Submission, error) {
	if viewer.Role == models.RoleAgent {
		filter.AgentID = viewer.ID
	}
	return s.submissions.List(ctx, filter)
}

// Approve transitions a pending submission to approved.
func (s *SubmissionService) Approve(ctx context.Context, id uint) (*models.Submission, error) {
	return s.transition(ctx, id, models.StatusApproved, true, models.EventSubmissionApproved)
}

// Reject transitions a pending submission to rejected.
func (s *SubmissionService) Reject(ctx context.Context, id uint) (*models.Submission, error) {
	return s.transition(ctx, id, models.StatusRejected, false, models.EventSubmissionRejected)
}

func (s *SubmissionService) transition(ctx context.Context, id uint, status string, validated bool, eventType string) (*models.Submission, error) {
	moved, err := s.submissions.UpdateStatus(ctx, id, status, validated)
	if err != nil {
		return nil, fmt.Errorf("%w: update status: %v", response.ErrInternal, err)
	}
	if !moved {
		submission, findErr := s.submissions.FindByID(ctx, id)
		if findErr != nil {
			return nil, fmt.Errorf("%w: submission %d", response.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: submission already %s", response.ErrConflict, submission.Status)
	}

	submission, err := s.submissions.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: reload submission: %v", response.ErrInternal, err)
	}
	s.publish(ctx, eventType, submission)
	return submission, nil
}

func (s *SubmissionService) publish(ctx context.Context, eventType string, submission *models.Submission) {
	// Event delivery is best effort; the write of record already succeeded.
	_ = s.publisher.Publish(ctx, models.Event{
		Type:       eventType,
		AgentID:    submission.AgentID,
		Submission: submission,
	})
}
