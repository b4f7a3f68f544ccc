package service

import (
	"context"
	"fmt"

	"tally-service/internal/events"
	"tally-service/internal/models"
	"tally-service/internal/repository"
	"tally-service/pkg/response"
)

type IncidentService struct {
	incidents repository.IncidentRepository
	publisher events.Publisher
}

func NewIncidentService(incidents repository.IncidentRepository, publisher events.Publisher) *IncidentService {
	return &IncidentService{incidents: incidents, publisher: publisher}
}

// Report appends a new open incident for the calling user.
func (s *IncidentService) Report(ctx context.Context, reporter *models.User, req models.IncidentRequest) (*models.Incident, error) {
	incident := &models.Incident{
		AgentID:     reporter.ID,
		Headline:    req.Headline,
		Description: req.Description,
		District:    req.District,
		Subcounty:   req.Subcounty,
		Parish:      req.Parish,
		Village:     req.Village,
		PhotoURL:    req.PhotoURL,
		Status:      models.IncidentOpen,
	}
	if err := s.incidents.Create(ctx, incident); err != nil {
		return nil, fmt.Errorf("%w: save incident: %v", response.ErrInternal, err)
	}

	_ = s.publisher.Publish(ctx, models.Event{
		Type:     models.EventIncidentCreated,
		AgentID:  incident.AgentID,
		Incident: incident,
	})
	return incident, nil
}

// List returns every incident; the read scope is deliberately broad, every
// authenticated user sees the full log.
func (s *IncidentService) List(ctx context.Context) ([]*models.Incident, error) {
	return s.incidents.List(ctx)
}

// Resolve flips an open incident to resolved. Resolution is the only
// mutation an incident ever sees.
func (s *IncidentService) Resolve(ctx context.Context, id uint) (*models.Incident, error) {
	moved, err := s.incidents.Resolve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve incident: %v", response.ErrInternal, err)
	}
	if !moved {
		if _, findErr := s.incidents.FindByID(ctx, id); findErr != nil {
			return nil, fmt.Errorf("%w: incident %d", response.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: incident already resolved", response.ErrConflict)
	}

	incident, err := s.incidents.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: reload incident: %v", response.ErrInternal, err)
	}
	_ = s.publisher.Publish(ctx, models.Event{
		Type:     models.EventIncidentResolved,
		AgentID:  incident.AgentID,
		Incident: incident,
	})
	return incident, nil
}
