package service

import (
	"bytes"
	"context"
	"fmt"
	"math"

	"tally-service/internal/models"
	"tally-service/internal/repository"
	"tally-service/pkg/response"
)

type AggregationService struct {
	candidates  repository.CandidateRepository
	submissions repository.SubmissionRepository
}

func NewAggregationService(candidates repository.CandidateRepository, submissions repository.SubmissionRepository) *AggregationService {
	return &AggregationService{candidates: candidates, submissions: submissions}
}

// ComputeTotals reduces the matching submissions into per-candidate totals.
//
// The candidate fetch is scoped by (position, district) only; the finer
// location fields narrow the vote fetch alone. Submissions pointing at a
// candidate outside the current set are skipped silently, so renaming or
// deleting a candidate never errors on old data (its votes just stop
// counting). Every call re-derives the result from the store; nothing is
// cached, so two calls with no intervening writes return identical output.
//
// Agent viewers get a server-side agent_id predicate on the vote query and
// therefore only ever aggregate their own contributions. Other roles
// aggregate all approved records.
func (s *AggregationService) ComputeTotals(ctx context.Context, viewer *models.User, filter models.TotalsFilter) ([]models.CandidateTotal, error) {
	if filter.Position == "" || filter.District == "" {
		return nil, fmt.Errorf("%w: position and district are required", response.ErrInvalidArgument)
	}

	candidates, err := s.candidates.ListByScope(ctx, filter.Position, filter.District)
	if err != nil {
		return nil, fmt.Errorf("%w: load candidates: %v", response.ErrInternal, err)
	}

	totals := make(map[uint]int, len(candidates))
	for _, c := range candidates {
		totals[c.ID] = 0
	}

	subFilter := models.SubmissionFilter{
		Position:  filter.Position,
		District:  filter.District,
		Subcounty: filter.Subcounty,
		Parish:    filter.Parish,
		Village:   filter.Village,
	}
	if viewer.Role == models.RoleAgent {
		subFilter.AgentID = viewer.ID
	} else {
		subFilter.Status = models.StatusApproved
	}

	submissions, err := s.submissions.List(ctx, subFilter)
	if err != nil {
		return nil, fmt.Errorf("%w: load submissions: %v", response.ErrInternal, err)
	}

	for _, sub := range submissions {
		if sub.CandidateID == nil {
			continue
		}
		if _, ok := totals[*sub.CandidateID]; ok {
			totals[*sub.CandidateID] += sub.Votes
		}
	}

	sum := 0
	for _, t := range totals {
		sum += t
	}

	out := make([]models.CandidateTotal, 0, len(candidates))
	for _, c := range candidates {
		total := totals[c.ID]
		percent := 0.0
		if sum > 0 {
			percent = math.Round(float64(total)/float64(sum)*1000) / 10
		}
		out = append(out, models.CandidateTotal{
			CandidateID: c.ID,
			Name:        c.Name,
			Total:       total,
			Percent:     percent,
		})
	}
	return out, nil
}

// ReportCSV renders totals as the export format: a Candidate,Total Votes
// header and one quoted-name row per candidate.
func ReportCSV(totals []models.CandidateTotal) []byte {
	var buf bytes.Buffer
	buf.WriteString("Candidate,Total Votes\n")
	for _, t := range totals {
		fmt.Fprintf(&buf, "%q,%d\n", t.Name, t.Total)
	}
	return buf.Bytes()
}

// ReportFilename encodes the active filter tuple into the download name.
func ReportFilename(filter models.TotalsFilter) string {
	return fmt.Sprintf("%s_%s_%s_%s_%s_report.csv",
		filter.District, filter.Subcounty, filter.Parish, filter.Village, filter.Position)
}
