package service

import (
	"context"
	"math"
	"reflect"
	"testing"

	"tally-service/internal/models"
)

func uintPtr(v uint) *uint { return &v }

func aggregationFixture() (*AggregationService, *fakeCandidateRepo, *fakeSubmissionRepo) {
	candidates := &fakeCandidateRepo{candidates: []*models.Candidate{
		{Name: "Alice", Position: "Parliament", District: "Butaleja"},
		{Name: "Bob", Position: "Parliament", District: "Butaleja"},
	}}
	candidates.candidates[0].ID = 1
	candidates.candidates[1].ID = 2

	submissions := &fakeSubmissionRepo{}
	return NewAggregationService(candidates, submissions), candidates, submissions
}

func approvedVote(agentID string, candidateID uint, votes int, village string) *models.Submission {
	return &models.Submission{
		AgentID:     agentID,
		Position:    "Parliament",
		District:    "Butaleja",
		Village:     village,
		CandidateID: uintPtr(candidateID),
		Votes:       votes,
		Status:      models.StatusApproved,
	}
}

func TestComputeTotals(t *testing.T) {
	svc, _, submissions := aggregationFixture()
	submissions.submissions = []*models.Submission{
		approvedVote("agent-1", 1, 60, "Busolwe"),
		approvedVote("agent-2", 1, 40, "Mazimasa"),
		approvedVote("agent-2", 2, 100, "Busolwe"),
	}

	admin := &models.User{ID: "admin-1", Role: models.RoleAdmin}
	filter := models.TotalsFilter{Position: "Parliament", District: "Butaleja"}

	totals, err := svc.ComputeTotals(context.Background(), admin, filter)
	if err != nil {
		t.Fatalf("ComputeTotals failed: %v", err)
	}

	want := []models.CandidateTotal{
		{CandidateID: 1, Name: "Alice", Total: 100, Percent: 50.0},
		{CandidateID: 2, Name: "Bob", Total: 100, Percent: 50.0},
	}
	if !reflect.DeepEqual(totals, want) {
		t.Errorf("totals mismatch:\n got %+v\nwant %+v", totals, want)
	}

	// Idempotent: a second run with no intervening writes is identical.
	again, err := svc.ComputeTotals(context.Background(), admin, filter)
	if err != nil {
		t.Fatalf("second ComputeTotals failed: %v", err)
	}
	if !reflect.DeepEqual(totals, again) {
		t.Errorf("ComputeTotals is not idempotent:\nfirst %+v\nsecond %+v", totals, again)
	}
}

func TestComputeTotalsFinerFiltersNarrowVotesOnly(t *testing.T) {
	svc, _, submissions := aggregationFixture()
	submissions.submissions = []*models.Submission{
		approvedVote("agent-1", 1, 60, "Busolwe"),
		approvedVote("agent-2", 1, 40, "Mazimasa"),
	}

	admin := &models.User{ID: "admin-1", Role: models.RoleAdmin}
	totals, err := svc.ComputeTotals(context.Background(), admin, models.TotalsFilter{
		Position: "Parliament",
		District: "Butaleja",
		Village:  "Busolwe",
	})
	if err != nil {
		t.Fatalf("ComputeTotals failed: %v", err)
	}

	// Both candidates still appear (the candidate fetch ignores village)
	// but only Busolwe votes count.
	if len(totals) != 2 {
		t.Fatalf("expected both candidates in output, got %d", len(totals))
	}
	if totals[0].Total != 60 || totals[1].Total != 0 {
		t.Errorf("village filter not applied to votes: %+v", totals)
	}
}

func TestComputeTotalsZeroCandidates(t *testing.T) {
	svc, _, _ := aggregationFixture()

	admin := &models.User{ID: "admin-1", Role: models.RoleAdmin}
	totals, err := svc.ComputeTotals(context.Background(), admin, models.TotalsFilter{
		Position: "President",
		District: "Butaleja",
	})
	if err != nil {
		t.Fatalf("expected empty result, got error: %v", err)
	}
	if len(totals) != 0 {
		t.Errorf("expected empty list for zero candidates, got %+v", totals)
	}
}

func TestComputeTotalsZeroVotes(t *testing.T) {
	svc, _, _ := aggregationFixture()

	admin := &models.User{ID: "admin-1", Role: models.RoleAdmin}
	totals, err := svc.ComputeTotals(context.Background(), admin, models.TotalsFilter{
		Position: "Parliament",
		District: "Butaleja",
	})
	if err != nil {
		t.Fatalf("ComputeTotals failed: %v", err)
	}
	for _, row := range totals {
		if row.Percent != 0 {
			t.Errorf("expected 0%% shares with no votes, got %+v", row)
		}
	}
}

func TestComputeTotalsSharesSumToHundred(t *testing.T) {
	svc, _, submissions := aggregationFixture()
	submissions.submissions = []*models.Submission{
		approvedVote("agent-1", 1, 1, ""),
		approvedVote("agent-1", 2, 2, ""),
	}

	admin := &models.User{ID: "admin-1", Role: models.RoleAdmin}
	totals, err := svc.ComputeTotals(context.Background(), admin, models.TotalsFilter{
		Position: "Parliament",
		District: "Butaleja",
	})
	if err != nil {
		t.Fatalf("ComputeTotals failed: %v", err)
	}

	sum := 0.0
	for _, row := range totals {
		sum += row.Percent
	}
	if math.Abs(sum-100.0) > 0.2 {
		t.Errorf("shares should sum to ~100, got %.1f", sum)
	}
}

func TestComputeTotalsDropsOrphanedVotes(t *testing.T) {
	svc, _, submissions := aggregationFixture()
	submissions.submissions = []*models.Submission{
		approvedVote("agent-1", 1, 50, ""),
		approvedVote("agent-1", 99, 500, ""), // candidate deleted since
	}

	admin := &models.User{ID: "admin-1", Role: models.RoleAdmin}
	totals, err := svc.ComputeTotals(context.Background(), admin, models.TotalsFilter{
		Position: "Parliament",
		District: "Butaleja",
	})
	if err != nil {
		t.Fatalf("ComputeTotals failed: %v", err)
	}
	if totals[0].Total != 50 {
		t.Errorf("expected orphaned votes dropped, got %+v", totals)
	}
	if totals[0].Percent != 100.0 {
		t.Errorf("orphaned votes must not count toward the sum, got %+v", totals)
	}
}

func TestComputeTotalsAgentScope(t *testing.T) {
	svc, _, submissions := aggregationFixture()
	// Agent scoping covers the agent's own pending rows too; other agents'
	// records never reach the result.
	own := approvedVote("agent-1", 1, 30, "")
	own.Status = models.StatusPending
	submissions.submissions = []*models.Submission{
		own,
		approvedVote("agent-2", 1, 70, ""),
		approvedVote("agent-2", 2, 10, ""),
	}

	agent := &models.User{ID: "agent-1", Role: models.RoleAgent}
	totals, err := svc.ComputeTotals(context.Background(), agent, models.TotalsFilter{
		Position: "Parliament",
		District: "Butaleja",
	})
	if err != nil {
		t.Fatalf("ComputeTotals failed: %v", err)
	}
	if totals[0].Total != 30 || totals[1].Total != 0 {
		t.Errorf("agent totals must only include own submissions: %+v", totals)
	}
	// The scoping must be a store-side predicate, not post-filtering.
	if submissions.lastFilter.AgentID != "agent-1" {
		t.Errorf("expected agent predicate on vote query, got %q", submissions.lastFilter.AgentID)
	}
}
