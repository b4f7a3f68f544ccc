package service

import (
	"context"
	"errors"
	"sync"

	"tally-service/internal/models"
)

// In-memory repository fakes. They mimic only the behavior the services
// depend on: keyed storage, the filter predicates and the conditional status
// transitions.

type fakeCredentialRepo struct {
	mu      sync.Mutex
	creds   map[string]*models.Credential
	nextID  int
	failing bool
}

func newFakeCredentialRepo() *fakeCredentialRepo {
	return &fakeCredentialRepo{creds: make(map[string]*models.Credential)}
}

func (f *fakeCredentialRepo) Create(ctx context.Context, cred *models.Credential) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errors.New("store unavailable")
	}
	if cred.ID == "" {
		f.nextID++
		cred.ID = "cred-" + string(rune('a'+f.nextID))
	}
	for _, existing := range f.creds {
		if existing.Email == cred.Email {
			return errors.New("duplicate email")
		}
	}
	f.creds[cred.ID] = cred
	return nil
}

func (f *fakeCredentialRepo) FindByEmail(ctx context.Context, email string) (*models.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, cred := range f.creds {
		if cred.Email == email {
			return cred, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeCredentialRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.creds, id)
	return nil
}

type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[string]*models.User
	failing bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errors.New("store unavailable")
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, user)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

type fakeCandidateRepo struct {
	candidates []*models.Candidate
}

func (f *fakeCandidateRepo) Create(ctx context.Context, candidate *models.Candidate) error {
	candidate.ID = uint(len(f.candidates) + 1)
	f.candidates = append(f.candidates, candidate)
	return nil
}

func (f *fakeCandidateRepo) FindByID(ctx context.Context, id uint) (*models.Candidate, error) {
	for _, c := range f.candidates {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeCandidateRepo) List(ctx context.Context) ([]*models.Candidate, error) {
	return f.candidates, nil
}

func (f *fakeCandidateRepo) ListByScope(ctx context.Context, position, district string) ([]*models.Candidate, error) {
	var out []*models.Candidate
	for _, c := range f.candidates {
		if c.Position == position && c.District == district {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCandidateRepo) Update(ctx context.Context, candidate *models.Candidate) error {
	return nil
}

func (f *fakeCandidateRepo) Delete(ctx context.Context, id uint) error {
	for i, c := range f.candidates {
		if c.ID == id {
			f.candidates = append(f.candidates[:i], f.candidates[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeSubmissionRepo struct {
	submissions []*models.Submission
	lastFilter  models.SubmissionFilter
}

func (f *fakeSubmissionRepo) Create(ctx context.Context, submissions []*models.Submission) error {
	for _, s := range submissions {
		s.ID = uint(len(f.submissions) + 1)
		f.submissions = append(f.submissions, s)
	}
	return nil
}

func (f *fakeSubmissionRepo) FindByID(ctx context.Context, id uint) (*models.Submission, error) {
	for _, s := range f.submissions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeSubmissionRepo) List(ctx context.Context, filter models.SubmissionFilter) ([]*models.Submission, error) {
	f.lastFilter = filter
	var out []*models.Submission
	for _, s := range f.submissions {
		if filter.Position != "" && s.Position != filter.Position {
			continue
		}
		if filter.District != "" && s.District != filter.District {
			continue
		}
		if filter.Subcounty != "" && s.Subcounty != filter.Subcounty {
			continue
		}
		if filter.Parish != "" && s.Parish != filter.Parish {
			continue
		}
		if filter.Village != "" && s.Village != filter.Village {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		if filter.AgentID != "" && s.AgentID != filter.AgentID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSubmissionRepo) UpdateStatus(ctx context.Context, id uint, status string, validated bool) (bool, error) {
	for _, s := range f.submissions {
		if s.ID == id {
			if s.Status != models.StatusPending {
				return false, nil
			}
			s.Status = status
			s.Validated = validated
			return true, nil
		}
	}
	return false, nil
}

type fakeIncidentRepo struct {
	incidents []*models.Incident
}

func (f *fakeIncidentRepo) Create(ctx context.Context, incident *models.Incident) error {
	incident.ID = uint(len(f.incidents) + 1)
	f.incidents = append(f.incidents, incident)
	return nil
}

func (f *fakeIncidentRepo) FindByID(ctx context.Context, id uint) (*models.Incident, error) {
	for _, incident := range f.incidents {
		if incident.ID == id {
			return incident, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeIncidentRepo) List(ctx context.Context) ([]*models.Incident, error) {
	return f.incidents, nil
}

func (f *fakeIncidentRepo) Resolve(ctx context.Context, id uint) (bool, error) {
	for _, incident := range f.incidents {
		if incident.ID == id {
			if incident.Status != models.IncidentOpen {
				return false, nil
			}
			incident.Status = models.IncidentResolved
			return true, nil
		}
	}
	return false, nil
}

// recordingPublisher captures events for assertions.
type recordingPublisher struct {
	events []models.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event models.Event) error {
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func intPtr(v int) *int { return &v }
