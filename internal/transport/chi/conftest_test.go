package chi

import (
	"context"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hirelane/matchdex/internal/domain/candidate"
	"github.com/hirelane/matchdex/internal/domain/job"
	"github.com/hirelane/matchdex/internal/domain/match"
	"github.com/hirelane/matchdex/internal/domain/salary"
	"github.com/hirelane/matchdex/internal/domain/seniority"
	"github.com/hirelane/matchdex/internal/domain/skill"
	documentuc "github.com/hirelane/matchdex/internal/usecase/document"
	healthuc "github.com/hirelane/matchdex/internal/usecase/health"
	matchinguc "github.com/hirelane/matchdex/internal/usecase/matching"
)

type mockJobRepo struct {
	getFn      func(ctx context.Context, id string) (job.Job, error)
	getMultiFn func(ctx context.Context, ids []string) (map[string]job.Job, error)
	upsertFn   func(ctx context.Context, j job.Job) error
	deleteFn   func(ctx context.Context, id string) error
	findFn     func(ctx context.Context, c candidate.Candidate, crit match.Criteria) ([]match.Match, error)
}

func (m *mockJobRepo) Get(ctx context.Context, id string) (job.Job, error) {
	return m.getFn(ctx, id)
}

func (m *mockJobRepo) GetMulti(ctx context.Context, ids []string) (map[string]job.Job, error) {
	return m.getMultiFn(ctx, ids)
}

func (m *mockJobRepo) Upsert(ctx context.Context, j job.Job) error {
	return m.upsertFn(ctx, j)
}

func (m *mockJobRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockJobRepo) FindMatchesForCandidate(ctx context.Context, c candidate.Candidate, crit match.Criteria) ([]match.Match, error) {
	return m.findFn(ctx, c, crit)
}

type mockCandidateRepo struct {
	getFn      func(ctx context.Context, id string) (candidate.Candidate, error)
	getMultiFn func(ctx context.Context, ids []string) (map[string]candidate.Candidate, error)
	upsertFn   func(ctx context.Context, c candidate.Candidate) error
	deleteFn   func(ctx context.Context, id string) error
	findFn     func(ctx context.Context, j job.Job, crit match.Criteria) ([]match.Match, error)
}

func (m *mockCandidateRepo) Get(ctx context.Context, id string) (candidate.Candidate, error) {
	return m.getFn(ctx, id)
}

func (m *mockCandidateRepo) GetMulti(ctx context.Context, ids []string) (map[string]candidate.Candidate, error) {
	return m.getMultiFn(ctx, ids)
}

func (m *mockCandidateRepo) Upsert(ctx context.Context, c candidate.Candidate) error {
	return m.upsertFn(ctx, c)
}

func (m *mockCandidateRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockCandidateRepo) FindMatchesForJob(ctx context.Context, j job.Job, crit match.Criteria) ([]match.Match, error) {
	return m.findFn(ctx, j, crit)
}

type mockPinger struct {
	pingFn func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.pingFn(ctx)
}

// newTestRouter builds a router with real usecase services over the mocks.
func newTestRouter(jobs *mockJobRepo, candidates *mockCandidateRepo, pinger *mockPinger) chi.Router {
	if pinger == nil {
		pinger = &mockPinger{pingFn: func(ctx context.Context) error { return nil }}
	}

	srv := NewServer(
		documentuc.New(jobs, candidates),
		matchinguc.New(jobs, candidates),
		healthuc.New(pinger),
		zap.NewNop(),
	)

	r := chi.NewRouter()
	srv.Register(r)
	return r
}

func mustSkills(t *testing.T, names ...string) skill.Set {
	t.Helper()
	s, err := skill.ParseSet(names)
	if err != nil {
		t.Fatalf("parse skills: %v", err)
	}
	return s
}

func testJob(t *testing.T) job.Job {
	t.Helper()
	maxSalary, err := salary.New(95000)
	if err != nil {
		t.Fatalf("new salary: %v", err)
	}
	j, err := job.New("j1",
		mustSkills(t, "Go", "SQL"),
		mustSkills(t, "Docker"),
		[]seniority.Level{seniority.Senior},
		&maxSalary,
	)
	if err != nil {
		t.Fatalf("new job: %v", err)
	}
	return j
}

func testCandidate(t *testing.T) candidate.Candidate {
	t.Helper()
	expectation, err := salary.New(85000)
	if err != nil {
		t.Fatalf("new salary: %v", err)
	}
	level := seniority.Senior
	c, err := candidate.New("c1",
		mustSkills(t, "Go", "SQL"),
		mustSkills(t, "Kubernetes"),
		&level,
		&expectation,
	)
	if err != nil {
		t.Fatalf("new candidate: %v", err)
	}
	return c
}
