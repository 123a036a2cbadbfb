package candidate

import (
	"context"
	"testing"

	"github.com/hirelane/matchdex/internal/db"
	domcand "github.com/hirelane/matchdex/internal/domain/candidate"
	"github.com/hirelane/matchdex/internal/domain/job"
	"github.com/hirelane/matchdex/internal/domain/match"
	"github.com/hirelane/matchdex/internal/domain/salary"
	"github.com/hirelane/matchdex/internal/domain/seniority"
	"github.com/hirelane/matchdex/internal/domain/skill"
	"github.com/hirelane/matchdex/internal/repository/matchquery"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hSetFn         func(ctx context.Context, key string, fields map[string]string) error
	hGetAllFn      func(ctx context.Context, key string) (map[string]string, error)
	hGetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	delFn          func(ctx context.Context, key string) error
	existsFn       func(ctx context.Context, key string) (bool, error)
	createIndexFn  func(ctx context.Context, def *db.IndexDefinition) error
	searchFn       func(ctx context.Context, q *db.BoolSearch) (*db.SearchResult, error)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hSetFn != nil {
		return m.hSetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hGetAllFn != nil {
		return m.hGetAllFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hGetAllMultiFn != nil {
		return m.hGetAllMultiFn(ctx, keys)
	}
	return nil, nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, key)
	}
	return false, nil
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) Search(ctx context.Context, q *db.BoolSearch) (*db.SearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	queries, err := matchquery.New(2, match.DefaultWeights())
	if err != nil {
		t.Fatalf("matchquery.New: %v", err)
	}
	return New(ms, queries, 100), ms
}

func mustSkills(t *testing.T, names ...string) skill.Set {
	t.Helper()
	set, err := skill.ParseSet(names)
	if err != nil {
		t.Fatalf("ParseSet: %v", err)
	}
	return set
}

func mustCriteria(t *testing.T, sk, sen, sal bool) match.Criteria {
	t.Helper()
	crit, err := match.NewCriteria(sk, sen, sal)
	if err != nil {
		t.Fatalf("NewCriteria: %v", err)
	}
	return crit
}

func testCandidate(t *testing.T) domcand.Candidate {
	t.Helper()
	expectation, _ := salary.New(85000)
	level := seniority.Midlevel
	c, err := domcand.New(
		"c1",
		mustSkills(t, "Go", "Python"),
		mustSkills(t, "Terraform"),
		&level,
		&expectation,
	)
	if err != nil {
		t.Fatalf("candidate.New: %v", err)
	}
	return c
}

func testJob(t *testing.T) job.Job {
	t.Helper()
	maxSalary, _ := salary.New(90000)
	j, err := job.New(
		"j1",
		mustSkills(t, "Go", "Python", "SQL"),
		skill.Set{},
		[]seniority.Level{seniority.Midlevel, seniority.Senior},
		&maxSalary,
	)
	if err != nil {
		t.Fatalf("job.New: %v", err)
	}
	return j
}
