package candidate

import (
	"context"
	"errors"
	"fmt"

	"github.com/hirelane/matchdex/internal/db"
	"github.com/hirelane/matchdex/internal/domain"
	domcand "github.com/hirelane/matchdex/internal/domain/candidate"
	"github.com/hirelane/matchdex/internal/domain/job"
	"github.com/hirelane/matchdex/internal/domain/match"
	"github.com/hirelane/matchdex/internal/repository/matchquery"
)

// store is the consumer interface for candidate documents (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	Search(ctx context.Context, q *db.BoolSearch) (*db.SearchResult, error)
}

// Repo implements usecase candidate storage and candidate-side match search.
type Repo struct {
	store    store
	queries  *matchquery.Builder
	pageSize int
}

// New creates a candidate repository.
func New(s store, queries *matchquery.Builder, pageSize int) *Repo {
	return &Repo{store: s, queries: queries, pageSize: pageSize}
}

// EnsureIndex creates the candidates FT index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	def := db.NewIndex(indexName()).
		Prefix(keyPrefix()).
		TagWithOpts(matchquery.FieldTopSkills, ",", false).
		TagWithOpts(matchquery.FieldOtherSkills, ",", false).
		TagWithOpts(matchquery.FieldSkills, ",", false).
		TagWithOpts(matchquery.FieldSeniority, ",", false).
		Numeric(matchquery.FieldSalaryExpectation).
		MustBuild()

	if err := r.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return translateErr(fmt.Errorf("create index %s: %w", def.Name, err))
	}
	return nil
}

// Get returns a candidate by ID.
func (r *Repo) Get(ctx context.Context, id string) (domcand.Candidate, error) {
	fields, err := r.store.HGetAll(ctx, key(id))
	if err != nil {
		return domcand.Candidate{}, translateErr(fmt.Errorf("hgetall %s: %w", key(id), err))
	}
	if len(fields) == 0 {
		return domcand.Candidate{}, fmt.Errorf("candidate %s: %w", id, domain.ErrNotFound)
	}
	return fromFields(id, fields), nil
}

// GetMulti returns candidates for the given IDs, skipping missing ones.
func (r *Repo) GetMulti(ctx context.Context, ids []string) (map[string]domcand.Candidate, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = key(id)
	}

	fieldMaps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, translateErr(fmt.Errorf("hgetall multi: %w", err))
	}

	candidates := make(map[string]domcand.Candidate, len(ids))
	for i, fields := range fieldMaps {
		if len(fields) == 0 {
			continue
		}
		candidates[ids[i]] = fromFields(ids[i], fields)
	}
	return candidates, nil
}

// Upsert creates or replaces a candidate document.
func (r *Repo) Upsert(ctx context.Context, c domcand.Candidate) error {
	if err := r.store.HSet(ctx, key(c.ID()), toFields(c)); err != nil {
		return translateErr(fmt.Errorf("hset %s: %w", key(c.ID()), err))
	}
	return nil
}

// Delete removes a candidate document.
func (r *Repo) Delete(ctx context.Context, id string) error {
	exists, err := r.store.Exists(ctx, key(id))
	if err != nil {
		return translateErr(fmt.Errorf("check exists %s: %w", key(id), err))
	}
	if !exists {
		return fmt.Errorf("candidate %s: %w", id, domain.ErrNotFound)
	}
	if err := r.store.Del(ctx, key(id)); err != nil {
		return translateErr(fmt.Errorf("del %s: %w", key(id), err))
	}
	return nil
}

// FindMatchesForJob searches the candidates index for profiles matching the
// job under the enabled criteria. Scores are the index's relevance.
func (r *Repo) FindMatchesForJob(
	ctx context.Context, j job.Job, crit match.Criteria,
) ([]match.Match, error) {
	clauses, err := r.queries.ForJob(j, crit)
	if err != nil {
		return nil, err
	}

	result, err := r.store.Search(ctx, &db.BoolSearch{
		IndexName: indexName(),
		Should:    clauses,
		Limit:     r.pageSize,
	})
	if err != nil {
		return nil, translateErr(fmt.Errorf("search candidates: %w", err))
	}

	matches := make([]match.Match, 0, len(result.Entries))
	for _, entry := range result.Entries {
		matches = append(matches, match.New(idFromKey(entry.Key), entry.Score))
	}
	return matches, nil
}
