// Package matching finds ranked counterparts for a job or candidate by
// delegating the bulk search to the index and optionally rescoring the hits
// with the weighted-average scorer.
package matching

import (
	"context"
	"fmt"
	"sort"

	"github.com/hirelane/matchdex/internal/domain"
	"github.com/hirelane/matchdex/internal/domain/candidate"
	"github.com/hirelane/matchdex/internal/domain/doctype"
	"github.com/hirelane/matchdex/internal/domain/job"
	"github.com/hirelane/matchdex/internal/domain/match"
)

// Strategy selects how match scores are produced.
type Strategy string

const (
	// StrategyIndex returns the search index's relevance scores verbatim.
	StrategyIndex Strategy = "index"
	// StrategyWeighted refetches the hits and rescores them with the
	// weighted-average scorer, bounding scores to [0,1].
	StrategyWeighted Strategy = "weighted"
)

// IsValid reports whether the strategy is a known value.
func (s Strategy) IsValid() bool {
	return s == StrategyIndex || s == StrategyWeighted
}

// Service is the matching usecase.
type Service struct {
	jobs       JobRepository
	candidates CandidateRepository
	strategy   Strategy
	weights    match.Weights
}

// New creates a matching service with the index strategy and default weights.
func New(jobs JobRepository, candidates CandidateRepository) *Service {
	return &Service{
		jobs:       jobs,
		candidates: candidates,
		strategy:   StrategyIndex,
		weights:    match.DefaultWeights(),
	}
}

// WithStrategy sets the scoring strategy. Unknown values are ignored.
func (s *Service) WithStrategy(strategy Strategy) *Service {
	if strategy.IsValid() {
		s.strategy = strategy
	}
	return s
}

// WithWeights sets the weights used by the weighted scorer.
func (s *Service) WithWeights(w match.Weights) *Service {
	s.weights = w
	return s
}

// FindMatches returns ranked counterparts for the document: candidates for a
// job, jobs for a candidate. The source document must exist and carry every
// field an enabled criterion needs.
func (s *Service) FindMatches(
	ctx context.Context, dt doctype.Type, id string, crit match.Criteria,
) ([]match.Match, error) {
	if crit.None() {
		return nil, fmt.Errorf("%w: at least one matching criterion must be enabled",
			domain.ErrValidation)
	}

	switch dt {
	case doctype.Job:
		return s.matchesForJob(ctx, id, crit)
	case doctype.Candidate:
		return s.matchesForCandidate(ctx, id, crit)
	default:
		return nil, fmt.Errorf("%w: unknown document type %q", domain.ErrValidation, dt)
	}
}

func (s *Service) matchesForJob(
	ctx context.Context, id string, crit match.Criteria,
) ([]match.Match, error) {
	j, err := s.jobs.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	matches, err := s.candidates.FindMatchesForJob(ctx, j, crit)
	if err != nil {
		return nil, err
	}

	if s.strategy != StrategyWeighted {
		return matches, nil
	}
	return s.rescoreCandidates(ctx, j, matches, crit)
}

func (s *Service) matchesForCandidate(
	ctx context.Context, id string, crit match.Criteria,
) ([]match.Match, error) {
	c, err := s.candidates.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	matches, err := s.jobs.FindMatchesForCandidate(ctx, c, crit)
	if err != nil {
		return nil, err
	}

	if s.strategy != StrategyWeighted {
		return matches, nil
	}
	return s.rescoreJobs(ctx, c, matches, crit)
}

// rescoreCandidates replaces index scores with weighted-average scores.
// Hits deleted between search and refetch are dropped.
func (s *Service) rescoreCandidates(
	ctx context.Context, j job.Job, matches []match.Match, crit match.Criteria,
) ([]match.Match, error) {
	candidates, err := s.candidates.GetMulti(ctx, matchIDs(matches))
	if err != nil {
		return nil, err
	}

	rescored := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		c, ok := candidates[m.ID()]
		if !ok {
			continue
		}
		rescored = append(rescored, match.New(m.ID(), match.Weighted(j, c, crit, s.weights)))
	}
	sortByScore(rescored)
	return rescored, nil
}

func (s *Service) rescoreJobs(
	ctx context.Context, c candidate.Candidate, matches []match.Match, crit match.Criteria,
) ([]match.Match, error) {
	jobs, err := s.jobs.GetMulti(ctx, matchIDs(matches))
	if err != nil {
		return nil, err
	}

	rescored := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		j, ok := jobs[m.ID()]
		if !ok {
			continue
		}
		rescored = append(rescored, match.New(m.ID(), match.Weighted(j, c, crit, s.weights)))
	}
	sortByScore(rescored)
	return rescored, nil
}

func matchIDs(matches []match.Match) []string {
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.ID()
	}
	return ids
}

func sortByScore(matches []match.Match) {
	sort.SliceStable(matches, func(i, k int) bool {
		return matches[i].Score() > matches[k].Score()
	})
}
