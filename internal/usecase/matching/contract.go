package matching

import (
	"context"

	"github.com/hirelane/matchdex/internal/domain/candidate"
	"github.com/hirelane/matchdex/internal/domain/job"
	"github.com/hirelane/matchdex/internal/domain/match"
)

// JobRepository is the job-side storage and search contract.
type JobRepository interface {
	Get(ctx context.Context, id string) (job.Job, error)
	GetMulti(ctx context.Context, ids []string) (map[string]job.Job, error)
	FindMatchesForCandidate(ctx context.Context, c candidate.Candidate, crit match.Criteria) ([]match.Match, error)
}

// CandidateRepository is the candidate-side storage and search contract.
type CandidateRepository interface {
	Get(ctx context.Context, id string) (candidate.Candidate, error)
	GetMulti(ctx context.Context, ids []string) (map[string]candidate.Candidate, error)
	FindMatchesForJob(ctx context.Context, j job.Job, crit match.Criteria) ([]match.Match, error)
}
