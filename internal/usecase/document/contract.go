package document

import (
	"context"

	"github.com/hirelane/matchdex/internal/domain/candidate"
	"github.com/hirelane/matchdex/internal/domain/job"
)

// JobStore is the job document storage contract.
type JobStore interface {
	Get(ctx context.Context, id string) (job.Job, error)
	Upsert(ctx context.Context, j job.Job) error
	Delete(ctx context.Context, id string) error
}

// CandidateStore is the candidate document storage contract.
type CandidateStore interface {
	Get(ctx context.Context, id string) (candidate.Candidate, error)
	Upsert(ctx context.Context, c candidate.Candidate) error
	Delete(ctx context.Context, id string) error
}
