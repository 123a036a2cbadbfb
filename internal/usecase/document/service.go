// Package document is the CRUD usecase for job and candidate documents.
package document

import (
	"context"

	"github.com/hirelane/matchdex/internal/domain/candidate"
	"github.com/hirelane/matchdex/internal/domain/job"
)

// Service routes document operations to the per-type store.
type Service struct {
	jobs       JobStore
	candidates CandidateStore
}

// New creates a document service.
func New(jobs JobStore, candidates CandidateStore) *Service {
	return &Service{jobs: jobs, candidates: candidates}
}

// GetJob returns a job by ID.
func (s *Service) GetJob(ctx context.Context, id string) (job.Job, error) {
	return s.jobs.Get(ctx, id)
}

// UpsertJob creates or replaces a job.
func (s *Service) UpsertJob(ctx context.Context, j job.Job) error {
	return s.jobs.Upsert(ctx, j)
}

// DeleteJob removes a job.
func (s *Service) DeleteJob(ctx context.Context, id string) error {
	return s.jobs.Delete(ctx, id)
}

// GetCandidate returns a candidate by ID.
func (s *Service) GetCandidate(ctx context.Context, id string) (candidate.Candidate, error) {
	return s.candidates.Get(ctx, id)
}

// UpsertCandidate creates or replaces a candidate.
func (s *Service) UpsertCandidate(ctx context.Context, c candidate.Candidate) error {
	return s.candidates.Upsert(ctx, c)
}

// DeleteCandidate removes a candidate.
func (s *Service) DeleteCandidate(ctx context.Context, id string) error {
	return s.candidates.Delete(ctx, id)
}
