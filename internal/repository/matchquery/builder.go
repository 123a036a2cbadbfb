package matchquery

import (
	"fmt"

	"github.com/hirelane/matchdex/internal/db"
	"github.com/hirelane/matchdex/internal/domain"
	"github.com/hirelane/matchdex/internal/domain/candidate"
	"github.com/hirelane/matchdex/internal/domain/job"
	"github.com/hirelane/matchdex/internal/domain/match"
)

// Builder produces disjunctive query clauses for the enabled criteria. Each
// enabled criterion becomes one boosted clause; a document qualifies by
// satisfying any of them, and the index score rewards satisfying several.
type Builder struct {
	minMatchingSkills int
	weights           match.Weights
}

// New creates a Builder. minMatchingSkills is the floor for the skill-overlap
// clause; it degrades to the query's skill count when that is smaller.
func New(minMatchingSkills int, weights match.Weights) (*Builder, error) {
	if minMatchingSkills < 1 {
		return nil, fmt.Errorf("%w: min matching skills must be at least 1", domain.ErrValidation)
	}
	return &Builder{minMatchingSkills: minMatchingSkills, weights: weights}, nil
}

// ForJob builds the clauses that select matching candidates for a job.
// An enabled criterion whose source field is absent on the job is a hard
// failure, not a silently narrowed query.
func (b *Builder) ForJob(j job.Job, crit match.Criteria) ([]db.Clause, error) {
	if crit.None() {
		return nil, fmt.Errorf("%w: at least one matching criterion must be enabled",
			domain.ErrValidation)
	}

	var clauses []db.Clause

	if crit.Skill() {
		if j.TopSkills().IsEmpty() {
			return nil, domain.NewMissingField(FieldTopSkills)
		}
		values := j.TopSkills().Norms()
		clauses = append(clauses, db.Clause{
			Terms: &db.TermsClause{
				Field:        FieldSkills,
				Values:       values,
				MinimumMatch: b.effectiveFloor(len(values)),
			},
			Boost: b.weights.Skill,
		})
	}

	if crit.Seniority() {
		if len(j.Seniorities()) == 0 {
			return nil, domain.NewMissingField(FieldSeniorities)
		}
		values := make([]string, 0, len(j.Seniorities()))
		for _, l := range j.Seniorities() {
			values = append(values, l.String())
		}
		clauses = append(clauses, db.Clause{
			Terms: &db.TermsClause{
				Field:        FieldSeniority,
				Values:       values,
				MinimumMatch: 1,
			},
			Boost: b.weights.Seniority,
		})
	}

	if crit.Salary() {
		if j.MaxSalary() == nil {
			return nil, domain.NewMissingField(FieldMaxSalary)
		}
		maxSalary := float64(j.MaxSalary().Value())
		clauses = append(clauses, db.Clause{
			Range: &db.RangeClause{
				Field: FieldSalaryExpectation,
				LTE:   &maxSalary,
			},
			Boost: b.weights.Salary,
		})
	}

	return clauses, nil
}

// ForCandidate builds the clauses that select matching jobs for a candidate.
// The candidate's full skill pool is matched against job top skills.
func (b *Builder) ForCandidate(c candidate.Candidate, crit match.Criteria) ([]db.Clause, error) {
	if crit.None() {
		return nil, fmt.Errorf("%w: at least one matching criterion must be enabled",
			domain.ErrValidation)
	}

	var clauses []db.Clause

	if crit.Skill() {
		pool := c.SkillPool()
		if pool.IsEmpty() {
			return nil, domain.NewMissingField(FieldTopSkills)
		}
		values := pool.Norms()
		clauses = append(clauses, db.Clause{
			Terms: &db.TermsClause{
				Field:        FieldTopSkills,
				Values:       values,
				MinimumMatch: b.effectiveFloor(len(values)),
			},
			Boost: b.weights.Skill,
		})
	}

	if crit.Seniority() {
		if c.Seniority() == nil {
			return nil, domain.NewMissingField(FieldSeniority)
		}
		clauses = append(clauses, db.Clause{
			Term: &db.TermClause{
				Field: FieldSeniorities,
				Value: c.Seniority().String(),
			},
			Boost: b.weights.Seniority,
		})
	}

	if crit.Salary() {
		if c.SalaryExpectation() == nil {
			return nil, domain.NewMissingField(FieldSalaryExpectation)
		}
		expectation := float64(c.SalaryExpectation().Value())
		clauses = append(clauses, db.Clause{
			Range: &db.RangeClause{
				Field: FieldMaxSalary,
				GTE:   &expectation,
			},
			Boost: b.weights.Salary,
		})
	}

	return clauses, nil
}

func (b *Builder) effectiveFloor(valueCount int) int {
	if valueCount < b.minMatchingSkills {
		return valueCount
	}
	return b.minMatchingSkills
}
