package match

import (
	"fmt"

	"github.com/hirelane/matchdex/internal/domain"
)

// Criteria is the closed set of enabled matching filters. The zero value
// has nothing enabled and is rejected wherever a match is requested.
type Criteria struct {
	skill     bool
	seniority bool
	salary    bool
}

// NewCriteria validates and creates a Criteria set. At least one criterion
// must be enabled; an all-disabled set is a caller error, not a score of 0.
func NewCriteria(skillMatch, seniorityMatch, salaryMatch bool) (Criteria, error) {
	if !skillMatch && !seniorityMatch && !salaryMatch {
		return Criteria{}, fmt.Errorf("%w: at least one matching criterion must be enabled",
			domain.ErrValidation)
	}
	return Criteria{skill: skillMatch, seniority: seniorityMatch, salary: salaryMatch}, nil
}

// Skill reports whether skill-overlap matching is enabled.
func (c Criteria) Skill() bool { return c.skill }

// Seniority reports whether seniority matching is enabled.
func (c Criteria) Seniority() bool { return c.seniority }

// Salary reports whether salary matching is enabled.
func (c Criteria) Salary() bool { return c.salary }

// None reports whether no criterion is enabled.
func (c Criteria) None() bool { return !c.skill && !c.seniority && !c.salary }

// Weights are the per-criterion weights used by the weighted scorer and as
// query clause boosts.
type Weights struct {
	Skill     float64
	Seniority float64
	Salary    float64
}

// DefaultWeights returns the standard weighting: skills count double,
// seniority sits in between, salary is the baseline.
func DefaultWeights() Weights {
	return Weights{Skill: 2.0, Seniority: 1.5, Salary: 1.0}
}
