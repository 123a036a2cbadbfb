package candidate

import (
	"fmt"

	"github.com/hirelane/matchdex/internal/domain"
	"github.com/hirelane/matchdex/internal/domain/salary"
	"github.com/hirelane/matchdex/internal/domain/seniority"
	"github.com/hirelane/matchdex/internal/domain/skill"
)

// Candidate is a job seeker profile. Both top and other skills count toward
// the candidate's matchable pool; only top skills are used when the
// candidate is the query source.
type Candidate struct {
	id                string
	topSkills         skill.Set
	otherSkills       skill.Set
	seniority         *seniority.Level
	salaryExpectation *salary.Salary
}

// New validates and creates a Candidate.
func New(
	id string,
	topSkills, otherSkills skill.Set,
	level *seniority.Level,
	salaryExpectation *salary.Salary,
) (Candidate, error) {
	if id == "" {
		return Candidate{}, fmt.Errorf("%w: candidate id is required", domain.ErrValidation)
	}
	return Candidate{
		id:                id,
		topSkills:         topSkills,
		otherSkills:       otherSkills,
		seniority:         level,
		salaryExpectation: salaryExpectation,
	}, nil
}

// Reconstruct restores a Candidate from stored data without validation.
func Reconstruct(
	id string,
	topSkills, otherSkills skill.Set,
	level *seniority.Level,
	salaryExpectation *salary.Salary,
) Candidate {
	return Candidate{
		id:                id,
		topSkills:         topSkills,
		otherSkills:       otherSkills,
		seniority:         level,
		salaryExpectation: salaryExpectation,
	}
}

// ID returns the candidate identifier.
func (c Candidate) ID() string { return c.id }

// TopSkills returns the primary skill set.
func (c Candidate) TopSkills() skill.Set { return c.topSkills }

// OtherSkills returns the secondary skill set.
func (c Candidate) OtherSkills() skill.Set { return c.otherSkills }

// Seniority returns the candidate's level (nil if not set).
func (c Candidate) Seniority() *seniority.Level { return c.seniority }

// SalaryExpectation returns the expected salary (nil if not set).
func (c Candidate) SalaryExpectation() *salary.Salary { return c.salaryExpectation }

// SkillPool returns the full matchable pool: top ∪ other skills.
func (c Candidate) SkillPool() skill.Set {
	return c.topSkills.Union(c.otherSkills)
}

// MatchesSalary reports whether the given job max salary meets or exceeds
// the candidate's expectation. Absence on either side is never a match.
func (c Candidate) MatchesSalary(jobMaxSalary *salary.Salary) bool {
	if c.salaryExpectation == nil || jobMaxSalary == nil {
		return false
	}
	return jobMaxSalary.Value() >= c.salaryExpectation.Value()
}

// MatchesSeniority reports whether the candidate's level is in the given
// acceptable set. Absence on either side is never a match.
func (c Candidate) MatchesSeniority(acceptable []seniority.Level) bool {
	if c.seniority == nil || len(acceptable) == 0 {
		return false
	}
	return seniority.Contains(acceptable, *c.seniority)
}

// SkillMatchScore returns the proportion of the job's top skills covered by
// the candidate's full skill pool, in [0,1].
func (c Candidate) SkillMatchScore(jobTopSkills skill.Set) float64 {
	return skill.MatchRatio(jobTopSkills, c.SkillPool())
}
