package job

import (
	"fmt"

	"github.com/hirelane/matchdex/internal/domain"
	"github.com/hirelane/matchdex/internal/domain/salary"
	"github.com/hirelane/matchdex/internal/domain/seniority"
	"github.com/hirelane/matchdex/internal/domain/skill"
)

// Job is a job posting: the top-skill set is the hard requirement that
// drives skill scoring, other skills carry no matching weight.
type Job struct {
	id          string
	topSkills   skill.Set
	otherSkills skill.Set
	seniorities []seniority.Level
	maxSalary   *salary.Salary
}

// New validates and creates a Job. The top-skill set may be empty; skill
// scoring then degrades to 0.
func New(
	id string,
	topSkills, otherSkills skill.Set,
	seniorities []seniority.Level,
	maxSalary *salary.Salary,
) (Job, error) {
	if id == "" {
		return Job{}, fmt.Errorf("%w: job id is required", domain.ErrValidation)
	}
	return Job{
		id:          id,
		topSkills:   topSkills,
		otherSkills: otherSkills,
		seniorities: seniorities,
		maxSalary:   maxSalary,
	}, nil
}

// Reconstruct restores a Job from stored data without validation.
func Reconstruct(
	id string,
	topSkills, otherSkills skill.Set,
	seniorities []seniority.Level,
	maxSalary *salary.Salary,
) Job {
	return Job{
		id:          id,
		topSkills:   topSkills,
		otherSkills: otherSkills,
		seniorities: seniorities,
		maxSalary:   maxSalary,
	}
}

// ID returns the job identifier.
func (j Job) ID() string { return j.id }

// TopSkills returns the primary required skill set.
func (j Job) TopSkills() skill.Set { return j.topSkills }

// OtherSkills returns the secondary skill set.
func (j Job) OtherSkills() skill.Set { return j.otherSkills }

// Seniorities returns the acceptable seniority levels.
func (j Job) Seniorities() []seniority.Level { return j.seniorities }

// MaxSalary returns the maximum offered salary (nil if not set).
func (j Job) MaxSalary() *salary.Salary { return j.maxSalary }

// MatchesSalary reports whether the job's max salary meets or exceeds the
// candidate's expectation. Absence on either side is never a match.
func (j Job) MatchesSalary(expectation *salary.Salary) bool {
	if j.maxSalary == nil || expectation == nil {
		return false
	}
	return j.maxSalary.Value() >= expectation.Value()
}

// MatchesSeniority reports whether the job accepts the given level.
// An absent level or an empty acceptable set is never a match.
func (j Job) MatchesSeniority(level *seniority.Level) bool {
	if level == nil || len(j.seniorities) == 0 {
		return false
	}
	return seniority.Contains(j.seniorities, *level)
}

// SkillMatchScore returns the proportion of the job's top skills covered by
// the given skill pool, in [0,1]. The job's top-skill set is the denominator.
func (j Job) SkillMatchScore(pool skill.Set) float64 {
	return skill.MatchRatio(j.topSkills, pool)
}
