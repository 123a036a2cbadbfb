package match

import (
	"github.com/hirelane/matchdex/internal/domain/candidate"
	"github.com/hirelane/matchdex/internal/domain/job"
)

// Weighted combines the enabled criteria into a single weight-normalized
// score in [0,1].
//
// Skill overlap contributes a continuous component (job top skills as
// denominator, candidate's full pool as coverage). Seniority and salary are
// boolean: a passing check contributes a full component, a failing check is
// omitted entirely rather than contributing 0, so a single binary mismatch
// does not zero out a strong skill overlap. Only the absence of any
// component yields 0.
func Weighted(j job.Job, c candidate.Candidate, crit Criteria, w Weights) float64 {
	var sum, totalWeight float64

	if crit.Skill() {
		sum += c.SkillMatchScore(j.TopSkills()) * w.Skill
		totalWeight += w.Skill
	}

	if crit.Seniority() && j.MatchesSeniority(c.Seniority()) {
		sum += 1.0 * w.Seniority
		totalWeight += w.Seniority
	}

	if crit.Salary() && j.MatchesSalary(c.SalaryExpectation()) {
		sum += 1.0 * w.Salary
		totalWeight += w.Salary
	}

	if totalWeight == 0 {
		return 0
	}
	return sum / totalWeight
}
