package chi

import (
	"fmt"

	"github.com/hirelane/matchdex/internal/domain/candidate"
	"github.com/hirelane/matchdex/internal/domain/job"
	"github.com/hirelane/matchdex/internal/domain/match"
	"github.com/hirelane/matchdex/internal/domain/salary"
	"github.com/hirelane/matchdex/internal/domain/seniority"
	"github.com/hirelane/matchdex/internal/domain/skill"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type jobRequest struct {
	TopSkills   []string `json:"top_skills"`
	OtherSkills []string `json:"other_skills"`
	Seniorities []string `json:"seniorities"`
	MaxSalary   *int     `json:"max_salary"`
}

type jobResponse struct {
	ID          string   `json:"id"`
	TopSkills   []string `json:"top_skills"`
	OtherSkills []string `json:"other_skills"`
	Seniorities []string `json:"seniorities"`
	MaxSalary   *int     `json:"max_salary,omitempty"`
}

type candidateRequest struct {
	TopSkills         []string `json:"top_skills"`
	OtherSkills       []string `json:"other_skills"`
	Seniority         *string  `json:"seniority"`
	SalaryExpectation *int     `json:"salary_expectation"`
}

type candidateResponse struct {
	ID                string   `json:"id"`
	TopSkills         []string `json:"top_skills"`
	OtherSkills       []string `json:"other_skills"`
	Seniority         *string  `json:"seniority,omitempty"`
	SalaryExpectation *int     `json:"salary_expectation,omitempty"`
}

type matchFilters struct {
	TopSkillMatch  bool `json:"top_skill_match"`
	SeniorityMatch bool `json:"seniority_match"`
	SalaryMatch    bool `json:"salary_match"`
}

type matchRequest struct {
	ID      string       `json:"id"`
	DocType string       `json:"doc_type"`
	Filters matchFilters `json:"filters"`
}

type matchItem struct {
	ID             string  `json:"id"`
	RelevanceScore float64 `json:"relevance_score"`
}

type matchResponse struct {
	Matches []matchItem `json:"matches"`
}

// jobFromRequest validates API input strictly: unknown seniority values and
// negative salaries are rejected, unlike the tolerant decode of stored data.
func jobFromRequest(id string, req jobRequest) (job.Job, error) {
	topSkills, err := skill.ParseSet(req.TopSkills)
	if err != nil {
		return job.Job{}, fmt.Errorf("top_skills: %w", err)
	}
	otherSkills, err := skill.ParseSet(req.OtherSkills)
	if err != nil {
		return job.Job{}, fmt.Errorf("other_skills: %w", err)
	}

	levels := make([]seniority.Level, 0, len(req.Seniorities))
	for _, raw := range req.Seniorities {
		l, err := seniority.Parse(raw)
		if err != nil {
			return job.Job{}, fmt.Errorf("seniorities: %w", err)
		}
		levels = append(levels, l)
	}

	var maxSalary *salary.Salary
	if req.MaxSalary != nil {
		s, err := salary.New(*req.MaxSalary)
		if err != nil {
			return job.Job{}, fmt.Errorf("max_salary: %w", err)
		}
		maxSalary = &s
	}

	return job.New(id, topSkills, otherSkills, levels, maxSalary)
}

func candidateFromRequest(id string, req candidateRequest) (candidate.Candidate, error) {
	topSkills, err := skill.ParseSet(req.TopSkills)
	if err != nil {
		return candidate.Candidate{}, fmt.Errorf("top_skills: %w", err)
	}
	otherSkills, err := skill.ParseSet(req.OtherSkills)
	if err != nil {
		return candidate.Candidate{}, fmt.Errorf("other_skills: %w", err)
	}

	var level *seniority.Level
	if req.Seniority != nil {
		l, err := seniority.Parse(*req.Seniority)
		if err != nil {
			return candidate.Candidate{}, fmt.Errorf("seniority: %w", err)
		}
		level = &l
	}

	var expectation *salary.Salary
	if req.SalaryExpectation != nil {
		s, err := salary.New(*req.SalaryExpectation)
		if err != nil {
			return candidate.Candidate{}, fmt.Errorf("salary_expectation: %w", err)
		}
		expectation = &s
	}

	return candidate.New(id, topSkills, otherSkills, level, expectation)
}

func criteriaFromRequest(f matchFilters) (match.Criteria, error) {
	return match.NewCriteria(f.TopSkillMatch, f.SeniorityMatch, f.SalaryMatch)
}

func jobToResponse(j job.Job) jobResponse {
	resp := jobResponse{
		ID:          j.ID(),
		TopSkills:   j.TopSkills().Names(),
		OtherSkills: j.OtherSkills().Names(),
		Seniorities: levelsToStrings(j.Seniorities()),
	}
	if j.MaxSalary() != nil {
		v := j.MaxSalary().Value()
		resp.MaxSalary = &v
	}
	return resp
}

func candidateToResponse(c candidate.Candidate) candidateResponse {
	resp := candidateResponse{
		ID:          c.ID(),
		TopSkills:   c.TopSkills().Names(),
		OtherSkills: c.OtherSkills().Names(),
	}
	if c.Seniority() != nil {
		s := c.Seniority().String()
		resp.Seniority = &s
	}
	if c.SalaryExpectation() != nil {
		v := c.SalaryExpectation().Value()
		resp.SalaryExpectation = &v
	}
	return resp
}

func matchesToResponse(matches []match.Match) matchResponse {
	items := make([]matchItem, len(matches))
	for i, m := range matches {
		items[i] = matchItem{ID: m.ID(), RelevanceScore: m.Score()}
	}
	return matchResponse{Matches: items}
}

func levelsToStrings(levels []seniority.Level) []string {
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = l.String()
	}
	return out
}
