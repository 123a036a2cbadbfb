// Package matchquery translates matching criteria into index query clauses.
//
// Job and candidate documents live in separate indexes with symmetric but not
// identical schemas. Candidate documents carry a derived "skills" field (the
// union of top and other skills) so the full pool can be matched as one tag
// field.
package matchquery

// Hash fields shared by both document kinds.
const (
	FieldTopSkills   = "top_skills"
	FieldOtherSkills = "other_skills"
)

// Job document fields.
const (
	FieldSeniorities = "seniorities"
	FieldMaxSalary   = "max_salary"
)

// Candidate document fields.
const (
	FieldSkills            = "skills"
	FieldSeniority         = "seniority"
	FieldSalaryExpectation = "salary_expectation"
)
