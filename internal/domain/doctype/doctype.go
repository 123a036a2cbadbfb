package doctype

import (
	"fmt"

	"github.com/hirelane/matchdex/internal/domain"
)

// Type identifies which document collection an id refers to.
type Type string

// Document type constants.
const (
	// Job is a job posting document.
	Job Type = "job"
	// Candidate is a candidate profile document.
	Candidate Type = "candidate"
)

// IsValid checks if the type is one of the supported values.
func (t Type) IsValid() bool {
	return t == Job || t == Candidate
}

// Parse validates a document type string.
func Parse(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: invalid document type %q (valid types are: %s, %s)",
			domain.ErrValidation, s, Job, Candidate)
	}
	return t, nil
}
