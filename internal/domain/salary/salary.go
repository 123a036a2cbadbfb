package salary

import (
	"fmt"
	"strconv"

	"github.com/hirelane/matchdex/internal/domain"
)

// Salary is a non-negative integer monetary amount.
type Salary struct {
	value int
}

// New validates and creates a Salary.
func New(value int) (Salary, error) {
	if value < 0 {
		return Salary{}, fmt.Errorf("%w: salary cannot be negative", domain.ErrValidation)
	}
	return Salary{value: value}, nil
}

// Value returns the amount.
func (s Salary) Value() int { return s.value }

func (s Salary) String() string { return strconv.Itoa(s.value) }
