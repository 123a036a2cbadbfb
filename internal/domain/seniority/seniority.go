package seniority

import (
	"fmt"
	"strings"

	"github.com/hirelane/matchdex/internal/domain"
)

// Level is a seniority level. The enumeration is closed; matching uses
// equality only, never ordering.
type Level string

// Seniority level constants, from least to most senior.
const (
	None      Level = "none"
	Junior    Level = "junior"
	Midlevel  Level = "midlevel"
	Senior    Level = "senior"
	Lead      Level = "lead"
	Principal Level = "principal"
)

// Levels returns all valid levels in declaration order.
func Levels() []Level {
	return []Level{None, Junior, Midlevel, Senior, Lead, Principal}
}

// IsValid checks if the level is one of the supported values.
func (l Level) IsValid() bool {
	switch l {
	case None, Junior, Midlevel, Senior, Lead, Principal:
		return true
	}
	return false
}

func (l Level) String() string { return string(l) }

// Parse validates a seniority string, case-insensitively.
func Parse(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", fmt.Errorf("%w: invalid seniority level %q (valid levels are: %s)",
			domain.ErrValidation, s, joinLevels())
	}
	return l, nil
}

func joinLevels() string {
	all := Levels()
	parts := make([]string, len(all))
	for i, l := range all {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}

// Contains reports whether levels includes l.
func Contains(levels []Level, l Level) bool {
	for _, v := range levels {
		if v == l {
			return true
		}
	}
	return false
}
