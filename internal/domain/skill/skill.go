package skill

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hirelane/matchdex/internal/domain"
)

// Skill is a single professional competency. Equality is case-insensitive
// over the trimmed name; the original spelling is preserved for display.
type Skill struct {
	name string
}

// New validates and creates a Skill. The name is trimmed; an empty or
// whitespace-only name fails. Commas are rejected because "," is the tag
// separator in stored skill lists.
func New(name string) (Skill, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Skill{}, fmt.Errorf("%w: skill name cannot be empty", domain.ErrValidation)
	}
	if strings.Contains(trimmed, ",") {
		return Skill{}, fmt.Errorf("%w: skill name cannot contain a comma", domain.ErrValidation)
	}
	return Skill{name: trimmed}, nil
}

// Name returns the skill name as provided (trimmed).
func (s Skill) Name() string { return s.name }

// Norm returns the normalized (lowercased) name used for equality.
func (s Skill) Norm() string { return strings.ToLower(s.name) }

// Equal reports whether two skills have the same normalized name.
func (s Skill) Equal(other Skill) bool { return s.Norm() == other.Norm() }

// Set is a collection of skills with case-insensitive membership.
type Set struct {
	items map[string]Skill
}

// NewSet creates a Set from skills, deduplicating by normalized name.
// The first spelling of a duplicate wins.
func NewSet(skills ...Skill) Set {
	items := make(map[string]Skill, len(skills))
	for _, s := range skills {
		if _, ok := items[s.Norm()]; !ok {
			items[s.Norm()] = s
		}
	}
	return Set{items: items}
}

// ParseSet builds a Set from raw names, validating each.
func ParseSet(names []string) (Set, error) {
	skills := make([]Skill, 0, len(names))
	for _, name := range names {
		s, err := New(name)
		if err != nil {
			return Set{}, err
		}
		skills = append(skills, s)
	}
	return NewSet(skills...), nil
}

// Len returns the number of distinct skills.
func (s Set) Len() int { return len(s.items) }

// IsEmpty reports whether the set has no skills.
func (s Set) IsEmpty() bool { return len(s.items) == 0 }

// Contains reports case-insensitive membership.
func (s Set) Contains(sk Skill) bool {
	_, ok := s.items[sk.Norm()]
	return ok
}

// Union returns a new set with the skills of both sets.
func (s Set) Union(other Set) Set {
	items := make(map[string]Skill, len(s.items)+len(other.items))
	for k, v := range s.items {
		items[k] = v
	}
	for k, v := range other.items {
		if _, ok := items[k]; !ok {
			items[k] = v
		}
	}
	return Set{items: items}
}

// IntersectCount returns the number of skills present in both sets.
func (s Set) IntersectCount(other Set) int {
	n := 0
	for k := range s.items {
		if _, ok := other.items[k]; ok {
			n++
		}
	}
	return n
}

// Names returns the display names sorted alphabetically for determinism.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.items))
	for _, v := range s.items {
		names = append(names, v.Name())
	}
	sort.Strings(names)
	return names
}

// Norms returns the normalized names sorted alphabetically for determinism.
func (s Set) Norms() []string {
	norms := make([]string, 0, len(s.items))
	for k := range s.items {
		norms = append(norms, k)
	}
	sort.Strings(norms)
	return norms
}

// MatchRatio returns |denom ∩ pool| / |denom|, the proportion of the
// denominator skills covered by the pool. Zero when either set is empty.
func MatchRatio(denom, pool Set) float64 {
	if denom.IsEmpty() || pool.IsEmpty() {
		return 0
	}
	return float64(denom.IntersectCount(pool)) / float64(denom.Len())
}
