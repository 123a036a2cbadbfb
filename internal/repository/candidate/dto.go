package candidate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hirelane/matchdex/internal/db"
	"github.com/hirelane/matchdex/internal/domain"
	domcand "github.com/hirelane/matchdex/internal/domain/candidate"
	"github.com/hirelane/matchdex/internal/domain/salary"
	"github.com/hirelane/matchdex/internal/domain/seniority"
	"github.com/hirelane/matchdex/internal/domain/skill"
	"github.com/hirelane/matchdex/internal/repository/matchquery"
)

func key(id string) string {
	return keyPrefix() + id
}

func keyPrefix() string {
	return domain.KeyPrefix + domain.CollectionCandidates + ":"
}

func indexName() string {
	return domain.KeyPrefix + domain.CollectionCandidates + ":idx"
}

func idFromKey(k string) string {
	return strings.TrimPrefix(k, keyPrefix())
}

// translateErr maps store sentinels onto domain sentinels so callers need
// not know the backing store. An over-limit query is a property of the
// request, not an internal failure.
func translateErr(err error) error {
	if errors.Is(err, db.ErrUnavailable) {
		return fmt.Errorf("%w: %w", domain.ErrSearchUnavailable, err)
	}
	if errors.Is(err, db.ErrQueryTooComplex) {
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	return err
}

// toFields flattens a candidate into hash fields. The derived skills field is
// the union of top and other skills so job-side queries can match the full
// pool as one tag list.
func toFields(c domcand.Candidate) map[string]string {
	fields := map[string]string{
		matchquery.FieldTopSkills:   strings.Join(c.TopSkills().Names(), ","),
		matchquery.FieldOtherSkills: strings.Join(c.OtherSkills().Names(), ","),
		matchquery.FieldSkills:      strings.Join(c.SkillPool().Names(), ","),
	}
	if c.Seniority() != nil {
		fields[matchquery.FieldSeniority] = c.Seniority().String()
	}
	if c.SalaryExpectation() != nil {
		fields[matchquery.FieldSalaryExpectation] = strconv.Itoa(c.SalaryExpectation().Value())
	}
	return fields
}

// fromFields reconstructs a candidate from stored hash fields. Corrupt values
// are skipped rather than failing the read; the derived skills field is not
// read back since the pool is recomputed from top and other skills.
func fromFields(id string, fields map[string]string) domcand.Candidate {
	return domcand.Reconstruct(
		id,
		parseSkills(fields[matchquery.FieldTopSkills]),
		parseSkills(fields[matchquery.FieldOtherSkills]),
		parseLevel(fields[matchquery.FieldSeniority]),
		parseSalary(fields[matchquery.FieldSalaryExpectation]),
	)
}

func parseSkills(raw string) skill.Set {
	var skills []skill.Skill
	for _, name := range splitList(raw) {
		s, err := skill.New(name)
		if err != nil {
			continue
		}
		skills = append(skills, s)
	}
	return skill.NewSet(skills...)
}

func parseLevel(raw string) *seniority.Level {
	if raw == "" {
		return nil
	}
	l, err := seniority.Parse(raw)
	if err != nil {
		return nil
	}
	return &l
}

func parseSalary(raw string) *salary.Salary {
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	s, err := salary.New(value)
	if err != nil {
		return nil
	}
	return &s
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
