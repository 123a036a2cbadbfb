package job

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hirelane/matchdex/internal/db"
	"github.com/hirelane/matchdex/internal/domain"
	domjob "github.com/hirelane/matchdex/internal/domain/job"
	"github.com/hirelane/matchdex/internal/domain/salary"
	"github.com/hirelane/matchdex/internal/domain/seniority"
	"github.com/hirelane/matchdex/internal/domain/skill"
	"github.com/hirelane/matchdex/internal/repository/matchquery"
)

func key(id string) string {
	return keyPrefix() + id
}

func keyPrefix() string {
	return domain.KeyPrefix + domain.CollectionJobs + ":"
}

func indexName() string {
	return domain.KeyPrefix + domain.CollectionJobs + ":idx"
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

// toFields flattens a job into hash fields. Skill sets and seniorities are
// comma-joined so the index can treat them as tag lists.
func toFields(j domjob.Job) map[string]string {
	fields := map[string]string{
		matchquery.FieldTopSkills:   strings.Join(j.TopSkills().Names(), ","),
		matchquery.FieldOtherSkills: strings.Join(j.OtherSkills().Names(), ","),
		matchquery.FieldSeniorities: joinLevels(j.Seniorities()),
	}
	if j.MaxSalary() != nil {
		fields[matchquery.FieldMaxSalary] = strconv.Itoa(j.MaxSalary().Value())
	}
	return fields
}

// fromFields reconstructs a job from stored hash fields. Corrupt values are
// skipped rather than failing the read.
func fromFields(id string, fields map[string]string) domjob.Job {
	return domjob.Reconstruct(
		id,
		parseSkills(fields[matchquery.FieldTopSkills]),
		parseSkills(fields[matchquery.FieldOtherSkills]),
		parseLevels(fields[matchquery.FieldSeniorities]),
		parseSalary(fields[matchquery.FieldMaxSalary]),
	)
}

func joinLevels(levels []seniority.Level) string {
	parts := make([]string, 0, len(levels))
	for _, l := range levels {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, ",")
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

func parseLevels(raw string) []seniority.Level {
	var levels []seniority.Level
	for _, name := range splitList(raw) {
		l, err := seniority.Parse(name)
		if err != nil {
			continue
		}
		levels = append(levels, l)
	}
	return levels
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
