package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/rueidis"

	"github.com/hirelane/matchdex/internal/db"
)

// MaxTermCombinations caps the combination expansion used for
// minimum-match tag clauses. With a minimum match of 2 this admits
// sources of up to 45 tag values (C(45,2) = 990); queries needing more
// combinations are rejected rather than silently weakened.
const MaxTermCombinations = 1024

// Search runs a disjunctive boolean query via FT.SEARCH with NOCONTENT
// and WITHSCORES, returning keys with their index-assigned scores.
func (s *Store) Search(ctx context.Context, q *db.BoolSearch) (*db.SearchResult, error) {
	if q.IndexName == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if len(q.Should) == 0 {
		return nil, fmt.Errorf("at least one clause is required")
	}
	if q.Limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	queryStr, err := buildBoolQuery(q.Should)
	if err != nil {
		return nil, err
	}

	args := []string{
		q.IndexName, queryStr,
		"NOCONTENT",
		"WITHSCORES",
		"LIMIT", "0", strconv.Itoa(q.Limit),
		"DIALECT", "2",
	}

	cmd := s.b().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return nil, wrapOp(db.OpSearch, err)
	}

	return parseBoolResult(raw)
}

func parseBoolResult(raw []rueidis.RedisMessage) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return &db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return &db.SearchResult{}, nil
	}

	entries := make([]db.SearchEntry, 0, total)
	// 2-stride: [total, key1, score1, key2, score2, ...]
	for i := 1; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		scoreStr, err := raw[i+1].ToString()
		if err != nil {
			continue
		}
		score, err := strconv.ParseFloat(scoreStr, 64)
		if err != nil {
			continue
		}

		entries = append(entries, db.SearchEntry{Key: key, Score: score})
	}

	return &db.SearchResult{Total: int(total), Entries: entries}, nil
}

// buildBoolQuery joins the clauses as alternatives so that any single
// matching clause qualifies a document.
func buildBoolQuery(clauses []db.Clause) (string, error) {
	parts := make([]string, 0, len(clauses))
	for i := range clauses {
		part, err := buildClause(&clauses[i])
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return "(" + strings.Join(parts, " | ") + ")", nil
}

func buildClause(c *db.Clause) (string, error) {
	var expr string
	var err error

	switch {
	case c.Range != nil:
		expr = buildRangeClause(c.Range)
	case c.Term != nil:
		expr = buildTermClause(c.Term.Field, c.Term.Value)
	case c.Terms != nil:
		expr, err = buildTermsClause(c.Terms)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("clause has no condition")
	}

	if c.Boost > 0 && c.Boost != 1 {
		expr = fmt.Sprintf("(%s) => { $weight: %g; }", expr, c.Boost)
	}
	return expr, nil
}

func buildRangeClause(r *db.RangeClause) string {
	minBound := "-inf"
	maxBound := "+inf"

	if r.GTE != nil {
		minBound = fmt.Sprintf("%g", *r.GTE)
	}
	if r.LTE != nil {
		maxBound = fmt.Sprintf("%g", *r.LTE)
	}

	return fmt.Sprintf("@%s:[%s %s]", r.Field, minBound, maxBound)
}

func buildTermClause(field, value string) string {
	return fmt.Sprintf("@%s:{%s}", field, tagEscaper.Replace(value))
}

// buildTermsClause expands an at-least-N-of-M tag condition. N of 1 or
// less degrades to a plain alternative list; otherwise every N-sized
// combination of the values becomes a conjunction and the combinations
// are joined as alternatives, up to MaxTermCombinations.
func buildTermsClause(t *db.TermsClause) (string, error) {
	if len(t.Values) == 0 {
		return "", fmt.Errorf("terms clause for %s has no values", t.Field)
	}

	n := t.MinimumMatch
	if n <= 1 {
		parts := make([]string, 0, len(t.Values))
		for _, v := range t.Values {
			parts = append(parts, buildTermClause(t.Field, v))
		}
		if len(parts) == 1 {
			return parts[0], nil
		}
		return "(" + strings.Join(parts, " | ") + ")", nil
	}

	if n > len(t.Values) {
		n = len(t.Values)
	}

	if c := combinationCount(len(t.Values), n); c > MaxTermCombinations {
		return "", fmt.Errorf(
			"%w: terms clause for %s needs %d combinations, limit is %d",
			db.ErrQueryTooComplex, t.Field, c, MaxTermCombinations,
		)
	}

	combos := combinations(t.Values, n)
	parts := make([]string, 0, len(combos))
	for _, combo := range combos {
		terms := make([]string, 0, len(combo))
		for _, v := range combo {
			terms = append(terms, buildTermClause(t.Field, v))
		}
		if len(terms) == 1 {
			parts = append(parts, terms[0])
		} else {
			parts = append(parts, "("+strings.Join(terms, " ")+")")
		}
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return "(" + strings.Join(parts, " | ") + ")", nil
}

// combinationCount computes C(m, n), saturating above MaxTermCombinations.
func combinationCount(m, n int) int {
	if n > m-n {
		n = m - n
	}
	c := 1
	for i := 0; i < n; i++ {
		c = c * (m - i) / (i + 1)
		if c > MaxTermCombinations {
			return c
		}
	}
	return c
}

func combinations(values []string, n int) [][]string {
	var result [][]string
	combo := make([]string, n)

	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == n {
			picked := make([]string, n)
			copy(picked, combo)
			result = append(result, picked)
			return
		}
		for i := start; i <= len(values)-(n-depth); i++ {
			combo[depth] = values[i]
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)

	return result
}

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)
