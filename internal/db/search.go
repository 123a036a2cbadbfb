package db

// BoolSearch is a disjunctive boolean query: the should clauses are joined
// as alternatives and at least one must match (top-level
// minimum_should_match of 1).
type BoolSearch struct {
	IndexName string
	Should    []Clause
	Limit     int
}

// Clause is one disjunct of a boolean query. Exactly one of Range, Term,
// or Terms is set. A positive Boost scales the clause's score contribution.
type Clause struct {
	Range *RangeClause
	Term  *TermClause
	Terms *TermsClause
	Boost float64
}

// RangeClause selects documents whose numeric field falls inside the
// inclusive bounds. A nil bound is open.
type RangeClause struct {
	Field string
	GTE   *float64
	LTE   *float64
}

// TermClause selects documents whose tag field contains the value.
type TermClause struct {
	Field string
	Value string
}

// TermsClause selects documents whose tag field contains at least
// MinimumMatch of the values (1 or less means any).
type TermsClause struct {
	Field        string
	Values       []string
	MinimumMatch int
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit with its index-assigned relevance.
type SearchEntry struct {
	Key   string
	Score float64
}
