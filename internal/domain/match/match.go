package match

// Match is a single ranked counterpart: a document id and its relevance
// score. Depending on the scoring strategy the score is either the search
// index's raw relevance or the weighted-average score bounded to [0,1].
type Match struct {
	id    string
	score float64
}

// New creates a match.
func New(id string, score float64) Match {
	return Match{id: id, score: score}
}

// ID returns the matched document identifier.
func (m Match) ID() string { return m.id }

// Score returns the relevance score.
func (m Match) Score() float64 { return m.score }
