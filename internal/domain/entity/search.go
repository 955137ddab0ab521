package entity

// MatchPhrase matches Phrase inside Field, case-insensitively
type MatchPhrase struct {
	Field  string
	Phrase string
}

// Disjunction matches when any of its phrases matches
type Disjunction []MatchPhrase

// SearchQuery matches when every disjunction matches
type SearchQuery struct {
	Conjuncts []Disjunction
}

// Empty reports whether the query has no clauses at all
func (q SearchQuery) Empty() bool {
	return len(q.Conjuncts) == 0
}
