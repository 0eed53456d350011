package domain

// SearchResult is one candidate that matched a query.
type SearchResult struct {
	// Name is the candidate as given.
	Name string
	// MatchedOn is the text the query matched: Name itself or its transliteration.
	MatchedOn string
	// Distance is the fuzzy edit distance; lower ranks higher.
	Distance int
	// Index is the candidate's position in the input list.
	Index int
}
