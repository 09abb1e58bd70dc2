package helpcenter

import (
	"strings"
	"unicode/utf8"
)

// Matching limits shared by every search surface.
const (
	// MinQueryLength is the shortest trimmed query, in characters, that
	// activates a search. Shorter queries yield StateInactive.
	MinQueryLength = 2

	// MaxResults caps the results returned by Matcher.Search.
	MaxResults = 8
)

// State describes which of the three search outcomes occurred.
type State int

// Search outcome states.
const (
	// StateInactive means the query was too short to search. Callers show a
	// default panel (quick links) rather than an empty-results message.
	StateInactive State = iota

	// StateEmpty means the query was searched and nothing matched.
	StateEmpty

	// StateMatches means at least one record matched.
	StateMatches
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateEmpty:
		return "empty"
	case StateMatches:
		return "matches"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name produced by MarshalText.
func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "inactive":
		*s = StateInactive
	case "empty":
		*s = StateEmpty
	case "matches":
		*s = StateMatches
	default:
		return Errorf(EINVALID, "unknown search state %q", string(text))
	}
	return nil
}

// Result is a matched record plus the locations of the query inside its
// displayed fields.
type Result struct {
	Record
	TitleSpans    []Span `json:"titleSpans"`
	CategorySpans []Span `json:"categorySpans,omitempty"`
}

// Outcome is the answer to a single query.
type Outcome struct {
	State   State    `json:"state"`
	Query   string   `json:"query"`
	Results []Result `json:"results"`
}

// Searcher answers search-as-you-type queries.
type Searcher interface {
	// Search returns at most MaxResults matches in index order.
	Search(query string) Outcome
}

var _ Searcher = (*Matcher)(nil)

// Matcher answers case-insensitive literal substring queries over an Index.
// It never modifies the index and holds no per-query state.
type Matcher struct {
	index *Index
}

// NewMatcher returns a Matcher over idx. A nil index behaves as empty.
func NewMatcher(idx *Index) *Matcher {
	return &Matcher{index: idx}
}

// Index returns the index the matcher searches.
func (m *Matcher) Index() *Index {
	return m.index
}

// Search returns the first MaxResults records, in index order, whose
// searchable text contains the query.
func (m *Matcher) Search(query string) Outcome {
	return m.search(query, MaxResults)
}

// SearchAll is like Search but returns every match. The command palette
// lists all matching articles with a count header.
func (m *Matcher) SearchAll(query string) Outcome {
	return m.search(query, 0)
}

func (m *Matcher) search(query string, limit int) Outcome {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < MinQueryLength {
		return Outcome{State: StateInactive, Query: q}
	}

	needle := strings.ToLower(q)
	var results []Result
	for i := 0; i < m.index.Len(); i++ {
		r := m.index.At(i)
		if !strings.Contains(r.SearchableText(), needle) {
			continue
		}
		results = append(results, Result{
			Record:        r,
			TitleSpans:    FindSpans(r.Title, q),
			CategorySpans: FindSpans(r.Category, q),
		})
		if limit > 0 && len(results) == limit {
			break
		}
	}

	if len(results) == 0 {
		return Outcome{State: StateEmpty, Query: q}
	}
	return Outcome{State: StateMatches, Query: q, Results: results}
}
