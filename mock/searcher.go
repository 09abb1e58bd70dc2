package mock

import "github.com/fwojciec/helpcenter"

var _ helpcenter.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of helpcenter.Searcher.
type Searcher struct {
	SearchFn func(query string) helpcenter.Outcome
}

func (s *Searcher) Search(query string) helpcenter.Outcome {
	return s.SearchFn(query)
}
