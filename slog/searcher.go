package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/helpcenter"
)

// Ensure LoggingSearcher implements helpcenter.Searcher.
var _ helpcenter.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging. Inactive queries are
// not logged since every keystroke below the minimum length produces one.
type LoggingSearcher struct {
	next   helpcenter.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next helpcenter.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the outcome.
func (s *LoggingSearcher) Search(query string) helpcenter.Outcome {
	begin := time.Now()
	out := s.next.Search(query)
	if out.State == helpcenter.StateInactive {
		return out
	}
	s.logger.Debug("search",
		"query", out.Query,
		"state", out.State.String(),
		"count", len(out.Results),
		"duration", time.Since(begin),
	)
	return out
}
