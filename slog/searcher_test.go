package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/helpcenter"
	"github.com/fwojciec/helpcenter/mock"
	hcslog "github.com/fwojciec/helpcenter/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs state and count at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		want := helpcenter.Outcome{
			State:   helpcenter.StateMatches,
			Query:   "stud",
			Results: []helpcenter.Result{{Record: helpcenter.Record{Title: "Creating a Study", Reference: "ref1"}}},
		}
		inner := &mock.Searcher{
			SearchFn: func(query string) helpcenter.Outcome {
				return want
			},
		}

		got := hcslog.NewLoggingSearcher(inner, logger).Search("stud")

		assert.Equal(t, want, got)
		output := buf.String()
		assert.Contains(t, output, "msg=search")
		assert.Contains(t, output, "query=stud")
		assert.Contains(t, output, "state=matches")
		assert.Contains(t, output, "count=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("skips inactive queries", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Searcher{
			SearchFn: func(query string) helpcenter.Outcome {
				return helpcenter.Outcome{State: helpcenter.StateInactive, Query: query}
			},
		}

		hcslog.NewLoggingSearcher(inner, logger).Search("s")

		assert.Empty(t, buf.String())
	})

	t.Run("works with the real matcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		matcher := helpcenter.NewMatcher(helpcenter.NewIndex(helpcenter.DefaultCatalog()))

		out := hcslog.NewLoggingSearcher(matcher, logger).Search("xyz")

		assert.Equal(t, helpcenter.StateEmpty, out.State)
		assert.Contains(t, buf.String(), "state=empty")
	})
}
