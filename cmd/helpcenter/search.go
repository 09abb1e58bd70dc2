package main

import (
	"encoding/json"

	"github.com/fwojciec/helpcenter"
	hcslog "github.com/fwojciec/helpcenter/slog"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	idx := deps.Index
	if len(c.Scan) > 0 {
		var err error
		if idx, err = scanIndex(deps, c.Scan); err != nil {
			reportError(deps, err)
			return err
		}
	}

	matcher := helpcenter.NewMatcher(idx)

	var out helpcenter.Outcome
	if c.All {
		out = matcher.SearchAll(c.Query)
	} else {
		var searcher helpcenter.Searcher = matcher
		if deps.Logger != nil {
			searcher = hcslog.NewLoggingSearcher(matcher, deps.Logger)
		}
		out = searcher.Search(c.Query)
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	return deps.Renderer.RenderOutcome(deps.Stdout, out)
}
