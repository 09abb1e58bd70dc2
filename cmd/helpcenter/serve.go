package main

import (
	"fmt"
	"net"

	"github.com/fwojciec/helpcenter"
	hchttp "github.com/fwojciec/helpcenter/http"
	hcslog "github.com/fwojciec/helpcenter/slog"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = deps.Config.ListenAddr
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		reportError(deps, err)
		return err
	}

	searcher := hcslog.NewLoggingSearcher(helpcenter.NewMatcher(deps.Index), deps.Logger)
	srv := hchttp.NewServer(deps.Index, deps.Themes, deps.Feedback, deps.Logger,
		hchttp.WithSearcher(searcher),
		hchttp.WithAllowAllOrigins(c.AllowAllOrigins || deps.Config.AllowAllOrigins),
	)

	fmt.Fprintf(deps.Stdout, "Serving %d articles on http://%s\n", deps.Index.Len(), ln.Addr())
	return srv.Serve(deps.Ctx, ln)
}
