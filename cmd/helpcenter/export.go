package main

import (
	"fmt"

	"github.com/fwojciec/helpcenter"
	"github.com/fwojciec/helpcenter/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	idx := deps.Index
	if len(c.Scan) > 0 {
		var err error
		if idx, err = scanIndex(deps, c.Scan); err != nil {
			reportError(deps, err)
			return err
		}
	}

	if err := fs.ExportIndex(c.Path, idx); err != nil {
		reportError(deps, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d articles to %s (%s)\n",
		idx.Len(), c.Path, helpcenter.FormatFingerprint(idx.Fingerprint()))
	return nil
}
