package main

import (
	"fmt"

	"github.com/fwojciec/helpcenter"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	if c.Cards {
		return c.runCards(deps)
	}

	idx, err := scanIndex(deps, c.Sources)
	if err != nil {
		reportError(deps, err)
		return err
	}

	for _, r := range idx.Records() {
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", r.Reference, r.Title, r.Category)
	}
	fmt.Fprintf(deps.Stderr, "Scanned %d pages, found %d articles\n", len(c.Sources), idx.Len())
	return nil
}

func (c *ScanCmd) runCards(deps *Dependencies) error {
	pages, err := readPages(deps, c.Sources)
	if err != nil {
		reportError(deps, err)
		return err
	}

	var records []helpcenter.Record
	for i, page := range pages {
		cards, err := deps.Scanner.ScanCards(page)
		if err != nil {
			err = fmt.Errorf("scan %s: %w", c.Sources[i], err)
			reportError(deps, err)
			return err
		}
		records = append(records, cards...)
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", r.Reference, r.Title, r.Category)
	}
	fmt.Fprintf(deps.Stderr, "Scanned %d pages, found %d cards\n", len(c.Sources), len(records))
	return nil
}
