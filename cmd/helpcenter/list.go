package main

import (
	"fmt"

	"github.com/fwojciec/helpcenter"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	records := deps.Index.Records()
	if c.Page != "" {
		pages, err := readPages(deps, []string{c.Page})
		if err != nil {
			reportError(deps, err)
			return err
		}
		if records, err = deps.Scanner.ScanCards(pages[0]); err != nil {
			reportError(deps, err)
			return err
		}
	}

	listing := helpcenter.NewListing(records)

	if c.Tabs {
		fmt.Fprintf(deps.Stdout, "%s\n", helpcenter.FilterAll)
		for _, cat := range listing.Categories() {
			fmt.Fprintf(deps.Stdout, "%s  %s\n", cat.Slug, cat.Name)
		}
		return nil
	}

	listing.Sort(helpcenter.SortKey(c.Sort))
	listing.SetFilter(c.Filter)
	if c.Category != "" {
		cat, err := listing.CategoryBySlug(c.Category)
		if err != nil {
			reportError(deps, err)
			return err
		}
		listing.SetFilter(cat.Key)
	}
	listing.SetSearch(c.Search)

	return deps.Renderer.RenderListing(deps.Stdout, listing.Visible(), listing.Summary())
}
