package main

import "github.com/fwojciec/helpcenter"

// Run executes the toc command.
func (c *TOCCmd) Run(deps *Dependencies) error {
	pages, err := readPages(deps, []string{c.Source})
	if err != nil {
		reportError(deps, err)
		return err
	}

	headings, err := deps.Scanner.ScanHeadings(pages[0])
	if err != nil {
		reportError(deps, err)
		return err
	}

	return deps.Renderer.RenderTOC(deps.Stdout, helpcenter.BuildTOC(headings))
}
