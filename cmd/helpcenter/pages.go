package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/fwojciec/helpcenter"
	"golang.org/x/sync/errgroup"
)

// readPages loads each source concurrently and returns the pages in the
// order the sources were given. Sources with an http or https scheme are
// fetched; anything else is read from disk.
func readPages(deps *Dependencies, sources []string) ([]string, error) {
	pages := make([]string, len(sources))

	g, ctx := errgroup.WithContext(deps.Ctx)
	limit := 1
	if deps.Config != nil && deps.Config.ScanConcurrency > 0 {
		limit = deps.Config.ScanConcurrency
	}
	g.SetLimit(limit)

	for i, src := range sources {
		g.Go(func() error {
			if isRemote(src) {
				html, err := deps.Fetcher.Fetch(ctx, src)
				if err != nil {
					return fmt.Errorf("fetch %s: %w", src, err)
				}
				pages[i] = html
				return nil
			}

			data, err := os.ReadFile(src)
			if err != nil {
				return fmt.Errorf("read %s: %w", src, err)
			}
			pages[i] = string(data)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

// scanIndex reads the sources and builds an index from their article
// links. Links are merged in source order so the first occurrence of a
// reference wins across pages.
func scanIndex(deps *Dependencies, sources []string) (*helpcenter.Index, error) {
	pages, err := readPages(deps, sources)
	if err != nil {
		return nil, err
	}

	var links []helpcenter.ScannedLink
	for i, page := range pages {
		found, err := deps.Scanner.ScanLinks(page)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", sources[i], err)
		}
		links = append(links, found...)
	}
	return helpcenter.NewIndexFromScan(links), nil
}

func isRemote(src string) bool {
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
