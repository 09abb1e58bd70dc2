// Package goquery implements helpcenter.PageScanner using CSS selectors
// over rendered help-center pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/helpcenter"
)

// Default selectors matching the help-center page templates.
const (
	DefaultLinkSelector    = `a[href^="article_"]`
	DefaultCardSelector    = ".article-card-enhanced, .video-card-enhanced"
	DefaultContentSelector = ".article-content"

	// containerSelector finds the card that owns an article link.
	containerSelector = ".topic-card, .article-item, .article-card"
	// metaSelector finds the category text inside that card.
	metaSelector = ".article-meta, .topic-meta"
)

var _ helpcenter.PageScanner = (*Scanner)(nil)

// Scanner harvests article links, listing cards and headings from HTML.
type Scanner struct {
	linkSelector    string
	cardSelector    string
	contentSelector string
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLinkSelector sets the selector for article links.
// Defaults to DefaultLinkSelector.
func WithLinkSelector(selector string) Option {
	return func(s *Scanner) {
		s.linkSelector = selector
	}
}

// WithCardSelector sets the selector for listing cards.
// Defaults to DefaultCardSelector.
func WithCardSelector(selector string) Option {
	return func(s *Scanner) {
		s.cardSelector = selector
	}
}

// NewScanner creates a new Scanner.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		linkSelector:    DefaultLinkSelector,
		cardSelector:    DefaultCardSelector,
		contentSelector: DefaultContentSelector,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScanLinks returns every article link in document order, including
// duplicates. The category is the meta text of the card that contains the
// link, or empty when the link is not inside a card.
func (s *Scanner) ScanLinks(html string) ([]helpcenter.ScannedLink, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var links []helpcenter.ScannedLink
	doc.Find(s.linkSelector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" || isNonHTTPLink(href) {
			return
		}

		var meta string
		if card := sel.Closest(containerSelector); card.Length() > 0 {
			meta = card.Find(metaSelector).First().Text()
		}

		links = append(links, helpcenter.ScannedLink{
			Reference: href,
			Title:     collapseSpace(sel.Text()),
			Category:  collapseSpace(meta),
		})
	})

	return links, nil
}

// ScanCards returns the cards of an all-articles or all-videos page in
// document order. Title and category come from the data-title and
// data-category attributes; the reference is data-href, the card's own
// href, or the first link inside it.
func (s *Scanner) ScanCards(html string) ([]helpcenter.Record, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var records []helpcenter.Record
	doc.Find(s.cardSelector).Each(func(_ int, sel *goquery.Selection) {
		records = append(records, helpcenter.Record{
			Title:     strings.TrimSpace(sel.AttrOr("data-title", "")),
			Category:  strings.TrimSpace(sel.AttrOr("data-category", "")),
			Reference: cardReference(sel),
		})
	})

	return records, nil
}

// ScanHeadings returns the h2 and h3 headings of the article body in
// document order. The whole page is used when there is no article body.
func (s *Scanner) ScanHeadings(html string) ([]helpcenter.Heading, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	root := doc.Find(s.contentSelector).First()
	if root.Length() == 0 {
		root = doc.Selection
	}

	var headings []helpcenter.Heading
	root.Find("h2, h3").Each(func(_ int, sel *goquery.Selection) {
		level := 2
		if goquery.NodeName(sel) == "h3" {
			level = 3
		}
		headings = append(headings, helpcenter.Heading{
			Level: level,
			Text:  collapseSpace(sel.Text()),
			ID:    sel.AttrOr("id", ""),
		})
	})

	return headings, nil
}
