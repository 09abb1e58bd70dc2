package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/helpcenter"
)

// parse builds a document from an HTML string.
func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, helpcenter.Errorf(helpcenter.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// cardReference finds the destination of a listing card.
func cardReference(sel *goquery.Selection) string {
	if href := sel.AttrOr("data-href", ""); href != "" {
		return href
	}
	if href, ok := sel.Attr("href"); ok && href != "" {
		return href
	}
	return sel.Find("a[href]").First().AttrOr("href", "")
}

// collapseSpace trims text and folds internal runs of whitespace, which
// template indentation leaves inside link text.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
