package helpcenter

import "strings"

// Record is one searchable entity: an article or a video.
type Record struct {
	Title     string `json:"title" yaml:"title"`
	Category  string `json:"category,omitempty" yaml:"category"`
	Reference string `json:"reference" yaml:"reference"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	if r.Reference == "" {
		return Errorf(EINVALID, "record reference required")
	}
	return nil
}

// SearchableText returns the lowercase text the record is matched against.
// It is derived from Title and Category on every call and never displayed.
func (r *Record) SearchableText() string {
	return strings.ToLower(r.Title + " " + r.Category)
}

// ScannedLink is a raw link harvested from a rendered page.
// Category is empty when the page has no meta text next to the link.
type ScannedLink struct {
	Reference string
	Title     string
	Category  string
}

// PageScanner harvests search inputs from rendered HTML pages.
type PageScanner interface {
	// ScanLinks returns article links in document order. Duplicates are
	// returned as found; NewIndexFromScan removes them.
	ScanLinks(html string) ([]ScannedLink, error)

	// ScanCards returns the cards of a listing page in document order.
	ScanCards(html string) ([]Record, error)

	// ScanHeadings returns the h2/h3 headings of an article body.
	ScanHeadings(html string) ([]Heading, error)
}
