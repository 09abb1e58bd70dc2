package helpcenter

import (
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAll is the filter key that disables category filtering.
const FilterAll = "all"

// SortKey selects a listing order.
type SortKey string

// Listing sort keys. Any other key leaves the order unchanged.
const (
	SortNone      SortKey = ""
	SortTitleAsc  SortKey = "title-asc"
	SortTitleDesc SortKey = "title-desc"
	SortCategory  SortKey = "category"
)

// ListingSummary is what a listing page reflects after every change.
type ListingSummary struct {
	VisibleCount int  `json:"visibleCount"`
	IsEmpty      bool `json:"isEmpty"`
}

// Category is a distinct listing category with its filter key and slug.
type Category struct {
	Name string `json:"name"`
	Key  string `json:"key"`
	Slug string `json:"slug"`
}

// Listing is the filter/search/sort state of an all-articles or all-videos
// page. The category filter and the search text are independent of each
// other and of the display order.
type Listing struct {
	records []Record
	filter  string
	search  string

	collator *collate.Collator
}

// NewListing returns a listing over records in the given display order,
// with no filter and no search applied.
func NewListing(records []Record) *Listing {
	rs := make([]Record, len(records))
	copy(rs, records)
	return &Listing{
		records:  rs,
		filter:   FilterAll,
		collator: collate.New(language.Und),
	}
}

// Filter returns the current category filter.
func (l *Listing) Filter() string { return l.filter }

// Search returns the current search text.
func (l *Listing) Search() string { return l.search }

// SetFilter sets the category filter. An empty key resets it to FilterAll.
func (l *Listing) SetFilter(key string) {
	if key == "" {
		key = FilterAll
	}
	l.filter = key
}

// SetSearch sets the search text. Surrounding whitespace is ignored.
func (l *Listing) SetSearch(text string) {
	l.search = strings.TrimSpace(text)
}

// Sort reorders the records by key using locale-aware comparison.
// Unknown keys leave the order unchanged. Visibility is not affected.
func (l *Listing) Sort(key SortKey) {
	var less func(a, b Record) bool
	switch key {
	case SortTitleAsc:
		less = func(a, b Record) bool {
			return l.collator.CompareString(a.Title, b.Title) < 0
		}
	case SortTitleDesc:
		less = func(a, b Record) bool {
			return l.collator.CompareString(b.Title, a.Title) < 0
		}
	case SortCategory:
		less = func(a, b Record) bool {
			if c := l.collator.CompareString(a.Category, b.Category); c != 0 {
				return c < 0
			}
			return l.collator.CompareString(a.Title, b.Title) < 0
		}
	default:
		return
	}

	sort.SliceStable(l.records, func(i, j int) bool {
		return less(l.records[i], l.records[j])
	})
}

// IsVisible reports whether r passes the current filter and search.
func (l *Listing) IsVisible(r Record) bool {
	if l.filter != FilterAll && !strings.Contains(strings.ToLower(r.Category), strings.ToLower(l.filter)) {
		return false
	}
	if l.search != "" && !strings.Contains(r.SearchableText(), strings.ToLower(l.search)) {
		return false
	}
	return true
}

// Records returns every record in display order, visible or not.
func (l *Listing) Records() []Record {
	rs := make([]Record, len(l.records))
	copy(rs, l.records)
	return rs
}

// Visible returns the visible records in display order.
func (l *Listing) Visible() []Record {
	var visible []Record
	for _, r := range l.records {
		if l.IsVisible(r) {
			visible = append(visible, r)
		}
	}
	return visible
}

// Summary returns the visible count and whether the empty state applies.
func (l *Listing) Summary() ListingSummary {
	n := 0
	for _, r := range l.records {
		if l.IsVisible(r) {
			n++
		}
	}
	return ListingSummary{VisibleCount: n, IsEmpty: n == 0}
}

// Categories returns the distinct non-empty categories in first-seen order.
func (l *Listing) Categories() []Category {
	seen := make(map[string]bool)
	var categories []Category
	for _, r := range l.records {
		key := strings.ToLower(r.Category)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		categories = append(categories, Category{
			Name: r.Category,
			Key:  key,
			Slug: slug.Make(r.Category),
		})
	}
	return categories
}

// CategoryBySlug returns the category whose slug matches s.
// Returns ENOTFOUND if no record carries such a category.
func (l *Listing) CategoryBySlug(s string) (Category, error) {
	for _, c := range l.Categories() {
		if c.Slug == s {
			return c, nil
		}
	}
	return Category{}, Errorf(ENOTFOUND, "category %q not found", s)
}
