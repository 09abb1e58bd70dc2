package helpcenter

import (
	"strconv"
	"strings"
)

// MinTOCHeadings is the fewest headings that produce a visible table of
// contents.
const MinTOCHeadings = 2

// Heading is an h2 or h3 heading found in an article body.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id,omitempty"`
}

// TOCEntry is one link in a table of contents.
type TOCEntry struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// Class returns the list-item class used to indent the entry.
func (e TOCEntry) Class() string {
	if e.Level == 3 {
		return "toc-h3"
	}
	return "toc-h2"
}

// TOC is the table of contents for one article.
type TOC struct {
	Hidden  bool       `json:"hidden"`
	Entries []TOCEntry `json:"entries"`
}

// BuildTOC turns article headings into a table of contents. Articles with
// fewer than MinTOCHeadings headings get a hidden TOC. Headings without an
// ID are anchored as "section-<position>".
func BuildTOC(headings []Heading) TOC {
	if len(headings) < MinTOCHeadings {
		return TOC{Hidden: true}
	}

	entries := make([]TOCEntry, 0, len(headings))
	for i, h := range headings {
		anchor := h.ID
		if anchor == "" {
			anchor = "section-" + strconv.Itoa(i)
		}
		level := h.Level
		if level != 3 {
			level = 2
		}
		entries = append(entries, TOCEntry{
			Level:  level,
			Title:  strings.TrimSpace(h.Text),
			Anchor: anchor,
		})
	}

	return TOC{Entries: entries}
}
