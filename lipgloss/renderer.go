// Package lipgloss renders search outcomes, listings and tables of contents
// for the terminal.
package lipgloss

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/helpcenter"
)

// Plain-text markers used around matches when color is disabled.
const (
	MarkBefore = "["
	MarkAfter  = "]"
)

var (
	// Accent marks matched text and result numbers.
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")).Bold(true)

	// Muted is used for categories, references and hints.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold is used for titles and headers.
	Bold = lipgloss.NewStyle().Bold(true)
)

// Renderer writes helpcenter values as human-readable text.
type Renderer struct {
	color bool
}

// NewRenderer returns a Renderer. With color disabled, matches are wrapped
// in MarkBefore/MarkAfter and no escape sequences are written.
func NewRenderer(color bool) *Renderer {
	return &Renderer{color: color}
}

// RenderOutcome writes the answer to a query: a hint for inactive queries,
// a no-results message for empty ones, or the numbered matches.
func (r *Renderer) RenderOutcome(w io.Writer, out helpcenter.Outcome) error {
	switch out.State {
	case helpcenter.StateInactive:
		_, err := fmt.Fprintln(w, r.muted(fmt.Sprintf("Type at least %d characters to search.", helpcenter.MinQueryLength)))
		return err
	case helpcenter.StateEmpty:
		_, err := fmt.Fprintf(w, "No articles found for %q\n", out.Query)
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.bold(pluralize(len(out.Results), "result")))
	for i, res := range out.Results {
		fmt.Fprintf(&b, "%s %s", r.accent(fmt.Sprintf("%2d.", i+1)), r.highlight(res.Title, res.TitleSpans))
		if res.Category != "" {
			fmt.Fprintf(&b, " %s %s", r.muted("·"), r.highlight(res.Category, res.CategorySpans))
		}
		fmt.Fprintf(&b, "\n    %s\n", r.muted(res.Reference))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderListing writes the visible records of a listing with its count.
func (r *Renderer) RenderListing(w io.Writer, records []helpcenter.Record, summary helpcenter.ListingSummary) error {
	if summary.IsEmpty {
		_, err := fmt.Fprintln(w, "No articles match the current filter.")
		return err
	}

	width := 0
	for _, rec := range records {
		if n := lipgloss.Width(rec.Title); n > width {
			width = n
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.bold(pluralize(summary.VisibleCount, "article")))
	for _, rec := range records {
		title := rec.Title + strings.Repeat(" ", width-lipgloss.Width(rec.Title))
		fmt.Fprintf(&b, "  %s  %s\n", title, r.muted(rec.Category))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderTOC writes a table of contents, indenting h3 entries.
func (r *Renderer) RenderTOC(w io.Writer, toc helpcenter.TOC) error {
	if toc.Hidden {
		_, err := fmt.Fprintln(w, r.muted("Not enough headings for a table of contents."))
		return err
	}

	var b strings.Builder
	b.WriteString(r.bold("On this page") + "\n")
	for _, e := range toc.Entries {
		indent := "  "
		if e.Class() == "toc-h3" {
			indent = "    "
		}
		fmt.Fprintf(&b, "%s%s %s\n", indent, e.Title, r.muted("#"+e.Anchor))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) highlight(text string, spans []helpcenter.Span) string {
	if !r.color {
		return helpcenter.Highlight(text, spans, MarkBefore, MarkAfter)
	}
	return helpcenter.HighlightFunc(text, spans, func(s string) string {
		return Accent.Render(s)
	})
}

func (r *Renderer) accent(s string) string {
	if !r.color {
		return s
	}
	return Accent.Render(s)
}

func (r *Renderer) muted(s string) string {
	if !r.color {
		return s
	}
	return Muted.Render(s)
}

func (r *Renderer) bold(s string) string {
	if !r.color {
		return s
	}
	return Bold.Render(s)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
