package helpcenter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span marks a highlighted region of a string as byte offsets [Start, End).
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FindSpans returns every non-overlapping, case-insensitive occurrence of
// query in text, scanning left to right. The query is matched literally.
func FindSpans(text, query string) []Span {
	if query == "" || text == "" {
		return nil
	}

	var spans []Span
	for i := 0; i < len(text); {
		if end, ok := foldPrefixAt(text, i, query); ok {
			spans = append(spans, Span{Start: i, End: end})
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return spans
}

// foldPrefixAt reports whether text starting at byte i begins with query
// under simple case folding, and where the match ends.
func foldPrefixAt(text string, i int, query string) (int, bool) {
	j := i
	for _, qr := range query {
		if j >= len(text) {
			return 0, false
		}
		tr, size := utf8.DecodeRuneInString(text[j:])
		if !equalFoldRune(tr, qr) {
			return 0, false
		}
		j += size
	}
	return j, true
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// Highlight wraps each span of text in the before and after markers. Spans must be
// sorted and non-overlapping, as returned by FindSpans.
func Highlight(text string, spans []Span, before, after string) string {
	return HighlightFunc(text, spans, func(s string) string {
		return before + s + after
	})
}

// HighlightFunc is like Highlight but transforms each matched segment with fn.
// Invalid or out-of-order spans are ignored.
func HighlightFunc(text string, spans []Span, fn func(string) string) string {
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	prev := 0
	for _, s := range spans {
		if s.Start < prev || s.End > len(text) || s.Start >= s.End {
			continue
		}
		b.WriteString(text[prev:s.Start])
		b.WriteString(fn(text[s.Start:s.End]))
		prev = s.End
	}
	b.WriteString(text[prev:])
	return b.String()
}
