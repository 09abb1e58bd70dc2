package helpcenter

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Index is an ordered collection of records. Insertion order is the default
// display order and the tie-break for equal matches. An Index is never
// modified after construction, so it may be shared between callers.
type Index struct {
	records []Record
}

// NewIndex builds an index from a fixed table. Order is preserved as given.
func NewIndex(records []Record) *Index {
	rs := make([]Record, len(records))
	copy(rs, records)
	return &Index{records: rs}
}

// NewIndexFromScan builds an index from links harvested from a page.
// Links are deduplicated by reference; the first occurrence wins and keeps
// its position. Links without a reference are skipped.
func NewIndexFromScan(links []ScannedLink) *Index {
	seen := make(map[string]struct{}, len(links))
	records := make([]Record, 0, len(links))

	for _, link := range links {
		if link.Reference == "" {
			continue
		}
		if _, ok := seen[link.Reference]; ok {
			continue
		}
		seen[link.Reference] = struct{}{}

		records = append(records, Record{
			Title:     strings.TrimSpace(link.Title),
			Category:  strings.TrimSpace(link.Category),
			Reference: link.Reference,
		})
	}

	return &Index{records: records}
}

// Len returns the number of records in the index.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.records)
}

// At returns the record at position i.
func (idx *Index) At(i int) Record {
	return idx.records[i]
}

// Records returns a copy of the indexed records in index order.
func (idx *Index) Records() []Record {
	if idx == nil {
		return nil
	}
	rs := make([]Record, len(idx.records))
	copy(rs, idx.records)
	return rs
}

// Fingerprint returns a hash of the indexed references and titles in order.
// Two indexes with the same fingerprint answer every query identically.
func (idx *Index) Fingerprint() uint64 {
	d := xxhash.New()
	for _, r := range idx.Records() {
		_, _ = d.WriteString(r.Reference)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(r.Title)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(r.Category)
		_, _ = d.WriteString("\x01")
	}
	return d.Sum64()
}

// FormatFingerprint renders a fingerprint as fixed-width hex, suitable for
// ETags and file names.
func FormatFingerprint(fp uint64) string {
	return fmt.Sprintf("%016x", fp)
}
