package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/helpcenter"
)

// indexFile is the JSON document the static site loads for global search.
type indexFile struct {
	Fingerprint string              `json:"fingerprint"`
	Records     []helpcenter.Record `json:"records"`
}

// ExportIndex writes idx as JSON to path. The file is written to a
// temporary sibling and renamed into place, so readers never see a partial
// index.
func ExportIndex(path string, idx *helpcenter.Index) error {
	records := idx.Records()
	if records == nil {
		records = []helpcenter.Record{}
	}

	data, err := json.MarshalIndent(indexFile{
		Fingerprint: helpcenter.FormatFingerprint(idx.Fingerprint()),
		Records:     records,
	}, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
