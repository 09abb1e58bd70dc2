// Package fs reads article catalogs from disk and writes search indexes for
// the static site.
package fs

import (
	"fmt"
	"os"

	"github.com/fwojciec/helpcenter"
	"gopkg.in/yaml.v3"
)

// LoadCatalog reads a list of records from a YAML or JSON file. Every record
// must carry a title and a reference; order is preserved as written.
func LoadCatalog(path string) ([]helpcenter.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var records []helpcenter.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, helpcenter.Errorf(helpcenter.EINVALID, "invalid catalog %s: %v", path, err)
	}

	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, helpcenter.Errorf(helpcenter.EINVALID, "catalog %s entry %d: %s", path, i+1, helpcenter.ErrorMessage(err))
		}
	}

	return records, nil
}
