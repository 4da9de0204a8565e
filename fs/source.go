// Package fs provides a filesystem-backed catalog source.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/jmartel/bibliofind"
	"github.com/jmartel/bibliofind/csv"
)

// Ensure CatalogSource implements bibliofind.CatalogSource at compile time.
var _ bibliofind.CatalogSource = (*CatalogSource)(nil)

// CatalogSource loads the article catalog from the first .csv file found
// in a local directory. It is the fallback when no remote sheet is
// configured or the remote fetch fails.
type CatalogSource struct {
	dir string
}

// NewCatalogSource creates a CatalogSource reading from the given directory.
func NewCatalogSource(dir string) *CatalogSource {
	return &CatalogSource{dir: dir}
}

// Name returns the source's identifier.
func (s *CatalogSource) Name() string { return "local" }

// Load globs the directory for .csv files and decodes the first match
// (lexicographic order, for determinism). A missing directory or an empty
// glob returns EUNAVAILABLE.
func (s *CatalogSource) Load(ctx context.Context) ([]bibliofind.Article, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.csv"))
	if err != nil {
		return nil, bibliofind.Errorf(bibliofind.EINVALID, "bad sources pattern: %v", err)
	}
	if len(matches) == 0 {
		return nil, bibliofind.Errorf(bibliofind.EUNAVAILABLE, "no .csv files in %q", s.dir)
	}
	sort.Strings(matches)

	f, err := os.Open(matches[0])
	if err != nil {
		return nil, bibliofind.Errorf(bibliofind.EUNAVAILABLE, "cannot open catalog file %q: %v", matches[0], err)
	}
	defer f.Close()

	return csv.DecodeCatalog(f)
}
