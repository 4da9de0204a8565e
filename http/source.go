package http

import (
	"context"
	"net/http"
	"time"

	"github.com/jmartel/bibliofind"
	"github.com/jmartel/bibliofind/csv"
)

// DefaultFetchTimeout is the default timeout for catalog fetches.
const DefaultFetchTimeout = 10 * time.Second

// Ensure CatalogSource implements bibliofind.CatalogSource at compile time.
var _ bibliofind.CatalogSource = (*CatalogSource)(nil)

// CatalogSource loads the article catalog from a remote sheet URL
// returning UTF-8 delimited text.
type CatalogSource struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// SourceOption configures a CatalogSource.
type SourceOption func(*CatalogSource)

// WithTimeout sets the timeout for catalog fetches.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) SourceOption {
	return func(s *CatalogSource) {
		s.timeout = d
	}
}

// NewCatalogSource creates a CatalogSource for the given URL.
func NewCatalogSource(url string, opts ...SourceOption) *CatalogSource {
	s := &CatalogSource{
		url:     url,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

// Name returns the source's identifier.
func (s *CatalogSource) Name() string { return "remote" }

// Load fetches and decodes the remote catalog. Network failures and
// non-2xx responses return EUNAVAILABLE so callers can fall back to a
// local source.
func (s *CatalogSource) Load(ctx context.Context) ([]bibliofind.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, bibliofind.Errorf(bibliofind.EINVALID, "invalid catalog URL %q: %v", s.url, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, bibliofind.Errorf(bibliofind.EUNAVAILABLE, "catalog fetch failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, bibliofind.Errorf(bibliofind.EUNAVAILABLE, "catalog fetch returned HTTP %d for %s", resp.StatusCode, s.url)
	}

	return csv.DecodeCatalog(resp.Body)
}
