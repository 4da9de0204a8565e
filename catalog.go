package bibliofind

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL is the maximum age of a cached catalog snapshot before a
// refresh is required.
const DefaultTTL = 5 * time.Minute

// Snapshot is an immutable view of the catalog at one refresh.
type Snapshot struct {
	Articles    []Article
	Tags        []string
	LastRefresh time.Time
}

// MultiSource tries catalog sources in order and returns rows from the
// first one that yields any. Sources that fail or come back empty fall
// through to the next.
type MultiSource struct {
	sources []CatalogSource
}

// NewMultiSource creates a MultiSource over the given sources.
func NewMultiSource(sources ...CatalogSource) *MultiSource {
	return &MultiSource{sources: sources}
}

// Name returns the source's identifier.
func (m *MultiSource) Name() string { return "multi" }

// Load tries each source in order. It returns the first non-empty result,
// an empty slice if every source is reachable but empty, or an
// EUNAVAILABLE error only when every source failed.
func (m *MultiSource) Load(ctx context.Context) ([]Article, error) {
	if len(m.sources) == 0 {
		return nil, nil
	}
	var lastErr error
	failures := 0
	for _, src := range m.sources {
		articles, err := src.Load(ctx)
		if err != nil {
			failures++
			lastErr = err
			continue
		}
		if len(articles) > 0 {
			return articles, nil
		}
	}
	if failures == len(m.sources) {
		return nil, Errorf(EUNAVAILABLE, "all %d catalog sources failed: %s", failures, ErrorMessage(lastErr))
	}
	return nil, nil
}

// CatalogCache holds the last-loaded catalog snapshot and refreshes it
// lazily when it is empty or older than the TTL. Concurrent callers that
// observe a stale snapshot share a single reload via singleflight; a
// failed reload leaves the previous snapshot in place and stale, so the
// next call retries.
type CatalogCache struct {
	source CatalogSource
	ttl    time.Duration
	now    func() time.Time

	group singleflight.Group

	mu     sync.Mutex
	snap   Snapshot
	loaded bool
}

// CacheOption configures a CatalogCache.
type CacheOption func(*CatalogCache)

// WithTTL sets the snapshot time-to-live. Defaults to DefaultTTL.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *CatalogCache) { c.ttl = ttl }
}

// WithClock sets the time source, for deterministic expiry in tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *CatalogCache) { c.now = now }
}

// NewCatalogCache creates a cache over the given source. The cache starts
// empty; the first Get triggers a load.
func NewCatalogCache(source CatalogSource, opts ...CacheOption) *CatalogCache {
	c := &CatalogCache{
		source: source,
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the current snapshot, reloading first if the cache is empty
// or the snapshot has outlived the TTL. When a reload fails the previous
// snapshot (possibly empty) is returned together with the error, so
// callers can degrade to what they have.
func (c *CatalogCache) Get(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	if c.loaded && c.now().Sub(c.snap.LastRefresh) <= c.ttl {
		snap := c.snap
		c.mu.Unlock()
		return snap, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do("catalog", func() (any, error) {
		articles, err := c.source.Load(ctx)
		if err != nil {
			return nil, err
		}
		snap := Snapshot{
			Articles:    articles,
			Tags:        ExtractTags(articles),
			LastRefresh: c.now(),
		}
		c.mu.Lock()
		c.snap = snap
		c.loaded = true
		c.mu.Unlock()
		return snap, nil
	})
	if err != nil {
		c.mu.Lock()
		snap := c.snap
		c.mu.Unlock()
		return snap, err
	}
	return v.(Snapshot), nil
}
