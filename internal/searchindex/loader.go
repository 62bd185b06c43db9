// Package searchindex loads the externally generated scraped-product index
// the enrichment scan matches against. The index is a static JSON document
// published alongside the scraper output; losing it degrades scans, it
// never takes the service down.
package searchindex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
)

// ErrIndexUnavailable covers every way the index can fail to load:
// unreachable, non-200, malformed payload.
var ErrIndexUnavailable = errors.New("search index unavailable")

const cacheKey = "villagekeep:search_index"

type Loader interface {
	Load(ctx context.Context) ([]catalog.ScrapedProduct, error)
}

type httpLoader struct {
	url      string
	client   *http.Client
	cache    *redis.Client
	cacheTTL time.Duration
	log      *logger.Logger
	group    singleflight.Group
}

// NewHTTPLoader builds a loader for the given index URL. cache may be nil;
// with a cache, successful fetches are stored for cacheTTL and concurrent
// scans share one fetch via singleflight either way.
func NewHTTPLoader(baseLog *logger.Logger, url string, client *http.Client, cache *redis.Client, cacheTTL time.Duration) Loader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &httpLoader{
		url:      url,
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      baseLog.With("component", "SearchIndexLoader"),
	}
}

func (l *httpLoader) Load(ctx context.Context) ([]catalog.ScrapedProduct, error) {
	// The flight is shared between concurrent callers, so it must not die
	// with whichever caller happened to start it. The HTTP client timeout
	// still bounds the fetch.
	fetchCtx := context.WithoutCancel(ctx)
	v, err, _ := l.group.Do(cacheKey, func() (interface{}, error) {
		return l.load(fetchCtx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]catalog.ScrapedProduct), nil
}

func (l *httpLoader) load(ctx context.Context) ([]catalog.ScrapedProduct, error) {
	if products, ok := l.fromCache(ctx); ok {
		return products, nil
	}

	body, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}
	products, err := decodeIndex(body)
	if err != nil {
		l.log.Warn("search index malformed", "url", l.url, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}

	l.toCache(ctx, body)
	l.log.Debug("search index loaded", "products", len(products))
	return products, nil
}

func (l *httpLoader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		l.log.Warn("search index fetch failed", "url", l.url, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		l.log.Warn("search index fetch returned non-200", "url", l.url, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrIndexUnavailable, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}
	return body, nil
}

// decodeIndex accepts both published shapes: a bare product array, and the
// scraper's `{"houses": [...]}` wrapper.
func decodeIndex(body []byte) ([]catalog.ScrapedProduct, error) {
	var direct []catalog.ScrapedProduct
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct, nil
	}
	var wrapped struct {
		Houses []catalog.ScrapedProduct `json:"houses"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Houses == nil {
		return nil, errors.New("no houses array in index document")
	}
	return wrapped.Houses, nil
}

// Cache reads and writes are best effort: a Redis outage only costs us the
// shortcut.
func (l *httpLoader) fromCache(ctx context.Context) ([]catalog.ScrapedProduct, bool) {
	if l.cache == nil {
		return nil, false
	}
	raw, err := l.cache.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			l.log.Warn("search index cache read failed", "error", err)
		}
		return nil, false
	}
	products, err := decodeIndex(raw)
	if err != nil {
		l.log.Warn("search index cache entry malformed, refetching", "error", err)
		return nil, false
	}
	return products, true
}

func (l *httpLoader) toCache(ctx context.Context, body []byte) {
	if l.cache == nil {
		return
	}
	if err := l.cache.Set(ctx, cacheKey, body, l.cacheTTL).Err(); err != nil {
		l.log.Warn("search index cache write failed", "error", err)
	}
}
