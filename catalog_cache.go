package localize

import (
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// catalogCache resolves locales to translation catalogs with permanent,
// process-lifetime caching. The first resolution of a locale tries the exact
// key, then the language-only key, then settles on EmptyCatalog; whichever
// outcome wins is cached under the exact key and never recomputed, so a
// locale that failed to load keeps resolving to the same catalog instead of
// retrying the loader on every call.
type catalogCache struct {
	mu      sync.RWMutex
	entries map[string]*Catalog
	group   singleflight.Group
	loader  CatalogLoader
	logger  *slog.Logger
}

func newCatalogCache(loader CatalogLoader, logger *slog.Logger) *catalogCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &catalogCache{
		entries: make(map[string]*Catalog),
		loader:  loader,
		logger:  logger,
	}
}

// Resolve returns the catalog for the locale. Never nil: the terminal
// fallback is EmptyCatalog. Concurrent first-time resolutions of the same
// locale share a single loader call.
func (c *catalogCache) Resolve(locale Locale) *Catalog {
	key := locale.String()

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		// Someone may have stored the entry between the fast path and here.
		c.mu.RLock()
		cached, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		loaded := c.load(locale)

		c.mu.Lock()
		if prior, ok := c.entries[key]; ok {
			loaded = prior
		} else {
			c.entries[key] = loaded
		}
		c.mu.Unlock()
		return loaded, nil
	})
	return v.(*Catalog)
}

// load runs the exact-then-language-only loader fallback. The language-only
// result is still cached under the exact key by the caller, so the fallback
// work happens once per exact locale.
func (c *catalogCache) load(locale Locale) *Catalog {
	if c.loader == nil || locale.IsZero() {
		return EmptyCatalog
	}

	if cat, ok := c.loader.Load(locale.String()); ok {
		return cat
	}
	if lang := locale.WithoutRegion(); lang != locale {
		if cat, ok := c.loader.Load(lang.String()); ok {
			c.logger.Debug("using language-only translation catalog",
				slog.String("locale", locale.String()),
				slog.String("fallback", lang.String()))
			return cat
		}
	}

	c.logger.Debug("no translation catalog for locale",
		slog.String("locale", locale.String()))
	return EmptyCatalog
}

// Reset drops every cached catalog. Intended for test isolation.
func (c *catalogCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Catalog)
}
