package localize

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// CatalogLoader produces the translation catalog for an exact locale key
// ("fr_CA", "fr"), or reports that none exists. The catalog cache drives the
// exact-then-language-only fallback; a loader only answers for the key it is
// given.
//
// Load may block on I/O. Implementations must be safe for concurrent use;
// results are cached forever, so a loader is consulted at most a handful of
// times per locale over the process lifetime.
type CatalogLoader interface {
	Load(localeKey string) (*Catalog, bool)
}

// StaticLoader serves catalogs from an in-memory map. It backs the
// WithCatalog option and is handy in tests.
type StaticLoader struct {
	mu       sync.RWMutex
	catalogs map[string]*Catalog
}

// NewStaticLoader creates an empty static loader.
func NewStaticLoader() *StaticLoader {
	return &StaticLoader{catalogs: make(map[string]*Catalog)}
}

// Add registers messages for a locale key, replacing any previous catalog
// under that key. The message map follows the NewCatalog conventions.
func (l *StaticLoader) Add(localeKey string, messages map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.catalogs[localeKey] = NewCatalog(localeKey, messages)
}

// Load implements CatalogLoader.
func (l *StaticLoader) Load(localeKey string) (*Catalog, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.catalogs[localeKey]
	return c, ok
}

// catalogDecoders maps supported file extensions to their decoders, in
// lookup order.
var catalogDecoders = []struct {
	ext       string
	unmarshal func([]byte, any) error
}{
	{".json", json.Unmarshal},
	{".yaml", func(b []byte, v any) error { return yaml.Unmarshal(b, v) }},
	{".yml", func(b []byte, v any) error { return yaml.Unmarshal(b, v) }},
	{".toml", func(b []byte, v any) error { return toml.Unmarshal(b, v) }},
}

// FSLoader loads catalogs from files named messages_<localeKey> with a
// .json, .yaml, .yml or .toml extension at the root of an fs.FS, mirroring
// the <namespace>.messages_<localeKey> convention of compiled translation
// bundles. Works with embed.FS, so catalogs can ship inside the binary.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader over the given filesystem.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// Load implements CatalogLoader. A file that exists but cannot be decoded
// counts as a miss; the error surfaces through LoadError for callers that
// want to distinguish the cases.
func (l *FSLoader) Load(localeKey string) (*Catalog, bool) {
	c, ok, _ := l.load(localeKey)
	return c, ok
}

// LoadError is like Load but also reports decode failures.
func (l *FSLoader) LoadError(localeKey string) (*Catalog, error) {
	c, ok, err := l.load(localeKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fs.ErrNotExist
	}
	return c, nil
}

func (l *FSLoader) load(localeKey string) (*Catalog, bool, error) {
	for _, dec := range catalogDecoders {
		name := "messages_" + localeKey + dec.ext
		data, err := fs.ReadFile(l.fsys, name)
		if err != nil {
			continue
		}

		var raw map[string]any
		if err := dec.unmarshal(data, &raw); err != nil {
			return nil, false, fmt.Errorf("%w: %s: %v", ErrInvalidCatalogFile, name, err)
		}
		return NewCatalog(localeKey, raw), true, nil
	}
	return nil, false, nil
}

// multiLoader consults loaders in order and returns the first hit.
type multiLoader []CatalogLoader

func (m multiLoader) Load(localeKey string) (*Catalog, bool) {
	for _, l := range m {
		if c, ok := l.Load(localeKey); ok {
			return c, true
		}
	}
	return nil, false
}
