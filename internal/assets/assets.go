// Package assets loads scene descriptions from the embedded set and from
// user directories.
package assets

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/affinity/internal/logger"
)

//go:embed scenes/*.yaml
var builtin embed.FS

// ErrNotFound is returned when no source has the requested file.
var ErrNotFound = errors.New("asset not found")

// DefaultScene is the scene loaded when none is configured.
const DefaultScene = "default"

// Manager resolves asset paths against a stack of file systems.
type Manager struct {
	sources []fs.FS
	cache   *Cache
	mu      sync.RWMutex
}

// NewManager creates a manager that sees the embedded scenes.
func NewManager() *Manager {
	sub, err := fs.Sub(builtin, "scenes")
	if err != nil {
		panic(err)
	}
	return &Manager{
		sources: []fs.FS{sub},
		cache:   NewCache(),
	}
}

// AddDir adds a directory of scene files.
// Sources are searched in reverse order (last added = highest priority).
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrapf(err, "adding asset dir %s", dir)
	}
	if !info.IsDir() {
		return errors.Errorf("adding asset dir %s: not a directory", dir)
	}
	m.AddFS(os.DirFS(dir))
	logger.Debug("asset dir added", zap.String("dir", dir))
	return nil
}

// AddFS adds an arbitrary file system as the highest priority source.
func (m *Manager) AddFS(fsys fs.FS) {
	m.mu.Lock()
	m.sources = append(m.sources, fsys)
	m.mu.Unlock()
	m.cache.Clear()
}

// Load reads a file from the highest priority source that has it.
func (m *Manager) Load(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.sources) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.sources[i], name)
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "reading %s", name)
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "%s", name)
}

// LoadScene loads and parses a scene by name; ".yaml" is appended when the
// name has no extension.
func (m *Manager) LoadScene(name string) (*SceneFile, error) {
	file := name
	if path.Ext(file) == "" {
		file += ".yaml"
	}
	data, err := m.Load(file)
	if err != nil {
		return nil, err
	}
	f, err := ParseSceneBytes(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", name)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(path.Base(file), path.Ext(file))
	}
	logger.Debug("scene loaded",
		zap.String("scene", f.Name),
		zap.Int("objects", len(f.Objects)),
	)
	return f, nil
}

// Scenes lists the scene names visible across all sources.
func (m *Manager) Scenes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]bool)
	for _, src := range m.sources {
		matches, err := fs.Glob(src, "*.yaml")
		if err != nil {
			continue
		}
		for _, match := range matches {
			seen[strings.TrimSuffix(match, ".yaml")] = true
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// CacheStats returns cache hits and misses.
func (m *Manager) CacheStats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops every source except the embedded one.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = m.sources[:1]
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Len returns the number of cached items.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// Clear empties the cache and resets its counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
