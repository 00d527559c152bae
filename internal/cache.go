package internal

import (
	"crypto/md5"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	tt "github.com/gnolang/proplogic/internal/types"
)

const (
	cacheFileName   = "proplogic_cache.gob"
	defaultCacheAge = 24 * time.Hour
)

// fileStamp identifies one version of a file.
type fileStamp struct {
	Hash    string
	ModTime time.Time
}

func (s fileStamp) equal(other fileStamp) bool {
	return s.Hash == other.Hash && s.ModTime.Equal(other.ModTime)
}

// CacheEntry holds the issues found in one version of a formula file under
// one rule table.
type CacheEntry struct {
	Stamp     fileStamp
	RuleTable string
	Issues    []tt.Issue
	CreatedAt time.Time
}

// cacheFile is the on-disk layout.
type cacheFile struct {
	Entries      map[string]CacheEntry
	Dependencies map[string]string
}

// Cache stores the issues of checked files on disk. An entry is reused while
// the file, the rule table it was checked with and every dependency file
// (typically the configuration) are unchanged.
type Cache struct {
	CacheDir     string
	mutex        sync.Mutex
	entries      map[string]CacheEntry
	maxAge       time.Duration
	dependencies map[string]string // path -> hash when the cache was opened
}

// NewCache opens the cache stored in cacheDir, creating the directory when
// needed. Stored entries are dropped when a dependency changed since they
// were written.
func NewCache(cacheDir string, dependencies ...string) (*Cache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	c := &Cache{
		CacheDir:     cacheDir,
		entries:      make(map[string]CacheEntry),
		maxAge:       defaultCacheAge,
		dependencies: make(map[string]string, len(dependencies)),
	}
	for _, dep := range dependencies {
		stamp, err := stampFile(dep)
		if err != nil {
			return nil, fmt.Errorf("failed to hash dependency %s: %w", dep, err)
		}
		c.dependencies[dep] = stamp.Hash
	}

	stored, err := c.load()
	if err != nil {
		return nil, fmt.Errorf("failed to load cache: %w", err)
	}
	if stored != nil && sameHashes(stored.Dependencies, c.dependencies) {
		c.entries = stored.Entries
	}
	return c, nil
}

func (c *Cache) path() string {
	return filepath.Join(c.CacheDir, cacheFileName)
}

func (c *Cache) load() (*cacheFile, error) {
	f, err := os.Open(c.path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var stored cacheFile
	if err := gob.NewDecoder(f).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.path(), err)
	}
	if stored.Entries == nil {
		stored.Entries = make(map[string]CacheEntry)
	}
	return &stored, nil
}

func (c *Cache) save() error {
	f, err := os.Create(c.path())
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(cacheFile{Entries: c.entries, Dependencies: c.dependencies}); err != nil {
		return fmt.Errorf("failed to encode cache file: %w", err)
	}
	return nil
}

// Set records the issues found in filename when checked under ruleTable.
func (c *Cache) Set(filename, ruleTable string, issues []tt.Issue) error {
	stamp, err := stampFile(filename)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[filename] = CacheEntry{
		Stamp:     stamp,
		RuleTable: ruleTable,
		Issues:    issues,
		CreatedAt: time.Now(),
	}
	return c.save()
}

// Get returns the cached issues of filename. Entries that are stale, or
// that were checked under another rule table, are evicted.
func (c *Cache) Get(filename, ruleTable string) ([]tt.Issue, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, ok := c.entries[filename]
	if !ok {
		return nil, false
	}
	if !c.fresh(filename, ruleTable, entry) {
		delete(c.entries, filename)
		return nil, false
	}
	return entry.Issues, true
}

func (c *Cache) fresh(filename, ruleTable string, entry CacheEntry) bool {
	if entry.RuleTable != ruleTable || time.Since(entry.CreatedAt) > c.maxAge {
		return false
	}
	stamp, err := stampFile(filename)
	if err != nil || !stamp.equal(entry.Stamp) {
		return false
	}
	for dep, hash := range c.dependencies {
		current, err := stampFile(dep)
		if err != nil || current.Hash != hash {
			return false
		}
	}
	return true
}

func (c *Cache) SetMaxAge(duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.maxAge = duration
}

// InvalidateAll empties the cache, on disk too.
func (c *Cache) InvalidateAll() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]CacheEntry)
	return c.save()
}

func sameHashes(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// stampFile hashes the content of filename and records its modification time.
func stampFile(filename string) (fileStamp, error) {
	f, err := os.Open(filename)
	if err != nil {
		return fileStamp{}, err
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return fileStamp{}, fmt.Errorf("failed to hash %s: %w", filename, err)
	}
	info, err := f.Stat()
	if err != nil {
		return fileStamp{}, err
	}
	return fileStamp{Hash: hex.EncodeToString(h.Sum(nil)), ModTime: info.ModTime()}, nil
}
