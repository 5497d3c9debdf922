package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"localecheck/internal/keys"
	"localecheck/internal/project"
	"localecheck/internal/source"
)

// Current schema version - increment when UsagePayload format or the
// extraction rules change.
const diskCacheSchemaVersion uint16 = 1

var diskCacheSalt = project.StringDigest("localecheck/usages")

// DiskCache хранит извлечённые ключи по хешу содержимого файла.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// UsagePayload is what the cache stores per source file content.
type UsagePayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	Hash   project.Digest
	Usages []CachedUsage
}

// CachedUsage is a usage without its file path; the path comes from the
// file being checked, so renamed files still hit.
type CachedUsage struct {
	Key    string
	Line   uint32
	Column uint32
}

// DefaultCacheDir returns $XDG_CACHE_HOME/<app> or ~/.cache/<app>.
func DefaultCacheDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// OpenDiskCache initializes a disk cache in dir; empty dir selects the
// standard location for app.
func OpenDiskCache(dir, app string) (*DiskCache, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultCacheDir(app); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func cacheKey(f *source.File) project.Digest {
	return project.Combine(f.Hash, diskCacheSalt)
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки - подкаталог "usages".
	return filepath.Join(c.dir, "usages", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *UsagePayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key project.Digest, out *UsagePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// lookup returns the cached usages of f, rebuilt with f's path.
func (c *DiskCache) lookup(f *source.File) ([]keys.Usage, bool, error) {
	var payload UsagePayload
	key := cacheKey(f)
	ok, err := c.Get(key, &payload)
	if err != nil || !ok {
		return nil, false, err
	}
	if payload.Schema != diskCacheSchemaVersion || payload.Hash != project.Digest(f.Hash) {
		return nil, false, nil
	}
	usages := make([]keys.Usage, len(payload.Usages))
	for i, u := range payload.Usages {
		usages[i] = keys.Usage{Key: u.Key, File: f.Path, Line: u.Line, Column: u.Column}
	}
	return usages, true, nil
}

func (c *DiskCache) store(f *source.File, usages []keys.Usage) error {
	payload := &UsagePayload{
		Schema: diskCacheSchemaVersion,
		Hash:   f.Hash,
		Usages: make([]CachedUsage, len(usages)),
	}
	for i, u := range usages {
		payload.Usages[i] = CachedUsage{Key: u.Key, Line: u.Line, Column: u.Column}
	}
	return c.Put(cacheKey(f), payload)
}
