package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileCache persists registry responses on disk so repeated fetches of the
// same package skip the network entirely. It is the default backend for CLI
// runs: entries survive across invocations and expire by TTL on read.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache rooted at dir, creating the
// directory if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// fileEntry is the on-disk envelope around a cached response. A zero
// Expires means the entry never expires.
type fileEntry struct {
	Payload []byte    `json:"payload"`
	Expires time.Time `json:"expires,omitempty"`
}

// Get returns the cached payload for key. Expired and undecodable entries
// are evicted and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.evict(path)
		return nil, false, nil
	}
	if !entry.Expires.IsZero() && time.Now().After(entry.Expires) {
		c.evict(path)
		return nil, false, nil
	}
	return entry.Payload, true, nil
}

// Set stores a payload under key. A ttl of zero or less means the entry
// never expires. The write goes through a temp file and rename so a
// crashed run cannot leave a half-written entry behind.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{Payload: data}
	if ttl > 0 {
		entry.Expires = time.Now().Add(ttl)
	}

	encoded, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := fmt.Sprintf("%s.tmp%d", path, os.Getpid())
	if err := os.WriteFile(tmp, encoded, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Delete removes the entry for key. Deleting an absent key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; file handles are not held between calls.
func (c *FileCache) Close() error {
	return nil
}

func (c *FileCache) evict(path string) {
	_ = os.Remove(path)
}

// path maps a key like "pypi:pkg:requests" to a file under the cache dir.
// Keys are hashed so registry URLs and versions never need escaping, with
// the first two hex chars as a fan-out subdirectory.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
