package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"
)

// Collection persists one entity collection as a JSON array in a single
// file. Reads are served from the in-process cache; Save rewrites the whole
// document and refreshes the cache.
//
// A lenient collection treats a missing or unreadable document as an empty
// collection. A strict collection seeds an empty document when the file is
// missing and fails Load when the file exists but cannot be read or decoded.
type Collection[T any] struct {
	mu      sync.RWMutex
	path    string
	lenient bool
	records []T
}

// NewCollection returns an unloaded collection backed by the file at path.
func NewCollection[T any](path string, lenient bool) *Collection[T] {
	return &Collection[T]{path: path, lenient: lenient}
}

// Path returns the backing file path.
func (c *Collection[T]) Path() string {
	return c.path
}

// Load reads the backing document into the cache. Strict collections create
// an empty document if none exists, so the file is present from first load
// onward.
func (c *Collection[T]) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		if c.lenient {
			c.records = nil
			return nil
		}
		if os.IsNotExist(err) {
			if werr := writeFileAtomic(c.path, []byte("[]\n")); werr != nil {
				return fmt.Errorf("seeding %s: %w", c.path, werr)
			}
			c.records = nil
			return nil
		}
		return fmt.Errorf("reading %s: %w", c.path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		if c.lenient {
			c.records = nil
			return nil
		}
		return fmt.Errorf("decoding %s: %w", c.path, err)
	}
	c.records = records
	return nil
}

// Records returns a copy of the cached collection, preserving order. An
// empty collection yields an empty non-nil slice so callers serialize it as
// an array.
func (c *Collection[T]) Records() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.records == nil {
		return []T{}
	}
	return slices.Clone(c.records)
}

// Save serializes records, overwrites the backing document atomically, and
// replaces the cache so subsequent reads observe the write without a fresh
// load.
func (c *Collection[T]) Save(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.path, err)
	}
	if err := writeFileAtomic(c.path, append(data, '\n')); err != nil {
		return err
	}
	c.records = records
	return nil
}
