package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Document persists a single record as a JSON object in one file. A missing
// or unreadable document yields the default value without creating the
// file; the file first appears on Save.
type Document[T any] struct {
	mu   sync.RWMutex
	path string
	def  T
	val  T
}

// NewDocument returns a document backed by the file at path, falling back
// to def while no document has been persisted.
func NewDocument[T any](path string, def T) *Document[T] {
	return &Document[T]{path: path, def: def, val: def}
}

// Load reads the backing document into the cache, or resets the cache to
// the default value when the document is missing or unreadable.
func (d *Document[T]) Load() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := os.ReadFile(d.path)
	if err != nil {
		d.val = d.def
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		d.val = d.def
		return nil
	}
	d.val = v
	return nil
}

// Get returns the cached record.
func (d *Document[T]) Get() T {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.val
}

// Save overwrites the backing document atomically and replaces the cache.
func (d *Document[T]) Save(v T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", d.path, err)
	}
	if err := writeFileAtomic(d.path, append(data, '\n')); err != nil {
		return err
	}
	d.val = v
	return nil
}
