package repo

import (
	"sync"

	"github.com/mesh-intelligence/taskboard/internal/jsonstore"
	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// Settings wraps the singleton settings document. While no document has
// been persisted, Get returns the defaults without creating the file.
type Settings struct {
	mu  sync.Mutex
	doc *jsonstore.Document[types.Settings]
}

func openSettings(path string) *Settings {
	doc := jsonstore.NewDocument(path, types.DefaultSettings())
	// A missing or unreadable settings document falls back to defaults.
	_ = doc.Load()
	return &Settings{doc: doc}
}

// Get returns the current settings.
func (r *Settings) Get() types.Settings {
	return r.doc.Get()
}

// SetRegistrationOpen merges the flag into the settings and persists the
// document.
func (r *Settings) SetRegistrationOpen(open bool) (types.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.doc.Get()
	s.RegistrationOpen = open
	if err := r.doc.Save(s); err != nil {
		return types.Settings{}, err
	}
	return s, nil
}
