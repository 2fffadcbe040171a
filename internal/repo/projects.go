package repo

import (
	"sync"

	"github.com/mesh-intelligence/taskboard/internal/jsonstore"
	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// Projects is the project repository. The projects document loads strictly:
// an unreadable or corrupt file is a startup error.
type Projects struct {
	mu     sync.Mutex
	col    *jsonstore.Collection[types.Project]
	nextID int
}

func openProjects(path string) (*Projects, error) {
	col := jsonstore.NewCollection[types.Project](path, false)
	if err := col.Load(); err != nil {
		return nil, err
	}
	return &Projects{
		col:    col,
		nextID: maxID(col.Records(), func(p types.Project) int { return p.ID }) + 1,
	}, nil
}

// List returns all projects in stored order.
func (r *Projects) List() []types.Project {
	return r.col.Records()
}

// Get returns the project with the given id, or ErrNotFound.
func (r *Projects) Get(id int) (types.Project, error) {
	for _, p := range r.col.Records() {
		if p.ID == id {
			return p, nil
		}
	}
	return types.Project{}, types.ErrNotFound
}

// Create assigns an id, appends the project, and persists the collection.
func (r *Projects) Create(p types.Project) (types.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	records := append(r.col.Records(), p)
	if err := r.col.Save(records); err != nil {
		return types.Project{}, err
	}
	r.nextID++
	return p, nil
}

// Update shallow-merges the patch over the project with the given id and
// persists the collection. Returns ErrNotFound if no project has that id.
func (r *Projects) Update(id int, patch types.ProjectPatch) (types.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.col.Records()
	for i := range records {
		if records[i].ID != id {
			continue
		}
		patch.Apply(&records[i])
		if err := r.col.Save(records); err != nil {
			return types.Project{}, err
		}
		return records[i], nil
	}
	return types.Project{}, types.ErrNotFound
}

// Delete removes the project with the given id and persists the collection.
// Tasks referencing the project keep their projectId; the reference is not
// cleaned up.
func (r *Projects) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.col.Records()
	for i := range records {
		if records[i].ID == id {
			records = append(records[:i], records[i+1:]...)
			return r.col.Save(records)
		}
	}
	return types.ErrNotFound
}
