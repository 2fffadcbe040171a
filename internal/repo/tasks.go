package repo

import (
	"sync"

	"github.com/mesh-intelligence/taskboard/internal/jsonstore"
	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// TaskFilter narrows List results. A nil field matches every task.
type TaskFilter struct {
	ProjectID *int
}

// Tasks is the task repository. The tasks document loads leniently: a
// missing or corrupt file yields an empty collection instead of a startup
// error.
type Tasks struct {
	mu     sync.Mutex
	col    *jsonstore.Collection[types.Task]
	nextID int
}

func openTasks(path string) (*Tasks, error) {
	col := jsonstore.NewCollection[types.Task](path, true)
	if err := col.Load(); err != nil {
		return nil, err
	}
	return &Tasks{
		col:    col,
		nextID: maxID(col.Records(), func(t types.Task) int { return t.ID }) + 1,
	}, nil
}

// List returns the tasks matching the filter, preserving stored order.
func (r *Tasks) List(filter TaskFilter) []types.Task {
	records := r.col.Records()
	if filter.ProjectID == nil {
		return records
	}
	matched := []types.Task{}
	for _, t := range records {
		if t.ProjectID == *filter.ProjectID {
			matched = append(matched, t)
		}
	}
	return matched
}

// Get returns the task with the given id, or ErrNotFound.
func (r *Tasks) Get(id int) (types.Task, error) {
	for _, t := range r.col.Records() {
		if t.ID == id {
			return t, nil
		}
	}
	return types.Task{}, types.ErrNotFound
}

// Create assigns an id and defaults, appends the task, and persists the
// collection. New tasks always start not completed with status "todo";
// priority defaults to "medium".
func (r *Tasks) Create(t types.Task) (types.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID
	t.Completed = false
	t.Status = types.StatusTodo
	if t.Priority == "" {
		t.Priority = types.PriorityMedium
	}
	if t.AssignedTo == nil {
		t.AssignedTo = []string{}
	}
	if t.Tags == nil {
		t.Tags = []types.Tag{}
	}

	records := append(r.col.Records(), t)
	if err := r.col.Save(records); err != nil {
		return types.Task{}, err
	}
	r.nextID++
	return t, nil
}

// Update shallow-merges the patch over the task with the given id and
// persists the collection. Returns ErrNotFound if no task has that id.
func (r *Tasks) Update(id int, patch types.TaskPatch) (types.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.col.Records()
	for i := range records {
		if records[i].ID != id {
			continue
		}
		patch.Apply(&records[i])
		if err := r.col.Save(records); err != nil {
			return types.Task{}, err
		}
		return records[i], nil
	}
	return types.Task{}, types.ErrNotFound
}

// Delete removes the task with the given id and persists the collection.
// Returns ErrNotFound if no task has that id. The id is never reassigned.
func (r *Tasks) Delete(id int) error {
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
