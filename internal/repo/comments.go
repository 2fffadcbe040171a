package repo

import (
	"sync"
	"time"

	"github.com/mesh-intelligence/taskboard/internal/jsonstore"
	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// CommentFilter narrows List results. A nil field matches every comment.
type CommentFilter struct {
	TaskID *int
}

// Comments is the comment repository. The comments document loads strictly:
// an unreadable or corrupt file is a startup error.
type Comments struct {
	mu     sync.Mutex
	col    *jsonstore.Collection[types.Comment]
	nextID int
	now    func() time.Time
}

func openComments(path string) (*Comments, error) {
	col := jsonstore.NewCollection[types.Comment](path, false)
	if err := col.Load(); err != nil {
		return nil, err
	}
	return &Comments{
		col:    col,
		nextID: maxID(col.Records(), func(c types.Comment) int { return c.ID }) + 1,
		now:    time.Now,
	}, nil
}

// List returns the comments matching the filter, preserving stored order.
func (r *Comments) List(filter CommentFilter) []types.Comment {
	records := r.col.Records()
	if filter.TaskID == nil {
		return records
	}
	matched := []types.Comment{}
	for _, c := range records {
		if c.TaskID == *filter.TaskID {
			matched = append(matched, c)
		}
	}
	return matched
}

// Recent returns up to limit comments, newest first. Comments are stored in
// creation order, so newest-first is the stored order reversed.
func (r *Comments) Recent(limit int) []types.Comment {
	records := r.col.Records()
	recent := []types.Comment{}
	for i := len(records) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, records[i])
	}
	return recent
}

// Get returns the comment with the given id, or ErrNotFound.
func (r *Comments) Get(id int) (types.Comment, error) {
	for _, c := range r.col.Records() {
		if c.ID == id {
			return c, nil
		}
	}
	return types.Comment{}, types.ErrNotFound
}

// Create assigns an id and the creation timestamp, appends the comment, and
// persists the collection. The task reference is not checked.
func (r *Comments) Create(c types.Comment) (types.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	c.Timestamp = r.now().UTC().Format(time.RFC3339)

	records := append(r.col.Records(), c)
	if err := r.col.Save(records); err != nil {
		return types.Comment{}, err
	}
	r.nextID++
	return c, nil
}

// Delete removes the comment with the given id and persists the collection.
// Returns ErrNotFound if no comment has that id.
func (r *Comments) Delete(id int) error {
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
