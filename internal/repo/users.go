package repo

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/taskboard/internal/jsonstore"
	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// Users is the user repository. The users document loads strictly: an
// unreadable or corrupt file is a startup error. User ids are UUID v7
// strings generated at creation, so ids are unique regardless of how many
// users have been deleted.
type Users struct {
	mu  sync.Mutex
	col *jsonstore.Collection[types.User]
}

func openUsers(path string) (*Users, error) {
	col := jsonstore.NewCollection[types.User](path, false)
	if err := col.Load(); err != nil {
		return nil, err
	}
	return &Users{col: col}, nil
}

// List returns all users in stored order, passwords included. Callers
// serializing users over the wire use types.User.Redacted.
func (r *Users) List() []types.User {
	return r.col.Records()
}

// Get returns the user with the given id, or ErrNotFound.
func (r *Users) Get(id string) (types.User, error) {
	for _, u := range r.col.Records() {
		if u.ID == id {
			return u, nil
		}
	}
	return types.User{}, types.ErrNotFound
}

// FindByEmail returns the user with the given email, or ErrNotFound.
// Email comparison is case-insensitive.
func (r *Users) FindByEmail(email string) (types.User, error) {
	for _, u := range r.col.Records() {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return types.User{}, types.ErrNotFound
}

// Create validates required fields, rejects duplicate emails, assigns a
// UUID v7 id and the default role, appends the user, and persists the
// collection. On ErrDuplicateEmail the collection is unchanged.
func (r *Users) Create(u types.User) (types.User, error) {
	if u.Name == "" || u.Email == "" || u.Password == "" {
		return types.User{}, types.ErrMissingFields
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.col.Records()
	for _, existing := range records {
		if strings.EqualFold(existing.Email, u.Email) {
			return types.User{}, types.ErrDuplicateEmail
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return types.User{}, fmt.Errorf("generating user id: %w", err)
	}
	u.ID = id.String()
	if u.Role == "" {
		u.Role = types.RoleUser
	}

	if err := r.col.Save(append(records, u)); err != nil {
		return types.User{}, err
	}
	return u, nil
}

// Delete removes the user with the given id and persists the collection.
// Returns ErrNotFound if no user has that id.
func (r *Users) Delete(id string) error {
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
