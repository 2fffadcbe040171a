// Package repo implements the per-entity repositories over flat JSON
// collection documents. Each repository owns id assignment and filtering
// for one entity type; the Store bundles them and is constructed once at
// process startup and passed to every handler.
package repo

import (
	"fmt"
	"os"
	"path/filepath"

)

// Collection file names inside the data directory.
const (
	tasksFile    = "tasks.json"
	projectsFile = "projects.json"
	usersFile    = "users.json"
	commentsFile = "comments.json"
	settingsFile = "settings.json"
)

// Store bundles the entity repositories backed by one data directory.
type Store struct {
	Tasks    *Tasks
	Projects *Projects
	Users    *Users
	Comments *Comments
	Settings *Settings
}

// Open creates the data directory if needed and loads every collection.
// Users, projects, and comments load strictly: an unreadable or corrupt
// document is a startup error. Tasks and settings fail soft to an empty
// collection and the default settings respectively.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	tasks, err := openTasks(filepath.Join(dataDir, tasksFile))
	if err != nil {
		return nil, fmt.Errorf("opening tasks: %w", err)
	}
	projects, err := openProjects(filepath.Join(dataDir, projectsFile))
	if err != nil {
		return nil, fmt.Errorf("opening projects: %w", err)
	}
	users, err := openUsers(filepath.Join(dataDir, usersFile))
	if err != nil {
		return nil, fmt.Errorf("opening users: %w", err)
	}
	comments, err := openComments(filepath.Join(dataDir, commentsFile))
	if err != nil {
		return nil, fmt.Errorf("opening comments: %w", err)
	}
	settings := openSettings(filepath.Join(dataDir, settingsFile))

	return &Store{
		Tasks:    tasks,
		Projects: projects,
		Users:    users,
		Comments: comments,
		Settings: settings,
	}, nil
}

// maxID returns the highest id produced by idOf over records, or 0. New
// records get maxID+1 at open; after that the per-repository counter only
// moves forward, so ids are never reused within a process.
func maxID[T any](records []T, idOf func(T) int) int {
	max := 0
	for _, r := range records {
		if id := idOf(r); id > max {
			max = id
		}
	}
	return max
}
