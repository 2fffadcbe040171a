package repo

import (
	"fmt"

	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// Issue is one consistency finding reported by Verify.
type Issue struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Issue kinds.
const (
	IssueDanglingTaskRef    = "dangling-task-reference"
	IssueDanglingProjectRef = "dangling-project-reference"
	IssueStatusMismatch     = "completed-status-mismatch"
	IssueUnknownStatus      = "unknown-status"
	IssueUnknownPriority    = "unknown-priority"
	IssueUnknownRole        = "unknown-role"
)

// Verify reports cross-entity reference and field consistency issues
// without modifying any collection. None of the reported conditions are
// enforced by the write paths; dangling references appear when a task or
// project is deleted, and the completed flag and status enum move
// independently.
func (s *Store) Verify() []Issue {
	issues := []Issue{}

	projectIDs := map[int]bool{}
	for _, p := range s.Projects.List() {
		projectIDs[p.ID] = true
	}
	taskIDs := map[int]bool{}

	for _, t := range s.Tasks.List(TaskFilter{}) {
		taskIDs[t.ID] = true
		if t.ProjectID != 0 && !projectIDs[t.ProjectID] {
			issues = append(issues, Issue{
				Kind:    IssueDanglingProjectRef,
				Message: fmt.Sprintf("task %d references missing project %d", t.ID, t.ProjectID),
			})
		}
		if t.Completed != (t.Status == types.StatusDone) {
			issues = append(issues, Issue{
				Kind:    IssueStatusMismatch,
				Message: fmt.Sprintf("task %d has completed=%t but status %q", t.ID, t.Completed, t.Status),
			})
		}
		if !types.ValidStatus(t.Status) {
			issues = append(issues, Issue{
				Kind:    IssueUnknownStatus,
				Message: fmt.Sprintf("task %d has unknown status %q", t.ID, t.Status),
			})
		}
		if t.Priority != "" && !types.ValidPriority(t.Priority) {
			issues = append(issues, Issue{
				Kind:    IssueUnknownPriority,
				Message: fmt.Sprintf("task %d has unknown priority %q", t.ID, t.Priority),
			})
		}
	}

	for _, c := range s.Comments.List(CommentFilter{}) {
		if !taskIDs[c.TaskID] {
			issues = append(issues, Issue{
				Kind:    IssueDanglingTaskRef,
				Message: fmt.Sprintf("comment %d references missing task %d", c.ID, c.TaskID),
			})
		}
	}

	for _, u := range s.Users.List() {
		if !types.ValidRole(u.Role) {
			issues = append(issues, Issue{
				Kind:    IssueUnknownRole,
				Message: fmt.Sprintf("user %s has unknown role %q", u.ID, u.Role),
			})
		}
	}

	return issues
}
