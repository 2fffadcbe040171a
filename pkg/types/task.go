package types

// Task statuses. Any status may follow any other; no transition table is
// enforced, callers drive the lifecycle.
const (
	StatusTodo       = "todo"
	StatusInProgress = "inprogress"
	StatusDone       = "done"
)

// validStatuses is the set of recognized task status values.
var validStatuses = map[string]bool{
	StatusTodo:       true,
	StatusInProgress: true,
	StatusDone:       true,
}

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// validPriorities is the set of recognized task priority values.
var validPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

// Tag is a named, colored label attached to a task.
type Tag struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Attachment is a named link to an external resource.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Task represents a single work item. The zero value of ProjectID means the
// task belongs to no project. Completed and Status are tracked independently;
// a completed task may carry any status.
type Task struct {
	ID          int          `json:"id"`
	Text        string       `json:"text"`
	Completed   bool         `json:"completed"`
	Status      string       `json:"status"`
	AssignedTo  []string     `json:"assignedTo"`
	Tags        []Tag        `json:"tags"`
	DueDate     string       `json:"dueDate,omitempty"`
	Priority    string       `json:"priority,omitempty"`
	ProjectID   int          `json:"projectId,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// ValidStatus reports whether s is a recognized task status.
func ValidStatus(s string) bool {
	return validStatuses[s]
}

// ValidPriority reports whether p is a recognized task priority.
func ValidPriority(p string) bool {
	return validPriorities[p]
}

// SetStatus sets the task status to the given value.
// Returns ErrInvalidStatus if the value is not recognized.
// Idempotent: setting the current status succeeds without error.
func (t *Task) SetStatus(status string) error {
	if !validStatuses[status] {
		return ErrInvalidStatus
	}
	t.Status = status
	return nil
}

// SetPriority sets the task priority to the given value.
// Returns ErrInvalidPriority if the value is not recognized.
func (t *Task) SetPriority(priority string) error {
	if !validPriorities[priority] {
		return ErrInvalidPriority
	}
	t.Priority = priority
	return nil
}
