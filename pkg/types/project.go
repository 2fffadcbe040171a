package types

// Project groups tasks under a name. Tasks reference projects by ID; the
// reference is not enforced, deleting a project leaves its tasks in place.
type Project struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
