package types

// TaskPatch carries a partial task update. Nil fields are left unchanged;
// non-nil fields are shallow-merged over the stored record. Slices replace
// the stored value wholesale.
type TaskPatch struct {
	Text        *string      `json:"text"`
	Completed   *bool        `json:"completed"`
	Status      *string      `json:"status"`
	AssignedTo  []string     `json:"assignedTo"`
	Tags        []Tag        `json:"tags"`
	DueDate     *string      `json:"dueDate"`
	Priority    *string      `json:"priority"`
	ProjectID   *int         `json:"projectId"`
	Attachments []Attachment `json:"attachments"`
}

// Apply merges the patch over t.
func (p TaskPatch) Apply(t *Task) {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.AssignedTo != nil {
		t.AssignedTo = p.AssignedTo
	}
	if p.Tags != nil {
		t.Tags = p.Tags
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.ProjectID != nil {
		t.ProjectID = *p.ProjectID
	}
	if p.Attachments != nil {
		t.Attachments = p.Attachments
	}
}

// ProjectPatch carries a partial project update. Nil fields are left
// unchanged.
type ProjectPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Apply merges the patch over pr.
func (p ProjectPatch) Apply(pr *Project) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
}
