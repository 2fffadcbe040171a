package server

import "github.com/mesh-intelligence/taskboard/pkg/types"

type createTaskRequest struct {
	Text        string             `json:"text"`
	AssignedTo  []string           `json:"assignedTo"`
	Tags        []types.Tag        `json:"tags"`
	DueDate     string             `json:"dueDate"`
	Priority    string             `json:"priority"`
	ProjectID   int                `json:"projectId"`
	Attachments []types.Attachment `json:"attachments"`
}

// updateTaskRequest carries a full or partial task keyed by id; absent
// fields are left unchanged.
type updateTaskRequest struct {
	ID int `json:"id"`
	types.TaskPatch
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateProjectRequest struct {
	ID int `json:"id"`
	types.ProjectPatch
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type createCommentRequest struct {
	TaskID int    `json:"taskId"`
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

type updateSettingsRequest struct {
	RegistrationOpen bool `json:"registrationOpen"`
}

// deleteByIDRequest addresses a numeric-id record for deletion.
type deleteByIDRequest struct {
	ID int `json:"id"`
}

// deleteUserRequest addresses a user by its string id.
type deleteUserRequest struct {
	ID string `json:"id"`
}
