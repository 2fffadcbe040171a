package types

// Comment is a user remark on a task. TaskID should reference an existing
// task but the reference is not enforced; deleting a task can leave dangling
// comments. Timestamp is an RFC 3339 string assigned at creation.
type Comment struct {
	ID        int    `json:"id"`
	TaskID    int    `json:"taskId"`
	UserID    string `json:"userId"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}
