package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mesh-intelligence/taskboard/internal/repo"
)

// statsResponse aggregates collection counts for the dashboard.
type statsResponse struct {
	TotalTasks     int            `json:"totalTasks"`
	CompletedTasks int            `json:"completedTasks"`
	Progress       float64        `json:"progress"`
	TasksByStatus  map[string]int `json:"tasksByStatus"`
	TasksByProject map[int]int    `json:"tasksByProject"`
	TotalProjects  int            `json:"totalProjects"`
	TotalUsers     int            `json:"totalUsers"`
	TotalComments  int            `json:"totalComments"`
}

// getStats computes aggregate statistics over the current collections.
// Progress is the percentage of completed tasks, 0 for an empty board.
func (s *Server) getStats(c echo.Context) error {
	tasks := s.store.Tasks.List(repo.TaskFilter{})

	resp := statsResponse{
		TotalTasks:     len(tasks),
		TasksByStatus:  map[string]int{},
		TasksByProject: map[int]int{},
		TotalProjects:  len(s.store.Projects.List()),
		TotalUsers:     len(s.store.Users.List()),
		TotalComments:  len(s.store.Comments.List(repo.CommentFilter{})),
	}
	for _, t := range tasks {
		if t.Completed {
			resp.CompletedTasks++
		}
		resp.TasksByStatus[t.Status]++
		if t.ProjectID != 0 {
			resp.TasksByProject[t.ProjectID]++
		}
	}
	if resp.TotalTasks > 0 {
		resp.Progress = float64(resp.CompletedTasks) / float64(resp.TotalTasks) * 100
	}
	return c.JSON(http.StatusOK, resp)
}
