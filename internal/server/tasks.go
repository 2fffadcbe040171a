package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mesh-intelligence/taskboard/internal/repo"
	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// listTasks returns all tasks, or only the tasks of one project when the
// projectId query parameter is present. No match is an empty array, not an
// error.
func (s *Server) listTasks(c echo.Context) error {
	filter := repo.TaskFilter{}
	if q := c.QueryParam("projectId"); q != "" {
		id, err := strconv.Atoi(q)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid projectId"})
		}
		filter.ProjectID = &id
	}
	return c.JSON(http.StatusOK, s.store.Tasks.List(filter))
}

func (s *Server) createTask(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	task, err := s.store.Tasks.Create(types.Task{
		Text:        req.Text,
		AssignedTo:  req.AssignedTo,
		Tags:        req.Tags,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		ProjectID:   req.ProjectID,
		Attachments: req.Attachments,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

func (s *Server) updateTask(c echo.Context) error {
	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	task, err := s.store.Tasks.Update(req.ID, req.TaskPatch)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Task not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) deleteTask(c echo.Context) error {
	var req deleteByIDRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	if err := s.store.Tasks.Delete(req.ID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Task not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Task deleted"})
}
