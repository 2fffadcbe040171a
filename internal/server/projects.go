package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mesh-intelligence/taskboard/pkg/types"
)

func (s *Server) listProjects(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.Projects.List())
}

func (s *Server) createProject(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	project, err := s.store.Projects.Create(types.Project{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

func (s *Server) updateProject(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	project, err := s.store.Projects.Update(req.ID, req.ProjectPatch)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Project not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, project)
}

func (s *Server) deleteProject(c echo.Context) error {
	var req deleteByIDRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	if err := s.store.Projects.Delete(req.ID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Project not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Project deleted"})
}
