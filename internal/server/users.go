package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// listUsers returns all users with passwords stripped.
func (s *Server) listUsers(c echo.Context) error {
	users := s.store.Users.List()
	redacted := make([]types.User, len(users))
	for i, u := range users {
		redacted[i] = u.Redacted()
	}
	return c.JSON(http.StatusOK, redacted)
}

func (s *Server) createUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing required fields"})
	}

	user, err := s.store.Users.Create(types.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, types.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing required fields"})
		case errors.Is(err, types.ErrDuplicateEmail):
			return c.JSON(http.StatusConflict, echo.Map{"message": "Email already registered"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, user.Redacted())
}

func (s *Server) deleteUser(c echo.Context) error {
	var req deleteUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing user id"})
	}

	if err := s.store.Users.Delete(req.ID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted"})
}
