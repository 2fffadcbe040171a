package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mesh-intelligence/taskboard/internal/repo"
	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// listComments returns all comments, the comments of one task when the
// taskId query parameter is present, or the newest comments first when
// limit is present.
func (s *Server) listComments(c echo.Context) error {
	if q := c.QueryParam("limit"); q != "" {
		limit, err := strconv.Atoi(q)
		if err != nil || limit < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid limit"})
		}
		return c.JSON(http.StatusOK, s.store.Comments.Recent(limit))
	}

	filter := repo.CommentFilter{}
	if q := c.QueryParam("taskId"); q != "" {
		id, err := strconv.Atoi(q)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid taskId"})
		}
		filter.TaskID = &id
	}
	return c.JSON(http.StatusOK, s.store.Comments.List(filter))
}

func (s *Server) createComment(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	comment, err := s.store.Comments.Create(types.Comment{
		TaskID: req.TaskID,
		UserID: req.UserID,
		Text:   req.Text,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

func (s *Server) deleteComment(c echo.Context) error {
	var req deleteByIDRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	if err := s.store.Comments.Delete(req.ID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Comment not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Comment deleted"})
}
