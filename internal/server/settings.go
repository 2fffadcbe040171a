package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// getSettings returns the settings record, falling back to the defaults
// when no settings document has been persisted. The fallback does not
// create the document.
func (s *Server) getSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.Settings.Get())
}

func (s *Server) updateSettings(c echo.Context) error {
	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	settings, err := s.store.Settings.SetRegistrationOpen(req.RegistrationOpen)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}
