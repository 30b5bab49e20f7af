package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shenurtures/pkg/catalog"
	"shenurtures/pkg/speech"
)

// GET /api/symptoms
func (s *Server) handleGetSymptoms(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"success":    true,
		"categories": catalog.Grouped(),
	})
}

// GET /api/health
//
// Used by the browser on load and by external uptime checks. Always 200;
// degraded capability is reported in the body, not the status code.
func (s *Server) handleGetHealth(c echo.Context) error {
	speechReady := s.Synth != nil && s.Synth.Ready()

	status := "ok"
	if !speechReady {
		status = "degraded"
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status": status,
		"completion": map[string]any{
			"provider": s.Inferencer.Name(),
		},
		"speech": map[string]any{
			"ready":  speechReady,
			"voices": len(speech.Profiles),
		},
	})
}
