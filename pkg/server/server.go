package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shenurtures/pkg/config"
	"shenurtures/pkg/inference"
	"shenurtures/pkg/speech"
	"shenurtures/pkg/utils"
)

type Server struct {
	Echo       *echo.Echo
	Inferencer inference.Inferencer
	Synth      speech.Synthesizer
	Cfg        *config.Config
}

func NewServer(cfg *config.Config, inf inference.Inferencer, synth speech.Synthesizer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		Echo:       e,
		Inferencer: inf,
		Synth:      synth,
		Cfg:        cfg,
	}

	e.HTTPErrorHandler = s.handleError
	s.registerRoutes()
	return s
}

var apiEndpoints = []string{
	"POST /api/chat",
	"POST /api/symptom-check",
	"GET /api/symptoms",
	"GET /api/health",
}

func (s *Server) registerRoutes() {
	api := s.Echo.Group("/api")
	api.POST("/chat", s.handlePostChat)
	api.POST("/symptom-check", s.handlePostSymptomCheck)
	api.GET("/symptoms", s.handleGetSymptoms)
	api.GET("/health", s.handleGetHealth)

	s.Echo.RouteNotFound("/api/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]any{
			"success":   false,
			"error":     "unknown endpoint",
			"endpoints": apiEndpoints,
		})
	})

	// SPA shell and assets.
	s.Echo.Static("/", s.Cfg.PublicDir)
}

// handleError renders every error as the JSON envelope the browser
// expects. Unexpected failures become a generic 500; internal detail
// stays in the logs.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "something went wrong, please try again"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}
	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
		msg = "something went wrong, please try again"
	}

	if err := c.JSON(code, utils.ErrJSON(msg)); err != nil {
		c.Logger().Error(err)
	}
}

// timeout derives a bounded context from the request so neither external
// call can hang a handler indefinitely.
func (s *Server) timeout(c echo.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(c.Request().Context())
	}
	return context.WithTimeout(c.Request().Context(), d)
}

func (s *Server) Start(addr string) error {
	utils.Logf("Server listening at %s", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	utils.Logf("Shutting down server...")
	return s.Echo.Shutdown(ctx)
}
