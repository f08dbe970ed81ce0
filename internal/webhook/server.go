// Package webhook exposes the skill endpoint over HTTP.
package webhook

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"voicetutor/internal/skill"
)

type Server struct {
	e       *echo.Echo
	handler *skill.Handler
}

func New(handler *skill.Handler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{e: e, handler: handler}
	e.POST("/skill", s.handleSkill)
	e.GET("/healthz", s.handleHealth)
	return s
}

func (s *Server) handleSkill(c echo.Context) error {
	var env skill.RequestEnvelope
	if err := c.Bind(&env); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request envelope")
	}

	resp, err := s.handler.Handle(c.Request().Context(), env)
	if err != nil {
		if errors.Is(err, skill.ErrUnhandledRequest) {
			log.Printf("unhandled platform request: %v", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
