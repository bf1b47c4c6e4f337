package echoapi

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const pingTimeout = 2 * time.Second

var endpoints = []string{
	"/api/auth/login",
	"/api/auth/verify",
	"/api/students",
	"/api/courses",
	"/api/payments",
	"/api/users",
	"/api/stats",
	"/api/system/status",
}

type (
	HomeResponse struct {
		Message           string   `json:"message"`
		Status            string   `json:"status"`
		DatabaseConnected bool     `json:"database_connected"`
		Endpoints         []string `json:"endpoints"`
	}

	SystemStatusResponse struct {
		Success           bool `json:"success"`
		SetupRequired     bool `json:"setup_required"`
		DatabaseConnected bool `json:"database_connected"`
	}
)

func (s *Server) databaseConnected(ctx context.Context) bool {
	if s.deps.DB == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.deps.DB.PingContext(ctx) == nil
}

func (s *Server) home(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HomeResponse{
		Message:           "Institute Management System API",
		Status:            "running",
		DatabaseConnected: s.databaseConnected(ctx.Request().Context()),
		Endpoints:         endpoints,
	})
}

func (s *Server) systemStatus(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, SystemStatusResponse{
		Success:           true,
		DatabaseConnected: s.databaseConnected(ctx.Request().Context()),
	})
}
