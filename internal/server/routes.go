package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/handlers"
	"github.com/nfrund/folio/internal/middleware"
)

// themeRate is the sustained rate of theme changes allowed per client.
const themeRate = 5

// RegisterRoutes sets up the routes that do not belong to a module.
func (s *Server) RegisterRoutes() {
	themeHandler := handlers.NewThemeHandler(s.deps.Contexts)
	healthHandler := handlers.NewHealthHandler(s.deps.Live.Sessions, s.deps.Contexts.Len)

	s.pages.POST("/theme", themeHandler.Post, middleware.RateLimiter(themeRate))

	// The projects page is linked from the navbar but not part of the site yet.
	s.pages.GET("/projects", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/")
	})

	s.E.GET("/health", healthHandler.Get)
}
