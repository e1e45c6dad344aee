package home

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/module"
	"github.com/nfrund/folio/internal/registry"
	"github.com/nfrund/folio/internal/rendering"
)

// HomeModule implements module.Module for the landing page.
type HomeModule struct {
	module.BaseModule
	renderer rendering.Renderer
}

// Dependencies holds the services the HomeModule requires.
type Dependencies struct {
	Renderer rendering.Renderer
}

// New creates a new HomeModule.
func New(deps Dependencies) *HomeModule {
	return &HomeModule{renderer: deps.Renderer}
}

// Name returns the module name.
func (m *HomeModule) Name() string {
	return "home"
}

// Boot mounts the page and its live endpoint.
func (m *HomeModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting HomeModule: Setting up routes...")

	store := registry.MustGet(reg, registry.ContentKey)
	endpoint := registry.MustGet(reg, registry.LiveKey)
	handler := NewHandler(store, m.renderer)

	g.GET("/", handler.Get)
	g.GET(LiveURL, endpoint.Handler(handler.NewLiveView))
	return nil
}
