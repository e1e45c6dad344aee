package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/registry"
)

// Module defines the contract for a self-contained page of the site.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register is called during startup to publish the module's services in
	// the central registry.
	Register(reg *registry.Registry) error

	// Boot is called after all modules have registered. Modules mount their
	// routes and start background work here.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown is called during graceful shutdown.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op implementations for the optional phases.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error { return nil }
