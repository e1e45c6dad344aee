package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gorilla/sessions"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/folio/internal/appctx"
	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/handlers"
	"github.com/nfrund/folio/internal/live"
	appmiddleware "github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/module"
	"github.com/nfrund/folio/internal/pubsub"
	"github.com/nfrund/folio/internal/registry"
	"github.com/nfrund/folio/internal/rendering"
	"github.com/nfrund/folio/web"
)

// Dependencies holds the services the server is built from.
type Dependencies struct {
	Config     config.Provider
	Clock      clockwork.Clock
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   *rendering.UniversalRenderer
	Content    *content.Store
	Contexts   *appctx.Provider
	Sessions   *live.Registry
	Live       *live.Endpoint
	// Echo is optional; a new instance is created when nil.
	Echo *echo.Echo
}

func (d Dependencies) validate() error {
	switch {
	case d.Config == nil:
		return errors.New("server: config is required")
	case d.Content == nil:
		return errors.New("server: content store is required")
	case d.Contexts == nil:
		return errors.New("server: context provider is required")
	case d.Sessions == nil || d.Live == nil:
		return errors.New("server: live registry and endpoint are required")
	case d.Renderer == nil:
		return errors.New("server: renderer is required")
	}
	return nil
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider

	deps    Dependencies
	pages   *echo.Group
	modules []module.Module

	// ctx scopes background work started by the server and its modules.
	ctx    context.Context
	cancel context.CancelFunc

	shutdownOnce sync.Once
	shutdownErr  error
}

// New creates the echo instance and installs the shared middleware.
func New(deps Dependencies) (*Server, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)

	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
	e.Renderer = deps.Renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		E:      e,
		Cfg:    deps.Config,
		deps:   deps,
		pages:  e.Group("", deps.Contexts.Middleware()),
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// InitModules publishes the core services, then registers and boots every
// module. Modules mount their routes on the visitor-context group.
func (s *Server) InitModules(ctx context.Context, modules []module.Module, reg *registry.Registry) error {
	registry.Set(reg, registry.ContentKey, s.deps.Content)
	registry.Set(reg, registry.LiveKey, s.deps.Live)

	for _, m := range modules {
		slog.Debug("Registering module", "module", m.Name())
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	for _, m := range modules {
		slog.Debug("Booting module", "module", m.Name())
		if err := m.Boot(ctx, s.pages, reg); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
	}
	s.modules = modules
	slog.Info("Modules initialized", "count", len(modules))
	return nil
}

// Context is cancelled when the server shuts down.
func (s *Server) Context() context.Context { return s.ctx }
