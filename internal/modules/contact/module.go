package contact

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/module"
	"github.com/nfrund/folio/internal/pubsub"
	"github.com/nfrund/folio/internal/registry"
	"github.com/nfrund/folio/internal/rendering"
)

// ContactModule implements module.Module for the contact page.
type ContactModule struct {
	module.BaseModule
	publisher  pubsub.Publisher
	subscriber pubsub.Subscriber
	renderer   rendering.Renderer
}

// Dependencies holds the services the ContactModule requires.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
}

// New creates a new ContactModule.
func New(deps Dependencies) *ContactModule {
	return &ContactModule{
		publisher:  deps.Publisher,
		subscriber: deps.Subscriber,
		renderer:   deps.Renderer,
	}
}

// Name returns the module name.
func (m *ContactModule) Name() string {
	return "contact"
}

// Boot starts the message subscriber and mounts the page.
func (m *ContactModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	if m.subscriber != nil {
		if err := NewMessageSubscriber(m.subscriber).Start(ctx); err != nil {
			return err
		}
	}

	slog.Info("Booting ContactModule: Setting up routes...")
	cfg := reg.Config()
	opts := Options{Publisher: m.publisher}
	if cfg != nil {
		opts.SubmitDelay = cfg.GetSubmitDelay()
		opts.ResetDelay = cfg.GetResetDelay()
	}

	store := registry.MustGet(reg, registry.ContentKey)
	endpoint := registry.MustGet(reg, registry.LiveKey)
	handler := NewHandler(store, m.renderer, opts)

	g.GET("/contact", handler.Get)
	g.GET(LiveURL, endpoint.Handler(handler.NewLiveView))
	return nil
}

// Shutdown is called on application termination. Open live views are
// closed by the server, which cancels their pending timers.
func (m *ContactModule) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down ContactModule...")
	return nil
}
