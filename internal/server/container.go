package server

import (
	"github.com/jonboulle/clockwork"
	"github.com/nfrund/folio/internal/appctx"
	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/live"
	"github.com/nfrund/folio/internal/pubsub"
	"github.com/nfrund/folio/internal/rendering"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// NewContainer registers every core service. Services are built lazily on
// first use, so a container can be created before the content file exists.
func NewContainer(cfg config.Provider, fs afero.Fs) do.Injector {
	i := do.New()

	do.ProvideValue[config.Provider](i, cfg)
	do.ProvideValue[afero.Fs](i, fs)
	do.ProvideValue[clockwork.Clock](i, clockwork.NewRealClock())

	do.Provide(i, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})
	do.Provide(i, func(i do.Injector) (*content.Store, error) {
		return content.NewStore(do.MustInvoke[afero.Fs](i), cfg.GetContentPath())
	})
	do.Provide(i, func(i do.Injector) (*appctx.Provider, error) {
		theme, err := appctx.ParseTheme(cfg.GetDefaultTheme())
		if err != nil {
			return nil, err
		}
		return appctx.NewProvider(theme, do.MustInvoke[*pubsub.WatermillBridge](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*live.Registry, error) {
		return live.NewRegistry(), nil
	})
	do.Provide(i, func(i do.Injector) (*live.Endpoint, error) {
		return live.NewEndpoint(do.MustInvoke[*live.Registry](i), do.MustInvoke[clockwork.Clock](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})

	return i
}

// Resolve builds the server dependencies from the container.
func Resolve(i do.Injector) (Dependencies, error) {
	store, err := do.Invoke[*content.Store](i)
	if err != nil {
		return Dependencies{}, err
	}
	contexts, err := do.Invoke[*appctx.Provider](i)
	if err != nil {
		return Dependencies{}, err
	}
	bus := do.MustInvoke[*pubsub.WatermillBridge](i)

	return Dependencies{
		Config:     do.MustInvoke[config.Provider](i),
		Clock:      do.MustInvoke[clockwork.Clock](i),
		Publisher:  bus,
		Subscriber: bus,
		Renderer:   do.MustInvoke[*rendering.UniversalRenderer](i),
		Content:    store,
		Contexts:   contexts,
		Sessions:   do.MustInvoke[*live.Registry](i),
		Live:       do.MustInvoke[*live.Endpoint](i),
	}, nil
}
