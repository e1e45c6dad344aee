package app

import (
	"github.com/nfrund/folio/internal/modules/contact"
	"github.com/nfrund/folio/internal/modules/home"
	"github.com/nfrund/folio/internal/pubsub"
	"github.com/nfrund/folio/internal/rendering"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
}

// homeDeps creates the dependency struct for the home module.
func homeDeps(deps Dependencies) home.Dependencies {
	return home.Dependencies{
		Renderer: deps.Renderer,
	}
}

// contactDeps creates the dependency struct for the contact module.
func contactDeps(deps Dependencies) contact.Dependencies {
	return contact.Dependencies{
		Publisher:  deps.Publisher,
		Subscriber: deps.Subscriber,
		Renderer:   deps.Renderer,
	}
}
