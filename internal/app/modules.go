package app

import (
	"github.com/nfrund/folio/internal/module"
	"github.com/nfrund/folio/internal/modules/contact"
	"github.com/nfrund/folio/internal/modules/home"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which pages are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		home.New(homeDeps(deps)),
		contact.New(contactDeps(deps)),
	}
}
