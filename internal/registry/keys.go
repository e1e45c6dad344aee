package registry

import (
	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/live"
)

// Keys for the services shared by every module.
const (
	ContentKey Key[*content.Store] = "site.content"
	LiveKey    Key[*live.Endpoint] = "site.live"
)
