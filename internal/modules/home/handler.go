package home

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/appctx"
	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/live"
	"github.com/nfrund/folio/internal/rendering"
	"github.com/nfrund/folio/internal/view"
	"github.com/nfrund/folio/web/src/templates/layouts"
)

// LiveURL is the websocket endpoint of the home page.
const LiveURL = "/live/home"

// Handler serves the home page and creates its live views.
type Handler struct {
	store    *content.Store
	renderer rendering.Renderer
}

// NewHandler creates a new home handler.
func NewHandler(store *content.Store, renderer rendering.Renderer) *Handler {
	return &Handler{store: store, renderer: renderer}
}

// Get renders the page as it looks before the live session attaches.
func (h *Handler) Get(c echo.Context) error {
	state, err := appctx.FromContext(c.Request().Context())
	if err != nil {
		return err
	}

	v := NewView(h.store.Get())
	page := layouts.Page{
		Title:   h.store.Get().Profile.Name,
		Theme:   state.Theme(),
		Loading: state.Loading(),
		Active:  "/",
		LiveURL: LiveURL,
		Flash:   view.GetFlashData(c),
		Motion:  v.Motion(),
	}
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base(page, view.AdaptGomponentToTempl(v.Node())))
}

// NewLiveView is the live.Factory for the home page.
func (h *Handler) NewLiveView(c echo.Context) (live.View, error) {
	return NewView(h.store.Get()), nil
}
