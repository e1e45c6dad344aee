package contact

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

// LiveURL is the websocket endpoint of the contact page.
const LiveURL = "/live/contact"

// Handler serves the contact page and creates its live views.
type Handler struct {
	store    *content.Store
	renderer rendering.Renderer
	opts     Options
}

// NewHandler creates a new contact handler.
func NewHandler(store *content.Store, renderer rendering.Renderer, opts Options) *Handler {
	return &Handler{store: store, renderer: renderer, opts: opts}
}

// Get renders the page with an empty, idle form.
func (h *Handler) Get(c echo.Context) error {
	state, err := appctx.FromContext(c.Request().Context())
	if err != nil {
		return err
	}

	v := NewView(h.store.Get(), h.opts)
	page := layouts.Page{
		Title:   "Contact",
		Theme:   state.Theme(),
		Loading: state.Loading(),
		Active:  "/contact",
		LiveURL: LiveURL,
		Flash:   view.GetFlashData(c),
		Motion:  v.Motion(),
	}
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base(page, view.AdaptGomponentToTempl(v.Node())))
}

// NewLiveView is the live.Factory for the contact page.
func (h *Handler) NewLiveView(c echo.Context) (live.View, error) {
	return NewView(h.store.Get(), h.opts), nil
}
