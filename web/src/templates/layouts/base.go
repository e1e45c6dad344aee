package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/folio/internal/appctx"
	"github.com/nfrund/folio/internal/motion"
	"github.com/nfrund/folio/internal/view"
	"github.com/nfrund/folio/web/src/templates/partials"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LiveEvents are the browser events forwarded to a live session.
const LiveEvents = "pointer scroll visible input submit"

// Page is what the base layout needs to know about the current page.
type Page struct {
	Title   string
	Theme   appctx.Theme
	Loading bool
	// Active is the path highlighted in the navigation.
	Active string
	// LiveURL is the websocket endpoint of the page's live session. Pages
	// without one render statically.
	LiveURL string
	Flash   view.FlashData
	// Motion holds page-specific animations added to the shared sheet.
	Motion []motion.Descriptor
}

// Sheet returns the CSS of the shared animations plus the page's own.
func (p Page) Sheet() string {
	sheet := motion.NewSheet(motion.Presets()...)
	sheet.Add(p.Motion...)
	return sheet.CSS()
}

// Base wraps content in the site shell.
func Base(p Page, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(ctx, p, content).Render(w)
	})
}

func document(ctx context.Context, p Page, content templ.Component) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			g.If(p.Theme.Class() != "", h.Class(p.Theme.Class())),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(p.Title))),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(g.Raw(`if (window.tailwind) { tailwind.config = { darkMode: 'class' } }`)),
				h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/app.css")),
				h.StyleEl(g.Raw(p.Sheet())),
				h.Script(h.Src("/static/js/live.js"), h.Defer()),
			),
			h.Body(
				h.Class("min-h-screen bg-gradient-to-br from-purple-50 via-white to-pink-50 dark:from-gray-900 dark:via-gray-900 dark:to-purple-950 text-gray-900 dark:text-gray-100 overflow-x-hidden"),
				g.If(p.LiveURL != "", g.Group([]g.Node{
					h.Data("live-url", p.LiveURL),
					h.Data("live-events", LiveEvents),
				})),
				partials.ThemeState(p.Theme, false),
				partials.Navbar(p.Active, p.Theme, p.Loading),
				partials.Flash(p.Flash),
				h.Main(
					h.Class("relative"),
					view.AdaptTemplToGomponent(ctx, content),
				),
			),
		),
	)
}
