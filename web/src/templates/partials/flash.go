package partials

import (
	"github.com/nfrund/folio/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Flash renders one-shot messages stored by a previous request.
func Flash(data view.FlashData) g.Node {
	if data.Empty() {
		return nil
	}
	return h.Div(
		h.ID("flash"),
		h.Class("fixed top-20 right-4 z-50 space-y-2"),
		g.Map(data.Success, func(msg string) g.Node {
			return h.P(h.Class("px-4 py-2 rounded-xl bg-green-100 text-green-800 shadow"), g.Text(msg))
		}),
		g.Map(data.Error, func(msg string) g.Node {
			return h.P(h.Class("px-4 py-2 rounded-xl bg-red-100 text-red-800 shadow"), g.Text(msg))
		}),
	)
}
