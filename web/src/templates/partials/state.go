package partials

import (
	"github.com/nfrund/folio/internal/appctx"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// ThemeStateID is the element the client reads the current theme from.
const ThemeStateID = "theme-state"

// LoadingIndicatorID is the id of the global loading indicator.
const LoadingIndicatorID = "loading-indicator"

// ThemeState carries the theme to the client script, which applies it to
// the root element. oob marks it as an out-of-band patch.
func ThemeState(theme appctx.Theme, oob bool) g.Node {
	return h.Div(
		h.ID(ThemeStateID),
		h.Data("theme", string(theme)),
		h.Class("hidden"),
		g.If(oob, hx.SwapOOB("true")),
	)
}

// LoadingIndicator shows a spinner while the visitor's loading flag is set.
func LoadingIndicator(loading bool) g.Node {
	return loadingIndicator(loading, false)
}

// LoadingPatch renders LoadingIndicator as an out-of-band patch.
func LoadingPatch(loading bool) g.Node {
	return loadingIndicator(loading, true)
}

func loadingIndicator(loading, oob bool) g.Node {
	class := "hidden"
	if loading {
		class = "inline-block w-4 h-4 border-2 border-purple-600 border-t-transparent rounded-full animate-spin"
	}
	return h.Span(
		h.ID(LoadingIndicatorID),
		h.Role("status"),
		h.Class(class),
		g.If(oob, hx.SwapOOB("true")),
		g.If(loading, h.Span(h.Class("sr-only"), g.Text("Loading"))),
	)
}
