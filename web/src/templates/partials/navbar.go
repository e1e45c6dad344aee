// Package partials holds fragments shared by every page.
package partials

import (
	"strconv"

	"github.com/nfrund/folio/internal/appctx"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

type navLink struct {
	href  string
	label string
}

var navLinks = []navLink{
	{"/", "Home"},
	{"/projects", "Projects"},
	{"/contact", "Contact"},
}

// Navbar is the fixed top navigation. active is the path of the current
// page and loading mirrors the visitor's loading flag.
func Navbar(active string, theme appctx.Theme, loading bool) g.Node {
	return h.Nav(
		h.Class("fixed top-0 inset-x-0 z-50 backdrop-blur-md bg-white/70 dark:bg-gray-900/70 border-b border-purple-200/40 dark:border-purple-800/40"),
		h.Div(
			h.Class("max-w-6xl mx-auto flex items-center justify-between px-4 py-3"),
			h.A(h.Href("/"), h.Class("font-bold text-lg bg-gradient-to-r from-purple-600 to-pink-600 bg-clip-text text-transparent"), g.Text("folio")),
			h.Ul(
				h.Class("flex items-center gap-6"),
				g.Map(navLinks, func(l navLink) g.Node {
					return h.Li(h.A(
						h.Href(l.href),
						g.If(l.href == active, h.Aria("current", "page")),
						h.Class("text-gray-700 dark:text-gray-200 hover:text-purple-600 transition-colors"),
						g.Text(l.label),
					))
				}),
			),
			h.Div(h.Class("flex items-center gap-3"),
				LoadingIndicator(loading),
				ThemeSwitcher(theme),
			),
		),
	)
}

type themeOption struct {
	theme appctx.Theme
	glyph string
}

var themeOptions = []themeOption{
	{appctx.ThemeLight, "☀"},
	{appctx.ThemeDark, "☾"},
	{appctx.ThemeSystem, "◐"},
}

// ThemeSwitcher posts the chosen theme. It works as a plain form without
// htmx.
func ThemeSwitcher(current appctx.Theme) g.Node {
	return h.Form(
		h.ID("theme-switcher"),
		h.Method("post"), h.Action("/theme"),
		hx.Post("/theme"), hx.Swap("none"),
		h.Class("flex rounded-full bg-gray-100 dark:bg-gray-800 p-1"),
		g.Map(themeOptions, func(o themeOption) g.Node {
			selected := o.theme == current
			class := "px-2 py-1 rounded-full text-sm"
			if selected {
				class += " bg-white dark:bg-gray-700 shadow"
			}
			return h.Button(
				h.Type("submit"), h.Name("theme"), h.Value(string(o.theme)),
				h.Title(string(o.theme)),
				h.Aria("pressed", strconv.FormatBool(selected)),
				h.Class(class),
				g.Text(o.glyph),
			)
		}),
	)
}
