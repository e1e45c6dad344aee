package partials

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var glyphs = map[string]string{
	"github":   "GH",
	"linkedin": "in",
	"twitter":  "X",
	"envelope": "✉",
	"phone":    "☎",
	"location": "⌖",
	"code":     "</>",
	"heart":    "♥",
	"rocket":   "🚀",
	"arrow":    "↓",
	"send":     "➤",
	"check":    "✔",
}

// Icon renders a named glyph. Unknown names render a bullet.
func Icon(name string, class string) g.Node {
	glyph, ok := glyphs[name]
	if !ok {
		glyph = "•"
	}
	return h.Span(h.Class("inline-flex items-center justify-center font-semibold "+class), h.Aria("hidden", "true"), g.Text(glyph))
}
