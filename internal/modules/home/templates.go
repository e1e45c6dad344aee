package home

import (
	"fmt"
	"time"

	"github.com/nfrund/folio/internal/background"
	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/motion"
	"github.com/nfrund/folio/web/src/templates/partials"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Element ids patched by the live session.
const (
	CursorID   = "cursor-follower"
	ParallaxID = "hero-parallax"
	HeroID     = "hero"
	StatsID    = "stats"
	CTAID      = "cta"
)

// Motion returns the page-specific animations the layout must declare.
func (v *View) Motion() []motion.Descriptor {
	return []motion.Descriptor{v.cta.Reveal.Descriptor()}
}

// Node renders the page body.
func (v *View) Node() g.Node {
	return g.Group([]g.Node{
		v.background.Node(),
		background.AmbientNode(AmbientID, v.ambient),
		v.cursorNode(false),
		v.parallaxNode(false),
		h.Section(
			h.ID(HeroID),
			h.Class("min-h-screen flex items-center justify-center pt-20 px-4"),
			v.heroContainerNode(false),
		),
		v.statsNode(false),
		v.ctaNode(false),
	})
}

func (v *View) patch(nodes ...g.Node) {
	if v.session == nil {
		return
	}
	v.session.Patch(nodes...)
}

func oob(on bool) g.Node {
	return g.If(on, hx.SwapOOB("true"))
}

// revealed marks a shown section so the page can report it after a
// reconnect.
func revealed(s *motion.Stage, trigger motion.Trigger) g.Node {
	return g.If(s.Visible(), h.Data("live-revealed", string(trigger)))
}

func (v *View) cursorNode(o bool) g.Node {
	return h.Div(
		h.ID(CursorID),
		oob(o),
		h.Class("bg-purple-500/30 mix-blend-difference"),
		h.Style(fmt.Sprintf("transform: translate(%gpx, %gpx);", v.pointer.X-12, v.pointer.Y-12)),
	)
}

// parallaxNode is a style rule rather than an inline style so that scroll
// patches never restart the hero's own animations.
func (v *View) parallaxNode(o bool) g.Node {
	t := motion.HeroParallax(v.progress)
	return h.StyleEl(h.ID(ParallaxID), oob(o), g.Raw("#"+HeroID+" { "+t.Style()+" }"))
}

func (v *View) heroContainerNode(o bool) g.Node {
	p := v.content.Profile
	item := func(i int, class string, children ...g.Node) g.Node {
		return h.Div(h.Class(class), h.Style(v.hero.ItemStyle(i)), g.Group(children))
	}
	return h.Div(
		h.ID("hero-container"),
		oob(o),
		h.Data("live-visible", string(TriggerHero)),
		revealed(&v.hero, TriggerHero),
		h.Class("max-w-4xl mx-auto text-center relative z-10"),

		item(0, "mb-8 inline-block",
			h.Div(h.Class("relative"), h.Style(motion.Float.Style()),
				h.Div(h.Class("absolute -inset-4 bg-gradient-to-r from-purple-600 to-pink-600 rounded-full blur-lg opacity-75"), h.Style(motion.Glow.Style())),
				h.Img(h.Src(p.Image), h.Alt(p.Name), h.Width("200"), h.Height("200"),
					h.Class("relative rounded-full border-4 border-white dark:border-gray-800 shadow-2xl")),
			),
		),

		item(1, "mb-6",
			h.H1(h.Class("text-5xl md:text-7xl font-bold mb-4"),
				h.Span(h.Class("block text-gray-800 dark:text-white"), g.Text(p.Greeting)),
				h.Span(h.Class("block gradient-text"), h.Style(motion.GradientSlide.Style()), g.Text(p.Name)),
			),
		),

		item(2, "text-xl md:text-2xl text-gray-600 dark:text-gray-300 mb-8 max-w-3xl mx-auto",
			h.P(
				g.Text(p.Role+" "),
				h.Span(h.Class("inline-block text-purple-600 dark:text-purple-400 font-semibold"), h.Style(motion.Pulse.Style()), g.Text(p.Highlight)),
				g.If(p.Tagline != "", g.Text(" "+p.Tagline)),
			),
		),

		item(3, "flex justify-center gap-6 mb-12", socialLinks(v.content.Socials)),

		item(4, "flex flex-col sm:flex-row gap-4 justify-center items-center mb-16",
			h.A(h.Href("/projects"),
				h.Class("card-hover relative flex items-center gap-2 px-8 py-4 bg-gradient-to-r from-purple-600 to-pink-600 text-white rounded-full font-semibold text-lg shadow-lg"),
				partials.Icon("rocket", ""), g.Text("See My Projects"),
			),
			h.A(h.Href("/contact"),
				h.Class("card-hover px-8 py-4 border-2 border-purple-600 text-purple-600 dark:text-purple-400 rounded-full font-semibold text-lg hover:bg-purple-600 hover:text-white"),
				g.Text("Contact Me"),
			),
		),

		item(5, "absolute bottom-8 left-1/2 -translate-x-1/2",
			h.Div(h.Class("flex flex-col items-center text-gray-500 dark:text-gray-400"), h.Style(motion.ScrollHint.Style()),
				h.Span(h.Class("text-sm mb-2"), g.Text("Scroll down")),
				partials.Icon("arrow", ""),
			),
		),
	)
}

func socialLinks(socials []content.Social) g.Node {
	return g.Group(g.Map(indexed(socials), func(s indexedSocial) g.Node {
		return h.A(
			h.Href(s.Href), h.Target("_blank"), h.Rel("noopener noreferrer"),
			h.Aria("label", s.Label),
			h.Class("social-link p-4 rounded-full bg-white/80 dark:bg-gray-800/80 backdrop-blur-sm shadow-lg "+s.Hover),
			h.Style(motion.FadeUp.After(SocialDelay(s.index)).Style()),
			partials.Icon(s.Icon, "w-6 h-6"),
		)
	}))
}

type indexedSocial struct {
	content.Social
	index int
}

func indexed(socials []content.Social) []indexedSocial {
	out := make([]indexedSocial, len(socials))
	for i, s := range socials {
		out[i] = indexedSocial{Social: s, index: i}
	}
	return out
}

// SocialDelay is the fade-in delay of the i-th social link.
func SocialDelay(i int) time.Duration {
	return time.Second + time.Duration(i)*100*time.Millisecond
}

// StatNumberDelay is the pop delay of the i-th stat number.
func StatNumberDelay(i int) time.Duration {
	return time.Duration(i) * 100 * time.Millisecond
}

// StatIconDelay is the wiggle offset of the i-th stat icon.
func StatIconDelay(i int) time.Duration {
	return time.Duration(i) * 500 * time.Millisecond
}

func (v *View) statsNode(o bool) g.Node {
	cards := make([]g.Node, len(v.content.Stats))
	for i, s := range v.content.Stats {
		number := "transform: scale(0);"
		if v.stats.Visible() {
			number = motion.ZoomIn.After(StatNumberDelay(i)).Style()
		}
		cards[i] = h.Div(
			h.Class("card-hover text-center p-8 rounded-2xl bg-white/80 dark:bg-gray-800/80 backdrop-blur-sm shadow-lg"),
			h.Style(v.stats.ItemStyle(i)),
			h.Div(h.Class("text-4xl mb-4 "+s.Color), h.Style(motion.Wiggle.After(StatIconDelay(i)).Style()),
				partials.Icon(s.Icon, "mx-auto"),
			),
			h.H3(h.Class("text-3xl font-bold text-gray-800 dark:text-white mb-2"), h.Style(number), g.Text(s.Number)),
			h.P(h.Class("text-gray-600 dark:text-gray-300"), g.Text(s.Label)),
		)
	}
	return h.Section(
		h.ID(StatsID),
		oob(o),
		h.Data("live-visible", string(TriggerStats)),
		revealed(&v.stats, TriggerStats),
		h.Class("py-20 px-4"),
		h.Div(h.Class("max-w-6xl mx-auto grid grid-cols-1 md:grid-cols-3 gap-8"), g.Group(cards)),
	)
}

func (v *View) ctaNode(o bool) g.Node {
	cta := v.content.CTA
	return h.Section(
		h.ID(CTAID),
		oob(o),
		h.Data("live-visible", string(TriggerCTA)),
		revealed(&v.cta, TriggerCTA),
		h.Class("py-20 px-4 text-center"),
		h.Style(v.cta.ItemStyle(0)),
		h.Div(h.Class("max-w-3xl mx-auto"),
			h.H2(h.Class("text-4xl md:text-5xl font-bold text-gray-800 dark:text-white mb-6"), h.Style(motion.Breathe.Style()), g.Text(cta.Title)),
			g.If(cta.Body != "", h.P(h.Class("text-xl text-gray-600 dark:text-gray-300 mb-8"), g.Text(cta.Body))),
			h.A(h.Href("/contact"),
				h.Class("card-hover inline-block px-12 py-4 bg-gradient-to-r from-purple-600 to-pink-600 text-white rounded-full font-semibold text-xl shadow-xl"),
				g.Text(cta.Button+" "), partials.Icon("rocket", ""),
			),
		),
	)
}
