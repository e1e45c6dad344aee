package contact

import (
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
	PanelID      = "contact-panel"
	FormColumnID = "form-column"
	SideColumnID = "side-column"
	SubmitID     = "contact-submit"
)

var (
	titleReveal = motion.Reveal{
		Name:   "contact-title",
		From:   motion.Pose{Scale: 0.5, Opacity: 0},
		Spring: motion.Spring{Bounce: 0.4},
	}
	introReveal = motion.Reveal{
		Name:     "contact-intro",
		From:     motion.Pose{Y: 20, Opacity: 0},
		Spring:   motion.DefaultSpring,
		Duration: 500 * time.Millisecond,
	}
)

type fieldSpec struct {
	label       string
	kind        string
	placeholder string
}

var fieldSpecs = map[string]fieldSpec{
	FieldName:    {"Full Name", "text", "Enter your full name"},
	FieldEmail:   {"Email Address", "email", "your.email@example.com"},
	FieldSubject: {"Subject", "text", "What is your message about?"},
	FieldMessage: {"Message", "textarea", "Tell me about your project or idea..."},
}

const inputClass = "w-full px-4 py-3 rounded-xl border border-gray-300 dark:border-gray-600 bg-white/50 dark:bg-gray-700/50 backdrop-blur-sm focus:ring-2 focus:ring-purple-500 focus:border-transparent outline-none transition-all"

// Motion returns the page-specific animations the layout must declare.
func (v *View) Motion() []motion.Descriptor {
	return []motion.Descriptor{titleReveal.Descriptor(), introReveal.Descriptor()}
}

// Node renders the page body.
func (v *View) Node() g.Node {
	return g.Group([]g.Node{
		v.background.Node(),
		background.AmbientNode(AmbientID, v.ambient),
		v.hero(),
		h.Div(h.Class("relative max-w-7xl mx-auto px-4 pb-20"),
			h.Div(h.Class("grid lg:grid-cols-2 gap-12"),
				v.formColumn(false),
				v.sideColumn(false),
			),
		),
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

func (v *View) hero() g.Node {
	return h.Section(
		h.Class("relative pt-32 pb-16 px-4"),
		h.Style(motion.FadeUp.Style()),
		h.Div(h.Class("max-w-4xl mx-auto text-center"),
			h.H1(h.Class("text-5xl md:text-6xl font-bold mb-6"),
				h.Style(titleReveal.Descriptor().After(200*time.Millisecond).Style()),
				h.Span(h.Class("text-gray-800 dark:text-white"), g.Text("Let's ")),
				h.Span(h.Class("bg-gradient-to-r from-purple-600 to-pink-600 bg-clip-text text-transparent"), g.Text("Connect")),
			),
			g.If(v.content.ContactIntro != "", h.P(
				h.Class("text-xl text-gray-600 dark:text-gray-300 mb-12 max-w-2xl mx-auto"),
				h.Style(introReveal.Descriptor().After(400*time.Millisecond).Style()),
				g.Text(v.content.ContactIntro),
			)),
		),
	)
}

func (v *View) formColumn(o bool) g.Node {
	return h.Div(
		h.ID(FormColumnID),
		oob(o),
		h.Data("live-visible", string(TriggerForm)),
		g.If(v.stage.Visible(), h.Data("live-revealed", string(TriggerForm))),
		h.Class("relative"),
		h.Div(
			h.Class("bg-white/80 dark:bg-gray-800/80 backdrop-blur-sm rounded-3xl p-8 shadow-2xl border border-purple-200/50 dark:border-purple-800/50"),
			h.Style(v.stage.ItemStyle(0)),
			h.H2(h.Class("text-3xl font-bold text-gray-800 dark:text-white mb-6"), g.Text("Send Message")),
			v.panel(false),
		),
	)
}

// panel renders exactly one of the form and the confirmation.
func (v *View) panel(o bool) g.Node {
	if v.machine.Phase() == PhaseSubmitted {
		return h.Div(
			h.ID(PanelID),
			oob(o),
			h.Class("text-center py-12"),
			h.Style(motion.ZoomIn.Style()),
			h.Div(h.Class("text-6xl text-green-500 mb-4"), h.Style(motion.Pop.Style()), partials.Icon("check", "mx-auto")),
			h.H3(h.Class("text-2xl font-bold text-gray-800 dark:text-white mb-2"), g.Text("Message Sent!")),
			h.P(h.Class("text-gray-600 dark:text-gray-300"), g.Text("Thank you! I'll get back to you soon.")),
		)
	}

	busy := v.machine.SubmitDisabled()
	fields := make([]g.Node, len(Fields))
	for i, f := range Fields {
		fields[i] = v.fieldNode(f, false)
	}
	return h.Div(
		h.ID(PanelID),
		oob(o),
		h.Form(
			h.ID("contact-form"),
			h.Data("live-submit", ""),
			h.Class("space-y-6"),
			g.Group(fields),
			v.invalidNotice(),
			h.Button(
				h.ID(SubmitID),
				h.Type("submit"),
				g.If(busy, h.Disabled()),
				g.If(busy, h.Aria("busy", "true")),
				h.Class("card-hover w-full py-4 bg-gradient-to-r from-purple-600 to-pink-600 text-white rounded-xl font-semibold text-lg shadow-lg disabled:opacity-70 disabled:cursor-not-allowed flex items-center justify-center gap-2"),
				g.If(busy, h.Span(h.Class("w-5 h-5 border-2 border-white border-t-transparent rounded-full"), h.Style(motion.Spin.Style()))),
				g.If(!busy, g.Group([]g.Node{partials.Icon("send", ""), g.Text("Send Message")})),
			),
		),
	)
}

func (v *View) invalidNotice() g.Node {
	invalid := v.machine.Invalid()
	if invalid == nil {
		return nil
	}
	return h.P(h.ID("contact-invalid"), h.Role("alert"), h.Class("text-sm text-red-600"), g.Text("Please fill in every field."))
}

func (v *View) missing(field string) bool {
	invalid := v.machine.Invalid()
	return invalid != nil && invalid.Has(field)
}

// fieldNode renders one labelled control. Its value is always the last
// committed input.
func (v *View) fieldNode(field string, o bool) g.Node {
	spec := fieldSpecs[field]
	value := v.machine.Form().Value(field)
	missing := v.missing(field)

	class := inputClass
	if missing {
		class += " field-error"
	}
	attrs := []g.Node{
		h.ID("input-" + field),
		h.Name(field),
		h.Data("live-field", field),
		h.Required(),
		h.Placeholder(spec.placeholder),
		g.If(missing, h.Aria("invalid", "true")),
	}

	var control g.Node
	if spec.kind == "textarea" {
		control = h.Textarea(g.Group(attrs), h.Rows("5"), h.Class(class+" resize-none"), g.Text(value))
	} else {
		control = h.Input(g.Group(attrs), h.Type(spec.kind), h.Class(class), h.Value(value))
	}

	return h.Div(
		h.ID("field-"+field),
		oob(o),
		h.Label(h.For("input-"+field), h.Class("block text-sm font-medium text-gray-700 dark:text-gray-300 mb-2"), g.Text(spec.label)),
		control,
	)
}

func (v *View) sideColumn(o bool) g.Node {
	c := v.content
	return h.Div(
		h.ID(SideColumnID),
		oob(o),
		h.Class("space-y-8"),

		h.Div(h.Style(v.stage.ItemStyle(0)),
			h.H2(h.Class("text-3xl font-bold text-gray-800 dark:text-white mb-6"), g.Text("Get In Touch")),
			h.Div(h.Class("space-y-4"), g.Map(c.ContactCards, contactCard)),
		),

		h.Div(h.Style(v.stage.ItemStyle(1)),
			h.H3(h.Class("text-2xl font-bold text-gray-800 dark:text-white mb-6"), g.Text("Follow Me")),
			h.Div(h.Class("flex gap-4"), g.Map(c.Follow, followLink)),
		),

		h.Div(h.Style(v.stage.ItemStyle(2)),
			h.Class("p-6 bg-gradient-to-r from-green-400/20 to-blue-400/20 dark:from-green-600/20 dark:to-blue-600/20 backdrop-blur-sm rounded-2xl border border-green-200/50 dark:border-green-800/50"),
			h.Div(h.Class("flex items-center gap-3 mb-2"),
				h.Div(h.Class("w-3 h-3 bg-green-500 rounded-full"), h.Style(motion.Beacon.Style())),
				h.H3(h.Class("font-semibold text-gray-800 dark:text-white"), g.Text("Available for Projects")),
			),
			h.P(h.Class("text-gray-600 dark:text-gray-300 text-sm"), g.Text(c.Notices.Availability)),
		),

		h.Div(h.Style(v.stage.ItemStyle(3)),
			h.Class("p-6 bg-gradient-to-r from-purple-400/20 to-pink-400/20 dark:from-purple-600/20 dark:to-pink-600/20 backdrop-blur-sm rounded-2xl border border-purple-200/50 dark:border-purple-800/50"),
			h.H3(h.Class("font-semibold text-gray-800 dark:text-white mb-2"), g.Text("Quick Response")),
			h.P(h.Class("text-gray-600 dark:text-gray-300 text-sm"), g.Text(c.Notices.ResponseTime)),
		),
	)
}

func contactCard(card content.ContactCard) g.Node {
	return h.A(
		h.Href(card.Link), h.Target("_blank"), h.Rel("noopener noreferrer"),
		h.Class("card-hover block p-6 bg-white/80 dark:bg-gray-800/80 backdrop-blur-sm rounded-2xl shadow-lg border border-gray-200/50 dark:border-gray-700/50 group"),
		h.Div(h.Class("flex items-center gap-4"),
			h.Div(h.Class("p-3 rounded-full bg-gray-100 dark:bg-gray-700 group-hover:scale-110 transition-transform "+card.Color),
				partials.Icon(card.Icon, "w-6 h-6"),
			),
			h.Div(
				h.H3(h.Class("font-semibold text-gray-800 dark:text-white"), g.Text(card.Title)),
				h.P(h.Class("text-gray-600 dark:text-gray-300"), g.Text(card.Info)),
			),
		),
	)
}

func followLink(s content.Social) g.Node {
	return h.A(
		h.Href(s.Href), h.Target("_blank"), h.Rel("noopener noreferrer"),
		h.Aria("label", s.Label),
		h.Class("social-link p-4 bg-white/80 dark:bg-gray-800/80 backdrop-blur-sm rounded-2xl shadow-lg border border-gray-200/50 dark:border-gray-700/50 text-gray-600 dark:text-gray-300 "+s.Hover),
		partials.Icon(s.Icon, "w-6 h-6"),
	)
}
