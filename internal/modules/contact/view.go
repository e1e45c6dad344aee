// Package contact serves the contact page and its simulated submission.
//
// Nothing leaves the server: submitting waits, shows a confirmation, waits
// again and clears the form. The only side effect is an in-process event
// announcing the simulated message.
package contact

import (
	"errors"
	"time"

	"github.com/nfrund/folio/internal/appctx"
	"github.com/nfrund/folio/internal/background"
	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/live"
	"github.com/nfrund/folio/internal/motion"
	"github.com/nfrund/folio/internal/pubsub"
	"github.com/nfrund/folio/web/src/templates/partials"
)

// TriggerForm reveals the form and the side panel.
const TriggerForm motion.Trigger = "form"

// AmbientID is the container of the contact page's own shapes.
const AmbientID = "contact-ambient"

// Default delays of the simulated submission.
const (
	DefaultSubmitDelay = 2 * time.Second
	DefaultResetDelay  = 3 * time.Second
)

var ambientShapes = background.AmbientSpec{
	Prefix:         "contact-ambient",
	Count:          3,
	MinSize:        100,
	SizeJitter:     200,
	Drift:          50,
	MinDuration:    15 * time.Second,
	DurationJitter: 10 * time.Second,
	Scale:          []float64{1, 1.1, 1},
}

var formStagger = motion.Stagger{DelayChildren: 300 * time.Millisecond, StaggerChildren: 100 * time.Millisecond}

// MessageSimulated is announced when a submission completes.
type MessageSimulated struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Length  int    `json:"length"`
}

// TopicMessageSimulated carries MessageSimulated on the in-process bus.
var TopicMessageSimulated = pubsub.NewEvent[MessageSimulated]("contact.message.simulated", "A contact form submission was simulated")

// Options configures a contact view.
type Options struct {
	SubmitDelay time.Duration
	ResetDelay  time.Duration
	// Publisher receives TopicMessageSimulated; nil disables the event.
	Publisher pubsub.Publisher
}

// View is the contact page.
type View struct {
	content    *content.Content
	opts       Options
	background *background.Renderer
	ambient    []background.Shape

	machine  Machine
	stage    motion.Stage
	timeline *motion.Timeline

	session *live.Session
	state   *appctx.State
	detach  []func()
	submit  *live.Task
	reset   *live.Task
}

// NewView returns an unmounted contact view over c.
func NewView(c *content.Content, opts Options) *View {
	if opts.SubmitDelay <= 0 {
		opts.SubmitDelay = DefaultSubmitDelay
	}
	if opts.ResetDelay <= 0 {
		opts.ResetDelay = DefaultResetDelay
	}
	v := &View{
		content:    c,
		opts:       opts,
		background: background.New(),
		stage:      motion.Stage{Reveal: motion.ItemReveal, Stagger: formStagger},
		timeline:   motion.NewTimeline(),
	}
	v.timeline.OnFirst(TriggerForm, v.stage.Show, func() { v.patch(v.formColumn(true), v.sideColumn(true)) })
	v.timeline.OnRestore(TriggerForm, v.stage.Show)
	return v
}

// Mount implements live.View. It requires the theme & loading context.
func (v *View) Mount(s *live.Session) error {
	state, err := appctx.FromContext(s.Context())
	if err != nil {
		return err
	}
	v.session = s
	v.state = state
	v.background.Mount()
	v.ambient = background.Ambient(ambientShapes, background.Seed(s.ID()))

	v.detach = append(v.detach,
		s.Listen(live.EventInput, v.onInput),
		s.Listen(live.EventSubmit, v.onSubmit),
		s.Listen(live.EventVisible, v.onVisible),
		s.Listen(live.EventRevealed, v.onRevealed),
		s.Listen(live.EventReady, v.onReady),
		s.Listen(live.EventTheme, v.onTheme),
	)

	s.Patch(v.background.Patch(), background.AmbientPatch(AmbientID, v.ambient))
	return nil
}

// Unmount implements live.View. Pending timers are cancelled, so no phase
// change happens after the page is gone.
func (v *View) Unmount() {
	v.submit.Cancel()
	v.reset.Cancel()
	if v.machine.Phase() == PhaseSubmitting && v.state != nil {
		v.state.SetLoading(false)
	}
	for _, d := range v.detach {
		d()
	}
	v.detach = nil
	v.session = nil
}

// Machine exposes the form state. Only read it on the session loop.
func (v *View) Machine() *Machine { return &v.machine }

// Ambient returns the shapes computed at mount.
func (v *View) Ambient() []background.Shape { return v.ambient }

// Revealed reports whether the form has been shown.
func (v *View) Revealed() bool { return v.timeline.Fired(TriggerForm) }

// onInput commits the value. The browser already shows what was typed, so
// the field is only patched when its missing flag changes.
func (v *View) onInput(ev live.Event) {
	flagged := v.missing(ev.Field)
	if err := v.machine.Set(ev.Field, ev.Value); err != nil {
		v.session.Logger().Warn("Ignoring input", "error", err)
		return
	}
	if v.missing(ev.Field) != flagged {
		v.patch(v.fieldNode(ev.Field, true))
	}
}

// onReady brings a reconnected page in line with this session: the panel
// for the current phase, holding the values the page replayed, and the
// shared loading flag.
func (v *View) onReady(live.Event) {
	v.patch(v.panel(true), partials.LoadingPatch(v.state.Loading()))
}

func (v *View) onSubmit(live.Event) {
	err := v.machine.Submit()
	var verr *ValidationError
	switch {
	case errors.Is(err, ErrBusy):
		v.session.Logger().Debug("Submit ignored", "phase", v.machine.Phase())
		return
	case errors.As(err, &verr):
		v.session.Logger().Debug("Submission incomplete", "missing", verr.Fields)
		v.patch(v.panel(true))
		return
	case err != nil:
		v.session.Logger().Error("Failed to validate submission", "error", err)
		return
	}

	v.state.SetLoading(true)
	v.patch(v.panel(true), partials.LoadingPatch(true))
	v.submit = v.session.After(v.opts.SubmitDelay, v.complete)
}

func (v *View) complete() {
	v.submit = nil
	if !v.machine.Complete() {
		return
	}
	v.state.SetLoading(false)
	v.patch(v.panel(true), partials.LoadingPatch(false))
	v.announce()
	v.reset = v.session.After(v.opts.ResetDelay, v.clear)
}

func (v *View) clear() {
	v.reset = nil
	if v.machine.Reset() {
		v.patch(v.panel(true))
	}
}

func (v *View) announce() {
	if v.opts.Publisher == nil {
		return
	}
	f := v.machine.Form()
	msg := MessageSimulated{Name: f.Name, Email: f.Email, Subject: f.Subject, Length: len(f.Message)}
	if err := pubsub.Publish(v.session.Context(), v.opts.Publisher, TopicMessageSimulated, v.session.VisitorID(), msg); err != nil {
		v.session.Logger().Warn("Failed to announce simulated message", "error", err)
	}
}

func (v *View) onVisible(ev live.Event) {
	v.timeline.Fire(motion.Trigger(ev.Target))
}

func (v *View) onRevealed(ev live.Event) {
	v.timeline.Restore(motion.Trigger(ev.Target))
}

func (v *View) onTheme(ev live.Event) {
	theme, err := appctx.ParseTheme(ev.Value)
	if err != nil {
		v.session.Logger().Warn("Ignoring theme update", "error", err)
		return
	}
	v.patch(partials.ThemeState(theme, true))
}
