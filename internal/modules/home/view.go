// Package home serves the landing page: hero, stats and the closing call to
// action.
package home

import (
	"time"

	"github.com/nfrund/folio/internal/appctx"
	"github.com/nfrund/folio/internal/background"
	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/live"
	"github.com/nfrund/folio/internal/motion"
	"github.com/nfrund/folio/web/src/templates/partials"
)

// Visibility triggers sent by the page.
const (
	TriggerHero  motion.Trigger = "hero"
	TriggerStats motion.Trigger = "stats"
	TriggerCTA   motion.Trigger = "cta"
)

// AmbientID is the container of the home page's own shapes.
const AmbientID = "home-ambient"

// ambientShapes are the five slow, spinning blobs behind the hero.
var ambientShapes = background.AmbientSpec{
	Prefix:         "home-ambient",
	Count:          5,
	MinSize:        100,
	SizeJitter:     300,
	Drift:          100,
	MinDuration:    20 * time.Second,
	DurationJitter: 10 * time.Second,
	Scale:          []float64{1, 1.2, 1},
	Rotate:         []float64{0, 180, 360},
}

// heroStagger fans the hero items out after the container appears.
var heroStagger = motion.Stagger{DelayChildren: 300 * time.Millisecond, StaggerChildren: 150 * time.Millisecond}

// Pointer is the last observed pointer position.
type Pointer struct {
	X, Y float64
}

// View is the home page. Its zero state is what the server renders before a
// live session attaches.
type View struct {
	content    *content.Content
	background *background.Renderer
	ambient    []background.Shape

	pointer  Pointer
	progress float64

	hero  motion.Stage
	stats motion.Stage
	cta   motion.Stage

	timeline *motion.Timeline
	session  *live.Session
	state    *appctx.State
	detach   []func()
}

// NewView returns an unmounted home view over c.
func NewView(c *content.Content) *View {
	v := &View{
		content:    c,
		background: background.New(),
		hero:       motion.Stage{Reveal: motion.ItemReveal, Stagger: heroStagger},
		stats:      motion.Stage{Reveal: motion.ItemReveal, Stagger: heroStagger},
		cta:        motion.Stage{Reveal: motion.Reveal{Name: "cta-reveal", From: motion.Hidden, Spring: motion.DefaultSpring, Duration: 800 * time.Millisecond}},
		timeline:   motion.NewTimeline(),
	}
	v.timeline.OnFirst(TriggerHero, v.hero.Show, func() { v.patch(v.heroContainerNode(true)) })
	v.timeline.OnFirst(TriggerStats, v.stats.Show, func() { v.patch(v.statsNode(true)) })
	v.timeline.OnFirst(TriggerCTA, v.cta.Show, func() { v.patch(v.ctaNode(true)) })
	v.timeline.OnRestore(TriggerHero, v.hero.Show)
	v.timeline.OnRestore(TriggerStats, v.stats.Show)
	v.timeline.OnRestore(TriggerCTA, v.cta.Show)
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
		s.Listen(live.EventPointer, v.onPointer),
		s.Listen(live.EventScroll, v.onScroll),
		s.Listen(live.EventVisible, v.onVisible),
		s.Listen(live.EventRevealed, v.onRevealed),
		s.Listen(live.EventReady, v.onReady),
		s.Listen(live.EventTheme, v.onTheme),
	)

	s.Patch(v.background.Patch(), background.AmbientPatch(AmbientID, v.ambient))
	return nil
}

// Unmount implements live.View.
func (v *View) Unmount() {
	for _, d := range v.detach {
		d()
	}
	v.detach = nil
	v.session = nil
}

// Pointer returns the last pointer position.
func (v *View) Pointer() Pointer { return v.pointer }

// Ambient returns the shapes computed at mount.
func (v *View) Ambient() []background.Shape { return v.ambient }

// Revealed reports whether the section behind trigger has been shown.
func (v *View) Revealed(trigger motion.Trigger) bool {
	return v.timeline.Fired(trigger)
}

func (v *View) onPointer(ev live.Event) {
	v.pointer = Pointer{X: ev.X, Y: ev.Y}
	v.patch(v.cursorNode(true))
}

func (v *View) onScroll(ev live.Event) {
	v.progress = ev.Progress
	v.patch(v.parallaxNode(true))
}

func (v *View) onVisible(ev live.Event) {
	if !v.timeline.Fire(motion.Trigger(ev.Target)) {
		return
	}
	v.session.Logger().Debug("Section revealed", "target", ev.Target)
}

// onRevealed adopts a section the page already shows, so reconnecting does
// not replay its entrance.
func (v *View) onRevealed(ev live.Event) {
	v.timeline.Restore(motion.Trigger(ev.Target))
}

func (v *View) onReady(live.Event) {
	v.patch(partials.LoadingPatch(v.state.Loading()))
}

func (v *View) onTheme(ev live.Event) {
	theme, err := appctx.ParseTheme(ev.Value)
	if err != nil {
		v.session.Logger().Warn("Ignoring theme update", "error", err)
		return
	}
	v.patch(partials.ThemeState(theme, true))
}
