// Package background renders the decorative shapes that sit behind page
// content.
package background

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"time"

	"github.com/nfrund/folio/internal/motion"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// ElementID is the id of the shared background container.
const ElementID = "animated-background"

// SharedCount is the number of shapes in the shared background.
const SharedCount = 5

// Shape is one decorative blob. Left and Top are percentages of the
// viewport; Size is in pixels.
type Shape struct {
	Size  float64
	Left  float64
	Top   float64
	Anim  motion.Descriptor
	Class string
}

// Style renders the positioning declarations of the shape.
func (s Shape) Style() string {
	return fmt.Sprintf("width: %gpx; height: %gpx; left: %g%%; top: %g%%;", s.Size, s.Size, s.Left, s.Top)
}

// Shared returns the deterministic shapes of the shared background.
func Shared() []Shape {
	shapes := make([]Shape, SharedCount)
	for i := range shapes {
		shapes[i] = Shape{
			Size: float64(200 + i*50),
			Left: float64(20 + i*15),
			Top:  float64(10 + i*20),
			Anim: motion.Descriptor{
				Name:     fmt.Sprintf("bg-drift-%d", i),
				Frames:   motion.Keyframes{X: []float64{0, 100, 0}, Y: []float64{0, -100, 0}},
				Duration: time.Duration(10+i*2) * time.Second,
				Easing:   motion.Linear,
				Repeat:   motion.Infinite,
			},
			Class: "absolute bg-gradient-to-r from-purple-400/10 to-pink-400/10 rounded-full",
		}
	}
	return shapes
}

// Renderer renders the shared background. Before Mount it only renders an
// empty placeholder so the server's first response matches what a client
// without a live session shows.
type Renderer struct {
	mounted bool
	shapes  []Shape
}

// New returns an unmounted renderer.
func New() *Renderer {
	return &Renderer{}
}

// Mount marks the renderer as running in a live client and computes its
// shapes. Calling Mount again keeps the first set.
func (r *Renderer) Mount() {
	if r.mounted {
		return
	}
	r.mounted = true
	r.shapes = Shared()
}

// Mounted reports whether Mount has been called.
func (r *Renderer) Mounted() bool { return r.mounted }

// Shapes returns the mounted shapes, or nil before Mount.
func (r *Renderer) Shapes() []Shape { return r.shapes }

// Node renders the background container.
func (r *Renderer) Node() g.Node {
	return r.node()
}

// Patch renders the background as an out-of-band swap.
func (r *Renderer) Patch() g.Node {
	return r.node(hx.SwapOOB("true"))
}

func (r *Renderer) node(attrs ...g.Node) g.Node {
	if !r.mounted {
		return h.Div(h.ID(ElementID), h.Class("fixed inset-0 pointer-events-none"), g.Group(attrs))
	}
	return container(ElementID, "fixed inset-0 pointer-events-none", r.shapes, false, attrs...)
}

// AmbientSpec parameterizes a randomized shape set.
type AmbientSpec struct {
	Prefix         string
	Count          int
	MinSize        float64
	SizeJitter     float64
	Drift          float64
	MinDuration    time.Duration
	DurationJitter time.Duration
	Scale          []float64
	Rotate         []float64
}

// Ambient builds a randomized shape set from spec. The result depends only
// on spec and seed, so a view computes it once at mount and reuses it on
// every render.
func Ambient(spec AmbientSpec, seed uint64) []Shape {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	shapes := make([]Shape, spec.Count)
	for i := range shapes {
		driftX := rng.Float64()*spec.Drift - spec.Drift/2
		driftY := rng.Float64()*spec.Drift - spec.Drift/2
		shapes[i] = Shape{
			Size: round(rng.Float64()*spec.SizeJitter + spec.MinSize),
			Left: round(rng.Float64() * 100),
			Top:  round(rng.Float64() * 100),
			Anim: motion.Descriptor{
				Name: fmt.Sprintf("%s-%d", spec.Prefix, i),
				Frames: motion.Keyframes{
					X:      []float64{0, round(driftX)},
					Y:      []float64{0, round(driftY)},
					Scale:  spec.Scale,
					Rotate: spec.Rotate,
				},
				Duration: spec.MinDuration + time.Duration(rng.Float64()*float64(spec.DurationJitter)).Round(time.Millisecond),
				Easing:   motion.Linear,
				Repeat:   motion.Infinite,
			},
			Class: "absolute bg-gradient-to-r from-purple-400/10 to-pink-400/10 rounded-full blur-xl",
		}
	}
	return shapes
}

// Seed derives a stable seed from an identifier such as a session id.
func Seed(id string) uint64 {
	f := fnv.New64a()
	_, _ = f.Write([]byte(id))
	return f.Sum64()
}

// AmbientNode renders an ambient shape set into the container with id.
// A nil set renders the empty container.
func AmbientNode(id string, shapes []Shape) g.Node {
	return container(id, "fixed inset-0 overflow-hidden pointer-events-none", shapes, true)
}

// AmbientPatch renders AmbientNode as an out-of-band swap.
func AmbientPatch(id string, shapes []Shape) g.Node {
	return container(id, "fixed inset-0 overflow-hidden pointer-events-none", shapes, true, hx.SwapOOB("true"))
}

// Descriptors returns the animations of shapes for a motion.Sheet.
func Descriptors(shapes []Shape) []motion.Descriptor {
	ds := make([]motion.Descriptor, len(shapes))
	for i, s := range shapes {
		ds[i] = s.Anim
	}
	return ds
}

func container(id, class string, shapes []Shape, direct bool, attrs ...g.Node) g.Node {
	sheet := motion.NewSheet(Descriptors(shapes)...)
	children := append([]g.Node{h.ID(id), h.Class(class)}, attrs...)
	if sheet.Len() > 0 {
		children = append(children, h.StyleEl(g.Raw(sheet.CSS())))
	}
	for _, s := range shapes {
		if direct {
			children = append(children, h.Div(h.Class(s.Class), h.Style(s.Style()+" "+s.Anim.Style())))
			continue
		}
		// The drift runs on a wrapper so the blob keeps its own position.
		children = append(children, h.Div(
			h.Class("absolute"),
			h.Style(s.Anim.Style()),
			h.Div(h.Class(s.Class), h.Style(s.Style())),
		))
	}
	return h.Div(children...)
}

func round(v float64) float64 {
	return math.Round(v*10) / 10
}
