package motion

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Spring approximates a physical spring transition with a CSS duration and
// timing function. Damping and Stiffness follow the usual mass-spring
// model; Bounce, when set, overrides the damping ratio with 1-Bounce.
type Spring struct {
	Damping   float64
	Stiffness float64
	Mass      float64
	Bounce    float64
}

// DefaultSpring is the reveal spring used by both views.
var DefaultSpring = Spring{Damping: 20, Stiffness: 100}

// Ratio returns the damping ratio.
func (s Spring) Ratio() float64 {
	if s.Bounce > 0 {
		return math.Max(0.05, 1-s.Bounce)
	}
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.mass()))
}

func (s Spring) mass() float64 {
	if s.Mass <= 0 {
		return 1
	}
	return s.Mass
}

// Duration returns the approximate settling time of the spring.
func (s Spring) Duration() time.Duration {
	stiffness := s.Stiffness
	if stiffness <= 0 {
		stiffness = 100
	}
	omega := math.Sqrt(stiffness / s.mass())
	zeta := s.Ratio()
	var settle float64
	if zeta < 1 {
		settle = 4 / (zeta * omega)
	} else {
		settle = 5.8 * zeta / omega
	}
	settle = math.Min(math.Max(settle, 0.2), 2)
	return time.Duration(settle * float64(time.Second)).Round(10 * time.Millisecond)
}

// Easing returns a cubic-bezier that overshoots for under-damped springs.
func (s Spring) Easing() Easing {
	if s.Ratio() < 1 {
		return "cubic-bezier(0.34, 1.56, 0.64, 1)"
	}
	return "cubic-bezier(0.22, 1, 0.36, 1)"
}

// Pose is a static visual state: the hidden side of a reveal.
type Pose struct {
	X, Y    float64
	Scale   float64
	Opacity float64
}

// Hidden is the default hidden pose for revealed items.
var Hidden = Pose{Y: 50, Scale: 1, Opacity: 0}

// Style renders the pose as inline declarations.
func (p Pose) Style() string {
	scale := p.Scale
	if scale == 0 {
		scale = 1
	}
	return fmt.Sprintf("opacity: %s; transform: translate(%spx, %spx) scale(%s);",
		num(p.Opacity), num(p.X), num(p.Y), num(scale))
}

// Reveal animates from a hidden pose to the identity pose.
type Reveal struct {
	Name   string
	From   Pose
	Spring Spring
	// Duration overrides the spring's settling time when non-zero.
	Duration time.Duration
}

// Descriptor returns the keyframe animation for the reveal.
func (r Reveal) Descriptor() Descriptor {
	scale := r.From.Scale
	if scale == 0 {
		scale = 1
	}
	dur := r.Duration
	if dur == 0 {
		dur = r.Spring.Duration()
	}
	return Descriptor{
		Name: r.Name,
		Frames: Keyframes{
			X:       []float64{r.From.X, 0},
			Y:       []float64{r.From.Y, 0},
			Scale:   []float64{scale, 1},
			Opacity: []float64{r.From.Opacity, 1},
		},
		Duration: dur,
		Easing:   r.Spring.Easing(),
	}
}

// Stagger fans a parent reveal out over its children.
type Stagger struct {
	DelayChildren   time.Duration
	StaggerChildren time.Duration
}

// Delay returns the start delay of the i-th child.
func (s Stagger) Delay(i int) time.Duration {
	if i < 0 {
		i = 0
	}
	return s.DelayChildren + time.Duration(i)*s.StaggerChildren
}

// Stage binds a reveal to a stagger. It renders hidden until Show is
// called, after which each child plays the reveal with its own delay.
type Stage struct {
	Reveal  Reveal
	Stagger Stagger
	visible bool
}

// Show makes the stage visible.
func (s *Stage) Show() { s.visible = true }

// Visible reports whether the stage has been shown.
func (s *Stage) Visible() bool { return s.visible }

// ItemStyle returns the inline style for the i-th child.
func (s *Stage) ItemStyle(i int) string {
	if !s.visible {
		return s.Reveal.From.Style()
	}
	return s.Reveal.Descriptor().After(s.Stagger.Delay(i)).Style()
}

// Sheet collects keyframes rules, deduplicated by name.
type Sheet struct {
	names []string
	rules map[string]string
}

// NewSheet builds a sheet from descriptors.
func NewSheet(ds ...Descriptor) *Sheet {
	s := &Sheet{rules: map[string]string{}}
	s.Add(ds...)
	return s
}

// Add registers descriptors. A later descriptor with a known name is ignored.
func (s *Sheet) Add(ds ...Descriptor) {
	for _, d := range ds {
		if _, ok := s.rules[d.Name]; ok {
			continue
		}
		s.names = append(s.names, d.Name)
		s.rules[d.Name] = d.CSS()
	}
}

// Len returns the number of rules.
func (s *Sheet) Len() int { return len(s.names) }

// CSS renders every rule in insertion order.
func (s *Sheet) CSS() string {
	var b strings.Builder
	for i, n := range s.names {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.rules[n])
	}
	return b.String()
}
