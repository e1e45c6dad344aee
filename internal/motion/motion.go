// Package motion describes animations as data and renders them to CSS.
//
// A Descriptor says what animates (keyframes, duration, easing, repeat
// count). A Timeline says when: it maps named triggers to one-shot or
// repeatable firings. Views combine the two and send the resulting markup
// to the browser, which only ever plays plain CSS animations.
package motion

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
)

// Easing is a CSS timing function.
type Easing string

const (
	Linear    Easing = "linear"
	EaseIn    Easing = "ease-in"
	EaseOut   Easing = "ease-out"
	EaseInOut Easing = "ease-in-out"
)

// Infinite repeats an animation forever.
const Infinite = -1

// Keyframes lists values per property. Each track is spread evenly over the
// animation, so a three value track lands on 0%, 50% and 100%. Tracks of
// different lengths are interpolated linearly onto the union of offsets.
type Keyframes struct {
	X       []float64 // px
	Y       []float64 // px
	Scale   []float64
	Rotate  []float64 // deg
	Opacity []float64
	// BackgroundPosition is a horizontal percentage track used by gradient
	// text that slides its background.
	BackgroundPosition []float64
}

// Descriptor is a complete, declarative animation.
type Descriptor struct {
	Name     string
	Frames   Keyframes
	Duration time.Duration
	Delay    time.Duration
	Easing   Easing
	// Repeat is the number of extra iterations; 0 plays once, Infinite loops.
	Repeat int
}

// Loop returns a copy of d that repeats forever.
func (d Descriptor) Loop() Descriptor {
	d.Repeat = Infinite
	return d
}

// After returns a copy of d delayed by delay.
func (d Descriptor) After(delay time.Duration) Descriptor {
	d.Delay = delay
	return d
}

// Named returns a copy of d with another keyframes name.
func (d Descriptor) Named(name string) Descriptor {
	d.Name = name
	return d
}

// Iterations renders the CSS animation-iteration-count.
func (d Descriptor) Iterations() string {
	if d.Repeat < 0 {
		return "infinite"
	}
	return fmt.Sprintf("%d", d.Repeat+1)
}

// Animation renders the CSS animation shorthand for d.
// Non-looping animations keep their end state (fill-mode both).
func (d Descriptor) Animation() string {
	easing := d.Easing
	if easing == "" {
		easing = EaseOut
	}
	fill := "both"
	if d.Repeat < 0 {
		fill = "none"
	}
	return fmt.Sprintf("%s %s %s %s %s %s",
		d.Name, seconds(d.Duration), easing, seconds(d.Delay), d.Iterations(), fill)
}

// Style renders an inline style attribute value that plays d.
func (d Descriptor) Style() string {
	return "animation: " + d.Animation() + ";"
}

// CSS renders the @keyframes rule for d.
func (d Descriptor) CSS() string {
	offsets := d.Frames.offsets()
	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s {", d.Name)
	for _, off := range offsets {
		fmt.Fprintf(&b, " %s { %s }", percent(off), d.Frames.at(off))
	}
	b.WriteString(" }")
	return b.String()
}

func (k Keyframes) tracks() [][]float64 {
	return [][]float64{k.X, k.Y, k.Scale, k.Rotate, k.Opacity, k.BackgroundPosition}
}

func (k Keyframes) offsets() []float64 {
	seen := map[float64]bool{}
	var out []float64
	add := func(v float64) {
		v = math.Round(v*10000) / 10000
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	add(0)
	for _, tr := range k.tracks() {
		if len(tr) < 2 {
			continue
		}
		for i := range tr {
			add(float64(i) / float64(len(tr)-1))
		}
	}
	add(1)
	slices.Sort(out)
	return out
}

// at renders the declarations for a single keyframe offset.
func (k Keyframes) at(off float64) string {
	var decls []string
	var transform []string
	if len(k.X) > 0 || len(k.Y) > 0 {
		transform = append(transform, fmt.Sprintf("translate(%spx, %spx)", num(sample(k.X, off, 0)), num(sample(k.Y, off, 0))))
	}
	if len(k.Scale) > 0 {
		transform = append(transform, fmt.Sprintf("scale(%s)", num(sample(k.Scale, off, 1))))
	}
	if len(k.Rotate) > 0 {
		transform = append(transform, fmt.Sprintf("rotate(%sdeg)", num(sample(k.Rotate, off, 0))))
	}
	if len(transform) > 0 {
		decls = append(decls, "transform: "+strings.Join(transform, " ")+";")
	}
	if len(k.Opacity) > 0 {
		decls = append(decls, fmt.Sprintf("opacity: %s;", num(sample(k.Opacity, off, 1))))
	}
	if len(k.BackgroundPosition) > 0 {
		decls = append(decls, fmt.Sprintf("background-position: %s%% 50%%;", num(sample(k.BackgroundPosition, off, 0))))
	}
	return strings.Join(decls, " ")
}

// sample interpolates an evenly spaced track at off.
func sample(track []float64, off, fallback float64) float64 {
	switch len(track) {
	case 0:
		return fallback
	case 1:
		return track[0]
	}
	pos := off * float64(len(track)-1)
	i := int(math.Floor(pos))
	if i >= len(track)-1 {
		return track[len(track)-1]
	}
	frac := pos - float64(i)
	return track[i] + (track[i+1]-track[i])*frac
}

func seconds(d time.Duration) string {
	return num(d.Seconds()) + "s"
}

func percent(off float64) string {
	return num(off*100) + "%"
}

// num formats a float without trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
