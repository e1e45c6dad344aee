package motion

import "time"

// Shared descriptors used across views.
var (
	// Float bobs an element up and down.
	Float = Descriptor{
		Name:     "float",
		Frames:   Keyframes{Y: []float64{0, -20, 0}},
		Duration: 3 * time.Second,
		Easing:   EaseInOut,
		Repeat:   Infinite,
	}

	// Glow pulses and spins the halo behind the profile image.
	Glow = Descriptor{
		Name:     "glow",
		Frames:   Keyframes{Scale: []float64{1, 1.1, 1}, Rotate: []float64{0, 180, 360}},
		Duration: 4 * time.Second,
		Easing:   Linear,
		Repeat:   Infinite,
	}

	// GradientSlide moves a gradient across clipped text.
	GradientSlide = Descriptor{
		Name:     "gradient-slide",
		Frames:   Keyframes{BackgroundPosition: []float64{0, 100}},
		Duration: 3 * time.Second,
		Easing:   Linear,
		Repeat:   Infinite,
	}

	// Pulse gently scales an element.
	Pulse = Descriptor{
		Name:     "pulse",
		Frames:   Keyframes{Scale: []float64{1, 1.05, 1}},
		Duration: 2 * time.Second,
		Easing:   EaseInOut,
		Repeat:   Infinite,
	}

	// Breathe is a slower, smaller pulse for headings.
	Breathe = Descriptor{
		Name:     "breathe",
		Frames:   Keyframes{Scale: []float64{1, 1.02, 1}},
		Duration: 3 * time.Second,
		Easing:   EaseInOut,
		Repeat:   Infinite,
	}

	// Beacon is the availability dot.
	Beacon = Descriptor{
		Name:     "beacon",
		Frames:   Keyframes{Scale: []float64{1, 1.2, 1}},
		Duration: 2 * time.Second,
		Easing:   EaseInOut,
		Repeat:   Infinite,
	}

	// ScrollHint nudges the scroll indicator.
	ScrollHint = Descriptor{
		Name:     "scroll-hint",
		Frames:   Keyframes{Y: []float64{0, 10, 0}},
		Duration: 2 * time.Second,
		Easing:   EaseInOut,
		Repeat:   Infinite,
	}

	// Wiggle rocks stat icons.
	Wiggle = Descriptor{
		Name:     "wiggle",
		Frames:   Keyframes{Rotate: []float64{0, 10, -10, 0}},
		Duration: 2 * time.Second,
		Easing:   EaseInOut,
		Repeat:   Infinite,
	}

	// Spin rotates the submit spinner.
	Spin = Descriptor{
		Name:     "spin",
		Frames:   Keyframes{Rotate: []float64{0, 360}},
		Duration: time.Second,
		Easing:   Linear,
		Repeat:   Infinite,
	}

	// Pop bounces the success icon once.
	Pop = Descriptor{
		Name:     "pop",
		Frames:   Keyframes{Scale: []float64{1, 1.2, 1}},
		Duration: 500 * time.Millisecond,
		Easing:   EaseOut,
	}

	// ZoomIn scales content up from nothing.
	ZoomIn = Descriptor{
		Name:     "zoom-in",
		Frames:   Keyframes{Scale: []float64{0, 1}, Opacity: []float64{0, 1}},
		Duration: 400 * time.Millisecond,
		Easing:   Spring{Bounce: 0.25}.Easing(),
	}

	// FadeUp is the plain entrance used by sections that are not staggered.
	FadeUp = Descriptor{
		Name:     "fade-up",
		Frames:   Keyframes{Y: []float64{50, 0}, Opacity: []float64{0, 1}},
		Duration: 800 * time.Millisecond,
		Easing:   EaseOut,
	}

	// FadeIn only animates opacity.
	FadeIn = Descriptor{
		Name:     "fade-in",
		Frames:   Keyframes{Opacity: []float64{0, 1}},
		Duration: 800 * time.Millisecond,
		Easing:   EaseOut,
	}
)

// ItemReveal is the spring reveal for staggered children.
var ItemReveal = Reveal{Name: "item-reveal", From: Hidden, Spring: DefaultSpring}

// Presets returns every shared descriptor so pages can emit one sheet.
func Presets() []Descriptor {
	return []Descriptor{
		Float, Glow, GradientSlide, Pulse, Breathe, Beacon, ScrollHint,
		Wiggle, Spin, Pop, ZoomIn, FadeUp, FadeIn, ItemReveal.Descriptor(),
	}
}
