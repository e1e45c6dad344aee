package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDescriptorCSS(t *testing.T) {
	t.Run("evenly spaced track", func(t *testing.T) {
		want := "@keyframes float { 0% { transform: translate(0px, 0px); } 50% { transform: translate(0px, -20px); } 100% { transform: translate(0px, 0px); } }"
		assert.Equal(t, want, Float.CSS())
	})

	t.Run("tracks of different length are merged", func(t *testing.T) {
		d := Descriptor{
			Name:   "mixed",
			Frames: Keyframes{Opacity: []float64{0, 1}, Scale: []float64{1, 1.2, 1}},
		}
		css := d.CSS()
		assert.Contains(t, css, "50% { transform: scale(1.2); opacity: 0.5; }")
		assert.Contains(t, css, "100% { transform: scale(1); opacity: 1; }")
	})

	t.Run("background position", func(t *testing.T) {
		assert.Contains(t, GradientSlide.CSS(), "100% { background-position: 100% 50%; }")
	})
}

func TestDescriptorAnimation(t *testing.T) {
	assert.Equal(t, "float 3s ease-in-out 0s infinite none", Float.Animation())
	assert.Equal(t, "pop 0.5s ease-out 0s 1 both", Pop.Animation())

	delayed := Pop.After(250 * time.Millisecond)
	assert.Equal(t, "animation: pop 0.5s ease-out 0.25s 1 both;", delayed.Style())
	assert.Equal(t, time.Duration(0), Pop.Delay, "After must not mutate the original")

	twice := Descriptor{Name: "twice", Duration: time.Second, Repeat: 1}
	assert.Equal(t, "2", twice.Iterations())
	assert.Equal(t, "infinite", twice.Loop().Iterations())
	assert.Equal(t, "other", twice.Named("other").Name)
}

func TestSpring(t *testing.T) {
	assert.InDelta(t, 1.0, DefaultSpring.Ratio(), 1e-9)
	assert.Equal(t, 580*time.Millisecond, DefaultSpring.Duration())
	assert.Equal(t, Easing("cubic-bezier(0.22, 1, 0.36, 1)"), DefaultSpring.Easing())

	bouncy := Spring{Bounce: 0.4, Stiffness: 100}
	assert.InDelta(t, 0.6, bouncy.Ratio(), 1e-9)
	assert.Equal(t, Easing("cubic-bezier(0.34, 1.56, 0.64, 1)"), bouncy.Easing())
	assert.Greater(t, bouncy.Duration(), DefaultSpring.Duration())
}

func TestStage(t *testing.T) {
	stage := Stage{
		Reveal:  ItemReveal,
		Stagger: Stagger{DelayChildren: 300 * time.Millisecond, StaggerChildren: 150 * time.Millisecond},
	}

	assert.False(t, stage.Visible())
	assert.Equal(t, "opacity: 0; transform: translate(0px, 50px) scale(1);", stage.ItemStyle(3))

	stage.Show()
	assert.True(t, stage.Visible())
	assert.Equal(t, "animation: item-reveal 0.58s cubic-bezier(0.22, 1, 0.36, 1) 0.45s 1 both;", stage.ItemStyle(1))
	assert.Equal(t, 600*time.Millisecond, stage.Stagger.Delay(2))
	assert.Equal(t, 300*time.Millisecond, stage.Stagger.Delay(-4))
}

func TestSheet(t *testing.T) {
	sheet := NewSheet(Float, Pulse, Float.After(time.Second))
	assert.Equal(t, 2, sheet.Len(), "descriptors sharing a name emit one rule")

	sheet.Add(Spin)
	css := sheet.CSS()
	assert.Contains(t, css, "@keyframes float")
	assert.Contains(t, css, "@keyframes pulse")
	assert.Contains(t, css, "@keyframes spin")

	names := map[string]bool{}
	for _, d := range Presets() {
		assert.False(t, names[d.Name], "duplicate preset %q", d.Name)
		names[d.Name] = true
	}
}

func TestTimeline(t *testing.T) {
	t.Run("one-shot trigger fires once", func(t *testing.T) {
		tl := NewTimeline()
		runs := 0
		tl.OnFirst("hero", func() { runs++ })

		assert.True(t, tl.Fire("hero"))
		for i := 0; i < 5; i++ {
			assert.False(t, tl.Fire("hero"))
		}
		assert.Equal(t, 1, runs)
		assert.True(t, tl.Fired("hero"))
	})

	t.Run("restored trigger never fires", func(t *testing.T) {
		tl := NewTimeline()
		var fired, restored int
		tl.OnFirst("hero", func() { fired++ })
		tl.OnRestore("hero", func() { restored++ })

		assert.True(t, tl.Restore("hero"))
		assert.False(t, tl.Restore("hero"))
		assert.False(t, tl.Fire("hero"))
		assert.Equal(t, 0, fired)
		assert.Equal(t, 1, restored)
		assert.True(t, tl.Fired("hero"))
	})

	t.Run("restore after fire is a no-op", func(t *testing.T) {
		tl := NewTimeline()
		restored := 0
		tl.OnFirst("stats", func() {})
		tl.OnRestore("stats", func() { restored++ })

		tl.Fire("stats")
		assert.False(t, tl.Restore("stats"))
		assert.False(t, NewTimeline().Restore("nope"))
		assert.Equal(t, 0, restored)
	})

	t.Run("triggers are independent", func(t *testing.T) {
		tl := NewTimeline()
		var order []string
		tl.OnFirst("hero", func() { order = append(order, "hero") })
		tl.OnFirst("stats", func() { order = append(order, "stats") })

		tl.Fire("stats")
		tl.Fire("hero")
		tl.Fire("stats")
		assert.Equal(t, []string{"stats", "hero"}, order)
	})

	t.Run("unknown trigger", func(t *testing.T) {
		assert.False(t, NewTimeline().Fire("nope"))
	})
}

func TestOnce(t *testing.T) {
	var o Once
	assert.False(t, o.Fired())
	assert.True(t, o.Fire())
	assert.False(t, o.Fire())
	assert.True(t, o.Fired())
}

func TestHeroParallax(t *testing.T) {
	tests := []struct {
		progress float64
		offset   float64
		opacity  float64
	}{
		{-0.2, 0, 1},
		{0, 0, 1},
		{0.25, 75, 0.5},
		{0.5, 150, 0},
		{0.75, 225, 0},
		{1, 300, 0},
		{1.5, 300, 0},
	}
	for _, tt := range tests {
		got := HeroParallax(tt.progress)
		assert.InDelta(t, tt.offset, got.Offset, 1e-9, "offset at %v", tt.progress)
		assert.InDelta(t, tt.opacity, got.Opacity, 1e-9, "opacity at %v", tt.progress)
	}

	assert.Equal(t, "transform: translateY(75px); opacity: 0.5;", HeroParallax(0.25).Style())
}

func TestInterpolate(t *testing.T) {
	assert.Equal(t, 5.0, Interpolate(0.5, []float64{0, 1}, []float64{0, 10}))
	assert.Equal(t, 15.0, Interpolate(1.5, []float64{0, 1, 2}, []float64{0, 10, 20}))
	assert.Equal(t, 7.0, Interpolate(3, []float64{0}, []float64{7}), "degenerate ranges return the first output")
	assert.Equal(t, 0.0, Interpolate(3, nil, nil))
}
