package background

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestShared(t *testing.T) {
	shapes := Shared()
	require.Len(t, shapes, SharedCount)

	for i, s := range shapes {
		assert.Equal(t, float64(200+i*50), s.Size)
		assert.Equal(t, float64(20+i*15), s.Left)
		assert.Equal(t, float64(10+i*20), s.Top)
		assert.Equal(t, time.Duration(10+i*2)*time.Second, s.Anim.Duration)
		assert.Equal(t, "infinite", s.Anim.Iterations())
	}
	assert.Equal(t, Shared(), shapes, "shared shapes are deterministic")
	assert.Equal(t, "width: 250px; height: 250px; left: 35%; top: 30%;", shapes[1].Style())
}

func TestRenderer(t *testing.T) {
	r := New()
	assert.False(t, r.Mounted())
	assert.Nil(t, r.Shapes())

	placeholder := render(t, r.Node())
	assert.Equal(t, `<div id="animated-background" class="fixed inset-0 pointer-events-none"></div>`, placeholder)

	r.Mount()
	assert.True(t, r.Mounted())
	mounted := render(t, r.Node())
	assert.Contains(t, mounted, "@keyframes bg-drift-0")
	assert.Contains(t, mounted, "@keyframes bg-drift-4")
	assert.Equal(t, SharedCount, strings.Count(mounted, "rounded-full"))

	first := r.Shapes()
	r.Mount()
	assert.Equal(t, first, r.Shapes())

	patch := render(t, r.Patch())
	assert.Contains(t, patch, `hx-swap-oob="true"`)
	assert.True(t, strings.HasPrefix(patch, `<div id="animated-background"`))
}

var testSpec = AmbientSpec{
	Prefix:         "test-ambient",
	Count:          3,
	MinSize:        100,
	SizeJitter:     200,
	Drift:          50,
	MinDuration:    15 * time.Second,
	DurationJitter: 10 * time.Second,
	Scale:          []float64{1, 1.1, 1},
}

func TestAmbient(t *testing.T) {
	a := Ambient(testSpec, 42)
	require.Len(t, a, 3)
	assert.Equal(t, a, Ambient(testSpec, 42), "same seed, same shapes")
	assert.NotEqual(t, a, Ambient(testSpec, 43))

	for i, s := range a {
		assert.GreaterOrEqual(t, s.Size, 100.0)
		assert.LessOrEqual(t, s.Size, 300.0)
		assert.GreaterOrEqual(t, s.Left, 0.0)
		assert.LessOrEqual(t, s.Left, 100.0)
		assert.GreaterOrEqual(t, s.Anim.Duration, 15*time.Second)
		assert.LessOrEqual(t, s.Anim.Duration, 25*time.Second)
		assert.InDelta(t, 0, s.Anim.Frames.X[1], 25)
		assert.Equal(t, "test-ambient-"+string(rune('0'+i)), s.Anim.Name)
	}
}

func TestAmbientRenderIsStable(t *testing.T) {
	shapes := Ambient(testSpec, Seed("session-1"))
	first := render(t, AmbientNode("ambient", shapes))
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, render(t, AmbientNode("ambient", shapes)))
	}
	assert.Contains(t, render(t, AmbientPatch("ambient", shapes)), `hx-swap-oob="true"`)
	assert.Equal(t, `<div id="ambient" class="fixed inset-0 overflow-hidden pointer-events-none"></div>`, render(t, AmbientNode("ambient", nil)))
}

func TestSeed(t *testing.T) {
	assert.Equal(t, Seed("abc"), Seed("abc"))
	assert.NotEqual(t, Seed("abc"), Seed("abd"))
}
