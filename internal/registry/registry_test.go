package registry

import (
	"testing"

	"github.com/nfrund/folio/internal/config"
	"github.com/stretchr/testify/assert"
)

type greeter struct{ name string }

func TestRegistry(t *testing.T) {
	cfg := &config.Config{ServerAddr: ":9999"}
	reg := New(cfg)
	assert.Equal(t, ":9999", reg.Config().GetServerAddr())

	key := Key[*greeter]("test.greeter")
	_, ok := Get(reg, key)
	assert.False(t, ok)
	assert.Panics(t, func() { MustGet(reg, key) })

	g := &greeter{name: "hi"}
	Set(reg, key, g)

	got, ok := Get(reg, key)
	assert.True(t, ok)
	assert.Same(t, g, got)
	assert.Same(t, g, MustGet(reg, key))

	// Same id, different type.
	_, ok = Get(reg, Key[string]("test.greeter"))
	assert.False(t, ok)
}
