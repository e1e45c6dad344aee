package app

import (
	"testing"

	"github.com/nfrund/folio/internal/rendering"
	"github.com/stretchr/testify/assert"
)

func TestNewModules(t *testing.T) {
	modules := NewModules(Dependencies{Renderer: rendering.NewUniversalRenderer()})

	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.Name()
	}
	assert.Equal(t, []string{"home", "contact"}, names)
}
