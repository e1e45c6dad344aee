package server

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/folio/internal/appctx"
	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/live"
	"github.com/nfrund/folio/internal/live/livetest"
	"github.com/nfrund/folio/internal/modules/home"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastTheme_UsesCurrentTheme(t *testing.T) {
	contexts := appctx.NewProvider(appctx.ThemeSystem, nil)
	sessions := live.NewRegistry()
	s := &Server{deps: Dependencies{Contexts: contexts, Sessions: sessions}}

	state := contexts.State("visitor-1", "")
	h := livetest.Start(t, home.NewView(content.Default()), state)
	sessions.Add(h.Session)
	t.Cleanup(func() { sessions.Remove(h.Session) })

	require.NoError(t, state.SetTheme(appctx.ThemeLight))
	require.NoError(t, state.SetTheme(appctx.ThemeDark))
	h.Recorder.Reset()

	// The announcement for light is delivered after the one for dark.
	ctx := context.Background()
	require.NoError(t, s.broadcastTheme(ctx, "visitor-1", appctx.ThemeChanged{Theme: appctx.ThemeDark}))
	require.NoError(t, s.broadcastTheme(ctx, "visitor-1", appctx.ThemeChanged{Theme: appctx.ThemeLight}))
	require.NoError(t, h.Session.Call(func() {}))

	patches := h.Recorder.Patches()
	require.Len(t, patches, 2)
	for _, p := range patches {
		assert.Contains(t, p, `data-theme="dark"`)
		assert.NotContains(t, p, `data-theme="light"`)
	}

	require.NoError(t, s.broadcastTheme(ctx, "nobody", appctx.ThemeChanged{Theme: appctx.ThemeLight}))
}

func TestPruneBefore_KeepsVisitorsWithOpenSessions(t *testing.T) {
	contexts := appctx.NewProvider(appctx.ThemeSystem, nil)
	sessions := live.NewRegistry()
	s := &Server{deps: Dependencies{Contexts: contexts, Sessions: sessions}}

	open := contexts.State("open-tab", appctx.ThemeDark)
	contexts.State("closed-tab", "")

	h := livetest.Start(t, home.NewView(content.Default()), open)
	sessions.Add(h.Session)
	t.Cleanup(func() { sessions.Remove(h.Session) })

	assert.Equal(t, 1, s.pruneBefore(time.Now().Add(time.Hour)))

	got, ok := contexts.Lookup("open-tab")
	require.True(t, ok)
	assert.Same(t, open, got)
	_, ok = contexts.Lookup("closed-tab")
	assert.False(t, ok)
}
