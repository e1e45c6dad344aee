// Package livetest provides helpers for testing views hosted by live
// sessions.
package livetest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/nfrund/folio/internal/appctx"
	"github.com/nfrund/folio/internal/live"
	"github.com/stretchr/testify/require"
)

// Recorder is a live.Sink that keeps every patch it receives.
type Recorder struct {
	mu      sync.Mutex
	patches []string
}

// Send implements live.Sink.
func (r *Recorder) Send(fragment []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patches = append(r.patches, string(fragment))
	return nil
}

// Patches returns a copy of the received patches.
func (r *Recorder) Patches() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.patches...)
}

// Last returns the most recent patch, or "" when none arrived.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.patches) == 0 {
		return ""
	}
	return r.patches[len(r.patches)-1]
}

// Contains reports whether any patch contains substr.
func (r *Recorder) Contains(substr string) bool {
	for _, p := range r.Patches() {
		if strings.Contains(p, substr) {
			return true
		}
	}
	return false
}

// Reset drops all recorded patches.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patches = nil
}

// Harness runs a view in a session backed by a fake clock and a recorder.
type Harness struct {
	Session  *live.Session
	Clock    *clockwork.FakeClock
	Recorder *Recorder
	State    *appctx.State
}

// Start mounts view for a visitor holding state and waits for the mount to
// complete. The session is closed when the test ends.
func Start(t *testing.T, view live.View, state *appctx.State) *Harness {
	t.Helper()

	h := &Harness{
		Clock:    clockwork.NewFakeClock(),
		Recorder: &Recorder{},
		State:    state,
	}
	h.Session = live.NewSession(live.Options{
		VisitorID: state.VisitorID(),
		Clock:     h.Clock,
		Sink:      h.Recorder,
	})

	ctx := appctx.WithState(context.Background(), state)
	runErr := make(chan error, 1)
	go func() { runErr <- h.Session.Run(ctx, view) }()
	t.Cleanup(func() {
		h.Session.Close()
		require.NoError(t, <-runErr)
	})

	// Call only returns once Mount has finished and the loop is serving.
	require.NoError(t, h.Session.Call(func() {}))
	return h
}

// Send posts ev and waits until it has been handled.
func (h *Harness) Send(t *testing.T, ev live.Event) {
	t.Helper()
	require.True(t, h.Session.Post(ev), "session rejected event")
	require.NoError(t, h.Session.Call(func() {}))
}

// Advance moves the fake clock and waits until the resulting timer
// callbacks have run on the loop.
func (h *Harness) Advance(t *testing.T, d time.Duration, done func() bool) {
	t.Helper()
	h.Clock.Advance(d)
	require.Eventually(t, func() bool {
		var ok bool
		if err := h.Session.Call(func() { ok = done() }); err != nil {
			return false
		}
		return ok
	}, time.Second, 5*time.Millisecond)
}
