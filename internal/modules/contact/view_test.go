package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/appctx"
	"github.com/nfrund/folio/internal/content"
	"github.com/nfrund/folio/internal/live"
	"github.com/nfrund/folio/internal/live/livetest"
	"github.com/nfrund/folio/internal/pubsub"
	"github.com/nfrund/folio/internal/rendering"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	g "maragu.dev/gomponents"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingPublisher struct {
	mu       sync.Mutex
	messages []pubsub.Message
}

func (p *recordingPublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) Messages() []pubsub.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]pubsub.Message(nil), p.messages...)
}

type fixture struct {
	*livetest.Harness
	view *View
	pub  *recordingPublisher
}

func start(t *testing.T) *fixture {
	t.Helper()
	return startWith(t, appctx.NewProvider(appctx.ThemeSystem, nil).State("visitor-ana", ""))
}

// startWith mounts a contact view on an existing visitor state, the way a
// reconnecting tab does.
func startWith(t *testing.T, state *appctx.State) *fixture {
	t.Helper()
	pub := &recordingPublisher{}
	v := NewView(content.Default(), Options{Publisher: pub})
	return &fixture{Harness: livetest.Start(t, v, state), view: v, pub: pub}
}

// render renders a node built on the session loop.
func (f *fixture) render(t *testing.T, build func() g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, f.Session.Call(func() {
		require.NoError(t, build().Render(&b))
	}))
	return b.String()
}

func (f *fixture) input(t *testing.T, field, value string) {
	t.Helper()
	f.Send(t, live.Event{Type: live.EventInput, Field: field, Value: value})
}

func (f *fixture) phase(t *testing.T) Phase {
	t.Helper()
	var p Phase
	require.NoError(t, f.Session.Call(func() { p = f.view.Machine().Phase() }))
	return p
}

func (f *fixture) fillAna(t *testing.T) {
	t.Helper()
	f.input(t, FieldName, "Ana")
	f.input(t, FieldEmail, "a@b.com")
	f.input(t, FieldSubject, "Hi")
	f.input(t, FieldMessage, "Hello")
}

func TestView_AnaScenario(t *testing.T) {
	f := start(t)
	f.fillAna(t)
	panel := f.render(t, func() g.Node { return f.view.panel(false) })
	assert.Contains(t, panel, `<textarea id="input-message"`)
	assert.Contains(t, panel, ">Hello</textarea>")

	f.Send(t, live.Event{Type: live.EventSubmit})
	assert.Equal(t, PhaseSubmitting, f.phase(t))
	assert.True(t, f.State.Loading())
	assert.Contains(t, f.Recorder.Last(), `disabled`)
	assert.Contains(t, f.Recorder.Last(), `id="loading-indicator"`)
	assert.NotContains(t, f.Recorder.Last(), "Message Sent!")

	f.Clock.Advance(1999 * time.Millisecond)
	assert.Equal(t, PhaseSubmitting, f.phase(t), "nothing happens before two seconds")

	f.Advance(t, time.Millisecond, func() bool { return f.view.Machine().Phase() == PhaseSubmitted })
	assert.Contains(t, f.Recorder.Last(), "Message Sent!")
	assert.NotContains(t, f.Recorder.Last(), `id="contact-form"`, "the form and the confirmation never show together")
	assert.False(t, f.State.Loading())

	msgs := f.pub.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, TopicMessageSimulated.Name(), msgs[0].Topic)
	assert.Equal(t, "visitor-ana", msgs[0].VisitorID)
	var payload MessageSimulated
	require.NoError(t, json.Unmarshal(msgs[0].Payload, &payload))
	assert.Equal(t, MessageSimulated{Name: "Ana", Email: "a@b.com", Subject: "Hi", Length: 5}, payload)

	f.Advance(t, 3*time.Second, func() bool { return f.view.Machine().Phase() == PhaseIdle })
	last := f.Recorder.Last()
	assert.Contains(t, last, `id="contact-form"`)
	for _, field := range []string{FieldName, FieldEmail, FieldSubject} {
		assert.Contains(t, last, `id="input-`+field+`" name="`+field+`"`)
	}
	assert.NotContains(t, last, `value="Ana"`)
	assert.Contains(t, last, `></textarea>`, "the message is cleared")
	require.NoError(t, f.Session.Call(func() {
		assert.Equal(t, Form{}, f.view.Machine().Form())
		assert.Equal(t, 0, f.Session.Pending())
	}))
}

func TestView_ControlledInput(t *testing.T) {
	f := start(t)
	f.Recorder.Reset()

	f.input(t, FieldName, "A")
	f.input(t, FieldName, "An")
	f.input(t, FieldName, "Ana")
	assert.Empty(t, f.Recorder.Patches(), "typing is not echoed over the field being edited")
	assert.Contains(t, f.render(t, func() g.Node { return f.view.fieldNode(FieldName, false) }), `value="Ana"`)

	f.input(t, "phone", "123")
	assert.Empty(t, f.Recorder.Patches(), "unknown fields are ignored")
	require.NoError(t, f.Session.Call(func() {
		assert.Equal(t, Form{Name: "Ana"}, f.view.Machine().Form())
	}))
}

func TestView_SubmitDisabledWhileSubmitting(t *testing.T) {
	f := start(t)
	f.fillAna(t)
	f.Send(t, live.Event{Type: live.EventSubmit})

	f.Recorder.Reset()
	f.Send(t, live.Event{Type: live.EventSubmit})
	assert.Empty(t, f.Recorder.Patches())
	require.NoError(t, f.Session.Call(func() {
		assert.True(t, f.view.Machine().SubmitDisabled())
		assert.Equal(t, 1, f.Session.Pending(), "a second submit schedules nothing")
	}))

	f.Advance(t, 2*time.Second, func() bool { return f.view.Machine().Phase() == PhaseSubmitted })
	f.Send(t, live.Event{Type: live.EventSubmit})
	assert.Len(t, f.pub.Messages(), 1)
}

func TestView_IncompleteSubmission(t *testing.T) {
	f := start(t)
	f.input(t, FieldName, "Ana")

	f.Send(t, live.Event{Type: live.EventSubmit})
	assert.Equal(t, PhaseIdle, f.phase(t))
	assert.False(t, f.State.Loading())
	last := f.Recorder.Last()
	assert.Contains(t, last, "Please fill in every field.")
	assert.Contains(t, last, `id="input-email" name="email" data-live-field="email" required placeholder="your.email@example.com" aria-invalid="true"`)
	assert.NotContains(t, last, `data-live-field="name" required placeholder="Enter your full name" aria-invalid`)

	f.Recorder.Reset()
	f.input(t, FieldEmail, "a@b.com")
	require.Len(t, f.Recorder.Patches(), 1, "clearing the missing flag patches the field")
	assert.True(t, strings.HasPrefix(f.Recorder.Last(), `<div id="field-email" hx-swap-oob="true">`))
	assert.NotContains(t, f.Recorder.Last(), "aria-invalid")

	f.input(t, FieldEmail, "a@b.co")
	assert.Len(t, f.Recorder.Patches(), 1)
	require.NoError(t, f.Session.Call(func() {
		assert.Equal(t, 0, f.Session.Pending())
	}))
}

func TestView_NoTransitionAfterClose(t *testing.T) {
	f := start(t)
	f.fillAna(t)
	f.Send(t, live.Event{Type: live.EventSubmit})
	require.True(t, f.State.Loading())

	f.Session.Close()
	patches := len(f.Recorder.Patches())

	f.Clock.Advance(10 * time.Second)
	assert.Equal(t, PhaseSubmitting, f.view.Machine().Phase())
	assert.Len(t, f.Recorder.Patches(), patches)
	assert.Empty(t, f.pub.Messages())
	assert.False(t, f.State.Loading(), "closing mid-submission releases the loading flag")
}

func TestView_FormRevealsOnce(t *testing.T) {
	f := start(t)
	f.Recorder.Reset()

	f.Send(t, live.Event{Type: live.EventVisible, Target: "form"})
	require.Len(t, f.Recorder.Patches(), 1)
	assert.Contains(t, f.Recorder.Last(), `id="form-column"`)
	assert.Contains(t, f.Recorder.Last(), `id="side-column"`)
	assert.Contains(t, f.Recorder.Last(), "item-reveal")

	f.Send(t, live.Event{Type: live.EventVisible, Target: "form"})
	assert.Len(t, f.Recorder.Patches(), 1)
	require.NoError(t, f.Session.Call(func() { assert.True(t, f.view.Revealed()) }))
}

func TestView_ResyncAfterReconnect(t *testing.T) {
	state := appctx.NewProvider(appctx.ThemeSystem, nil).State("visitor-ana", "")

	first := startWith(t, state)
	first.Send(t, live.Event{Type: live.EventVisible, Target: "form"})
	first.fillAna(t)
	first.Send(t, live.Event{Type: live.EventSubmit})
	require.True(t, state.Loading())
	first.Session.Close()

	// The page still shows the revealed form, the values and the spinner.
	second := startWith(t, state)
	second.Recorder.Reset()
	second.Send(t, live.Event{Type: live.EventRevealed, Target: "form"})
	for _, field := range Fields {
		second.input(t, field, "x")
	}
	second.Send(t, live.Event{Type: live.EventReady})

	require.Len(t, second.Recorder.Patches(), 1)
	last := second.Recorder.Last()
	assert.Contains(t, last, `<div id="contact-panel" hx-swap-oob="true">`)
	assert.Contains(t, last, `id="input-name" name="name" data-live-field="name" required placeholder="Enter your full name" type="text"`)
	assert.Contains(t, last, `value="x"`)
	assert.Contains(t, last, ">x</textarea>")
	assert.NotContains(t, last, `aria-busy`, "the submit button is enabled again")
	assert.Contains(t, last, `<span id="loading-indicator" role="status" class="hidden" hx-swap-oob="true">`)
	assert.False(t, state.Loading())

	second.Recorder.Reset()
	second.Send(t, live.Event{Type: live.EventVisible, Target: "form"})
	assert.Empty(t, second.Recorder.Patches(), "a restored reveal does not replay")
	require.NoError(t, second.Session.Call(func() { assert.True(t, second.view.Revealed()) }))
	assert.Contains(t, second.render(t, func() g.Node { return second.view.formColumn(false) }), `data-live-revealed="form"`)

	second.Send(t, live.Event{Type: live.EventSubmit})
	assert.Equal(t, PhaseSubmitting, second.phase(t))
	assert.NotContains(t, second.Recorder.Last(), "Please fill in every field.")
}

func TestView_AmbientShapes(t *testing.T) {
	f := start(t)
	require.NoError(t, f.Session.Call(func() {
		shapes := f.view.Ambient()
		require.Len(t, shapes, 3)
		for _, s := range shapes {
			assert.Equal(t, []float64{1, 1.1, 1}, s.Anim.Frames.Scale)
			assert.GreaterOrEqual(t, s.Anim.Duration, 15*time.Second)
			assert.LessOrEqual(t, s.Anim.Duration, 25*time.Second)
		}
	}))
	assert.Contains(t, f.Recorder.Patches()[0], `id="`+AmbientID+`"`)
}

func TestNewView_Defaults(t *testing.T) {
	v := NewView(content.Default(), Options{})
	assert.Equal(t, DefaultSubmitDelay, v.opts.SubmitDelay)
	assert.Equal(t, DefaultResetDelay, v.opts.ResetDelay)
}

func TestHandler_Get(t *testing.T) {
	store, err := content.NewStore(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	handler := NewHandler(store, rendering.NewUniversalRenderer(), Options{})

	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))))
	e.Use(appctx.NewProvider(appctx.ThemeLight, nil).Middleware())
	e.GET("/contact", handler.Get)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Contact - Folio</title>")
	assert.Contains(t, body, `data-live-url="/live/contact"`)
	assert.Contains(t, body, `id="contact-form"`)
	assert.Contains(t, body, "rifqi@example.com")
	assert.Contains(t, body, "@keyframes contact-title")
	assert.NotContains(t, body, "Message Sent!")
}
