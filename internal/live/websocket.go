package live

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/appctx"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Largest client frame accepted.
	readLimit = 64 << 10

	sendBuffer = 64
)

// ErrSinkClosed is returned when sending to a connection that has gone away.
var ErrSinkClosed = errors.New("live: connection closed")

// Factory builds the view for a new connection.
type Factory func(c echo.Context) (View, error)

// Endpoint upgrades requests to websockets and hosts a session per
// connection.
type Endpoint struct {
	registry *Registry
	clock    clockwork.Clock
}

// NewEndpoint creates an endpoint registering its sessions in reg. A nil
// clock means the real clock.
func NewEndpoint(reg *Registry, clock clockwork.Clock) *Endpoint {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Endpoint{registry: reg, clock: clock}
}

// Handler returns an echo.HandlerFunc serving one view kind. The request
// must carry the visitor's theme & loading context.
func (e *Endpoint) Handler(factory Factory) echo.HandlerFunc {
	return func(c echo.Context) error {
		state, err := appctx.FromContext(c.Request().Context())
		if err != nil {
			return err
		}
		view, err := factory(c)
		if err != nil {
			return err
		}

		conn, err := websocket.Accept(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("Failed to upgrade connection to WebSocket", "error", err)
			return nil
		}
		conn.SetReadLimit(readLimit)

		ctx, cancel := context.WithCancel(c.Request().Context())
		defer cancel()

		sink := newConnSink(conn)
		sess := NewSession(Options{
			VisitorID: state.VisitorID(),
			Clock:     e.clock,
			Sink:      sink,
			Logger:    slog.Default().With("view", c.Path()),
		})
		e.registry.Add(sess)
		defer e.registry.Remove(sess)

		go sink.writePump(ctx)
		go func() {
			if err := sess.Run(ctx, view); err != nil && !errors.Is(err, context.Canceled) {
				sess.Logger().Error("Live session failed", "error", err)
			}
			cancel()
		}()

		readPump(ctx, conn, sess)

		sess.Close()
		sink.close()
		conn.Close(websocket.StatusNormalClosure, "session closed")
		return nil
	}
}

// readPump posts client frames to the session until the connection drops.
func readPump(ctx context.Context, conn *websocket.Conn, sess *Session) {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			switch {
			case status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway:
				sess.Logger().Debug("WebSocket closed normally by client")
			case ctx.Err() != nil || errors.Is(err, io.EOF):
			default:
				sess.Logger().Warn("WebSocket read error", "error", err)
			}
			return
		}

		ev, err := DecodeEvent(data)
		if err != nil {
			sess.Logger().Warn("Dropping malformed event", "error", err)
			continue
		}
		if ev.Type == EventTheme {
			// Theme events only come from the server side.
			continue
		}
		if !sess.Post(ev) {
			return
		}
	}
}

// connSink queues patches for one connection.
type connSink struct {
	conn *websocket.Conn

	mu   sync.RWMutex
	send chan []byte
}

func newConnSink(conn *websocket.Conn) *connSink {
	return &connSink{conn: conn, send: make(chan []byte, sendBuffer)}
}

// Send queues a fragment without blocking the session loop. A lagging
// client loses patches instead of stalling the loop.
func (s *connSink) Send(fragment []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.send == nil {
		return ErrSinkClosed
	}
	msg := append([]byte(nil), fragment...)
	select {
	case s.send <- msg:
		return nil
	default:
		slog.Warn("Client send channel full, dropping patch")
		return nil
	}
}

func (s *connSink) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.send != nil {
		close(s.send)
		s.send = nil
	}
}

// writePump writes queued patches until the sink is closed.
func (s *connSink) writePump(ctx context.Context) {
	s.mu.RLock()
	send := s.send
	s.mu.RUnlock()
	if send == nil {
		return
	}

	for msg := range send {
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeWait)
		err := s.conn.Write(wctx, websocket.MessageText, msg)
		cancel()
		if err != nil {
			if ctx.Err() == nil {
				slog.Debug("WebSocket write error", "error", err)
			}
			return
		}
	}
}

// Sessions returns the number of open sessions across all views.
func (e *Endpoint) Sessions() int { return e.registry.Len() }
