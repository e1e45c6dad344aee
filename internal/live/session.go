// Package live hosts server-side view instances bound to a browser tab.
//
// Each Session runs a single event loop. Browser events, timer expiries and
// synchronous calls are queued onto that loop and executed one at a time, so
// view state needs no locking. Closing a session cancels its timers,
// detaches its listeners and unmounts its view before the loop exits.
package live

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	g "maragu.dev/gomponents"
)

// ErrClosed is returned by Call once the session has been closed.
var ErrClosed = errors.New("live: session closed")

const queueSize = 64

// View is a page component hosted by a session. Mount runs on the loop
// before any event is dispatched and Unmount runs on the loop during Close.
type View interface {
	Mount(s *Session) error
	Unmount()
}

// Handler processes one event on the session loop.
type Handler func(ev Event)

// Sink receives rendered patches.
type Sink interface {
	Send(fragment []byte) error
}

// Options configures a new session.
type Options struct {
	// ID identifies the session; a random id is used when empty.
	ID        string
	VisitorID string
	// Clock drives deferred tasks; the real clock is used when nil.
	Clock  clockwork.Clock
	Sink   Sink
	Logger *slog.Logger
}

// Session is one mounted view instance.
type Session struct {
	id        string
	visitorID string
	clock     clockwork.Clock
	sink      Sink
	logger    *slog.Logger

	queue     chan func()
	closing   chan struct{}
	done      chan struct{}
	started   atomic.Bool
	closeOnce sync.Once

	// Owned by the loop.
	ctx       context.Context
	view      View
	listeners map[string][]*listener
	tasks     map[*Task]struct{}
}

type listener struct {
	handler Handler
	removed bool
}

// NewSession creates a session. Call Run to mount a view and start the loop.
func NewSession(opts Options) *Session {
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Session{
		id:        opts.ID,
		visitorID: opts.VisitorID,
		clock:     opts.Clock,
		sink:      opts.Sink,
		logger:    opts.Logger.With("session_id", opts.ID, "visitor_id", opts.VisitorID),
		queue:     make(chan func(), queueSize),
		closing:   make(chan struct{}),
		done:      make(chan struct{}),
		ctx:       context.Background(),
		listeners: make(map[string][]*listener),
		tasks:     make(map[*Task]struct{}),
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// VisitorID returns the id of the browser session that owns this session.
func (s *Session) VisitorID() string { return s.visitorID }

// Logger returns the session-scoped logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// Clock returns the clock used for deferred tasks.
func (s *Session) Clock() clockwork.Clock { return s.clock }

// Context returns the context passed to Run. Only valid on the loop.
func (s *Session) Context() context.Context { return s.ctx }

// Done is closed once the loop has exited.
func (s *Session) Done() <-chan struct{} { return s.done }

// Run mounts view and processes queued work until ctx is cancelled or Close
// is called. It blocks; the view is unmounted before Run returns.
func (s *Session) Run(ctx context.Context, view View) error {
	s.started.Store(true)
	defer close(s.done)

	select {
	case <-s.closing:
		return nil
	default:
	}

	s.ctx = ctx
	s.view = view
	if err := view.Mount(s); err != nil {
		s.teardown()
		return err
	}
	s.logger.Debug("Live session mounted")

	for {
		select {
		case <-s.closing:
			s.teardown()
			return nil
		case <-ctx.Done():
			s.teardown()
			return ctx.Err()
		case fn := <-s.queue:
			// Close wins over work that was queued concurrently with it.
			select {
			case <-s.closing:
				s.teardown()
				return nil
			default:
			}
			fn()
		}
	}
}

// Close stops the session. It is idempotent and, once the loop has started,
// returns only after the view is unmounted. It must not be called from the
// loop itself.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.closing) })
	if s.started.Load() {
		<-s.done
	}
}

// Post queues ev for dispatch. Events posted after Close are dropped and
// Post reports false.
func (s *Session) Post(ev Event) bool {
	return s.enqueue(func() { s.dispatch(ev) })
}

// Call runs fn on the loop and waits for it to return.
func (s *Session) Call(fn func()) error {
	finished := make(chan struct{})
	if !s.enqueue(func() {
		defer close(finished)
		fn()
	}) {
		return ErrClosed
	}
	select {
	case <-finished:
		return nil
	case <-s.done:
		return ErrClosed
	}
}

func (s *Session) enqueue(fn func()) bool {
	select {
	case <-s.closing:
		return false
	default:
	}
	select {
	case s.queue <- fn:
		return true
	case <-s.closing:
		return false
	case <-s.done:
		return false
	}
}

// Listen registers h for events of the given type and returns a function
// that detaches it. Both must be called on the loop.
func (s *Session) Listen(eventType string, h Handler) (detach func()) {
	l := &listener{handler: h}
	s.listeners[eventType] = append(s.listeners[eventType], l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		ls := s.listeners[eventType]
		for i, cur := range ls {
			if cur == l {
				s.listeners[eventType] = append(ls[:i:i], ls[i+1:]...)
				break
			}
		}
		if len(s.listeners[eventType]) == 0 {
			delete(s.listeners, eventType)
		}
	}
}

// Listeners returns the number of handlers attached for eventType. Must be
// called on the loop.
func (s *Session) Listeners(eventType string) int {
	return len(s.listeners[eventType])
}

func (s *Session) dispatch(ev Event) {
	ls := s.listeners[ev.Type]
	if len(ls) == 0 {
		s.logger.Debug("No listener for event", "type", ev.Type)
		return
	}
	for _, l := range append([]*listener(nil), ls...) {
		if l.removed {
			continue
		}
		l.handler(ev)
	}
}

// Task is a deferred callback scheduled with After.
type Task struct {
	session   *Session
	timer     clockwork.Timer
	cancelled bool
}

// After schedules fn to run on the loop once d has elapsed on the session
// clock. Must be called on the loop.
func (s *Session) After(d time.Duration, fn func()) *Task {
	t := &Task{session: s}
	s.tasks[t] = struct{}{}
	t.timer = s.clock.AfterFunc(d, func() {
		s.enqueue(func() {
			if t.cancelled {
				return
			}
			delete(s.tasks, t)
			fn()
		})
	})
	return t
}

// Cancel prevents the task from running. Must be called on the loop.
func (t *Task) Cancel() {
	if t == nil || t.cancelled {
		return
	}
	t.cancelled = true
	t.timer.Stop()
	delete(t.session.tasks, t)
}

// Pending returns the number of scheduled tasks that have not run. Must be
// called on the loop.
func (s *Session) Pending() int { return len(s.tasks) }

// Patch renders nodes and hands them to the sink. Must be called on the loop.
func (s *Session) Patch(nodes ...g.Node) {
	if s.sink == nil {
		return
	}
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := n.Render(&buf); err != nil {
			s.logger.Error("Failed to render patch", "error", err)
			return
		}
	}
	if err := s.sink.Send(buf.Bytes()); err != nil {
		s.logger.Warn("Failed to send patch", "error", err)
	}
}

func (s *Session) teardown() {
	for t := range s.tasks {
		t.Cancel()
	}
	for eventType, ls := range s.listeners {
		for _, l := range ls {
			l.removed = true
		}
		delete(s.listeners, eventType)
	}
	if s.view != nil {
		s.view.Unmount()
		s.view = nil
	}
	s.logger.Debug("Live session closed")
}
