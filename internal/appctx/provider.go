package appctx

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/pubsub"
)

const (
	sessionName = "folio"
	keyVisitor  = "visitor_id"
	keyTheme    = "theme"
)

// ThemeChanged is published whenever a visitor picks a theme.
type ThemeChanged struct {
	Theme Theme `json:"theme"`
}

// TopicThemeChanged carries ThemeChanged events on the in-process bus.
var TopicThemeChanged = pubsub.NewEvent[ThemeChanged]("theme.changed", "A visitor changed their color theme")

// Provider creates and owns the per-visitor states. Construct it once per
// server; two providers never share state.
type Provider struct {
	defaultTheme Theme
	publisher    pubsub.Publisher
	now          func() time.Time

	mu     sync.Mutex
	states map[string]*entry
}

type entry struct {
	state    *State
	lastSeen time.Time
}

// NewProvider returns a provider whose new visitors start with defaultTheme.
// publisher may be nil, in which case theme changes are not announced.
func NewProvider(defaultTheme Theme, publisher pubsub.Publisher) *Provider {
	if _, err := ParseTheme(string(defaultTheme)); err != nil {
		defaultTheme = ThemeSystem
	}
	return &Provider{
		defaultTheme: defaultTheme,
		publisher:    publisher,
		now:          time.Now,
		states:       make(map[string]*entry),
	}
}

// DefaultTheme returns the theme given to new visitors.
func (p *Provider) DefaultTheme() Theme { return p.defaultTheme }

// State returns the visitor's state, creating it with theme when it does
// not exist yet. An empty or unknown theme falls back to the default.
func (p *Provider) State(visitorID string, theme Theme) *State {
	p.mu.Lock()
	defer p.mu.Unlock()

	if e, ok := p.states[visitorID]; ok {
		e.lastSeen = p.now()
		return e.state
	}
	if _, err := ParseTheme(string(theme)); err != nil {
		theme = p.defaultTheme
	}
	s := newState(visitorID, theme)
	p.states[visitorID] = &entry{state: s, lastSeen: p.now()}
	return s
}

// Len returns the number of tracked visitors.
func (p *Provider) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.states)
}

// Lookup returns the visitor's state without creating it or refreshing its
// last-seen time.
func (p *Provider) Lookup(visitorID string) (*State, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.states[visitorID]
	if !ok {
		return nil, false
	}
	return e.state, true
}

// Prune forgets visitors not seen since before, except those keep reports
// as still in use. keep may be nil. A pruned visitor gets a fresh state on
// their next request, with the theme restored from their cookie.
func (p *Provider) Prune(before time.Time, keep func(visitorID string) bool) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for id, e := range p.states {
		if !e.lastSeen.Before(before) {
			continue
		}
		if keep != nil && keep(id) {
			e.lastSeen = p.now()
			continue
		}
		delete(p.states, id)
		n++
	}
	return n
}

// Middleware attaches the visitor's state to every request. It requires the
// echo-contrib session middleware to run first.
func (p *Provider) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(sessionName, c)
			if sess == nil {
				return fmt.Errorf("appctx: session store unavailable: %w", err)
			}
			if err != nil {
				// A cookie signed with an old secret; start over with the fresh session.
				slog.Debug("Discarding unreadable session cookie", "error", err)
			}

			visitorID, _ := sess.Values[keyVisitor].(string)
			if visitorID == "" {
				visitorID = uuid.NewString()
				sess.Values[keyVisitor] = visitorID
				sess.Options = cookieOptions()
				if err := sess.Save(c.Request(), c.Response()); err != nil {
					return fmt.Errorf("appctx: save session: %w", err)
				}
			}
			stored, _ := sess.Values[keyTheme].(string)

			state := p.State(visitorID, Theme(stored))
			c.SetRequest(c.Request().WithContext(WithState(c.Request().Context(), state)))
			return next(c)
		}
	}
}

// SetTheme changes the theme of the visitor behind c, persists it in their
// cookie and announces it on the bus.
func (p *Provider) SetTheme(c echo.Context, theme Theme) error {
	state, err := FromContext(c.Request().Context())
	if err != nil {
		return err
	}
	if err := state.SetTheme(theme); err != nil {
		return err
	}

	sess, err := session.Get(sessionName, c)
	if sess == nil {
		return fmt.Errorf("appctx: session store unavailable: %w", err)
	}
	sess.Values[keyVisitor] = state.VisitorID()
	sess.Values[keyTheme] = string(theme)
	sess.Options = cookieOptions()
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("appctx: save session: %w", err)
	}

	if p.publisher != nil {
		ctx := context.WithoutCancel(c.Request().Context())
		if err := pubsub.Publish(ctx, p.publisher, TopicThemeChanged, state.VisitorID(), ThemeChanged{Theme: theme}); err != nil {
			slog.Warn("Failed to announce theme change", "visitor_id", state.VisitorID(), "error", err)
		}
	}
	return nil
}

func cookieOptions() *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 365,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
