// Package appctx holds the theme & loading context: a per-visitor value
// carrying a loading flag and a theme preference. It is created by the
// Provider, attached to each request by its middleware and read back with
// FromContext, which fails loudly when the provider is missing.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrContextMissing is returned when the context is read outside the
// provider's subtree. It signals a wiring mistake, never a runtime state.
var ErrContextMissing = errors.New("appctx: theme & loading context used outside its provider")

// ErrUnknownTheme is returned for theme names other than light, dark, system.
var ErrUnknownTheme = errors.New("appctx: unknown theme")

// Theme is a color theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Class returns the class applied to the root element. System lets the
// client follow prefers-color-scheme and so returns an empty class.
func (t Theme) Class() string {
	if t == ThemeDark {
		return "dark"
	}
	return ""
}

// State is one visitor's context value. Every method is safe for
// concurrent use; writes are last-write-wins.
type State struct {
	visitorID string

	mu      sync.RWMutex
	loading bool
	theme   Theme
}

func newState(visitorID string, theme Theme) *State {
	return &State{visitorID: visitorID, theme: theme}
}

// VisitorID identifies the browser session that owns the state.
func (s *State) VisitorID() string { return s.visitorID }

// Loading reports the loading flag.
func (s *State) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetLoading sets the loading flag.
func (s *State) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Theme returns the current theme preference.
func (s *State) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme stores a theme preference. Unknown themes are rejected and leave
// the state unchanged.
func (s *State) SetTheme(t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	s.mu.Lock()
	s.theme = t
	s.mu.Unlock()
	return nil
}

type contextKey struct{}

// WithState returns a copy of ctx carrying s.
func WithState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the state attached by the provider, or
// ErrContextMissing.
func FromContext(ctx context.Context) (*State, error) {
	if ctx == nil {
		return nil, ErrContextMissing
	}
	s, ok := ctx.Value(contextKey{}).(*State)
	if !ok || s == nil {
		return nil, ErrContextMissing
	}
	return s, nil
}

// MustFromContext is FromContext for callers that are always mounted under
// the provider. It panics with ErrContextMissing otherwise.
func MustFromContext(ctx context.Context) *State {
	s, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return s
}
