package live

import (
	"log/slog"
	"sync"
)

// Registry tracks the open sessions of every visitor. A visitor can have
// several sessions at once, one per open tab.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	visitors map[string]map[string]bool // visitor id -> set of session ids
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		visitors: make(map[string]map[string]bool),
	}
}

// Add registers a session.
func (r *Registry) Add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.ID()] = s
	if _, ok := r.visitors[s.VisitorID()]; !ok {
		r.visitors[s.VisitorID()] = make(map[string]bool)
	}
	r.visitors[s.VisitorID()][s.ID()] = true
	slog.Debug("Live session registered", "session_id", s.ID(), "visitor_id", s.VisitorID(), "total", len(r.sessions))
}

// Remove unregisters a session. It does not close it.
func (r *Registry) Remove(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID()]; !ok {
		return
	}
	delete(r.sessions, s.ID())
	if ids := r.visitors[s.VisitorID()]; ids != nil {
		delete(ids, s.ID())
		if len(ids) == 0 {
			delete(r.visitors, s.VisitorID())
		}
	}
	slog.Debug("Live session unregistered", "session_id", s.ID(), "visitor_id", s.VisitorID(), "total", len(r.sessions))
}

// ByVisitor returns all open sessions of a visitor.
func (r *Registry) ByVisitor(visitorID string) []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Session
	for id := range r.visitors[visitorID] {
		if s, ok := r.sessions[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Post delivers ev to every session of a visitor and returns how many
// accepted it.
func (r *Registry) Post(visitorID string, ev Event) int {
	n := 0
	for _, s := range r.ByVisitor(visitorID) {
		if s.Post(ev) {
			n++
		}
	}
	return n
}

// CloseAll closes every registered session. Used on shutdown.
func (r *Registry) CloseAll() {
	r.mu.RLock()
	all := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		all = append(all, s)
	}
	r.mu.RUnlock()

	for _, s := range all {
		s.Close()
	}
}
