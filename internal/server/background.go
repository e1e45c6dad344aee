package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/nfrund/folio/internal/appctx"
	"github.com/nfrund/folio/internal/live"
	"github.com/nfrund/folio/internal/pubsub"
)

const (
	pruneInterval = 10 * time.Minute
	// visitorTTL is how long an idle visitor state is kept in memory. The
	// theme itself survives in the cookie.
	visitorTTL = 24 * time.Hour
)

// StartBackground starts the theme broadcaster, the visitor pruner and, when
// enabled, the content watcher. All of them stop on Shutdown.
func (s *Server) StartBackground() error {
	if s.deps.Subscriber != nil {
		if err := pubsub.Subscribe(s.ctx, s.deps.Subscriber, appctx.TopicThemeChanged, s.broadcastTheme); err != nil {
			return err
		}
	}

	go s.pruneVisitors(s.ctx)

	if s.Cfg.GetContentWatch() {
		if err := s.deps.Content.Watch(s.ctx); err != nil {
			return err
		}
	}
	return nil
}

// broadcastTheme tells every live session the visitor has open to apply
// their current theme, so other tabs follow without a reload. Events can
// arrive out of order, so the payload only signals that the theme changed.
func (s *Server) broadcastTheme(ctx context.Context, visitorID string, ev appctx.ThemeChanged) error {
	state, ok := s.deps.Contexts.Lookup(visitorID)
	if !ok {
		slog.Debug("Theme change for unknown visitor", "visitor_id", visitorID, "theme", ev.Theme)
		return nil
	}
	theme := state.Theme()
	n := s.deps.Sessions.Post(visitorID, live.Event{Type: live.EventTheme, Value: string(theme)})
	slog.Debug("Theme change forwarded", "visitor_id", visitorID, "theme", theme, "sessions", n)
	return nil
}

func (s *Server) pruneVisitors(ctx context.Context) {
	ticker := s.deps.Clock.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.Chan():
			if n := s.pruneBefore(now.Add(-visitorTTL)); n > 0 {
				slog.Info("Pruned idle visitors", "count", n)
			}
		}
	}
}

// pruneBefore drops visitors idle since before. A visitor with an open live
// session is still active even without HTTP requests.
func (s *Server) pruneBefore(before time.Time) int {
	return s.deps.Contexts.Prune(before, func(visitorID string) bool {
		return len(s.deps.Sessions.ByVisitor(visitorID)) > 0
	})
}
