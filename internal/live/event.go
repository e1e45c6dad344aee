package live

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUntypedEvent is returned for frames that decode but carry no type.
var ErrUntypedEvent = errors.New("live: event without type")

// Event types sent by the browser. EventTheme is server-originated and is
// posted by the registry when a visitor switches theme.
//
// On every (re)connect the browser first replays what the page already
// shows: an EventRevealed per revealed section and an EventInput per
// non-empty field, then EventReady. Views answer EventReady with the state
// the page should show.
const (
	EventPointer  = "pointer"
	EventScroll   = "scroll"
	EventVisible  = "visible"
	EventInput    = "input"
	EventSubmit   = "submit"
	EventRevealed = "revealed"
	EventReady    = "ready"
	EventTheme    = "theme"
)

// Event is one discrete UI event delivered to a session.
type Event struct {
	Type     string  `json:"type"`
	Target   string  `json:"target,omitempty"`
	Field    string  `json:"field,omitempty"`
	Value    string  `json:"value,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Progress float64 `json:"progress,omitempty"`
}

// DecodeEvent parses a client frame.
func DecodeEvent(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, fmt.Errorf("live: decode event: %w", err)
	}
	if ev.Type == "" {
		return Event{}, ErrUntypedEvent
	}
	return ev, nil
}
