package publishers

import (
	"encoding/json"
	"time"
)

// Event is one fetched poe.ninja overview published downstream.
type Event struct {
	Kind        string          `json:"kind"`
	League      string          `json:"league"`
	Overview    string          `json:"overview"`
	CollectedAt time.Time       `json:"collected_at"`
	Payload     json.RawMessage `json:"payload"`
}

// NewEvent constructs an Event for the given overview payload.
func NewEvent(kind, league, overview string, payload json.RawMessage) Event {
	return Event{
		Kind:        kind,
		League:      league,
		Overview:    overview,
		CollectedAt: time.Now().UTC(),
		Payload:     payload,
	}
}

func (e Event) attributes() map[string]string {
	return map[string]string{
		"kind":     e.Kind,
		"league":   e.League,
		"overview": e.Overview,
	}
}
