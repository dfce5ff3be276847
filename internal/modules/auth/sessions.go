// README: In-process broadcast of sign-in/sign-out events.
package auth

import (
	"sync"

	"drivehire/internal/types"
)

type EventKind string

const (
	EventSignedIn  EventKind = "signed_in"
	EventSignedOut EventKind = "signed_out"
)

type Event struct {
	Kind   EventKind
	UserID types.ID
	Role   string
}

// Sessions fans auth state changes out to subscribers. A slow subscriber
// drops events rather than blocking the publisher.
type Sessions struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Event
}

func NewSessions() *Sessions {
	return &Sessions{subs: make(map[int]chan Event)}
}

func (s *Sessions) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan Event, 8)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *Sessions) publish(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
