// Package chat is the ephemeral realtime relay. Messages are fanned out to
// currently-connected recipients and never persisted; delivery is
// at-most-once, best-effort.
package chat

import (
	"sync"
)

// Event is one relayed message as seen by a recipient. Recipients lists the
// other parties of the conversation from that recipient's point of view: the
// remaining recipients plus the sender.
type Event struct {
	Sender     string   `json:"sender"`
	Recipients []string `json:"recipients"`
	Text       string   `json:"text"`
}

// Subscriber is one live connection bound to an account handle. An account
// can hold several subscriptions (several tabs/devices).
type Subscriber struct {
	Handle string
	send   chan Event
}

// Events is the subscriber's inbound event stream.
func (s *Subscriber) Events() <-chan Event {
	return s.send
}

type Hub struct {
	mu         sync.RWMutex
	subs       map[string]map[*Subscriber]bool
	bufferSize int
}

func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = 32
	}
	return &Hub{
		subs:       make(map[string]map[*Subscriber]bool),
		bufferSize: bufferSize,
	}
}

// Subscribe joins a handle's channel.
func (h *Hub) Subscribe(handle string) *Subscriber {
	sub := &Subscriber{
		Handle: handle,
		send:   make(chan Event, h.bufferSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[handle] == nil {
		h.subs[handle] = make(map[*Subscriber]bool)
	}
	h.subs[handle][sub] = true
	return sub
}

// Unsubscribe leaves the channel and closes the subscriber's event stream.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subs[sub.Handle]
	if !ok || !set[sub] {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(h.subs, sub.Handle)
	}
	close(sub.send)
}

// Publish relays a message from one subscriber to every listed recipient's
// live connections. Each recipient sees the remaining recipients plus the
// sender, so replies address the whole group. The sending connection never
// receives its own message; a recipient with a full buffer is skipped.
func (h *Hub) Publish(from *Subscriber, recipients []string, text string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, recipient := range recipients {
		rewritten := make([]string, 0, len(recipients))
		for _, r := range recipients {
			if r != recipient {
				rewritten = append(rewritten, r)
			}
		}
		rewritten = append(rewritten, from.Handle)

		event := Event{
			Sender:     from.Handle,
			Recipients: rewritten,
			Text:       text,
		}

		for sub := range h.subs[recipient] {
			if sub == from {
				continue
			}
			select {
			case sub.send <- event:
			default:
				// slow consumer, drop rather than block the relay
			}
		}
	}
}
