// Package projection builds local read models from observed events.
// It does not emit events or interact with sinks directly.
package projection

import (
	"sync"

	"dispatch-lab/domain"
	"dispatch-lab/domain/event"
)

// Timeline keeps one message log per receiver, rebuilt purely from
// MessageRelayed events.
type Timeline struct {
	mu      sync.Mutex
	perUser map[string][]domain.Message
}

func NewTimeline() *Timeline {
	return &Timeline{perUser: make(map[string][]domain.Message)}
}

func (t *Timeline) Handle(e event.Event) {
	if e.Type != event.MessageRelayedType {
		return
	}
	payload, ok := e.Payload.(event.MessageRelayed)
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.perUser[payload.Receiver] = append(t.perUser[payload.Receiver],
		domain.NewMessage(payload.Sender, payload.Body))
}

// MessagesFor returns a copy of the receiver's timeline.
func (t *Timeline) MessagesFor(receiver string) []domain.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	messages := t.perUser[receiver]
	out := make([]domain.Message, len(messages))
	copy(out, messages)
	return out
}
