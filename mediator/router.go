// Package mediator implements centralized message routing: every message
// goes through the router, which relays it to all registered users except
// the sender. Users never talk to each other directly.
package mediator

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/abadojack/whatlanggo"

	"dispatch-lab/contract"
	"dispatch-lab/domain"
	"dispatch-lab/domain/event"
	"dispatch-lab/moderation"
	"dispatch-lab/registry"
)

var _ domain.MessageReceiver = (*User)(nil)

// User is a mediated participant accumulating every message relayed to it.
type User struct {
	mu       sync.Mutex
	name     string
	received []domain.Message
}

func NewUser(name string) *User {
	return &User{name: name}
}

func (u *User) Name() string { return u.name }

func (u *User) OnMessage(sender, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.received = append(u.received, domain.NewMessage(sender, body))
}

// Received returns a copy of the accumulated message log.
func (u *User) Received() []domain.Message {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]domain.Message, len(u.received))
	copy(out, u.received)
	return out
}

type Router struct {
	users     *registry.Registry[*User]
	sink      contract.LineSink
	moderator *moderation.Moderator
	telemetry chan<- event.Event
	log       *slog.Logger
}

// NewRouter builds a router relaying observable output to sink.
// moderator and telemetry are optional.
func NewRouter(log *slog.Logger, sink contract.LineSink,
	moderator *moderation.Moderator, telemetry chan<- event.Event) *Router {
	return &Router{
		users:     registry.New[*User](),
		sink:      sink,
		moderator: moderator,
		telemetry: telemetry,
		log:       log,
	}
}

// AddUser constructs and registers a participant under that name.
func (r *Router) AddUser(name string) error {
	return r.users.Add(NewUser(name))
}

func (r *Router) RemoveUser(name string) {
	r.users.Remove(name)
}

func (r *Router) Lookup(name string) (*User, bool) {
	return r.users.Lookup(name)
}

// Send relays body to every registered user except the sender, in
// registration order. Messages from names never registered are silently
// dropped; skipping unknown senders is a deliberate non-error.
func (r *Router) Send(sender, body string) error {
	if _, ok := r.users.Lookup(sender); !ok {
		r.log.Debug("Dropping message from unknown sender", "sender", sender)
		return nil
	}

	body = r.moderate(body)

	var sinkErr error
	r.users.ForEach(func(u *User) {
		if sinkErr != nil || u.Name() == sender {
			return
		}
		u.OnMessage(sender, body)
		if err := r.sink.WriteLine(fmt.Sprintf("%s received: %s", u.Name(), body)); err != nil {
			sinkErr = err
			return
		}
		r.emit(event.Event{
			Type:      event.MessageRelayedType,
			CreatedAt: time.Now().UTC(),
			Payload:   event.MessageRelayed{Sender: sender, Receiver: u.Name(), Body: body},
		})
	})
	return sinkErr
}

// moderate censors the body when a moderator is configured and tags the
// message language of every hit for the telemetry handlers.
func (r *Router) moderate(body string) string {
	if r.moderator == nil {
		return body
	}
	censored, found := r.moderator.Censor(body)
	if len(found) == 0 {
		return body
	}

	info := whatlanggo.Detect(body)
	lang := info.Lang.Iso6391()
	for _, word := range found {
		r.emit(event.Event{
			Type:      event.CensorshipHit,
			CreatedAt: time.Now().UTC(),
			Payload:   event.Censored{Word: word, Lang: lang},
		})
	}
	r.log.Debug("Message censored", "hits", len(found), "lang", lang)
	return censored
}

func (r *Router) emit(evt event.Event) {
	if r.telemetry == nil {
		return
	}
	select {
	case r.telemetry <- evt:
	default:
		r.log.Debug("Telemetry event lost", "type", string(evt.Type))
	}
}
