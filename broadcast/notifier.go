// Package broadcast implements the clock subject: a single hour value whose
// advances are fanned out to every registered listener in registration order.
package broadcast

import (
	"log/slog"
	"sync"
	"time"

	"dispatch-lab/domain"
	"dispatch-lab/domain/event"
	"dispatch-lab/registry"
)

const hoursPerDay = 24

type Notifier struct {
	mu        sync.Mutex
	hour      int
	listeners *registry.Registry[domain.TickListener]
	telemetry chan<- event.Event
	log       *slog.Logger
}

// NewNotifier starts at hour 0. telemetry may be nil when nobody observes
// technical events.
func NewNotifier(log *slog.Logger, telemetry chan<- event.Event) *Notifier {
	return &Notifier{
		listeners: registry.New[domain.TickListener](),
		telemetry: telemetry,
		log:       log,
	}
}

func (n *Notifier) Register(l domain.TickListener) error {
	return n.listeners.Add(l)
}

func (n *Notifier) Unregister(name string) {
	n.listeners.Remove(name)
}

// Hour returns the current hour, always in [0,23].
func (n *Notifier) Hour() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.hour
}

// Advance increments the hour modulo 24 and dispatches the new value to
// every listener in registration order. Dispatching to zero listeners is a
// legal no-op. Advance never fails.
func (n *Notifier) Advance() int {
	n.mu.Lock()
	n.hour = (n.hour + 1) % hoursPerDay
	hour := n.hour
	n.mu.Unlock()

	n.listeners.ForEach(func(l domain.TickListener) {
		l.OnTick(hour)
	})

	n.emit(event.Event{
		Type:      event.TickDispatchedType,
		CreatedAt: time.Now().UTC(),
		Payload:   event.TickDispatched{Hour: hour, Listeners: n.listeners.Len()},
	})
	return hour
}

func (n *Notifier) emit(evt event.Event) {
	if n.telemetry == nil {
		return
	}
	select {
	case n.telemetry <- evt:
	default:
		n.log.Debug("Telemetry event lost", "type", string(evt.Type))
	}
}
