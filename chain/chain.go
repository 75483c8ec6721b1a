// Package chain implements the ordered escalation sequence: a request walks
// the links front to back and stops at the first one whose capacity covers
// it. The walk is forward-only; the terminal link denies what nobody took.
package chain

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dispatch-lab/domain"
	"dispatch-lab/domain/event"
	"dispatch-lab/errors"
)

var _ domain.Approver = Link{}

// Link is one approver node: a label and the maximum magnitude it accepts.
type Link struct {
	Label    string
	Capacity int
}

func (l Link) Name() string { return l.Label }

func (l Link) CanApprove(magnitude int) bool { return magnitude <= l.Capacity }

// Decision is the terminal state of one handled request.
type Decision struct {
	Approved bool
	Label    string
}

func (d Decision) String() string {
	if d.Approved {
		return fmt.Sprintf("Approved by %s.", d.Label)
	}
	return fmt.Sprintf("Denied by %s.", d.Label)
}

// Chain is immutable after construction; links keep their build order.
type Chain struct {
	mu        sync.RWMutex
	links     []Link
	telemetry chan<- event.Event
	log       *slog.Logger
}

// NewChain builds the escalation sequence once. An empty chain is a
// configuration error, not a per-request one.
func NewChain(log *slog.Logger, telemetry chan<- event.Event, links ...Link) (*Chain, error) {
	if len(links) == 0 {
		return nil, errors.ErrEmptyChain
	}
	owned := make([]Link, len(links))
	copy(owned, links)
	return &Chain{links: owned, telemetry: telemetry, log: log}, nil
}

// DefaultLinks is the three-tier leave-approval setup.
func DefaultLinks() []Link {
	return []Link{
		{Label: "Supervisor", Capacity: 3},
		{Label: "Manager", Capacity: 7},
		{Label: "Director", Capacity: 10},
	}
}

// Handle walks the chain front to back and resolves at the first link able
// to approve the request. Over a non-empty chain this is total: every
// request ends approved at some link or denied at the terminal one.
func (c *Chain) Handle(req domain.Request) Decision {
	c.mu.RLock()
	defer c.mu.RUnlock()

	decision := Decision{Approved: false, Label: c.links[len(c.links)-1].Label}
	for _, link := range c.links {
		if link.CanApprove(req.Magnitude) {
			decision = Decision{Approved: true, Label: link.Label}
			break
		}
	}

	c.emit(event.Event{
		Type:      event.RequestResolvedType,
		CreatedAt: time.Now().UTC(),
		Payload: event.RequestResolved{
			Subject:  req.Subject,
			Approved: decision.Approved,
			Label:    decision.Label,
		},
	})
	return decision
}

// Len returns the number of links.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.links)
}

func (c *Chain) emit(evt event.Event) {
	if c.telemetry == nil {
		return
	}
	select {
	case c.telemetry <- evt:
	default:
		c.log.Debug("Telemetry event lost", "type", string(evt.Type))
	}
}
