package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dispatch-lab/domain/event"
)

func relayed(sender, receiver, body string) event.Event {
	return event.Event{
		Type:      event.MessageRelayedType,
		CreatedAt: time.Now().UTC(),
		Payload:   event.MessageRelayed{Sender: sender, Receiver: receiver, Body: body},
	}
}

func TestTimeline_Handle_MessageRelayed(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline()

	timeline.Handle(relayed("Alice", "Bob", "Hello Bob"))
	timeline.Handle(relayed("Clara", "Bob", "Hi Bob"))

	messages := timeline.MessagesFor("Bob")
	req.Len(messages, 2)
	req.Equal("Alice", messages[0].Sender)
	req.Equal("Clara", messages[1].Sender)
	req.Empty(timeline.MessagesFor("Alice"))
}

func TestTimeline_Handle_IgnoresOtherEventTypes(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline()

	timeline.Handle(event.Event{
		Type:    event.TickDispatchedType,
		Payload: event.TickDispatched{Hour: 3, Listeners: 1},
	})

	req.Empty(timeline.MessagesFor("Bob"))
}
