package broadcast

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"dispatch-lab/domain/event"
	"dispatch-lab/errors"
)

type recordingListener struct {
	name  string
	ticks []int
	trace *[]string
}

func (r *recordingListener) Name() string { return r.name }

func (r *recordingListener) OnTick(hour int) {
	r.ticks = append(r.ticks, hour)
	if r.trace != nil {
		*r.trace = append(*r.trace, fmt.Sprintf("%s %d", r.name, hour))
	}
}

func TestNotifier_Advance_WrapsAtMidnight(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	notifier := NewNotifier(log, nil)

	// Given a full day of advances
	for i := 0; i < 23; i++ {
		notifier.Advance()
	}
	req.Equal(23, notifier.Hour())

	// When the 24th advance happens
	hour := notifier.Advance()

	// Then the clock wraps to 0
	req.Equal(0, hour)
	req.Equal(0, notifier.Hour())
}

func TestNotifier_Advance_ModuloInvariant(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	notifier := NewNotifier(log, nil)

	for n := 1; n <= 100; n++ {
		hour := notifier.Advance()
		req.Equal(n%24, hour, "after %d advances", n)
	}
}

func TestNotifier_Advance_DispatchesInRegistrationOrder(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	notifier := NewNotifier(log, nil)

	var trace []string
	amy := &recordingListener{name: "Amy", trace: &trace}
	bob := &recordingListener{name: "Bob", trace: &trace}
	req.NoError(notifier.Register(amy))
	req.NoError(notifier.Register(bob))

	// When advancing three times
	for i := 0; i < 3; i++ {
		notifier.Advance()
	}

	// Then every listener saw every hour, in registration order per advance
	req.Equal([]string{"Amy 1", "Bob 1", "Amy 2", "Bob 2", "Amy 3", "Bob 3"}, trace)
	req.Equal([]int{1, 2, 3}, amy.ticks)
	req.Equal([]int{1, 2, 3}, bob.ticks)
}

func TestNotifier_Advance_ZeroListenersIsNoOp(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	notifier := NewNotifier(log, nil)

	// Advance with nobody registered must simply tick
	req.Equal(1, notifier.Advance())
}

func TestNotifier_Unregister_StopsDelivery(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	notifier := NewNotifier(log, nil)

	amy := &recordingListener{name: "Amy"}
	bob := &recordingListener{name: "Bob"}
	req.NoError(notifier.Register(amy))
	req.NoError(notifier.Register(bob))

	notifier.Advance()
	notifier.Unregister("Amy")
	notifier.Advance()

	req.Equal([]int{1}, amy.ticks)
	req.Equal([]int{1, 2}, bob.ticks)
}

func TestNotifier_Register_DuplicateListenerRejected(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	notifier := NewNotifier(log, nil)

	req.NoError(notifier.Register(&recordingListener{name: "Amy"}))
	err := notifier.Register(&recordingListener{name: "Amy"})

	req.ErrorIs(err, errors.ErrDuplicateParticipant)
}

func TestNotifier_Advance_EmitsTelemetry(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	telemetry := make(chan event.Event, 1)
	notifier := NewNotifier(log, telemetry)
	req.NoError(notifier.Register(&recordingListener{name: "Amy"}))

	notifier.Advance()

	evt := <-telemetry
	req.Equal(event.TickDispatchedType, evt.Type)
	payload, ok := evt.Payload.(event.TickDispatched)
	req.True(ok)
	req.Equal(1, payload.Hour)
	req.Equal(1, payload.Listeners)
}
