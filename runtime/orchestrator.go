package runtime

import (
	"context"
	"log/slog"

	"dispatch-lab/contract"
	"dispatch-lab/domain/event"
	"dispatch-lab/projection"
)

// Orchestrator owns the telemetry channel, the counter, the handler chain
// and the supervisor. Dispatch itself stays synchronous inside the scenario;
// only telemetry is drained concurrently, under supervision.
type Orchestrator struct {
	log        *slog.Logger
	supervisor contract.ISupervisor
	telemetry  chan event.Event
	counter    *event.Counter
	censored   *event.CensoredHandler
	timeline   *projection.Timeline
	handlers   []event.Handler
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	bufferSize int) *Orchestrator {
	counter := event.NewCounter()
	censored := event.NewCensoredHandler(log)
	timeline := projection.NewTimeline()
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		telemetry:  make(chan event.Event, bufferSize),
		counter:    counter,
		censored:   censored,
		timeline:   timeline,
		handlers: []event.Handler{
			event.NewDispatchHandler(log, counter),
			censored,
			event.NewWorkerRestartedAfterPanicHandler(log),
			timeline,
		},
	}
}

// Telemetry exposes the channel disciplines publish on.
func (o *Orchestrator) Telemetry() chan event.Event { return o.telemetry }

func (o *Orchestrator) Counter() *event.Counter { return o.counter }

func (o *Orchestrator) Censored() *event.CensoredHandler { return o.censored }

func (o *Orchestrator) Timeline() *projection.Timeline { return o.timeline }

// Run executes one scenario to completion while the telemetry worker drains
// events under supervision. When the scenario returns, supervision is torn
// down and any buffered events are flushed into the handlers so the final
// counters are complete.
func (o *Orchestrator) Run(ctx context.Context, scenario contract.Worker) error {
	telemetryWorker := NewTelemetryWorker(o.log, o.telemetry, o.handlers)

	// The drain gets its own cancellation so teardown works even when the
	// scenario finishes before the supervisor goroutine is scheduled.
	drainCtx, stopDrain := context.WithCancel(ctx)
	defer stopDrain()

	done := make(chan struct{})
	go func() {
		o.supervisor.Add(telemetryWorker).Run(drainCtx)
		close(done)
	}()

	o.log.Info("Running scenario", "name", contract.GetWorkerName(scenario))
	err := scenario.Run(ctx)

	stopDrain()
	<-done
	o.flush()

	return err
}

// flush drains whatever the telemetry worker did not get to before the stop.
func (o *Orchestrator) flush() {
	for {
		select {
		case evt := <-o.telemetry:
			for _, h := range o.handlers {
				h.Handle(evt)
			}
		default:
			return
		}
	}
}
