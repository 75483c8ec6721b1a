package runtime

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"dispatch-lab/domain/event"
	"dispatch-lab/mediator"
	"dispatch-lab/scenario"
	"dispatch-lab/sink"
)

func TestOrchestrator_Run_MediatorScenarioEndToEnd(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	sup := NewSupervisor(log, testRestartInterval, nil)
	orchestrator := NewOrchestrator(log, sup, 64)

	buffer := sink.NewBufferSink()
	router := mediator.NewRouter(log, buffer, nil, orchestrator.Telemetry())
	source := scenario.NewScannerSource(strings.NewReader("3\nA\nB\nC\nA hi\n"))
	worker := scenario.NewMediatorScenario(log, source, router)

	// When the orchestrator drives the scenario
	err := orchestrator.Run(context.Background(), worker)

	// Then the protocol output is complete and in order
	req.NoError(err)
	req.Equal([]string{"B received: hi", "C received: hi"}, buffer.Lines())

	// And telemetry was fully drained into the counters
	req.Equal(uint64(2), orchestrator.Counter().Get(event.MessageRelayedType))

	// And the projection rebuilt the receiver timelines from events alone
	req.Len(orchestrator.Timeline().MessagesFor("B"), 1)
	req.Len(orchestrator.Timeline().MessagesFor("C"), 1)
	req.Empty(orchestrator.Timeline().MessagesFor("A"))
}

func TestOrchestrator_Run_PropagatesScenarioError(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	sup := NewSupervisor(log, testRestartInterval, nil)
	orchestrator := NewOrchestrator(log, sup, 8)

	buffer := sink.NewBufferSink()
	router := mediator.NewRouter(log, buffer, nil, orchestrator.Telemetry())
	source := scenario.NewScannerSource(strings.NewReader("not-a-number\n"))
	worker := scenario.NewMediatorScenario(log, source, router)

	err := orchestrator.Run(context.Background(), worker)

	req.Error(err)
}

func TestOrchestrator_Run_StopsWithinDeadline(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	sup := NewSupervisor(log, testRestartInterval, nil)
	orchestrator := NewOrchestrator(log, sup, 8)

	buffer := sink.NewBufferSink()
	router := mediator.NewRouter(log, buffer, nil, orchestrator.Telemetry())
	source := scenario.NewScannerSource(strings.NewReader("1\nA\n"))
	worker := scenario.NewMediatorScenario(log, source, router)

	done := make(chan struct{})
	go func() {
		_ = orchestrator.Run(context.Background(), worker)
		close(done)
	}()

	// The telemetry worker must not keep the run alive after the scenario ends
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		req.Fail("Orchestrator did not tear down after scenario completion")
	}
}
