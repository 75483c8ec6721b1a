package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"dispatch-lab/contract"
	"dispatch-lab/domain/event"
	"dispatch-lab/errors"
	"dispatch-lab/strategy"
)

const unknownStrategyLine = "Unknown strategy type"

// StrategyScenario drives the strategy discipline:
// N, then N "<price> <strategyId>" lines. The first unknown identifier
// reports and stops the remaining batch; that halt is part of the protocol.
type StrategyScenario struct {
	log       *slog.Logger
	source    contract.LineSource
	sink      contract.LineSink
	telemetry chan<- event.Event
}

func NewStrategyScenario(log *slog.Logger, source contract.LineSource,
	sink contract.LineSink, telemetry chan<- event.Event) *StrategyScenario {
	return &StrategyScenario{log: log, source: source, sink: sink, telemetry: telemetry}
}

func (s *StrategyScenario) Run(ctx context.Context) error {
	n, err := readCount(s.source)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := s.source.NextLine()
		if err != nil {
			return fmt.Errorf("%w: expected %d cases, got %d", errors.ErrMalformedInput, n, i)
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("%w: %q", errors.ErrMalformedInput, line)
		}
		price, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("%w: price %q", errors.ErrMalformedInput, fields[0])
		}

		apply, err := strategy.Resolve(fields[1])
		if err != nil {
			s.emit(event.Event{
				Type:      event.StrategyRejectedType,
				CreatedAt: time.Now().UTC(),
				Payload:   event.StrategyRejected{StrategyID: fields[1]},
			})
			// Reported to the user, remaining input abandoned. The run
			// itself still ends cleanly; only malformed input is fatal.
			return s.sink.WriteLine(unknownStrategyLine)
		}

		result := apply(price)
		if err := s.sink.WriteLine(strconv.Itoa(result)); err != nil {
			return err
		}
		s.emit(event.Event{
			Type:      event.StrategyAppliedType,
			CreatedAt: time.Now().UTC(),
			Payload:   event.StrategyApplied{StrategyID: fields[1], Price: price, Result: result},
		})
	}
	return nil
}

func (s *StrategyScenario) emit(evt event.Event) {
	if s.telemetry == nil {
		return
	}
	select {
	case s.telemetry <- evt:
	default:
		s.log.Debug("Telemetry event lost", "type", string(evt.Type))
	}
}
