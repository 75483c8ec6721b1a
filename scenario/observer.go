package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"dispatch-lab/broadcast"
	"dispatch-lab/contract"
)

// Student is the scenario's tick listener: it reports every received hour
// on the output sink as "<name> <hour>".
type Student struct {
	name string
	sink contract.LineSink
	log  *slog.Logger
}

func NewStudent(name string, sink contract.LineSink, log *slog.Logger) *Student {
	return &Student{name: name, sink: sink, log: log}
}

func (s *Student) Name() string { return s.name }

func (s *Student) OnTick(hour int) {
	if err := s.sink.WriteLine(fmt.Sprintf("%s %d", s.name, hour)); err != nil {
		s.log.Warn("Sink write failed", "name", s.name, "error", err)
	}
}

// ObserverScenario drives the broadcast discipline:
// N, then N names, then U, then U clock advances.
type ObserverScenario struct {
	log      *slog.Logger
	source   contract.LineSource
	sink     contract.LineSink
	notifier *broadcast.Notifier
}

func NewObserverScenario(log *slog.Logger, source contract.LineSource,
	sink contract.LineSink, notifier *broadcast.Notifier) *ObserverScenario {
	return &ObserverScenario{log: log, source: source, sink: sink, notifier: notifier}
}

func (s *ObserverScenario) Run(ctx context.Context) error {
	n, err := readCount(s.source)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		line, err := s.source.NextLine()
		if err != nil {
			return err
		}
		name := strings.TrimSpace(line)
		if err := s.notifier.Register(NewStudent(name, s.sink, s.log)); err != nil {
			return err
		}
	}

	updates, err := readCount(s.source)
	if err != nil {
		return err
	}

	for i := 0; i < updates; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.notifier.Advance()
	}
	return nil
}
