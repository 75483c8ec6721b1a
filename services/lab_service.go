package services

import (
	"context"
	"log/slog"

	"dispatch-lab/broadcast"
	"dispatch-lab/chain"
	"dispatch-lab/contract"
	"dispatch-lab/errors"
	"dispatch-lab/mediator"
	"dispatch-lab/moderation"
	"dispatch-lab/runtime"
	"dispatch-lab/scenario"
)

const (
	ObserverScenario = "observer"
	StrategyScenario = "strategy"
	MediatorScenario = "mediator"
	ChainScenario    = "chain"
)

type ILabService interface {
	RunScenario(ctx context.Context, name string, source contract.LineSource, sink contract.LineSink) error
}

// LabService maps scenario names onto constructed disciplines and hands the
// resulting worker to the orchestrator.
type LabService struct {
	log          *slog.Logger
	orchestrator *runtime.Orchestrator
	moderator    *moderation.Moderator
}

// NewLabService builds the facade. moderator is optional; when present the
// mediator scenario censors message bodies before relaying them.
func NewLabService(log *slog.Logger, orchestrator *runtime.Orchestrator,
	moderator *moderation.Moderator) *LabService {
	return &LabService{log: log, orchestrator: orchestrator, moderator: moderator}
}

func (s *LabService) RunScenario(ctx context.Context, name string,
	source contract.LineSource, sink contract.LineSink) error {
	worker, err := s.buildScenario(name, source, sink)
	if err != nil {
		return err
	}
	return s.orchestrator.Run(ctx, worker)
}

func (s *LabService) buildScenario(name string, source contract.LineSource,
	sink contract.LineSink) (contract.Worker, error) {
	telemetry := s.orchestrator.Telemetry()

	switch name {
	case ObserverScenario:
		notifier := broadcast.NewNotifier(s.log, telemetry)
		return scenario.NewObserverScenario(s.log, source, sink, notifier), nil
	case StrategyScenario:
		return scenario.NewStrategyScenario(s.log, source, sink, telemetry), nil
	case MediatorScenario:
		router := mediator.NewRouter(s.log, sink, s.moderator, telemetry)
		return scenario.NewMediatorScenario(s.log, source, router), nil
	case ChainScenario:
		c, err := chain.NewChain(s.log, telemetry, chain.DefaultLinks()...)
		if err != nil {
			return nil, err
		}
		return scenario.NewChainScenario(s.log, source, sink, c), nil
	default:
		return nil, errors.ErrUnknownScenario
	}
}
