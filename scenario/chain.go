package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"dispatch-lab/chain"
	"dispatch-lab/contract"
	"dispatch-lab/domain"
	"dispatch-lab/errors"
)

const invalidInputLine = "Invalid input"

// ChainScenario drives the escalation discipline:
// n, then n "<name> <days>" request lines. A structurally invalid line
// reports "Invalid input" and halts the whole batch.
type ChainScenario struct {
	log    *slog.Logger
	source contract.LineSource
	sink   contract.LineSink
	chain  *chain.Chain
}

func NewChainScenario(log *slog.Logger, source contract.LineSource,
	sink contract.LineSink, c *chain.Chain) *ChainScenario {
	return &ChainScenario{log: log, source: source, sink: sink, chain: c}
}

func (s *ChainScenario) Run(ctx context.Context) error {
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
			return s.invalid(line)
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return s.invalid(line)
		}
		days, err := strconv.Atoi(fields[1])
		if err != nil {
			return s.invalid(line)
		}

		request := domain.Request{Subject: fields[0], Magnitude: days}
		if err := request.Validate(); err != nil {
			return s.invalid(line)
		}

		decision := s.chain.Handle(request)
		if err := s.sink.WriteLine(fmt.Sprintf("%s %s", request.Subject, decision)); err != nil {
			return err
		}
	}
	return nil
}

// invalid reports the protocol line and surfaces the fatal halt condition.
func (s *ChainScenario) invalid(line string) error {
	if err := s.sink.WriteLine(invalidInputLine); err != nil {
		return err
	}
	return fmt.Errorf("%w: %q", errors.ErrMalformedInput, line)
}
