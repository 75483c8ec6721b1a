package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"dispatch-lab/contract"
	labErrors "dispatch-lab/errors"
	"dispatch-lab/mediator"
)

// MediatorScenario drives the mediated-routing discipline:
// N, then N user names, then "<sender> <body...>" lines until the source
// runs dry. The body is everything after the first space.
type MediatorScenario struct {
	log    *slog.Logger
	source contract.LineSource
	router *mediator.Router
}

func NewMediatorScenario(log *slog.Logger, source contract.LineSource,
	router *mediator.Router) *MediatorScenario {
	return &MediatorScenario{log: log, source: source, router: router}
}

func (s *MediatorScenario) Run(ctx context.Context) error {
	n, err := readCount(s.source)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		line, err := s.source.NextLine()
		if err != nil {
			return fmt.Errorf("%w: expected %d users, got %d", labErrors.ErrMalformedInput, n, i)
		}
		if err := s.router.AddUser(strings.TrimSpace(line)); err != nil {
			return err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := s.source.NextLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		sender, body, found := strings.Cut(line, " ")
		if !found {
			return fmt.Errorf("%w: %q", labErrors.ErrMalformedInput, line)
		}
		if err := s.router.Send(sender, body); err != nil {
			return err
		}
	}
}
