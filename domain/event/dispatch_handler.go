package event

import (
	"log/slog"
	"sync"
)

// DispatchHandler handles events emitted by the dispatch disciplines.
// It is triggered each time a tick, a relay, a strategy application or a
// chain resolution completes. Useful for updating observability counters.
type DispatchHandler struct {
	log     *slog.Logger
	mu      sync.Mutex
	counter *Counter
}

func NewDispatchHandler(log *slog.Logger, counter *Counter) *DispatchHandler {
	return &DispatchHandler{log: log, counter: counter}
}

func (h *DispatchHandler) Handle(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch event.Type {
	case TickDispatchedType, MessageRelayedType, StrategyAppliedType,
		StrategyRejectedType, RequestResolvedType:
		h.counter.Increment(event.Type)
	}
}
