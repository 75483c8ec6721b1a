package event

import (
	"dispatch-lab/errors"
	"log/slog"
	"sync"
)

// WorkerRestartedAfterPanicHandler keeps track of supervised workers that
// crashed and were brought back. A non-zero count after a run is a signal
// that a discipline panicked mid-dispatch.
type WorkerRestartedAfterPanicHandler struct {
	mu       sync.Mutex
	log      *slog.Logger
	restarts map[string]uint64
}

func NewWorkerRestartedAfterPanicHandler(log *slog.Logger) *WorkerRestartedAfterPanicHandler {
	return &WorkerRestartedAfterPanicHandler{
		log:      log,
		restarts: make(map[string]uint64),
	}
}

func (h *WorkerRestartedAfterPanicHandler) Handle(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch event.Type {
	case RestartedAfterPanicType:
		payload, ok := event.Payload.(WorkerRestartedAfterPanic)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.restarts[payload.WorkerName]++
		h.log.Warn("Worker restarted after panic", "name", payload.WorkerName)
	}
}

func (h *WorkerRestartedAfterPanicHandler) Restarts(name string) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.restarts[name]
}
