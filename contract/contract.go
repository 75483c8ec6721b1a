//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"dispatch-lab/domain/event"
)

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// LineSource produces input lines on demand. Implementations return io.EOF
// once the stream is exhausted; any other error is fatal for the scenario.
type LineSource interface {
	NextLine() (string, error)
}

// LineSink accepts one line of observable output. Disciplines never touch
// ambient stdio; the driver injects whichever sink it wants.
type LineSink interface {
	WriteLine(line string) error
}

// TelemetrySink receives technical events emitted by disciplines.
type TelemetrySink interface {
	Consume(ctx context.Context, e event.Event) error
}
