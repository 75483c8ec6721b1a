package event

import "time"

type Type string

const (
	TickDispatchedType      Type = "TICK_DISPATCHED"
	MessageRelayedType      Type = "MESSAGE_RELAYED"
	StrategyAppliedType     Type = "STRATEGY_APPLIED"
	StrategyRejectedType    Type = "STRATEGY_REJECTED"
	RequestResolvedType     Type = "REQUEST_RESOLVED"
	CensorshipHit           Type = "CENSORSHIP_HIT"
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
)

// Event is the envelope pushed on the telemetry channel by disciplines.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

// TickDispatched is emitted after one clock advance has been fanned out.
type TickDispatched struct {
	Hour      int
	Listeners int
}

// MessageRelayed is emitted once per receiver of a mediated message.
type MessageRelayed struct {
	Sender   string
	Receiver string
	Body     string
}

type StrategyApplied struct {
	StrategyID string
	Price      int
	Result     int
}

type StrategyRejected struct {
	StrategyID string
}

// RequestResolved is emitted for every handled escalation request.
type RequestResolved struct {
	Subject  string
	Approved bool
	Label    string
}

type Censored struct {
	Word string
	Lang string
}

type WorkerRestartedAfterPanic struct {
	WorkerName string
}
