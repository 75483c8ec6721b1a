package errors

import "fmt"

var (
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrDuplicateParticipant = fmt.Errorf("participant name already registered")
	ErrUnknownStrategy      = fmt.Errorf("unknown strategy type")
	ErrMalformedInput       = fmt.Errorf("malformed input line")
	ErrEmptyChain           = fmt.Errorf("escalation chain needs at least one link")
	ErrUnknownScenario      = fmt.Errorf("unknown scenario name")
	ErrInvalidPayload       = fmt.Errorf("unexpected event payload type")
	ErrEmptyWords           = fmt.Errorf("no words have been found")
)
