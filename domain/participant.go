// Package domain contains core concepts of the dispatch system.
// This file defines participant capability contracts.
// No runtime, transport, or UI logic should be added here.
package domain

// Named is the minimal identity every registered participant carries.
// Registry membership is unique per name.
type Named interface {
	Name() string
}

// TickListener receives the clock state after each advance.
type TickListener interface {
	Named
	OnTick(hour int)
}

// MessageReceiver receives messages relayed on behalf of other participants.
type MessageReceiver interface {
	Named
	OnMessage(sender, body string)
}

// Approver decides whether it can absorb a request of a given magnitude.
type Approver interface {
	Named
	CanApprove(magnitude int) bool
}
