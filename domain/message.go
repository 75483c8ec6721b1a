// Package domain contains core concepts of the dispatch system.
// This file defines Message values relayed between participants.
// Messages are immutable once built.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents one immutable relayed chat line.
type Message struct {
	ID        uuid.UUID // unique identifier
	Sender    string
	Body      string
	CreatedAt time.Time
}

func NewMessage(sender, body string) Message {
	return Message{
		ID:        uuid.New(),
		Sender:    sender,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
}
