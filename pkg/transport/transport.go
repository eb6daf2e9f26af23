// Package transport defines the contracts between the scheduling core and the
// chat provider. Connecting, authenticating and delivering messages are the
// provider's problem; the core only sees resolved Inbound values and the
// Messenger/Directory interfaces below.
package transport

import (
	"context"

	"github.com/lucasreis/escala-bot/pkg/roster"
)

// Inbound is one message delivered by the provider, with the payload union
// already resolved (see Payload) and mention tokens extracted in source order.
type Inbound struct {
	Sender   roster.WorkerID
	Group    roster.GroupID // set only when the message came from a group
	Text     string
	Mentions []roster.WorkerID
}

// FromGroup reports whether the message originated in a group conversation.
func (m Inbound) FromGroup() bool {
	return m.Group != ""
}

// Messenger delivers outbound text.
type Messenger interface {
	// SendDirect sends a private message to one worker.
	SendDirect(ctx context.Context, to roster.WorkerID, text string) error

	// SendGroup sends text to a group. Every worker in mentions must also
	// appear in the text as an "@number" token for correct rendering.
	SendGroup(ctx context.Context, to roster.GroupID, text string, mentions []roster.WorkerID) error
}

// Participant is one member of a group, with the provider's notify name,
// contact name or fallback already collapsed into a single display name.
type Participant struct {
	ID   roster.WorkerID
	Name string
}

// GroupInfo is the metadata the core needs from a group: its subject (used as
// the shift location) and the participant directory.
type GroupInfo struct {
	Subject      string
	Participants []Participant
}

// Directory looks up group metadata.
type Directory interface {
	GroupInfo(ctx context.Context, id roster.GroupID) (GroupInfo, error)
}
