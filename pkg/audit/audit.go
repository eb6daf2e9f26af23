// Package audit records the terminal outcome of every confirmation.
package audit

import (
	"context"
	"time"
)

// Outcome is the terminal state of a confirmation, in the wire form the
// supervisors read.
type Outcome string

const (
	OutcomeConfirmed Outcome = "CONFIRMADO"
	OutcomeDeclined  Outcome = "RECUSADO"
)

// Record is one write-once audit entry, produced exactly once per terminal
// transition and never mutated afterwards.
type Record struct {
	ID           string
	Timestamp    time.Time
	Outcome      Outcome
	WorkerNumber string // display number, country prefix stripped
	WorkerName   string
	Location     string
	DateLabel    string
	TimeLabel    string
}

// Sink appends records durably. Implementations must create their backing
// store if it is absent before the first append.
type Sink interface {
	Append(ctx context.Context, rec Record) error
}
