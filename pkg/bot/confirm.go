package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lucasreis/escala-bot/pkg/audit"
	"github.com/lucasreis/escala-bot/pkg/roster"
	"github.com/lucasreis/escala-bot/pkg/transport"
)

// Reply codes a worker can send for a pending assignment.
const (
	ReplyConfirm = "1"
	ReplyDecline = "2"
)

// Outcome is the result of resolving a worker's reply.
type Outcome int

const (
	// OutcomeNoPending means the worker had nothing awaiting confirmation.
	OutcomeNoPending Outcome = iota
	OutcomeConfirmed
	OutcomeDeclined
)

// Confirmer resolves confirmation replies against the pending store: it takes
// the worker's single pending assignment, notifies the worker and the
// originating group, and appends one audit record per terminal transition.
type Confirmer struct {
	store     *roster.PendingStore
	messenger transport.Messenger
	sink      audit.Sink
	logger    *zap.Logger
	now       func() time.Time
}

func NewConfirmer(store *roster.PendingStore, messenger transport.Messenger, sink audit.Sink, logger *zap.Logger) *Confirmer {
	return &Confirmer{
		store:     store,
		messenger: messenger,
		sink:      sink,
		logger:    logger,
		now:       time.Now,
	}
}

// Resolve applies a worker's reply. Take removes the pending entry in the
// same step it is read, so a repeated reply finds nothing and resolves to
// OutcomeNoPending without a second audit record.
func (c *Confirmer) Resolve(ctx context.Context, worker roster.WorkerID, reply string) (Outcome, error) {
	if reply != ReplyConfirm && reply != ReplyDecline {
		return OutcomeNoPending, fmt.Errorf("unsupported reply code %q", reply)
	}

	assignment, ok := c.store.Take(worker)
	if !ok {
		if err := c.messenger.SendDirect(ctx, worker, msgNoPending); err != nil {
			return OutcomeNoPending, fmt.Errorf("failed to send no-pending notice: %w", err)
		}
		return OutcomeNoPending, nil
	}

	var (
		outcome       Outcome
		recordOutcome audit.Outcome
		workerText    string
		groupText     string
	)
	if reply == ReplyConfirm {
		outcome = OutcomeConfirmed
		recordOutcome = audit.OutcomeConfirmed
		workerText = msgConfirmedDM
		groupText = confirmedBroadcast(worker, assignment)
	} else {
		outcome = OutcomeDeclined
		recordOutcome = audit.OutcomeDeclined
		workerText = msgDeclinedDM
		groupText = declinedBroadcast(worker, assignment)
	}

	if err := c.messenger.SendDirect(ctx, worker, workerText); err != nil {
		return outcome, fmt.Errorf("failed to notify worker: %w", err)
	}

	if assignment.Group != "" {
		err := c.messenger.SendGroup(ctx, assignment.Group, groupText, []roster.WorkerID{worker})
		if err != nil {
			return outcome, fmt.Errorf("failed to notify group: %w", err)
		}
	}

	rec := audit.Record{
		ID:           uuid.NewString(),
		Timestamp:    c.now(),
		Outcome:      recordOutcome,
		WorkerNumber: displayNumber(worker),
		WorkerName:   assignment.WorkerName,
		Location:     assignment.Location,
		DateLabel:    assignment.DateLabel,
		TimeLabel:    assignment.TimeLabel,
	}
	if err := c.sink.Append(ctx, rec); err != nil {
		return outcome, fmt.Errorf("failed to append audit record: %w", err)
	}

	c.logger.Info("Confirmation resolved",
		zap.String("worker", string(worker)),
		zap.String("outcome", string(recordOutcome)),
		zap.String("date", assignment.DateLabel),
		zap.String("time", assignment.TimeLabel),
	)

	return outcome, nil
}
