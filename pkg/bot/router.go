package bot

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lucasreis/escala-bot/pkg/roster"
	"github.com/lucasreis/escala-bot/pkg/transport"
)

// Router classifies inbound messages and drives the scheduling workflow. One
// Router consumes messages sequentially; the pending store and confirmer are
// injected so nothing here is process-global.
type Router struct {
	store     *roster.PendingStore
	confirmer *Confirmer
	messenger transport.Messenger
	directory transport.Directory
	logger    *zap.Logger
}

func NewRouter(store *roster.PendingStore, confirmer *Confirmer, messenger transport.Messenger, directory transport.Directory, logger *zap.Logger) *Router {
	return &Router{
		store:     store,
		confirmer: confirmer,
		messenger: messenger,
		directory: directory,
		logger:    logger,
	}
}

// Run consumes inbound messages until ctx is cancelled or inbox closes.
// Messages are handled one at a time, in arrival order.
func (r *Router) Run(ctx context.Context, inbox <-chan transport.Inbound) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-inbox:
			if !ok {
				return
			}
			r.Handle(ctx, m)
		}
	}
}

// Handle classifies one message and dispatches it. Highest-priority match
// wins; ordinary chat traffic falls through and is deliberately ignored.
func (r *Router) Handle(ctx context.Context, m transport.Inbound) {
	text := strings.TrimSpace(m.Text)

	switch {
	case text == ReplyConfirm || text == ReplyDecline:
		if _, err := r.confirmer.Resolve(ctx, m.Sender, text); err != nil {
			r.logger.Error("Failed to resolve confirmation reply",
				zap.String("sender", string(m.Sender)), zap.Error(err))
		}

	case text == "/on":
		r.reply(ctx, m, msgBotActive)

	case text == "/regras":
		r.reply(ctx, m, msgRules)

	case roster.IsScheduleCommand(text):
		r.handleSchedule(ctx, m, text)

	default:
		// ordinary chat traffic, no reply
	}
}

// handleSchedule parses a roster command and, per resolved worker line,
// stores the pending assignment, notifies the worker privately and
// acknowledges in the originating conversation.
func (r *Router) handleSchedule(ctx context.Context, m transport.Inbound, text string) {
	location := ""
	var directory map[roster.WorkerID]string

	if m.FromGroup() {
		info, err := r.directory.GroupInfo(ctx, m.Group)
		if err != nil {
			// Parse proceeds with sentinels; a lookup miss never
			// aborts message handling.
			r.logger.Warn("Group metadata lookup failed",
				zap.String("group", string(m.Group)), zap.Error(err))
		} else {
			location = info.Subject
			directory = make(map[roster.WorkerID]string, len(info.Participants))
			for _, p := range info.Participants {
				directory[p.ID] = p.Name
			}
		}
	}

	drafts := roster.ParseCommand(text, m.Mentions, m.Group, location, directory)

	r.logger.Info("Roster command parsed",
		zap.String("sender", string(m.Sender)),
		zap.Int("mentions", len(m.Mentions)),
		zap.Int("assignments", len(drafts)),
	)

	for _, d := range drafts {
		r.store.Put(d.Worker, d.Assignment)

		if err := r.messenger.SendDirect(ctx, d.Worker, assignmentNotice(d.Assignment)); err != nil {
			r.logger.Error("Failed to notify assigned worker",
				zap.String("worker", string(d.Worker)), zap.Error(err))
		}

		ack := assignmentAck(d.Worker, d.Assignment)
		var err error
		if m.FromGroup() {
			err = r.messenger.SendGroup(ctx, m.Group, ack, []roster.WorkerID{d.Worker})
		} else {
			err = r.messenger.SendDirect(ctx, m.Sender, ack)
		}
		if err != nil {
			r.logger.Error("Failed to acknowledge assignment",
				zap.String("worker", string(d.Worker)), zap.Error(err))
		}
	}
}

// reply answers in the conversation the message came from.
func (r *Router) reply(ctx context.Context, m transport.Inbound, text string) {
	var err error
	if m.FromGroup() {
		err = r.messenger.SendGroup(ctx, m.Group, text, nil)
	} else {
		err = r.messenger.SendDirect(ctx, m.Sender, text)
	}
	if err != nil {
		r.logger.Error("Failed to send reply", zap.Error(err))
	}
}
