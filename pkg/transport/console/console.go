// Package console is a stdin/stdout transport for running the bot locally
// without a chat provider. Each input line becomes one direct message from a
// fixed local sender; a line starting a roster command keeps reading until a
// blank line so multi-line commands can be typed. "@name" tokens are resolved
// to local worker IDs in order of appearance, standing in for the provider's
// mention resolution.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/lucasreis/escala-bot/pkg/roster"
	"github.com/lucasreis/escala-bot/pkg/transport"
)

// Sender is the worker ID attached to every message typed on the console.
const Sender = roster.WorkerID("console@local")

type Transport struct {
	in     io.Reader
	out    io.Writer
	logger *zap.Logger
}

func New(in io.Reader, out io.Writer, logger *zap.Logger) *Transport {
	return &Transport{in: in, out: out, logger: logger}
}

// Inbox reads messages from the console until the input ends or ctx is
// cancelled, delivering them on the returned channel.
func (t *Transport) Inbox(ctx context.Context) <-chan transport.Inbound {
	ch := make(chan transport.Inbound)

	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(t.in)
		for scanner.Scan() {
			text := scanner.Text()
			if strings.TrimSpace(text) == "" {
				continue
			}
			if roster.IsScheduleCommand(strings.TrimSpace(text)) {
				text = t.readCommandBody(scanner, text)
			}

			m := transport.Resolve(Sender, "", transport.Payload{
				Extended: &transport.ExtendedText{
					Text:     text,
					Mentions: extractMentions(text),
				},
			})

			select {
			case ch <- m:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			t.logger.Error("Console read failed", zap.Error(err))
		}
	}()

	return ch
}

// readCommandBody collects the remaining lines of a multi-line roster
// command, up to a blank line or end of input.
func (t *Transport) readCommandBody(scanner *bufio.Scanner, first string) string {
	lines := []string{first}
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// SendDirect prints a private message.
func (t *Transport) SendDirect(_ context.Context, to roster.WorkerID, text string) error {
	_, err := fmt.Fprintf(t.out, "[para %s]\n%s\n\n", to, text)
	return err
}

// SendGroup prints a group message; the console has no real groups.
func (t *Transport) SendGroup(_ context.Context, to roster.GroupID, text string, _ []roster.WorkerID) error {
	_, err := fmt.Fprintf(t.out, "[grupo %s]\n%s\n\n", to, text)
	return err
}

// GroupInfo always fails: console conversations are direct chats only, so
// assignments fall back to the location sentinel.
func (t *Transport) GroupInfo(_ context.Context, id roster.GroupID) (transport.GroupInfo, error) {
	return transport.GroupInfo{}, fmt.Errorf("console transport has no group %q", id)
}

// extractMentions resolves "@name" tokens to local worker IDs, in order.
func extractMentions(text string) []roster.WorkerID {
	var mentions []roster.WorkerID
	for _, field := range strings.Fields(text) {
		if len(field) > 1 && strings.HasPrefix(field, "@") {
			mentions = append(mentions, roster.WorkerID(field[1:]+"@local"))
		}
	}
	return mentions
}
