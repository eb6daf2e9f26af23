package bot

import (
	"context"
	"errors"

	"github.com/lucasreis/escala-bot/pkg/audit"
	"github.com/lucasreis/escala-bot/pkg/roster"
	"github.com/lucasreis/escala-bot/pkg/transport"
)

type directSend struct {
	To   roster.WorkerID
	Text string
}

type groupSend struct {
	To       roster.GroupID
	Text     string
	Mentions []roster.WorkerID
}

// fakeMessenger records outbound sends in order.
type fakeMessenger struct {
	direct []directSend
	group  []groupSend
}

func (f *fakeMessenger) SendDirect(_ context.Context, to roster.WorkerID, text string) error {
	f.direct = append(f.direct, directSend{To: to, Text: text})
	return nil
}

func (f *fakeMessenger) SendGroup(_ context.Context, to roster.GroupID, text string, mentions []roster.WorkerID) error {
	f.group = append(f.group, groupSend{To: to, Text: text, Mentions: mentions})
	return nil
}

// fakeSink records appended audit records.
type fakeSink struct {
	records []audit.Record
}

func (f *fakeSink) Append(_ context.Context, rec audit.Record) error {
	f.records = append(f.records, rec)
	return nil
}

// fakeDirectory serves a fixed GroupInfo, or an error when info is nil.
type fakeDirectory struct {
	info *transport.GroupInfo
}

func (f *fakeDirectory) GroupInfo(_ context.Context, _ roster.GroupID) (transport.GroupInfo, error) {
	if f.info == nil {
		return transport.GroupInfo{}, errors.New("group not found")
	}
	return *f.info, nil
}
