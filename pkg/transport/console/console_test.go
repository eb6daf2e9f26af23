package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lucasreis/escala-bot/pkg/roster"
	"github.com/lucasreis/escala-bot/pkg/transport"
)

func collect(t *testing.T, input string) []transport.Inbound {
	t.Helper()
	tr := New(strings.NewReader(input), &bytes.Buffer{}, zap.NewNop())

	var messages []transport.Inbound
	for m := range tr.Inbox(context.Background()) {
		messages = append(messages, m)
	}
	return messages
}

func TestInbox_SingleLineMessages(t *testing.T) {
	messages := collect(t, "/on\n1\n")

	require.Len(t, messages, 2)
	assert.Equal(t, Sender, messages[0].Sender)
	assert.Equal(t, "/on", messages[0].Text)
	assert.Equal(t, "1", messages[1].Text)
	assert.False(t, messages[0].FromGroup())
}

func TestInbox_MultiLineScheduleCommand(t *testing.T) {
	messages := collect(t, "/escala 28/01\n@joao 12:00\n@ana 13h30\n\n/on\n")

	require.Len(t, messages, 2)
	assert.Equal(t, "/escala 28/01\n@joao 12:00\n@ana 13h30", messages[0].Text)
	assert.Equal(t, []roster.WorkerID{"joao@local", "ana@local"}, messages[0].Mentions)
	assert.Equal(t, "/on", messages[1].Text)
}

func TestInbox_SkipsBlankLines(t *testing.T) {
	messages := collect(t, "\n\n/on\n")

	require.Len(t, messages, 1)
	assert.Equal(t, "/on", messages[0].Text)
}

func TestSendDirect_WritesToOutput(t *testing.T) {
	var out bytes.Buffer
	tr := New(strings.NewReader(""), &out, zap.NewNop())

	err := tr.SendDirect(context.Background(), "joao@local", "🟢 Bot ativo")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "[para joao@local]")
	assert.Contains(t, out.String(), "🟢 Bot ativo")
}

func TestGroupInfo_AlwaysFails(t *testing.T) {
	tr := New(strings.NewReader(""), &bytes.Buffer{}, zap.NewNop())

	_, err := tr.GroupInfo(context.Background(), "123@g.us")

	assert.Error(t, err)
}

func TestExtractMentions(t *testing.T) {
	mentions := extractMentions("/escala 28/01\n@joao 12:00\nHorário 16:00\n@ana")

	assert.Equal(t, []roster.WorkerID{"joao@local", "ana@local"}, mentions)
}
