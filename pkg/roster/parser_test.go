package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGroup = GroupID("123456@g.us")

func TestParseCommand_InlineTimes(t *testing.T) {
	text := "/escala 28/01\n@joao 12:00\n@ana 13h30"
	mentions := []WorkerID{"551199@s.whatsapp.net", "551188@s.whatsapp.net"}

	drafts := ParseCommand(text, mentions, testGroup, "Loja Centro", nil)

	require.Len(t, drafts, 2)
	assert.Equal(t, WorkerID("551199@s.whatsapp.net"), drafts[0].Worker)
	assert.Equal(t, "28/01", drafts[0].Assignment.DateLabel)
	assert.Equal(t, "12:00", drafts[0].Assignment.TimeLabel)
	assert.Equal(t, WorkerID("551188@s.whatsapp.net"), drafts[1].Worker)
	assert.Equal(t, "28/01", drafts[1].Assignment.DateLabel)
	assert.Equal(t, "13h30", drafts[1].Assignment.TimeLabel)
}

func TestParseCommand_BlockHeaders(t *testing.T) {
	text := "Escala Semana 01/02 a 07/02\nHorário 16:00\n@joao\nHorário 18:00\n@ana\n@jose"
	mentions := []WorkerID{"joao@w", "ana@w", "jose@w"}

	drafts := ParseCommand(text, mentions, testGroup, "Loja Centro", nil)

	require.Len(t, drafts, 3)
	assert.Equal(t, "Semana 01/02 a 07/02", drafts[0].Assignment.DateLabel)
	assert.Equal(t, WorkerID("joao@w"), drafts[0].Worker)
	assert.Equal(t, "16:00", drafts[0].Assignment.TimeLabel)
	assert.Equal(t, WorkerID("ana@w"), drafts[1].Worker)
	assert.Equal(t, "18:00", drafts[1].Assignment.TimeLabel)
	assert.Equal(t, WorkerID("jose@w"), drafts[2].Worker)
	assert.Equal(t, "18:00", drafts[2].Assignment.TimeLabel)
}

func TestParseCommand_InlineTimeOverridesBlockTime(t *testing.T) {
	text := "/escala 28/01\nHorário 16:00\n@joao 12:00\n@ana"
	mentions := []WorkerID{"joao@w", "ana@w"}

	drafts := ParseCommand(text, mentions, testGroup, "", nil)

	require.Len(t, drafts, 2)
	assert.Equal(t, "12:00", drafts[0].Assignment.TimeLabel)
	assert.Equal(t, "16:00", drafts[1].Assignment.TimeLabel)
}

func TestParseCommand_BareMentionWithoutTimeDropped(t *testing.T) {
	text := "/escala 28/01\n@joao"
	mentions := []WorkerID{"joao@w"}

	drafts := ParseCommand(text, mentions, testGroup, "", nil)

	assert.Empty(t, drafts)
}

func TestParseCommand_DroppedLineStillConsumesMention(t *testing.T) {
	text := "/escala 28/01\n@joao\nHorário 10:00\n@ana"
	mentions := []WorkerID{"joao@w", "ana@w"}

	drafts := ParseCommand(text, mentions, testGroup, "", nil)

	// joao's line has no time anywhere above it, so it is dropped, but it
	// still consumed the first mention; ana gets the second.
	require.Len(t, drafts, 1)
	assert.Equal(t, WorkerID("ana@w"), drafts[0].Worker)
	assert.Equal(t, "10:00", drafts[0].Assignment.TimeLabel)
}

func TestParseCommand_MoreLinesThanMentions(t *testing.T) {
	text := "/escala 28/01\n@joao 12:00\n@ana 13:00"
	mentions := []WorkerID{"joao@w"}

	drafts := ParseCommand(text, mentions, testGroup, "", nil)

	require.Len(t, drafts, 1)
	assert.Equal(t, WorkerID("joao@w"), drafts[0].Worker)
}

func TestParseCommand_MoreMentionsThanLines(t *testing.T) {
	text := "/escala 28/01\n@joao 12:00"
	mentions := []WorkerID{"joao@w", "ana@w", "jose@w"}

	drafts := ParseCommand(text, mentions, testGroup, "", nil)

	require.Len(t, drafts, 1)
	assert.Equal(t, WorkerID("joao@w"), drafts[0].Worker)
}

func TestParseCommand_MissingDateUsesSentinel(t *testing.T) {
	text := "/escala\n@joao 12:00"
	mentions := []WorkerID{"joao@w"}

	drafts := ParseCommand(text, mentions, testGroup, "", nil)

	require.Len(t, drafts, 1)
	assert.Equal(t, DefaultDateLabel, drafts[0].Assignment.DateLabel)
}

func TestParseCommand_MissingLocationUsesSentinel(t *testing.T) {
	text := "/escala 28/01\n@joao 12:00"

	drafts := ParseCommand(text, []WorkerID{"joao@w"}, testGroup, "", nil)

	require.Len(t, drafts, 1)
	assert.Equal(t, DefaultLocation, drafts[0].Assignment.Location)
}

func TestParseCommand_DirectoryNames(t *testing.T) {
	text := "/escala 28/01\n@joao 12:00\n@ana 13:00"
	mentions := []WorkerID{"joao@w", "ana@w"}
	directory := map[WorkerID]string{"joao@w": "João Silva"}

	drafts := ParseCommand(text, mentions, testGroup, "Loja Centro", directory)

	require.Len(t, drafts, 2)
	assert.Equal(t, "João Silva", drafts[0].Assignment.WorkerName)
	assert.Equal(t, DefaultWorkerName, drafts[1].Assignment.WorkerName)
}

func TestParseCommand_HeaderStripVariants(t *testing.T) {
	mentions := []WorkerID{"joao@w"}

	for _, tc := range []struct {
		header string
		date   string
	}{
		{"/escala 28/01", "28/01"},
		{"/ESCALA 28/01", "28/01"},
		{"escala 28/01", "28/01"},
		{"Escala 28/01 Quarta-feira", "28/01 Quarta-feira"},
	} {
		drafts := ParseCommand(tc.header+"\n@joao 12:00", mentions, testGroup, "", nil)
		require.Len(t, drafts, 1, "header %q", tc.header)
		assert.Equal(t, tc.date, drafts[0].Assignment.DateLabel, "header %q", tc.header)
	}
}

func TestParseCommand_BlankAndPaddedLines(t *testing.T) {
	text := "/escala 28/01\n\n  @joao 12:00  \n\n"
	mentions := []WorkerID{"joao@w"}

	drafts := ParseCommand(text, mentions, testGroup, "", nil)

	require.Len(t, drafts, 1)
	assert.Equal(t, "12:00", drafts[0].Assignment.TimeLabel)
}

func TestParseCommand_EmptyText(t *testing.T) {
	assert.Empty(t, ParseCommand("", nil, testGroup, "", nil))
}

func TestIsScheduleCommand(t *testing.T) {
	assert.True(t, IsScheduleCommand("/escala 28/01"))
	assert.True(t, IsScheduleCommand("/Escala 28/01"))
	assert.True(t, IsScheduleCommand("escala amanhã"))
	assert.True(t, IsScheduleCommand("Escala Semana 01/02"))
	assert.False(t, IsScheduleCommand("bom dia"))
	assert.False(t, IsScheduleCommand("1"))
}
