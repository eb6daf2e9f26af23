package roster

// WorkerID is the provider-assigned token identifying a person across a
// conversation (e.g. "5511987654321@s.whatsapp.net"). Compared by exact
// string equality only.
type WorkerID string

// GroupID identifies a group conversation.
type GroupID string

// Sentinel values substituted when resolution fails.
const (
	DefaultLocation   = "Loja não identificada"
	DefaultWorkerName = "Sem nome"
	DefaultDateLabel  = "Data não informada"
)

// ShiftAssignment describes one worker's shift. Values are immutable once
// created; state transitions replace the record rather than mutate it.
type ShiftAssignment struct {
	Group      GroupID // originating group conversation, empty for direct chats
	Location   string  // display label for where the shift occurs
	DateLabel  string  // opaque free text, never parsed as a calendar date
	TimeLabel  string  // opaque free text resolved during parsing
	WorkerName string  // best-effort display name
}

// Draft pairs a worker with the assignment parsed for them, in source order.
type Draft struct {
	Worker     WorkerID
	Assignment ShiftAssignment
}
