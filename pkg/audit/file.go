package audit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileSink appends one pipe-delimited line per record to a plain text file,
// e.g. logs/confirmacoes.txt. The parent directory is created on first use.
type FileSink struct {
	mu   sync.Mutex
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Append writes one line for rec, creating the log file and its directory if
// they do not exist yet.
func (s *FileSink) Append(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create audit log directory: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s | %s | %s | %s | %s | %s\n",
		rec.Timestamp.UTC().Format(time.RFC3339),
		rec.Outcome,
		rec.WorkerNumber,
		rec.WorkerName,
		rec.Location,
		rec.DateLabel,
		rec.TimeLabel,
	)

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to append audit record: %w", err)
	}

	return nil
}
