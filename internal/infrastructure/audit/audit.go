// Package audit writes the append-only JSONL trail kept alongside every
// run's artifacts.
package audit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileName is the audit trail file inside a run directory.
const FileName = "audit_log.jsonl"

// Logger appends one JSON object per event to the run's audit file.
type Logger struct {
	file *os.File
	log  zerolog.Logger
}

// Open creates the run directory if needed and opens its audit file for
// appending.
func Open(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create run dir: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit file: %w", err)
	}

	log := zerolog.New(f).With().Timestamp().Logger()

	return &Logger{file: f, log: log}, nil
}

// Event appends one audit record.
func (l *Logger) Event(event string, fields map[string]any) {
	l.log.Log().Str("event", event).Fields(fields).Send()
}

// Close flushes and closes the audit file.
func (l *Logger) Close() error {
	return l.file.Close()
}
