// CLAUDE:SUMMARY SQLite-backed parse-event log with non-blocking writes and retention cleanup.
package observability

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/hazyhaar/deckrep/idgen"
)

// ParseEvent is one deck-parse outcome to record.
type ParseEvent struct {
	DocumentName string
	Transport    string
	ReportCount  int
	RiskCount    int
	TaskCount    int
	WarningCount int
	DurationMS   int64
	Success      bool
	ErrorMessage string
}

// EventLogger writes parse events and manages retention cleanup.
type EventLogger struct {
	db    *sql.DB
	newID idgen.Generator
}

// EventLoggerOption configures an EventLogger.
type EventLoggerOption func(*EventLogger)

// WithEventIDGenerator sets a custom ID generator for event IDs.
func WithEventIDGenerator(gen idgen.Generator) EventLoggerOption {
	return func(l *EventLogger) { l.newID = gen }
}

// NewEventLogger creates a logger backed by the given observability database.
func NewEventLogger(db *sql.DB, opts ...EventLoggerOption) *EventLogger {
	l := &EventLogger{
		db:    db,
		newID: idgen.Prefixed("evt_", idgen.Default),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// LogParse records a parse event. Non-blocking: errors are logged via slog
// but do not propagate, so a failing observability store never blocks the
// engine.
func (l *EventLogger) LogParse(ctx context.Context, event ParseEvent) {
	eventID := l.newID()
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO parse_event_logs (
			event_id, document_name, transport, report_count, risk_count,
			task_count, warning_count, duration_ms, success, error_message, created_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		eventID, event.DocumentName, event.Transport, event.ReportCount, event.RiskCount,
		event.TaskCount, event.WarningCount, event.DurationMS, event.Success,
		event.ErrorMessage, time.Now().Unix())
	if err != nil {
		slog.Error("observability parse log failed", "error", err, "document", event.DocumentName)
	}
}

// RetentionConfig specifies retention in days. Zero means no cleanup.
type RetentionConfig struct {
	ParseEventsDays int
	RunVacuumAfter  bool
}

// Cleanup deletes records exceeding the retention thresholds.
func Cleanup(ctx context.Context, db *sql.DB, cfg RetentionConfig) error {
	if cfg.ParseEventsDays > 0 {
		cutoff := time.Now().Unix() - int64(cfg.ParseEventsDays*86400)
		if _, err := db.ExecContext(ctx, "DELETE FROM parse_event_logs WHERE created_at < ?", cutoff); err != nil {
			return fmt.Errorf("cleanup parse_event_logs: %w", err)
		}
	}
	if cfg.RunVacuumAfter {
		if _, err := db.ExecContext(ctx, "VACUUM"); err != nil {
			return fmt.Errorf("vacuum: %w", err)
		}
	}
	return nil
}
