package observability

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "obs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	if err := Init(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestLogParse_Insert(t *testing.T) {
	db := openTestDB(t)
	l := NewEventLogger(db)

	l.LogParse(context.Background(), ParseEvent{
		DocumentName: "deck.pptx",
		Transport:    "cli",
		ReportCount:  2,
		RiskCount:    5,
		TaskCount:    3,
		WarningCount: 1,
		DurationMS:   42,
		Success:      true,
	})

	var count int
	var doc string
	var reports int
	row := db.QueryRow("SELECT COUNT(*), document_name, report_count FROM parse_event_logs")
	if err := row.Scan(&count, &doc, &reports); err != nil {
		t.Fatal(err)
	}
	if count != 1 || doc != "deck.pptx" || reports != 2 {
		t.Fatalf("row: count=%d doc=%q reports=%d", count, doc, reports)
	}
}

func TestLogParse_EventIDPrefix(t *testing.T) {
	db := openTestDB(t)
	l := NewEventLogger(db)
	l.LogParse(context.Background(), ParseEvent{DocumentName: "x.pptx", Success: true})

	var id string
	if err := db.QueryRow("SELECT event_id FROM parse_event_logs").Scan(&id); err != nil {
		t.Fatal(err)
	}
	if len(id) < 4 || id[:4] != "evt_" {
		t.Fatalf("event id prefix: %q", id)
	}
}

func TestCleanup_Retention(t *testing.T) {
	db := openTestDB(t)

	// One fresh row, one row aged past retention.
	if _, err := db.Exec(`INSERT INTO parse_event_logs (event_id, document_name, created_at) VALUES
		('evt_old', 'old.pptx', strftime('%s','now') - 40*86400),
		('evt_new', 'new.pptx', strftime('%s','now'))`); err != nil {
		t.Fatal(err)
	}

	if err := Cleanup(context.Background(), db, RetentionConfig{ParseEventsDays: 30}); err != nil {
		t.Fatal(err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM parse_event_logs").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("rows after cleanup: got %d, want 1", count)
	}
	var id string
	if err := db.QueryRow("SELECT event_id FROM parse_event_logs").Scan(&id); err != nil {
		t.Fatal(err)
	}
	if id != "evt_new" {
		t.Fatalf("surviving row: %q", id)
	}
}
