// CLAUDE:SUMMARY CLI entry point for deckrep — parse/inspect slide decks, optional SQLite event log, optional MCP stdio server.
// Command deckrep extracts per-entity status reports from slide-deck files.
//
// Usage:
//
//	deckrep deck.pptx                      # parse, print reports as JSON
//	deckrep -inspect deck.pptx             # print raw per-slide tuples
//	deckrep -config deckrep.yaml deck.pptx # custom alias table / limits
//	deckrep -events deckrep.db deck.pptx   # record a parse event row
//	deckrep -mcp                           # serve tools over MCP stdio
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	_ "modernc.org/sqlite"

	"github.com/hazyhaar/deckrep/deckpipe"
	"github.com/hazyhaar/deckrep/idgen"
	"github.com/hazyhaar/deckrep/kit"
	"github.com/hazyhaar/deckrep/observability"
)

func main() {
	configPath := flag.String("config", "", "path to deckrep.yaml config file")
	inspect := flag.Bool("inspect", false, "print raw per-slide tuples instead of parsing")
	eventsDB := flag.String("events", "", "path to SQLite observability database")
	mcpMode := flag.Bool("mcp", false, "serve deckpipe tools over MCP stdio")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *configPath, *eventsDB, flag.Arg(0), *inspect, *mcpMode); err != nil {
		logger.Error("deckrep: fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, configPath, eventsDB, deckPath string, inspect, mcpMode bool) error {
	cfg, err := resolveConfig(configPath)
	if err != nil {
		return err
	}
	cfg.Logger = logger
	pipe := deckpipe.New(*cfg)

	if mcpMode {
		srv := mcp.NewServer(&mcp.Implementation{
			Name:    "deckrep",
			Version: "1.0.0",
		}, nil)
		pipe.RegisterMCP(srv)
		logger.Info("MCP stdio serving")
		return srv.Run(ctx, &mcp.StdioTransport{})
	}

	if deckPath == "" {
		return errors.New("usage: deckrep [flags] <deck.pptx>")
	}

	ctx = kit.WithRequestID(ctx, idgen.Prefixed("req_", idgen.NanoID(12))())
	ctx = kit.WithDocName(ctx, deckPath)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if inspect {
		slides, err := pipe.InspectFile(ctx, deckPath)
		if err != nil {
			return fmt.Errorf("inspect: %w", err)
		}
		return enc.Encode(slides)
	}

	start := time.Now()
	res, parseErr := pipe.ParseFile(ctx, deckPath)

	if eventsDB != "" {
		logParseEvent(ctx, logger, eventsDB, deckPath, res, parseErr, time.Since(start))
	}

	if parseErr != nil {
		var archiveErr *deckpipe.ArchiveError
		if errors.As(parseErr, &archiveErr) {
			return fmt.Errorf("deck rejected: %w", archiveErr)
		}
		return fmt.Errorf("parse: %w", parseErr)
	}

	logger.Info("deck parsed",
		"request_id", kit.GetRequestID(ctx),
		"reports", len(res.Reports),
		"warnings", len(res.Warnings),
		"duration_ms", time.Since(start).Milliseconds())
	return enc.Encode(res)
}

func resolveConfig(configPath string) (*deckpipe.Config, error) {
	if configPath == "" {
		return &deckpipe.Config{}, nil
	}
	cfg, err := deckpipe.LoadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}
	return cfg, nil
}

// logParseEvent records one best-effort parse event row; failures are
// logged and never affect the exit status.
func logParseEvent(ctx context.Context, logger *slog.Logger, dbPath, deckPath string, res *deckpipe.Result, parseErr error, took time.Duration) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		logger.Warn("events db open failed", "error", err)
		return
	}
	defer db.Close()
	if err := observability.Init(db); err != nil {
		logger.Warn("events schema init failed", "error", err)
		return
	}

	event := observability.ParseEvent{
		DocumentName: deckPath,
		Transport:    kit.GetTransport(ctx),
		DurationMS:   took.Milliseconds(),
		Success:      parseErr == nil,
	}
	if parseErr != nil {
		event.ErrorMessage = parseErr.Error()
	}
	if res != nil {
		event.ReportCount = len(res.Reports)
		event.WarningCount = len(res.Warnings)
		for _, r := range res.Reports {
			event.RiskCount += len(r.Risks)
			event.TaskCount += len(r.Tasks)
		}
	}
	observability.NewEventLogger(db).LogParse(ctx, event)
}
