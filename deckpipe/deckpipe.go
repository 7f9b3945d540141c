// CLAUDE:SUMMARY Pipeline facade: Parse/ParseFile/Inspect over the archive → extract → classify → group → assemble passes.
// Package deckpipe extracts normalized per-entity status reports from
// OOXML slide-deck packages.
//
// One Parse call is one synchronous linear pass: archive extraction,
// per-slide paragraph/table extraction, slide classification, entity
// grouping, report assembly. Slide order and first-match-wins merge
// semantics are order-dependent, so the engine never parallelizes within
// a document. Parsing independent documents concurrently is safe; no
// state is shared between calls and each call uses its own temporary
// extraction area.
//
// Usage:
//
//	pipe := deckpipe.New(deckpipe.Config{})
//	res, err := pipe.ParseFile(ctx, "/path/to/deck.pptx")
//	fmt.Println(res.Summary)
package deckpipe

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Pipeline is the deck extraction engine.
type Pipeline struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time // report-date fallback clock, swappable in tests
}

// New creates a Pipeline with the given configuration.
func New(cfg Config) *Pipeline {
	cfg.defaults()
	return &Pipeline{
		cfg:    cfg,
		logger: cfg.Logger,
		now:    time.Now,
	}
}

// Parse extracts per-entity reports from raw deck bytes. Only archive-
// level problems return an error; malformed slides, unmatched tables, and
// missing values degrade to defaults or warnings, never abort the parse.
// The returned reports follow title-slide discovery order.
func (p *Pipeline) Parse(ctx context.Context, data []byte) (*Result, error) {
	slides, warnings, err := p.extractDeck(data)
	if err != nil {
		return nil, err
	}

	groups, groupWarnings := groupSlides(slides, p.cfg.Aliases)
	warnings = append(warnings, groupWarnings...)

	now := p.now()
	reports := make([]Report, 0, len(groups))
	for _, g := range groups {
		reports = append(reports, assembleGroup(g, now))
	}

	p.logger.DebugContext(ctx, "deck parsed",
		"slides", len(slides), "reports", len(reports), "warnings", len(warnings))

	return &Result{
		Reports:  reports,
		Summary:  Summarize(reports),
		Warnings: warnings,
	}, nil
}

// ParseFile reads and parses a deck from disk, enforcing the configured
// size limit first.
func (p *Pipeline) ParseFile(ctx context.Context, path string) (*Result, error) {
	data, err := p.readLimited(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(ctx, data)
}

// Inspect returns the raw per-slide (paragraphs, tables, size) tuples
// without running classification or assembly. Diagnostic surface for
// troubleshooting malformed input.
func (p *Pipeline) Inspect(ctx context.Context, data []byte) ([]Slide, error) {
	slides, _, err := p.extractDeck(data)
	if err != nil {
		return nil, err
	}
	p.logger.DebugContext(ctx, "deck inspected", "slides", len(slides))
	return slides, nil
}

// InspectFile is Inspect over a file path, with the size limit applied.
func (p *Pipeline) InspectFile(ctx context.Context, path string) ([]Slide, error) {
	data, err := p.readLimited(path)
	if err != nil {
		return nil, err
	}
	return p.Inspect(ctx, data)
}

// Entities returns the canonical entity names of the active alias table,
// in table order, deduplicated.
func (p *Pipeline) Entities() []string {
	seen := map[string]bool{}
	var out []string
	for _, a := range p.cfg.Aliases {
		if !seen[a.Entity] {
			seen[a.Entity] = true
			out = append(out, a.Entity)
		}
	}
	return out
}

func (p *Pipeline) extractDeck(data []byte) ([]Slide, []Warning, error) {
	payloads, err := extractSlides(data)
	if err != nil {
		return nil, nil, err
	}

	slides := make([]Slide, 0, len(payloads))
	var warnings []Warning
	for i, raw := range payloads {
		s, err := parseSlide(i+1, raw)
		if err != nil {
			// One corrupt slide must not cost the rest of the deck.
			p.logger.Warn("skipping unparseable slide", "slide", i+1, "error", err)
			warnings = append(warnings, Warning{SlideIndex: i + 1, Reason: "unparseable slide markup"})
			continue
		}
		slides = append(slides, s)
	}
	return slides, warnings, nil
}

func (p *Pipeline) readLimited(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > p.cfg.MaxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), p.cfg.MaxFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
