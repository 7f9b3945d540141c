// CLAUDE:SUMMARY Slide classification (title / status-update / content) and the single-pass entity grouping fold.
package deckpipe

import (
	"regexp"
	"strings"
)

const (
	// A title-slide candidate has at most this many paragraphs, markup
	// below titleSlideMaxBytes, and no tables.
	titleSlideMaxParagraphs = 2
	titleSlideMaxBytes      = 5000

	// First paragraph prefix marking a task-tracking slide.
	statusUpdateMarker = "status update"

	// Slide 1 whose first paragraph carries both markers is the deck's own
	// title page and is skipped entirely.
	deckTitleMarker    = "status report"
	deckSubtitleMarker = "vat"
)

type slideClass int

const (
	classContent slideClass = iota
	classTitle
	classStatusUpdate
	classDeckTitlePage
)

type classified struct {
	class  slideClass
	entity string // resolved canonical name, classTitle only
}

var vatWordPattern = regexp.MustCompile(`\bvat\b`)

// resolveEntity maps a title-slide paragraph to a canonical entity name:
// strip the word "VAT", case-fold, collapse whitespace, then take the
// first alias-table entry that matches exactly or by containment.
func resolveEntity(text string, aliases []AliasEntry) (string, bool) {
	cleaned := vatWordPattern.ReplaceAllString(strings.ToLower(text), " ")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" {
		return "", false
	}
	for _, a := range aliases {
		if cleaned == a.Alias || strings.Contains(cleaned, a.Alias) {
			return a.Entity, true
		}
	}
	return "", false
}

// classifySlide labels one freshly extracted slide. A small slide whose
// first paragraph does not resolve through the alias table is not a title
// slide and falls through to ordinary classification. A status-update
// labeled slide with no table is reclassified as ordinary content.
func classifySlide(s Slide, aliases []AliasEntry) classified {
	if s.Index == 1 && len(s.Paragraphs) > 0 {
		first := strings.ToLower(s.Paragraphs[0])
		if strings.Contains(first, deckTitleMarker) && strings.Contains(first, deckSubtitleMarker) {
			return classified{class: classDeckTitlePage}
		}
	}

	if len(s.Paragraphs) > 0 && len(s.Paragraphs) <= titleSlideMaxParagraphs &&
		s.ByteSize < titleSlideMaxBytes && len(s.Tables) == 0 {
		if entity, ok := resolveEntity(s.Paragraphs[0], aliases); ok {
			return classified{class: classTitle, entity: entity}
		}
	}

	if len(s.Paragraphs) > 0 &&
		strings.HasPrefix(strings.ToLower(s.Paragraphs[0]), statusUpdateMarker) &&
		len(s.Tables) > 0 {
		return classified{class: classStatusUpdate}
	}

	return classified{class: classContent}
}

// entityGroup is the transient grouping structure consumed by the
// assembler; it exists only between the grouping and assembly passes.
type entityGroup struct {
	entityName         string
	titleSlide         Slide
	contentSlides      []Slide
	statusUpdateSlides []Slide
}

// groupSlides walks slides in document order, opening a new group at every
// resolved title slide and appending everything else to the open group.
// Slides seen while no group is open are dropped and surfaced as warnings.
func groupSlides(slides []Slide, aliases []AliasEntry) ([]entityGroup, []Warning) {
	var groups []entityGroup
	var warnings []Warning
	open := -1

	for _, s := range slides {
		c := classifySlide(s, aliases)
		switch c.class {
		case classDeckTitlePage:
			continue
		case classTitle:
			groups = append(groups, entityGroup{entityName: c.entity, titleSlide: s})
			open = len(groups) - 1
		case classStatusUpdate:
			if open < 0 {
				warnings = append(warnings, Warning{SlideIndex: s.Index, Reason: "status-update slide before first title slide"})
				continue
			}
			groups[open].statusUpdateSlides = append(groups[open].statusUpdateSlides, s)
		default:
			if open < 0 {
				warnings = append(warnings, Warning{SlideIndex: s.Index, Reason: "content slide before first title slide"})
				continue
			}
			groups[open].contentSlides = append(groups[open].contentSlides, s)
		}
	}

	return groups, warnings
}
