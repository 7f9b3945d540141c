// CLAUDE:SUMMARY Narrative section classifier — routes plain paragraphs into the eight report sections by ordered header patterns.
package deckpipe

import (
	"regexp"
	"strings"
)

// narrativeHeaders is evaluated in order, first match wins. The order is
// load-bearing for lines matching more than one pattern, so this stays an
// ordered list, not a map.
var narrativeHeaders = []struct {
	pat *regexp.Regexp
	sec section
}{
	{regexp.MustCompile(`approach to .*(shortfall|target)`), sectionApproach},
	{regexp.MustCompile(`other vat|other activities`), sectionOther},
	{regexp.MustCompile(`open opp`), sectionOpenOpportunities},
	{regexp.MustCompile(`big play`), sectionBigPlays},
	{regexp.MustCompile(`account goal`), sectionAccountGoals},
	{regexp.MustCompile(`relationship`), sectionRelationships},
	{regexp.MustCompile(`research`), sectionResearch},
}

// tableHeaderLabels are column labels from the structured tables; a
// paragraph that is exactly one of these is already captured through the
// table extractors and must not be re-captured as narrative.
var tableHeaderLabels = map[string]bool{
	"raised by":          true,
	"description":        true,
	"impact":             true,
	"date becomes issue": true,
	"status":             true,
	"owner":              true,
	"impact rating":      true,
	"likelihood":         true,
	"mitigation":         true,
	"comments":           true,
	"rating":             true,
	"bucket":             true,
	"task name":          true,
	"progress":           true,
	"due date":           true,
	"priority":           true,
	"assigned to":        true,
	"labels":             true,
}

var leadingNumberPattern = regexp.MustCompile(`^\d+\b`)

// isBannerParagraph reports whether a paragraph looks like slide chrome:
// the deck title phrase, the overall-status marker, or a leading slide
// number.
func isBannerParagraph(p string) bool {
	lower := strings.ToLower(p)
	if strings.Contains(lower, deckTitleMarker) || strings.Contains(lower, overallMarker) {
		return true
	}
	return leadingNumberPattern.MatchString(strings.TrimSpace(p))
}

// colonContent returns the trimmed text after a colon appearing within the
// first 40 characters of p, if that text is non-empty.
func colonContent(p string) (string, bool) {
	idx := strings.Index(p, ":")
	if idx < 0 || idx >= 40 {
		return "", false
	}
	tail := strings.TrimSpace(p[idx+1:])
	if tail == "" {
		return "", false
	}
	return tail, true
}

// classifyNarrative assigns each paragraph to a narrative section. State
// is one current-section accumulator local to this pass; the initial
// section is the primary summary. Banner-looking paragraphs among the
// first five are skipped, as are bare status tokens and standalone table
// header labels.
func classifyNarrative(paragraphs []string) map[section][]string {
	out := map[section][]string{}
	cur := sectionSummary

	for i, p := range paragraphs {
		if i < 5 && isBannerParagraph(p) {
			continue
		}
		if isBareStatusToken(p) {
			continue
		}
		lower := strings.ToLower(strings.TrimSpace(p))
		if tableHeaderLabels[lower] {
			continue
		}

		matched := false
		for _, h := range narrativeHeaders {
			if h.pat.MatchString(lower) {
				cur = h.sec
				matched = true
				break
			}
		}
		if matched {
			if tail, ok := colonContent(p); ok {
				out[cur] = append(out[cur], tail)
			} else {
				// No colon content: the header line itself still lands in
				// the newly selected section.
				out[cur] = append(out[cur], p)
			}
			continue
		}

		out[cur] = append(out[cur], p)
	}

	return out
}
