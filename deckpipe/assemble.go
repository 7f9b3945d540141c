// CLAUDE:SUMMARY Report assembler — merges table and narrative extractions per entity group, extracts dates, builds the summary line.
package deckpipe

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// allSections fixes the merge order for narrative line slices.
var allSections = []section{
	sectionSummary,
	sectionApproach,
	sectionOther,
	sectionOpenOpportunities,
	sectionBigPlays,
	sectionAccountGoals,
	sectionRelationships,
	sectionResearch,
}

func narrativeField(rep *Report, sec section) *string {
	switch sec {
	case sectionSummary:
		return &rep.Summary
	case sectionApproach:
		return &rep.Approach
	case sectionOther:
		return &rep.OtherActivities
	case sectionOpenOpportunities:
		return &rep.OpenOpportunities
	case sectionBigPlays:
		return &rep.BigPlays
	case sectionAccountGoals:
		return &rep.AccountGoals
	case sectionRelationships:
		return &rep.Relationships
	case sectionResearch:
		return &rep.Research
	}
	return nil
}

func statusField(rep *Report, sec section) *string {
	switch sec {
	case sectionOpenOpportunities:
		return &rep.OpenOpportunitiesStatus
	case sectionBigPlays:
		return &rep.BigPlaysStatus
	case sectionAccountGoals:
		return &rep.AccountGoalsStatus
	case sectionRelationships:
		return &rep.RelationshipsStatus
	case sectionResearch:
		return &rep.ResearchStatus
	}
	return nil
}

// assembleGroup merges one entity group into a Report. Scalar fields are
// first-set-wins across content slides in order; narrative lines append in
// slide order, tables before paragraph backfill within a slide. Status-
// update slides contribute tasks only. now supplies the fallback report
// date when no slide carries one.
func assembleGroup(g entityGroup, now time.Time) Report {
	rep := Report{EntityName: g.entityName}
	lines := map[section][]string{}

	for _, s := range g.contentSlides {
		if rep.ReportDate == "" {
			if d, ok := findDate(s.Paragraphs, g.titleSlide.Paragraphs); ok {
				rep.ReportDate = d
			}
		}

		for _, t := range s.Tables {
			switch classifyTable(t) {
			case tableStatusGrid:
				ge := extractStatusGrid(t)
				if rep.OverallStatus == "" && ge.overall != "" {
					rep.OverallStatus = ge.overall
				}
				lines[sectionSummary] = append(lines[sectionSummary], ge.summaryLines...)
				for _, cm := range categoryMarkers {
					tok := ge.catStatus[cm.sec]
					if tok == "" {
						continue
					}
					if f := statusField(&rep, cm.sec); f != nil && *f == "" {
						*f = tok
					}
				}
			case tableRegister:
				rep.Risks = append(rep.Risks, extractRegister(t)...)
			case tableTasks:
				rep.Tasks = append(rep.Tasks, extractTasks(t)...)
			}
		}

		ns := classifyNarrative(s.Paragraphs)
		for _, sec := range allSections {
			lines[sec] = append(lines[sec], ns[sec]...)
		}
	}

	for _, s := range g.statusUpdateSlides {
		for _, t := range s.Tables {
			if classifyTable(t) == tableTasks {
				rep.Tasks = append(rep.Tasks, extractTasks(t)...)
			}
		}
	}

	// No grid carried an overall status: fall back to a bare token among
	// each content slide's first five paragraphs.
	if rep.OverallStatus == "" {
	fallback:
		for _, s := range g.contentSlides {
			for i, p := range s.Paragraphs {
				if i >= 5 {
					break
				}
				if isBareStatusToken(p) {
					rep.OverallStatus = strings.ToUpper(strings.TrimSpace(p))
					break fallback
				}
			}
		}
	}

	if rep.ReportDate == "" {
		rep.ReportDate = now.Format("2006-01-02")
	}

	for _, sec := range allSections {
		if f := narrativeField(&rep, sec); f != nil {
			*f = strings.Join(lines[sec], "\n")
		}
	}

	return rep
}

var monthIndex = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

var (
	dayMonthYearPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s+(January|February|March|April|May|June|July|August|September|October|November|December),?\s+(\d{4})\b`)
	slashDatePattern    = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
)

// findDate scans the slide's first five paragraphs, then the group title
// slide's paragraphs, for a "D Month[,] YYYY" or "D/M/YYYY" date. The
// first paragraph yielding a valid calendar date wins.
func findDate(slideParagraphs, titleParagraphs []string) (string, bool) {
	scan := make([]string, 0, 5+len(titleParagraphs))
	for i, p := range slideParagraphs {
		if i >= 5 {
			break
		}
		scan = append(scan, p)
	}
	scan = append(scan, titleParagraphs...)

	for _, p := range scan {
		if m := dayMonthYearPattern.FindStringSubmatch(p); m != nil {
			day := atoi(m[1])
			month := monthIndex[strings.ToLower(m[2])]
			year := atoi(m[3])
			if d, ok := validDate(year, month, day); ok {
				return d, true
			}
		}
		if m := slashDatePattern.FindStringSubmatch(p); m != nil {
			day := atoi(m[1])
			month := time.Month(atoi(m[2]))
			year := atoi(m[3])
			if d, ok := validDate(year, month, day); ok {
				return d, true
			}
		}
	}
	return "", false
}

// atoi is safe here: the capture groups only ever match digits.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// validDate rejects impossible day/month pairs instead of letting
// time.Date normalize them into a different day.
func validDate(year int, month time.Month, day int) (string, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return "", false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || d.Month() != month {
		return "", false
	}
	return d.Format("2006-01-02"), true
}

// Summarize renders the one-line human-readable summary for a report list.
func Summarize(reports []Report) string {
	parts := make([]string, 0, len(reports))
	for _, r := range reports {
		status := r.OverallStatus
		if status == "" {
			status = "not set"
		}
		parts = append(parts, fmt.Sprintf("%s: %d risks, %d planner tasks, status: %s",
			r.EntityName, len(r.Risks), len(r.Tasks), status))
	}
	return strings.Join(parts, "; ")
}
