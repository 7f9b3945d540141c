// CLAUDE:SUMMARY Table shape dispatch and the status-grid, risk/issue-register, and task-bucket field extractors.
package deckpipe

import "strings"

type tableKind int

const (
	tableUnknown tableKind = iota
	tableStatusGrid
	tableRegister
	tableTasks
)

const (
	overallMarker = "status overall"
	summaryMarker = "summary"
)

// categoryMarkers is an ordered (marker, section) list; order is
// load-bearing for ambiguous rows, so this is a slice, not a map.
var categoryMarkers = []struct {
	marker string
	sec    section
}{
	{"open opp", sectionOpenOpportunities},
	{"big play", sectionBigPlays},
	{"account goal", sectionAccountGoals},
	{"relationship", sectionRelationships},
	{"research", sectionResearch},
}

// classifyTable dispatches purely on (columnCount, headerRowText) of the
// first row. A table matching none of the three shapes is ignored.
func classifyTable(t Table) tableKind {
	if len(t) == 0 {
		return tableUnknown
	}
	header := strings.ToLower(strings.Join(t[0], " "))
	switch len(t[0]) {
	case 3:
		if len(t) >= 5 {
			return tableStatusGrid
		}
	case 11:
		if strings.Contains(header, "raised by") {
			return tableRegister
		}
	case 7:
		if strings.Contains(header, "bucket") {
			return tableTasks
		}
	}
	return tableUnknown
}

// cell returns row[i], or "" when the row is short. Rows in slide tables
// are not guaranteed rectangular.
func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func rowBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// gridExtract is the partial record a status grid contributes.
type gridExtract struct {
	overall      string
	summaryLines []string
	catStatus    map[section]string
}

// extractStatusGrid reads the 3-column status grid. Row 0 column 0 is
// scanned for the overall status token; subsequent rows are routed by the
// marker in column 1, and unmarked rows with text in column 0 append to
// the summary narrative in row order.
func extractStatusGrid(t Table) gridExtract {
	out := gridExtract{catStatus: map[section]string{}}
	out.overall = findStatusToken(cell(t[0], 0))

	summarySet := false

rows:
	for _, row := range t[1:] {
		marker := strings.ToLower(cell(row, 1))

		if strings.HasPrefix(marker, overallMarker) {
			continue // already taken from row 0
		}
		if strings.HasPrefix(marker, summaryMarker) {
			if !summarySet {
				if text := cell(row, 0); text != "" {
					out.summaryLines = append(out.summaryLines, text)
					summarySet = true
				}
			}
			continue
		}
		for _, cm := range categoryMarkers {
			if strings.HasPrefix(marker, cm.marker) {
				tok := findStatusToken(cell(row, 0) + " " + cell(row, 1) + " " + cell(row, 2))
				if tok != "" && out.catStatus[cm.sec] == "" {
					out.catStatus[cm.sec] = tok
				}
				continue rows
			}
		}
		if text := cell(row, 0); text != "" {
			out.summaryLines = append(out.summaryLines, text)
		}
	}

	return out
}

// extractRegister maps an 11-column register table to Risk rows. The kind
// is decided once from the header: "issue rating" marks an issue register.
func extractRegister(t Table) []Risk {
	header := strings.ToLower(strings.Join(t[0], " "))
	kind := KindRisk
	if strings.Contains(header, "issue rating") {
		kind = KindIssue
	}

	var risks []Risk
	for _, row := range t[1:] {
		if rowBlank(row) {
			continue
		}
		desc := cell(row, 1)
		// "People Process" is the source template's header text leaking
		// into body rows; such rows carry no register entry.
		if desc == "" || strings.EqualFold(desc, "people process") {
			continue
		}
		risks = append(risks, Risk{
			RaisedBy:         cell(row, 0),
			Description:      desc,
			Impact:           cell(row, 2),
			DateBecomesIssue: cell(row, 3),
			Status:           cell(row, 4),
			Owner:            cell(row, 5),
			ImpactRating:     cell(row, 6),
			Likelihood:       cell(row, 7),
			Mitigation:       cell(row, 8),
			Comments:         cell(row, 9),
			RatingColor:      cell(row, 10),
			Kind:             kind,
		})
	}
	return risks
}

// extractTasks maps a 7-column task table to Task rows. The bucket column
// is sticky: a blank cell inherits the nearest preceding non-blank bucket
// within the same table. Rows without a task name are skipped.
func extractTasks(t Table) []Task {
	var tasks []Task
	bucket := ""
	for _, row := range t[1:] {
		if b := cell(row, 0); b != "" {
			bucket = b
		}
		name := cell(row, 1)
		if name == "" {
			continue
		}
		tasks = append(tasks, Task{
			BucketName: bucket,
			TaskName:   name,
			Progress:   cell(row, 2),
			DueDate:    cell(row, 3),
			Priority:   cell(row, 4),
			AssignedTo: cell(row, 5),
			Labels:     cell(row, 6),
		})
	}
	return tasks
}
