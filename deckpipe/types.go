// CLAUDE:SUMMARY Defines Slide, Table, Report, Risk, Task, and Warning types for the deckpipe extraction engine.
package deckpipe

import "strings"

// Slide is one parsed unit of the source deck. Created once during
// extraction, immutable afterward; Index is 1-based and load-bearing.
type Slide struct {
	Index      int      `json:"index"`
	Paragraphs []string `json:"paragraphs"`
	Tables     []Table  `json:"tables"`
	ByteSize   int      `json:"byte_size"` // size of the slide markup, classification heuristic only
}

// Table is an ordered sequence of rows; each row an ordered sequence of
// cell strings. Cells may be empty, never absent. Column count varies per
// table — that variance is the classification signal.
type Table [][]string

// RiskKind distinguishes risk-register tables from issue-register tables.
// The kind is decided by the table header, not per row.
type RiskKind string

const (
	KindRisk  RiskKind = "risk"
	KindIssue RiskKind = "issue"
)

// Risk is one register row. Description is required; rows without one are
// never emitted.
type Risk struct {
	RaisedBy         string   `json:"raised_by"`
	Description      string   `json:"description"`
	Impact           string   `json:"impact"`
	DateBecomesIssue string   `json:"date_becomes_issue"`
	Status           string   `json:"status"`
	Owner            string   `json:"owner"`
	ImpactRating     string   `json:"impact_rating"`
	Likelihood       string   `json:"likelihood"`
	Mitigation       string   `json:"mitigation"`
	Comments         string   `json:"comments"`
	RatingColor      string   `json:"rating_color"`
	Kind             RiskKind `json:"kind"`
}

// Task is one task-bucket row. BucketName is sticky within its source
// table: a blank cell inherits the nearest preceding non-blank value.
type Task struct {
	BucketName string `json:"bucket_name"`
	TaskName   string `json:"task_name"`
	Progress   string `json:"progress"`
	DueDate    string `json:"due_date"`
	Priority   string `json:"priority"`
	AssignedTo string `json:"assigned_to"`
	Labels     string `json:"labels"`
}

// Report is the normalized per-entity output record. Every narrative and
// status field defaults to the empty string — absence is represented,
// never a sentinel error value.
type Report struct {
	EntityName    string `json:"entity_name"`
	ReportDate    string `json:"report_date"` // ISO yyyy-mm-dd
	OverallStatus string `json:"overall_status"`

	// Narrative fields: newline-joined ordered lines.
	Summary           string `json:"summary"`
	Approach          string `json:"approach"`
	OtherActivities   string `json:"other_activities"`
	OpenOpportunities string `json:"open_opportunities"`
	BigPlays          string `json:"big_plays"`
	AccountGoals      string `json:"account_goals"`
	Relationships     string `json:"relationships"`
	Research          string `json:"research"`

	// Category status fields: same vocabulary as OverallStatus.
	OpenOpportunitiesStatus string `json:"open_opportunities_status"`
	BigPlaysStatus          string `json:"big_plays_status"`
	AccountGoalsStatus      string `json:"account_goals_status"`
	RelationshipsStatus     string `json:"relationships_status"`
	ResearchStatus          string `json:"research_status"`

	Risks []Risk `json:"risks"`
	Tasks []Task `json:"tasks"`
}

// Warning records a unit the engine skipped without failing the parse:
// slides before the first resolvable title slide, or slides whose markup
// could not be parsed at all.
type Warning struct {
	SlideIndex int    `json:"slide_index"`
	Reason     string `json:"reason"`
}

// Result is the output of one Parse call.
type Result struct {
	Reports  []Report  `json:"reports"`
	Summary  string    `json:"summary"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// section identifies one of the eight narrative sections.
type section int

const (
	sectionSummary section = iota
	sectionApproach
	sectionOther
	sectionOpenOpportunities
	sectionBigPlays
	sectionAccountGoals
	sectionRelationships
	sectionResearch
)

// statusTokens is the fixed traffic-light vocabulary, scanned in this
// order when a cell contains more than one token at the same position.
var statusTokens = []string{"GREEN", "AMBER", "RED", "N/A"}

// findStatusToken returns the status token occurring earliest in s, or ""
// if none is present. Matching is case-insensitive; the canonical
// uppercase token is returned.
func findStatusToken(s string) string {
	upper := strings.ToUpper(s)
	best := ""
	bestIdx := -1
	for _, tok := range statusTokens {
		if idx := strings.Index(upper, tok); idx >= 0 && (bestIdx < 0 || idx < bestIdx) {
			best = tok
			bestIdx = idx
		}
	}
	return best
}

// isBareStatusToken reports whether s, trimmed, is exactly one of the four
// status tokens.
func isBareStatusToken(s string) bool {
	t := strings.ToUpper(strings.TrimSpace(s))
	for _, tok := range statusTokens {
		if t == tok {
			return true
		}
	}
	return false
}
