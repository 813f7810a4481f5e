package types

import "strings"

// Severity is the risk level attached to a finding. The set is closed and
// totally ordered; threshold checks and severity counts operate over it.
type Severity string

const (
	SevCritical Severity = "CRITICAL"
	SevHigh     Severity = "HIGH"
	SevMedium   Severity = "MEDIUM"
	SevLow      Severity = "LOW"
	SevInfo     Severity = "INFO"
)

// Levels returns all severities from most to least severe. This is also the
// order severity counts are reported in.
func Levels() []Severity {
	return []Severity{SevCritical, SevHigh, SevMedium, SevLow, SevInfo}
}

var severityRank = map[Severity]int{
	SevCritical: 5,
	SevHigh:     4,
	SevMedium:   3,
	SevLow:      2,
	SevInfo:     1,
}

// Rank returns the position of s in the total order (higher is more severe).
// Unknown severities rank below INFO.
func (s Severity) Rank() int {
	return severityRank[s]
}

// ParseSeverity resolves a case-insensitive severity name.
func ParseSeverity(s string) (Severity, bool) {
	for _, lv := range Levels() {
		if strings.EqualFold(string(lv), s) {
			return lv, true
		}
	}
	return "", false
}

// Overrides carries per-candidate replacements for the registry defaults,
// letting one rule express resource-specific wording without a new rule id.
// Zero-value fields fall back to the catalog entry.
type Overrides struct {
	Title          string
	Severity       Severity
	Description    string
	Recommendation string
	DocsURL        string
}

// Candidate is a raw detection emitted by one detector for one source unit,
// before metadata rendering.
type Candidate struct {
	Rule         string
	Unit         string
	Line         int
	Context      map[string]string
	Snippet      string
	SuggestedFix string
	UniqueID     string
	Overrides    *Overrides
}

// Finding is the fully rendered, report-ready detection. ID is unique within
// one report and stable across repeated scans of unchanged source.
type Finding struct {
	ID             string            `json:"id"`
	Rule           string            `json:"rule"`
	Title          string            `json:"title"`
	Severity       Severity          `json:"severity"`
	Description    string            `json:"description"`
	Recommendation string            `json:"recommendation"`
	File           string            `json:"file"`
	Line           int               `json:"line"`
	Snippet        string            `json:"snippet"`
	SuggestedFix   string            `json:"suggested_fix_snippet"`
	DocsURL        string            `json:"knowledge_ref,omitempty"`
	Context        map[string]string `json:"context,omitempty"`
	UnifiedDiff    string            `json:"unified_diff"`
	Explanation    string            `json:"explanation,omitempty"`
}

// WaivedFinding is the audit record kept for a finding suppressed by a waiver.
type WaivedFinding struct {
	ID       string   `json:"id"`
	Rule     string   `json:"rule"`
	Title    string   `json:"title"`
	Severity Severity `json:"severity"`
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Reason   string   `json:"reason,omitempty"`
}

// ThresholdStatus reports whether fail-on thresholds were configured and
// whether any active finding tripped them.
type ThresholdStatus struct {
	Configured  bool     `json:"configured"`
	FailOn      []string `json:"fail_on"`
	Triggered   bool     `json:"triggered"`
	ViolatedIDs []string `json:"violated_ids"`
}

// Summary aggregates per-scan counters.
type Summary struct {
	FilesScanned   int              `json:"files_scanned"`
	IssuesFound    int              `json:"issues_found"`
	Waived         int              `json:"waived,omitempty"`
	SeverityCounts map[Severity]int `json:"severity_counts,omitempty"`
	Thresholds     *ThresholdStatus `json:"thresholds,omitempty"`
}

// ScanReport is the single artifact a scan hands onward to renderers and
// persistence. Consumers must not mutate existing fields or ids.
type ScanReport struct {
	Summary        Summary         `json:"summary"`
	Findings       []Finding       `json:"findings"`
	WaivedFindings []WaivedFinding `json:"waived_findings,omitempty"`
	Config         string          `json:"config,omitempty"`
}
