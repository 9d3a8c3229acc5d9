package models

// Issue severity values, ordered most to least severe.
const (
	SeverityCritical    = "critical"
	SeverityMajor       = "major"
	SeverityMinor       = "minor"
	SeverityEnhancement = "enhancement"
)

// SeverityRank maps severities to a comparable rank; lower is more severe.
var SeverityRank = map[string]int{
	SeverityCritical:    0,
	SeverityMajor:       1,
	SeverityMinor:       2,
	SeverityEnhancement: 3,
}

// Issue type values.
const (
	IssueTypeUX            = "ux"
	IssueTypeAccessibility = "accessibility"
	IssueTypeError         = "error"
	IssueTypePerformance   = "performance"
)

// UXIssue is a structured usability finding, produced inline by navigation
// decisions and by the screenshot analysis pass.
type UXIssue struct {
	Element        string `json:"element,omitempty"`
	Description    string `json:"description"`
	Severity       string `json:"severity"`
	IssueType      string `json:"issue_type,omitempty"`
	Heuristic      string `json:"heuristic,omitempty"`
	WCAGCriterion  string `json:"wcag_criterion,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
	PageURL        string `json:"page_url,omitempty"`
}

// Normalize fills defaulted fields so downstream scoring never sees blanks.
func (i *UXIssue) Normalize() {
	if _, ok := SeverityRank[i.Severity]; !ok {
		i.Severity = SeverityMinor
	}
	switch i.IssueType {
	case IssueTypeUX, IssueTypeAccessibility, IssueTypeError, IssueTypePerformance:
	default:
		i.IssueType = IssueTypeUX
	}
}

// MoreSevere reports whether severity a outranks severity b.
func MoreSevere(a, b string) bool {
	ra, ok := SeverityRank[a]
	if !ok {
		ra = SeverityRank[SeverityMinor]
	}
	rb, ok := SeverityRank[b]
	if !ok {
		rb = SeverityRank[SeverityMinor]
	}
	return ra < rb
}
