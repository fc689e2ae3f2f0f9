// Package checker analyzes uploaded resume documents for applicant-tracking
// compatibility.
package checker

// CategoryScore grades one aspect of the analyzed document.
type CategoryScore struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Status string `json:"status"`
}

// Report is the full analysis result for an uploaded document.
type Report struct {
	OverallScore    int             `json:"overall_score"`
	Categories      []CategoryScore `json:"categories"`
	Suggestions     []string        `json:"suggestions"`
	FoundKeywords   []string        `json:"found_keywords"`
	MissingKeywords []string        `json:"missing_keywords"`
}

// Category status levels.
const (
	StatusExcellent = "excellent"
	StatusGood      = "good"
	StatusWarning   = "warning"
)

// Analyzer produces a compatibility report for an uploaded document. The
// simulated implementation is the only one wired today; a real parsing
// backend can replace it behind this interface without touching callers.
type Analyzer interface {
	Analyze(upload Upload) (*Report, error)
}

// SimulatedAnalyzer returns a fixed representative report regardless of the
// document's contents. It validates the upload, then serves canned results
// that exercise every severity level the UI can display.
type SimulatedAnalyzer struct{}

// NewSimulatedAnalyzer creates the canned-report analyzer.
func NewSimulatedAnalyzer() *SimulatedAnalyzer {
	return &SimulatedAnalyzer{}
}

// Analyze validates the upload and returns the canned report. The document
// bytes are never inspected.
func (a *SimulatedAnalyzer) Analyze(upload Upload) (*Report, error) {
	if err := ValidateUpload(upload); err != nil {
		return nil, err
	}
	return cannedReport(), nil
}

func cannedReport() *Report {
	return &Report{
		OverallScore: 78,
		Categories: []CategoryScore{
			{Name: "Formatting", Score: 85, Status: StatusGood},
			{Name: "Keywords", Score: 72, Status: StatusWarning},
			{Name: "Contact Info", Score: 95, Status: StatusExcellent},
			{Name: "Work Experience", Score: 80, Status: StatusGood},
			{Name: "Skills Match", Score: 65, Status: StatusWarning},
			{Name: "Education", Score: 90, Status: StatusExcellent},
		},
		Suggestions: []string{
			"Add more industry-specific keywords from the job description",
			"Include measurable achievements with numbers and percentages",
			"Use standard section headings like 'Work Experience' and 'Education'",
			"Avoid tables, columns, and graphics that confuse ATS parsers",
		},
		FoundKeywords:   []string{"JavaScript", "React", "Project Management", "Team Leadership"},
		MissingKeywords: []string{"TypeScript", "Agile", "Scrum", "Node.js", "AWS"},
	}
}
