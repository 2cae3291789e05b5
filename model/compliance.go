package model

// ComplianceIssue is one problem found while scanning contract text.
type ComplianceIssue struct {
	IssueType      string `json:"issue_type"`
	Description    string `json:"description"`
	Severity       string `json:"severity"` // high, medium, low
	Recommendation string `json:"recommendation"`
}

// ComplianceReport is the result of a contract compliance scan.
type ComplianceReport struct {
	IsCompliant     bool              `json:"is_compliant"`
	ComplianceScore float64           `json:"compliance_score"`
	Issues          []ComplianceIssue `json:"issues"`
	Recommendations []string          `json:"recommendations"`
	RequiredClauses []string          `json:"required_clauses"`
}
