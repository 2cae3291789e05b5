package service

import (
	"math"
	"strings"

	"github.com/mrlhasang20/influencerFlow/model"
)

// requiredClauses lists the section headings a contract of each type
// must carry before it can go out for signature.
var requiredClauses = map[string][]string{
	model.TypeStandard: {
		"CAMPAIGN DETAILS", "DELIVERABLES", "COMPENSATION", "CONTENT GUIDELINES",
		"INTELLECTUAL PROPERTY", "CONFIDENTIALITY", "TERMINATION", "GOVERNING LAW",
	},
	model.TypeExclusive: {
		"CAMPAIGN DETAILS", "DELIVERABLES", "COMPENSATION", "EXCLUSIVITY",
		"INTELLECTUAL PROPERTY", "CONFIDENTIALITY", "TERMINATION", "GOVERNING LAW",
	},
	model.TypeNDA: {
		"CONFIDENTIALITY", "TERMINATION", "GOVERNING LAW",
	},
}

// CheckCompliance scans contract text for the clauses required by the
// contract type and jurisdiction. The scan is purely textual: it flags
// missing section headings and missing sponsored-content disclosure
// where the jurisdiction mandates one.
func CheckCompliance(contractText, contractType, jurisdiction string) *model.ComplianceReport {
	clauses, ok := requiredClauses[contractType]
	if !ok {
		clauses = requiredClauses[model.TypeStandard]
	}

	upper := strings.ToUpper(contractText)

	var issues []model.ComplianceIssue
	present := 0
	for _, clause := range clauses {
		if strings.Contains(upper, clause) {
			present++
			continue
		}
		issues = append(issues, model.ComplianceIssue{
			IssueType:      "missing_clause",
			Description:    "Required section \"" + clause + "\" was not found in the contract",
			Severity:       "high",
			Recommendation: "Add a " + clause + " section before sending the contract for signature",
		})
	}

	// US contracts need FTC disclosure language for sponsored content.
	if jurisdiction == model.JurisdictionUS && contractType != model.TypeNDA {
		if !strings.Contains(upper, "FTC") {
			issues = append(issues, model.ComplianceIssue{
				IssueType:      "missing_disclosure",
				Description:    "No FTC disclosure requirement found for sponsored content",
				Severity:       "high",
				Recommendation: "Require #ad or #sponsored disclosure per FTC endorsement guidelines",
			})
		}
	}

	score := 100.0
	if len(clauses) > 0 {
		score = math.Round(float64(present)/float64(len(clauses))*10000) / 100
	}

	var recommendations []string
	if len(issues) > 0 {
		recommendations = append(recommendations, "Resolve all high severity issues before countersigning")
		recommendations = append(recommendations, "Have legal counsel review any manually edited sections")
	}

	return &model.ComplianceReport{
		IsCompliant:     len(issues) == 0,
		ComplianceScore: score,
		Issues:          issues,
		Recommendations: recommendations,
		RequiredClauses: clauses,
	}
}
